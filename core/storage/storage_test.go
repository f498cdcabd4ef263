package storage

import (
	"context"
	"testing"

	"pickup/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3StoreRequiresBucket(t *testing.T) {
	_, err := NewS3Store(config.StorageConfig{Region: "us-east-1"})
	assert.Error(t, err)

	store, err := NewS3Store(config.StorageConfig{
		Region:    "us-east-1",
		Bucket:    "feeds",
		Endpoint:  "http://localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "feeds", store.bucket)
}

func TestMemoryStoreCopiesBody(t *testing.T) {
	m := NewMemoryStore()
	body := []byte("BEGIN:VCALENDAR")
	require.NoError(t, m.Put(context.Background(), "events/1.ics", body, "text/calendar"))
	body[0] = 'X'

	obj, ok := m.Get("events/1.ics")
	require.True(t, ok)
	assert.Equal(t, "BEGIN:VCALENDAR", string(obj.Body))
	assert.Equal(t, "text/calendar", obj.ContentType)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestNoop(t *testing.T) {
	var s ObjectStore = Noop{}
	assert.NoError(t, s.Put(context.Background(), "k", nil, ""))
}
