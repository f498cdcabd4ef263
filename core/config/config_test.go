package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_BUCKET", "pickup-feeds")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "pickup-feeds", cfg.Storage.Bucket)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
	assert.NoError(t, cfg.Validate())

	got, ok := GetSafe()
	require.True(t, ok)
	assert.Same(t, cfg, got)
}

func TestValidateRequiresSecret(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 7070}}
	assert.Error(t, cfg.Validate())
}
