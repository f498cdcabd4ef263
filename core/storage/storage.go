// Package storage publishes generated files to an object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"pickup/core/config"
	"pickup/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store builds a client for AWS or any S3-compatible endpoint.
// A custom endpoint switches to path-style addressing.
func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}

	opts := s3.Options{Region: cfg.Region}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	logger.Info("Object storage ready", "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)
	return &S3Store{client: s3.New(opts), bucket: cfg.Bucket}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("S3Store:Put", err, "key", key)
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Noop discards every object.
type Noop struct{}

func (Noop) Put(context.Context, string, []byte, string) error { return nil }

type Object struct {
	Body        []byte
	ContentType string
}

// MemoryStore keeps objects in a map.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]Object
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: map[string]Object{}}
}

func (m *MemoryStore) Put(_ context.Context, key string, body []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = Object{Body: append([]byte(nil), body...), ContentType: contentType}
	return nil
}

func (m *MemoryStore) Get(key string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	return obj, ok
}
