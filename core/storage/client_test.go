package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"minio-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "media",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("MalformedEndpoint", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000/with/path",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestTrimScheme(t *testing.T) {
	assert.Equal(t, "localhost:9000", storage.TrimScheme("http://localhost:9000"))
	assert.Equal(t, "s3.amazonaws.com", storage.TrimScheme("https://s3.amazonaws.com"))
	assert.Equal(t, "objects.example.com", storage.TrimScheme("objects.example.com"))
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"NoSuchKey", minio.ErrorResponse{Code: storage.CodeNoSuchKey}, true},
		{"NoSuchBucket", minio.ErrorResponse{Code: storage.CodeNoSuchBucket}, true},
		{"Wrapped", fmt.Errorf("stat: %w", minio.ErrorResponse{Code: storage.CodeNoSuchKey}), true},
		{"AccessDenied", minio.ErrorResponse{Code: "AccessDenied"}, false},
		{"Plain", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.IsNotFound(tt.err))
		})
	}
}
