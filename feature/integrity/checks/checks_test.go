package checks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"minio-storage/core/filestore"
	"minio-storage/core/storage"
	"minio-storage/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T, client storage.Client, naming string) *filestore.Adapter {
	t.Helper()
	store, err := filestore.NewWithClient(client, storage.Config{Bucket: "media", Naming: naming})
	require.NoError(t, err)
	return store
}

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Bucket Missing", func(t *testing.T) {
		store := newStore(t, mocks.NewMemory(), "")
		report, err := CheckBucket(ctx, store, zap.NewNop(), false)
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.False(t, report.Created)
	})

	t.Run("Fix", func(t *testing.T) {
		store := newStore(t, mocks.NewMemory(), "")
		report, err := CheckBucket(ctx, store, zap.NewNop(), true)
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.True(t, report.Created)

		report, err = CheckBucket(ctx, store, zap.NewNop(), true)
		require.NoError(t, err)
		assert.False(t, report.Created)
	})

	t.Run("Backend Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(false, errors.New("timeout"))
		_, err := CheckBucket(ctx, newStore(t, client, ""), zap.NewNop(), false)
		assert.Error(t, err)
	})

	t.Run("Fix Fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "media", mock.Anything).Return(errors.New("denied"))
		_, err := CheckBucket(ctx, newStore(t, client, ""), zap.NewNop(), true)
		assert.ErrorIs(t, err, filestore.ErrBucketCreate)
	})
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("Identity", func(t *testing.T) {
		mem := mocks.NewMemory()
		report, err := RoundTrip(ctx, newStore(t, mem, ""))
		require.NoError(t, err)
		assert.True(t, report.Verified)
		assert.True(t, report.Deleted)
		assert.True(t, strings.HasPrefix(report.Key, RoundTripPrefix))
		assert.Equal(t, 1, mem.Puts())
	})

	t.Run("Hashed", func(t *testing.T) {
		report, err := RoundTrip(ctx, newStore(t, mocks.NewMemory(), storage.NamingHashed))
		require.NoError(t, err)
		assert.True(t, report.Verified)
	})

	t.Run("Write Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(true, nil)
		client.On("PutObject", mock.Anything, "media", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("malformed XML"))

		report, err := RoundTrip(ctx, newStore(t, client, ""))
		assert.ErrorIs(t, err, filestore.ErrWrite)
		assert.Equal(t, "write-failed", report.Outcome)
	})
}
