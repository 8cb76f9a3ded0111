package integrity

import (
	"context"

	"minio-storage/core/filestore"
	"minio-storage/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	store  *filestore.Adapter
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(store *filestore.Adapter, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// CheckBucket reports on the target bucket, creating it when fix is set.
func (s *Service) CheckBucket(ctx context.Context, fix bool) (*checks.BucketReport, error) {
	return checks.CheckBucket(ctx, s.store, s.logger, fix)
}

// RoundTrip runs a save/read/delete round trip.
func (s *Service) RoundTrip(ctx context.Context) (*checks.RoundTripReport, error) {
	return checks.RoundTrip(ctx, s.store)
}

// Connected reports whether the storage client could be created.
func (s *Service) Connected() bool {
	return s.store.Available()
}
