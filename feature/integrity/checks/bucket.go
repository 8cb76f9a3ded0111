package checks

import (
	"context"
	"fmt"

	"minio-storage/core/filestore"

	"go.uber.org/zap"
)

// BucketReport is the result of the bucket check.
type BucketReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created"`
}

// CheckBucket reports whether the target bucket exists and creates it when fix is set.
func CheckBucket(ctx context.Context, store *filestore.Adapter, logger *zap.Logger, fix bool) (*BucketReport, error) {
	report := &BucketReport{Bucket: store.Bucket()}

	exists, err := store.BucketExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if exists || !fix {
		return report, nil
	}

	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
		return nil, err
	}
	logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
	report.Exists = true
	report.Created = true
	return report, nil
}
