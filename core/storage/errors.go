package storage

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

// S3 error codes the file store treats as "not found".
const (
	CodeNoSuchKey    = "NoSuchKey"
	CodeNoSuchBucket = "NoSuchBucket"
)

// IsNotFound reports whether err is a NoSuchKey or NoSuchBucket response.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		resp = minio.ToErrorResponse(err)
	}
	return resp.Code == CodeNoSuchKey || resp.Code == CodeNoSuchBucket
}
