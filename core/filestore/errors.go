package filestore

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound is returned when the object or its bucket does not exist.
	ErrNotFound = fs.ErrNotExist
	// ErrConnectionUnavailable is returned when the storage client could not be created.
	ErrConnectionUnavailable = errors.New("storage connection unavailable")
	// ErrBucketCreate is returned when the bucket could not be checked or created.
	ErrBucketCreate = errors.New("bucket create failed")
	// ErrWrite is returned when the object upload failed.
	ErrWrite = errors.New("object write failed")
	// ErrInvalidName is returned for empty object names.
	ErrInvalidName = errors.New("invalid object name")
)

// Outcome describes what a Save actually did.
type Outcome int

const (
	OutcomeStored Outcome = iota
	OutcomeBucketCreateFailed
	OutcomeWriteFailed
	OutcomeConnectionUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeBucketCreateFailed:
		return "bucket-create-failed"
	case OutcomeWriteFailed:
		return "write-failed"
	case OutcomeConnectionUnavailable:
		return "connection-unavailable"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name in JSON payloads.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// SaveResult is returned by Save.
type SaveResult struct {
	// Name is the object key the content was (or would have been) stored under.
	Name string `json:"name"`
	// Outcome records whether the content was stored.
	Outcome Outcome `json:"outcome"`
	// ContentType is the MIME type sent with the upload; may be empty.
	ContentType string `json:"content_type,omitempty"`
	// Size is the declared length of the content, -1 when unknown.
	Size int64 `json:"size"`
	// Err holds the failure behind a non-stored outcome, also in best-effort mode.
	Err error `json:"-"`
}

// Stored reports whether the content reached the bucket.
func (r SaveResult) Stored() bool {
	return r.Outcome == OutcomeStored
}
