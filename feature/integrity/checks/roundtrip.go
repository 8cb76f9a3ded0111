package checks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"minio-storage/core/filestore"

	"github.com/google/uuid"
)

// RoundTripPrefix is where round trip objects are written.
const RoundTripPrefix = ".integrity/"

// RoundTripReport is the result of a save/stat/read/delete round trip.
type RoundTripReport struct {
	Key      string        `json:"key"`
	Outcome  string        `json:"outcome"`
	Verified bool          `json:"verified"`
	Deleted  bool          `json:"deleted"`
	Duration time.Duration `json:"duration_ns"`
}

// RoundTrip writes a small object, reads it back and deletes it. It fails on the
// first step that does not behave, including a best-effort save that was dropped.
func RoundTrip(ctx context.Context, store *filestore.Adapter) (*RoundTripReport, error) {
	start := time.Now()
	payload := []byte("roundtrip " + uuid.NewString())
	name := RoundTripPrefix + uuid.NewString() + ".txt"

	res, err := store.Save(ctx, name, filestore.BytesContent(payload, "text/plain"))
	report := &RoundTripReport{Key: res.Name, Outcome: res.Outcome.String()}
	if err != nil {
		return report, fmt.Errorf("round trip save failed: %w", err)
	}
	if !res.Stored() {
		return report, fmt.Errorf("round trip save dropped: %w", res.Err)
	}

	ok, err := store.Exists(ctx, res.Name)
	if err != nil {
		return report, fmt.Errorf("round trip stat failed: %w", err)
	}
	if !ok {
		return report, fmt.Errorf("round trip object %s not visible after save", res.Name)
	}

	rc, err := store.Open(ctx, res.Name)
	if err != nil {
		return report, fmt.Errorf("round trip open failed: %w", err)
	}
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		return report, fmt.Errorf("round trip read failed: %w", err)
	}
	report.Verified = bytes.Equal(data, payload)

	if err := store.Delete(ctx, res.Name); err != nil {
		return report, fmt.Errorf("round trip delete failed: %w", err)
	}
	report.Deleted = true
	report.Duration = time.Since(start)

	if !report.Verified {
		return report, fmt.Errorf("round trip content mismatch for %s", res.Name)
	}
	return report, nil
}
