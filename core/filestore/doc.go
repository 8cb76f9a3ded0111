// Package filestore implements the file storage contract on top of an object store.
//
// An Adapter maps the operations a host application expects from a file backend
// (Open, Save, Delete, Exists, Size, URL, plus List and Stat) onto a single
// bucket of an S3-compatible service reached through core/storage.
//
// # Connection
//
// The storage client is created on first use and reused for the lifetime of the
// Adapter. Creation is guarded so concurrent first callers share one client. If
// the endpoint is malformed the Adapter stays permanently unavailable; Save then
// reports OutcomeConnectionUnavailable and the other operations return
// ErrConnectionUnavailable.
//
// # Object keys
//
// With the identity policy the key is the normalized file name. With the hashed
// policy the key is "{dir}/{hex digest of content}{ext}", so identical content
// under the same directory and extension always lands on the same key. In both
// cases the Name returned by Save is the only reliable handle for later calls.
//
// # Write modes
//
// In strict mode a Save that did not store anything returns an error wrapping
// ErrConnectionUnavailable, ErrBucketCreate or ErrWrite. In best-effort mode the
// error is logged and dropped; SaveResult.Outcome still tells what happened.
//
// # Not found
//
// Open, Size and Stat return errors matching ErrNotFound (fs.ErrNotExist) for a
// missing object or bucket. Exists maps the same condition to false.
package filestore
