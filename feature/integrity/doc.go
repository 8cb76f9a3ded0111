// Package integrity provides storage health checks.
//
// # Checks Provided
//
//   - Connection: whether the storage client could be created from the endpoint.
//   - Bucket: whether the target bucket exists; ?fix=true creates it.
//   - Round trip: saves a small object under .integrity/, reads it back and deletes it.
//     A best-effort save that was dropped fails the check.
//
// # HTTP Endpoints
//
//   - GET /integrity : runs all checks.
//   - GET /integrity/bucket : bucket check (supports ?fix=true).
//   - GET /integrity/roundtrip : save/read/delete round trip.
package integrity
