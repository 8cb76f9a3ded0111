// Package files exposes the file store over HTTP.
//
// # Components
//
//   - Service: wraps filestore.Adapter and keeps the optional catalog in sync.
//   - Handler: maps file store errors onto status codes (404 not found,
//     503 storage unavailable, 502 backend write failure).
//   - Catalog: gorm-backed table of original names and the keys they were
//     stored under. Needed with the hashed naming policy, where the key no
//     longer contains the original name.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - PUT /files/{name} : upload; 201 stored, 202 dropped (best-effort mode).
//   - GET /files/{name} : download.
//   - HEAD /files/{name} : 200 if it exists, 404 otherwise.
//   - DELETE /files/{name} : delete, 204.
//   - GET /files?prefix=&match= : list.
//   - GET /meta/url/{name}, GET /meta/size/{name} : URL and size.
//   - GET /catalog : catalog rows (501 without a database).
package files
