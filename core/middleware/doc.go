// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the file endpoints.
//   - rayid: assigns every request a RayID, stored in locals and echoed in the
//     X-Ray-ID response header for tracing.
//
// RayID must be registered first so every later log line carries it.
package middleware
