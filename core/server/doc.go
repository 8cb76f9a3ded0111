// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber app from this configuration: listen port,
// API key for the auth middleware, upload body limit and read timeout.
package server
