// Package database connects to the optional file catalog database.
//
// MySQL is used in production; SQLite (including ":memory:") is supported for
// local runs and tests. The connection is optional: when it fails the service
// keeps serving files and only the catalog is disabled.
package database
