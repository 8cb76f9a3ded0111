// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger that supports development (console) and
// production (json) output and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the request's RayID from a Fiber context and attaches it to
// the log entry so every line of a request can be correlated. ForObject tags an
// entry with the bucket and object key it concerns.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
