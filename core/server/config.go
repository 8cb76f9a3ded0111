package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB is the maximum upload size in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
	// ReadTimeoutSeconds bounds reading a full request, uploads included.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"120"`
}

// BodyLimit returns the upload limit in bytes, defaulting to 64 MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 64 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// ReadTimeout returns the request read timeout, defaulting to two minutes.
func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}
