package storage

import "fmt"

// Naming policies for object keys.
const (
	NamingIdentity = "identity"
	NamingHashed   = "hashed"
)

// Hash algorithms for the hashed naming policy.
const (
	HashSHA256  = "sha256"
	HashMurmur3 = "murmur3"
)

// Write modes for Save.
const (
	WriteStrict     = "strict"
	WriteBestEffort = "best-effort"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the address of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the single bucket files are stored in.
	Bucket string `mapstructure:"bucket" default:"media"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Naming selects how object keys are derived (identity, hashed).
	Naming string `mapstructure:"naming" default:"identity"`
	// Hash is the content hash used by the hashed naming policy (sha256, murmur3).
	Hash string `mapstructure:"hash" default:"sha256"`
	// WriteMode controls whether failed saves are errors (strict) or only logged (best-effort).
	WriteMode string `mapstructure:"write_mode" default:"strict"`
}

// Validate checks the naming, hash and write mode selections.
// Empty values are accepted and take the documented defaults.
func (c Config) Validate() error {
	switch c.Naming {
	case "", NamingIdentity, NamingHashed:
	default:
		return fmt.Errorf("unknown naming policy %q", c.Naming)
	}
	switch c.Hash {
	case "", HashSHA256, HashMurmur3:
	default:
		return fmt.Errorf("unknown hash algorithm %q", c.Hash)
	}
	switch c.WriteMode {
	case "", WriteStrict, WriteBestEffort:
	default:
		return fmt.Errorf("unknown write mode %q", c.WriteMode)
	}
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	return nil
}
