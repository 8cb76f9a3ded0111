// Package config provides configuration management for the storage service.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// config.yaml and environment variables.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and body limit
//   - Storage: endpoint, credentials, bucket, naming policy and write mode
//   - Log: level and format
//   - Database: optional catalog database
//
// Nested keys map to upper-case environment variables joined by underscores,
// e.g. storage.write_mode is STORAGE_WRITE_MODE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
