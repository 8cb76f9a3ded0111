package cmd

import (
	"fmt"

	"minio-storage/core/config"
	"minio-storage/core/filestore"
	"minio-storage/core/logger"

	"go.uber.org/zap"
)

// runtime bundles what every storage command needs.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *filestore.Adapter
}

func loadRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := filestore.New(cfg.Storage, filestore.WithLogger(logg))
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: logg, store: store}, nil
}
