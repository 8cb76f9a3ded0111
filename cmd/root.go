package cmd

import (
	"fmt"
	"os"

	"minio-storage/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jsonOutput bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "minio-storage",
	Short: "MinIO Storage Service",
	Long: `minio-storage stores files in a MinIO (or any S3 compatible) bucket.
It serves them over HTTP and ships a small CLI for day to day operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better in a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}
