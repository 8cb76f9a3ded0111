package cmd

import (
	"fmt"

	"minio-storage/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the storage backend",
	Long:  `Checks that the bucket exists and that an object can be saved, read back and deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		report := map[string]any{}

		bucket, err := checks.CheckBucket(ctx, rt.store, rt.logger, fixFlag)
		if err != nil {
			return fmt.Errorf("bucket check failed: %w", err)
		}
		report["bucket"] = bucket
		if !bucket.Exists {
			rt.logger.Warn("Bucket missing, run with --fix to create it", zap.String("bucket", bucket.Bucket))
			if jsonOutput {
				return printJSON(out, report)
			}
			fmt.Fprintf(out, "bucket %s: %s\n", keyColor.Sprint(bucket.Bucket), warnColor.Sprint("missing"))
			return nil
		}

		roundTrip, rtErr := checks.RoundTrip(ctx, rt.store)
		report["roundtrip"] = roundTrip
		if jsonOutput {
			if err := printJSON(out, report); err != nil {
				return err
			}
			return rtErr
		}

		state := "ok"
		if bucket.Created {
			state = "created"
		}
		fmt.Fprintf(out, "bucket %s: %s\n", keyColor.Sprint(bucket.Bucket), okColor.Sprint(state))
		if rtErr != nil {
			fmt.Fprintf(out, "round trip: %s\n", errColor.Sprint(rtErr))
			return rtErr
		}
		fmt.Fprintf(out, "round trip: %s (%s)\n", okColor.Sprint("ok"), roundTrip.Duration)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket if it is missing")
}
