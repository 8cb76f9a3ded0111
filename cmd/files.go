package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minio-storage/core/filestore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	putName        string
	putConcurrency int
	getOutput      string
	lsMatch        string
)

// putCmd uploads local files
var putCmd = &cobra.Command{
	Use:   "put <file>...",
	Short: "Upload local files to the bucket",
	Long: `Uploads one or more local files. The object name defaults to the file's
base name; use --name to choose it when uploading a single file. The printed
name is the key the file was stored under and may differ under hashed naming.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if putName != "" && len(args) > 1 {
			return errors.New("--name can only be used with a single file")
		}

		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		results := make([]filestore.SaveResult, len(args))

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(putConcurrency)
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				name := putName
				if name == "" {
					name = filepath.Base(path)
				}

				res, err := uploadFile(ctx, rt.store, path, name)
				results[i] = res
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				return nil
			})
		}
		err = g.Wait()

		if jsonOutput {
			if perr := printJSON(cmd.OutOrStdout(), results); perr != nil {
				return perr
			}
			return err
		}
		for i, res := range results {
			if res.Name == "" {
				continue
			}
			printSaveResult(cmd.OutOrStdout(), args[i], res)
		}
		return err
	},
}

func uploadFile(ctx context.Context, store *filestore.Adapter, path, name string) (filestore.SaveResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return filestore.SaveResult{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return filestore.SaveResult{}, err
	}
	if info.IsDir() {
		return filestore.SaveResult{}, errors.New("is a directory")
	}

	return store.Save(ctx, name, filestore.NewContent(f, info.Size(), ""))
}

// getCmd downloads an object
var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Download an object",
	Long:  `Downloads an object to the file given by -o, or to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		rc, err := rt.store.Open(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer rc.Close()

		var w io.Writer = cmd.OutOrStdout()
		if getOutput != "" && getOutput != "-" {
			f, err := os.Create(getOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		n, err := io.Copy(w, rc)
		if err != nil {
			return fmt.Errorf("failed to download %s: %w", args[0], err)
		}
		rt.logger.Debug("Downloaded object", zap.String("name", args[0]), zap.Int64("bytes", n))
		return nil
	},
}

// rmCmd deletes objects
var rmCmd = &cobra.Command{
	Use:   "rm <name>...",
	Short: "Delete objects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		for _, name := range args {
			if err := rt.store.Delete(cmd.Context(), name); err != nil {
				return err
			}
			if !jsonOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okColor.Sprint("deleted"), keyColor.Sprint(name))
			}
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]any{"deleted": args})
		}
		return nil
	},
}

// statCmd prints object metadata
var statCmd = &cobra.Command{
	Use:   "stat <name>",
	Short: "Show object metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		entry, err := rt.store.Stat(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), entry)
		}
		printEntry(cmd.OutOrStdout(), entry)
		return nil
	},
}

// urlCmd prints the public URL of an object
var urlCmd = &cobra.Command{
	Use:   "url <name>",
	Short: "Print the URL of an object",
	Long:  `Prints {endpoint}/{bucket}/{name}. No request is made and the URL is not signed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		u := rt.store.URL(args[0])
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]string{"name": args[0], "url": u})
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

// lsCmd lists objects
var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List objects",
	Long:  `Lists objects under an optional prefix. --match filters keys with a glob such as "**/*.png".`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		entries, err := rt.store.List(cmd.Context(), prefix, lsMatch)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), entries)
		}
		for _, e := range entries {
			printEntry(cmd.OutOrStdout(), e)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(putCmd, getCmd, rmCmd, statCmd, urlCmd, lsCmd)

	putCmd.Flags().StringVar(&putName, "name", "", "object name (single file only)")
	putCmd.Flags().IntVar(&putConcurrency, "concurrency", 4, "number of parallel uploads")
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "output file (default stdout)")
	lsCmd.Flags().StringVar(&lsMatch, "match", "", "glob filter applied to object keys")
}
