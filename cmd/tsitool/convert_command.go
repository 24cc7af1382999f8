package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tsigo"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		to     string
		outDir string
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Recompress membrane mesh files",
		Long: `Convert decodes each file and writes it back with the target compression.
The output name is derived from the source: a recognized compression extension
is replaced, otherwise the target extension is appended.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := to
			if target == "" {
				target = cfg.Output.Compression
			}
			compression, err := parseCompression(target)
			if err != nil {
				return err
			}

			if jobs < 1 {
				jobs = 1
			}

			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)

			for _, path := range args {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}

					m, err := tsigo.ReadFile(path, tsigo.WithLogger(ctx.meshLogger()))
					if err != nil {
						return fmt.Errorf("read %s: %w", path, err)
					}

					out := convertedPath(path, compression)
					if outDir != "" {
						out = filepath.Join(outDir, filepath.Base(out))
					}
					if out == path {
						return fmt.Errorf("convert %s: source and target are the same file", path)
					}

					if err := tsigo.WriteFile(out, m,
						tsigo.WithCompression(compression),
						tsigo.WithCompressionLevel(cfg.Output.CompressionLevel),
						tsigo.WithLogger(ctx.meshLogger()),
					); err != nil {
						return fmt.Errorf("write %s: %w", out, err)
					}

					ctx.log().Info("converted", "from", path, "to", out)
					return nil
				})
			}

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target compression: none, gzip, zstd or lz4 (default from config)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "directory for converted files (default alongside the source)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files converted in parallel")

	return cmd
}

// convertedPath derives the output name from the source: a recognized
// compression extension is stripped first, then the target extension is
// appended. Plain targets end up with the bare name.
func convertedPath(path string, c tsigo.Compression) string {
	if tsigo.DetectCompression(path) != tsigo.CompressionNone {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return path + c.Ext()
}
