package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/tsigo"
	"github.com/hupe1980/tsigo/check"
)

type checkResult struct {
	Path         string        `json:"path"`
	Clean        bool          `json:"clean"`
	Vertices     int           `json:"vertices"`
	OutOfRange   []danglingRef `json:"out_of_range,omitempty"`
	Unreferenced int           `json:"unreferenced"`
}

type danglingRef struct {
	Section string `json:"section"`
	Record  int    `json:"record"`
	Vertex  uint32 `json:"vertex"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Audit vertex references in membrane mesh files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			results := make([]checkResult, 0, len(args))
			dirty := 0

			for _, path := range args {
				m, err := tsigo.ReadFile(path, tsigo.WithLogger(ctx.meshLogger()))
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}

				report := check.Audit(m)
				result := checkResult{
					Path:         path,
					Clean:        report.Clean(),
					Vertices:     report.VertexCount,
					Unreferenced: len(report.Unreferenced),
				}
				for _, ref := range report.OutOfRange {
					result.OutOfRange = append(result.OutOfRange, danglingRef{
						Section: string(ref.Kind),
						Record:  ref.Record,
						Vertex:  uint32(ref.Vertex),
					})
				}
				if !result.Clean {
					dirty++
				}
				results = append(results, result)
			}

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					status := "ok"
					if !r.Clean {
						status = "dangling"
					}
					rows = append(rows, []string{
						r.Path,
						strconv.Itoa(r.Vertices),
						strconv.Itoa(len(r.OutOfRange)),
						strconv.Itoa(r.Unreferenced),
						status,
					})
				}

				headers := []string{"File", "Vertices", "Out of range", "Unreferenced", "Status"}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, 1, 2, 3))

				for _, r := range results {
					for _, ref := range r.OutOfRange {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s record %d references missing vertex %d\n",
							r.Path, ref.Section, ref.Record, ref.Vertex)
					}
				}
			}

			if dirty > 0 {
				return fmt.Errorf("%d of %d files have dangling vertex references", dirty, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}
