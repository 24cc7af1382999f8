package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/tsigo"
	"github.com/hupe1980/tsigo/mesh"
)

func newRescaleCommand(ctx *commandContext) *cobra.Command {
	var (
		factor float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "rescale FILE",
		Short: "Scale a membrane mesh by a constant factor",
		Long: `Rescale multiplies the box dimensions, vertex positions and exclusion
radii of a mesh by the given factor. Inclusion orientation vectors are unit
length and stay untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			if factor <= 0 {
				return fmt.Errorf("factor must be positive, got %g", factor)
			}

			m, err := tsigo.ReadFile(args[0], tsigo.WithLogger(ctx.meshLogger()))
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			rescale(m, factor)

			if output != "" {
				return ctx.writeMesh(output, m)
			}
			return tsigo.Encode(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().Float64VarP(&factor, "factor", "f", 0, "scale factor (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	_ = cmd.MarkFlagRequired("factor")

	return cmd
}

func rescale(m *mesh.Mesh, factor float64) {
	for i := range m.Dimensions {
		m.Dimensions[i] *= factor
	}
	for i := range m.Vertices {
		for j := range m.Vertices[i].Position {
			m.Vertices[i].Position[j] *= factor
		}
	}
	for i := range m.Exclusions {
		m.Exclusions[i].Radius *= factor
	}
}
