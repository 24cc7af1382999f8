package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tsigo"
	"github.com/hupe1980/tsigo/mesh"
)

// runCLI executes the command tree with a fresh context, capturing stdout and
// stderr. HOME points at a temp dir so no user configuration leaks in.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func sampleMesh() *mesh.Mesh {
	return &mesh.Mesh{
		Dimensions: [3]float64{50, 50, 25},
		Vertices: []mesh.Vertex{
			{Position: [3]float64{1, 2, 3}},
			{Position: [3]float64{4, 5, 6}, Domain: 1},
			{Position: [3]float64{7, 8, 9}},
		},
		Triangles: []mesh.Triangle{
			{Vertices: [3]mesh.VertexIndex{0, 1, 2}},
		},
		Inclusions: []mesh.Inclusion{
			{Type: 1, Vertex: 0, Vector: [2]float64{0.6, 0.8}},
		},
		Exclusions: []mesh.Exclusion{
			{Vertex: 2, Radius: 4.5},
		},
	}
}

// writeMeshFile writes m into dir under name and returns the full path.
func writeMeshFile(t *testing.T, dir, name string, m *mesh.Mesh) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, tsigo.WriteFile(path, m))
	return path
}
