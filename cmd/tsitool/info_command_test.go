package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeMeshFile(t, dir, "membrane.tsi", sampleMesh())

	stdout, _, err := runCLI(t, "info", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, path)
	assert.Contains(t, stdout, "50.000 x 50.000 x 25.000")
}

func TestInfoCommandMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeMeshFile(t, dir, "a.tsi", sampleMesh())
	b := writeMeshFile(t, dir, "b.tsi.gz", sampleMesh())

	stdout, _, err := runCLI(t, "info", a, b)
	require.NoError(t, err)

	assert.Contains(t, stdout, a)
	assert.Contains(t, stdout, b)
}

func TestInfoCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeMeshFile(t, dir, "membrane.tsi", sampleMesh())

	stdout, _, err := runCLI(t, "info", "--json", path)
	require.NoError(t, err)

	var infos []fileInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 1)

	assert.Equal(t, path, infos[0].Path)
	assert.Equal(t, [3]float64{50, 50, 25}, infos[0].Box)
	assert.Equal(t, 3, infos[0].Vertices)
	assert.Equal(t, 1, infos[0].Triangles)
	assert.Equal(t, 1, infos[0].Inclusions)
	assert.Equal(t, 1, infos[0].Exclusions)
}

func TestInfoCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.tsi")

	_, _, err := runCLI(t, "info", path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read "+path)
}

func TestInfoCommandRequiresArgs(t *testing.T) {
	_, _, err := runCLI(t, "info")
	require.Error(t, err)
}
