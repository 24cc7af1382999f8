package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tsigo"
)

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeMeshFile(t, dir, "membrane.tsi", sampleMesh())

	_, _, err := runCLI(t, "convert", "--to", "gz", path)
	require.NoError(t, err)

	got, err := tsigo.ReadFile(path + ".gz")
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(sampleMesh(), 1e-3))

	// The source stays in place.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestConvertCommandStripsSourceExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeMeshFile(t, dir, "membrane.tsi.gz", sampleMesh())

	_, _, err := runCLI(t, "convert", "--to", "zst", path)
	require.NoError(t, err)

	got, err := tsigo.ReadFile(filepath.Join(dir, "membrane.tsi.zst"))
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(sampleMesh(), 1e-3))
}

func TestConvertCommandOutDir(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	path := writeMeshFile(t, srcDir, "membrane.tsi.zst", sampleMesh())

	_, _, err := runCLI(t, "convert", "--to", "none", "--out-dir", outDir, path)
	require.NoError(t, err)

	got, err := tsigo.ReadFile(filepath.Join(outDir, "membrane.tsi"))
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(sampleMesh(), 1e-3))
}

func TestConvertCommandManyFiles(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 8)
	for i := range 8 {
		name := string(rune('a'+i)) + ".tsi"
		paths = append(paths, writeMeshFile(t, dir, name, sampleMesh()))
	}

	args := append([]string{"convert", "--to", "lz4", "--jobs", "4"}, paths...)
	_, _, err := runCLI(t, args...)
	require.NoError(t, err)

	for _, path := range paths {
		got, err := tsigo.ReadFile(path + ".lz4")
		require.NoError(t, err)
		assert.True(t, got.ApproxEqual(sampleMesh(), 1e-3))
	}
}

func TestConvertCommandSameFile(t *testing.T) {
	dir := t.TempDir()
	path := writeMeshFile(t, dir, "membrane.tsi", sampleMesh())

	_, _, err := runCLI(t, "convert", "--to", "none", path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "source and target are the same file")
}

func TestConvertCommandDefaultFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeMeshFile(t, dir, "membrane.tsi", sampleMesh())

	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[output]\ncompression = \"zst\"\n"), 0o644))

	_, _, err := runCLI(t, "--config", configPath, "convert", path)
	require.NoError(t, err)

	_, err = os.Stat(path + ".zst")
	require.NoError(t, err)
}

func TestConvertCommandUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeMeshFile(t, dir, "membrane.tsi", sampleMesh())

	_, _, err := runCLI(t, "convert", "--to", "snappy", path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown compression")
}

func TestConvertedPath(t *testing.T) {
	tests := []struct {
		path string
		to   tsigo.Compression
		want string
	}{
		{"m.tsi", tsigo.CompressionGzip, "m.tsi.gz"},
		{"m.tsi.gz", tsigo.CompressionZstd, "m.tsi.zst"},
		{"m.tsi.zst", tsigo.CompressionNone, "m.tsi"},
		{"m.tsi.lz4", tsigo.CompressionLZ4, "m.tsi.lz4"},
		{"dir.gz/m.tsi", tsigo.CompressionLZ4, "dir.gz/m.tsi.lz4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertedPath(tt.path, tt.to), "path %s to %s", tt.path, tt.to)
	}
}
