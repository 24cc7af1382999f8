package tsigo

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"membrane.tsi", CompressionNone},
		{"membrane", CompressionNone},
		{"membrane.tsi.gz", CompressionGzip},
		{"membrane.TSI.GZ", CompressionGzip},
		{"membrane.tsi.gzip", CompressionGzip},
		{"membrane.tsi.zst", CompressionZstd},
		{"membrane.tsi.zstd", CompressionZstd},
		{"membrane.tsi.lz4", CompressionLZ4},
		{"dir.gz/membrane.tsi", CompressionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectCompression(tt.path), tt.path)
	}
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "gzip", CompressionGzip.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "Compression(9)", Compression(9).String())
}

func TestCompressionExt(t *testing.T) {
	assert.Equal(t, "", CompressionNone.Ext())
	assert.Equal(t, ".gz", CompressionGzip.Ext())
	assert.Equal(t, ".zst", CompressionZstd.Ext())
	assert.Equal(t, ".lz4", CompressionLZ4.Ext())
}

func TestCompressionRoundTrip(t *testing.T) {
	payload := strings.Repeat("version 1.1\nbox 50.0 50.0 50.0\n", 256)

	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewCompressionWriter(&buf, c, 0)
			require.NoError(t, err)
			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if c != CompressionNone {
				assert.Less(t, buf.Len(), len(payload), "repetitive text should shrink")
			}

			r, err := NewCompressionReader(&buf, c)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, string(got))
		})
	}
}

func TestCompressionLevels(t *testing.T) {
	payload := strings.Repeat("0 21.400 33.800 32.700 0\n", 1024)

	tests := []struct {
		c     Compression
		level int
	}{
		{CompressionGzip, 1},
		{CompressionGzip, 9},
		{CompressionZstd, 1},
		{CompressionZstd, 19},
		{CompressionLZ4, 1},
		{CompressionLZ4, 9},
		{CompressionLZ4, 99}, // clamps to the strongest level
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		w, err := NewCompressionWriter(&buf, tt.c, tt.level)
		require.NoError(t, err)
		_, err = io.WriteString(w, payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r, err := NewCompressionReader(&buf, tt.c)
		require.NoError(t, err)
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())

		assert.Equal(t, payload, string(got), "%s level %d", tt.c, tt.level)
	}
}

func TestCompressionUnknown(t *testing.T) {
	_, err := NewCompressionReader(strings.NewReader(""), Compression(42))
	assert.Error(t, err)

	_, err = NewCompressionWriter(io.Discard, Compression(42), 0)
	assert.Error(t, err)
}

// Closing a compression wrapper must not close the stream behind it: the
// file helpers flush and close the file themselves.
func TestCompressionCloseLeavesUnderlyingOpen(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewCompressionWriter(&buf, CompressionGzip, 0)
	require.NoError(t, err)
	_, err = io.WriteString(w, "version 1.1\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// The buffer is still usable after Close.
	n := buf.Len()
	buf.WriteByte('!')
	assert.Equal(t, n+1, buf.Len())
}
