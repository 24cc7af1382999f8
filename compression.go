package tsigo

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the stream compression applied around the tsi text.
// The format itself is plain text; compression is a transport concern of the
// file helpers, never of Decode/Encode.
type Compression uint8

const (
	// CompressionNone stores the tsi text as-is.
	CompressionNone Compression = iota
	// CompressionGzip wraps the text in a gzip stream (.gz).
	CompressionGzip
	// CompressionZstd wraps the text in a zstd stream (.zst).
	CompressionZstd
	// CompressionLZ4 wraps the text in an lz4 frame (.lz4).
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Ext returns the filename extension announcing c, including the leading dot.
// CompressionNone has no extension.
func (c Compression) Ext() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// DetectCompression returns the compression implied by the last extension of
// path: .gz, .zst and .lz4 map to their codecs, everything else (including a
// bare .tsi) means none.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// NewCompressionReader wraps r so that reads see the decompressed tsi text.
// Close releases decoder resources only; the underlying reader stays open.
func NewCompressionReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("tsi: unknown compression %d", uint8(c))
	}
}

// lz4Levels maps the 0-9 scale onto the lz4 level constants. 0 is the fast
// default.
var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

// NewCompressionWriter wraps w so that writes are compressed with c. Closing
// the returned writer flushes the compressed stream but leaves w open.
//
// level tunes the codec: gzip takes 1-9, zstd 1-22, lz4 0-9. Zero always
// selects the codec's default. CompressionNone ignores the level.
func NewCompressionWriter(w io.Writer, c Compression, level int) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		return gzip.NewWriterLevel(w, level)
	case CompressionZstd:
		if level == 0 {
			level = 3
		}
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if level > 0 {
			if level >= len(lz4Levels) {
				level = len(lz4Levels) - 1
			}
			if err := zw.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
				return nil, err
			}
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("tsi: unknown compression %d", uint8(c))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
