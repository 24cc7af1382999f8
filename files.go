package tsigo

import (
	"bufio"
	"os"

	"github.com/hupe1980/tsigo/codec"
	"github.com/hupe1980/tsigo/mesh"
)

// ReadFile parses the tsi file at path.
//
// Compression is inferred from the extension (membrane.tsi.gz is read through
// gzip, .zst through zstd, .lz4 through lz4) unless WithCompression overrides
// it. Reads are buffered; the codec itself never touches the file system.
func ReadFile(path string, optFns ...Option) (*mesh.Mesh, error) {
	o := applyOptions(optFns)

	comp := o.compression
	if !o.compressionSet {
		comp = DetectCompression(path)
	}

	f, err := os.Open(path)
	if err != nil {
		o.logger.LogRead(path, nil, err)
		return nil, err
	}
	defer f.Close()

	r, err := NewCompressionReader(bufio.NewReader(f), comp)
	if err != nil {
		o.logger.LogRead(path, nil, err)
		return nil, err
	}
	defer r.Close()

	m, err := codec.Decode(r)
	o.logger.LogRead(path, m, err)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// WriteFile writes m to path in tsi text form, creating or truncating the
// file. Compression follows the extension unless WithCompression overrides
// it; WithCompressionLevel tunes the codec.
func WriteFile(path string, m *mesh.Mesh, optFns ...Option) error {
	o := applyOptions(optFns)

	comp := o.compression
	if !o.compressionSet {
		comp = DetectCompression(path)
	}

	f, err := os.Create(path)
	if err != nil {
		o.logger.LogWrite(path, m, err)
		return err
	}

	err = writeTo(f, m, comp, o.compressionLevel)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	o.logger.LogWrite(path, m, err)
	return err
}

func writeTo(f *os.File, m *mesh.Mesh, comp Compression, level int) error {
	bw := bufio.NewWriter(f)

	w, err := NewCompressionWriter(bw, comp, level)
	if err != nil {
		return err
	}

	if err := codec.Encode(w, m); err != nil {
		w.Close()
		return err
	}
	// Flush the compressor first, then the file buffer behind it.
	if err := w.Close(); err != nil {
		return err
	}
	return bw.Flush()
}
