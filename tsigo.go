package tsigo

import (
	"io"

	"github.com/hupe1980/tsigo/codec"
	"github.com/hupe1980/tsigo/mesh"
)

// Version is the single tsi format version this library reads and writes.
const Version = codec.Version

// Decode parses a tsi text stream into a mesh. It is shorthand for
// codec.Decode; see that package for the grammar and the error taxonomy.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	return codec.Decode(r)
}

// Encode writes m to w in canonical tsi text form. It is shorthand for
// codec.Encode.
func Encode(w io.Writer, m *mesh.Mesh) error {
	return codec.Encode(w, m)
}
