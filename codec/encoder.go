package codec

import (
	"fmt"
	"io"

	"github.com/hupe1980/tsigo/mesh"
)

// Encode writes m to w in canonical tsi text form.
//
// The output mirrors the decoder's grammar exactly: a version line, a box
// line, then each section as a count line followed by its records. Record
// indices are regenerated from slice position; an index stored nowhere can
// never disagree with one.
//
// Every floating-point field is written with exactly three fractional digits
// (a thousandth of a nanometer of spatial precision); integer fields are
// plain decimal. Encode performs no validation of m: an internally
// inconsistent mesh serializes without complaint, and only a write error on w
// stops the output. Decoding is the single enforcement point.
func Encode(w io.Writer, m *mesh.Mesh) error {
	if _, err := fmt.Fprintf(w, "version %s\n", Version); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "box %.3f %.3f %.3f\n", m.Dimensions[0], m.Dimensions[1], m.Dimensions[2]); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "vertex %d\n", len(m.Vertices)); err != nil {
		return err
	}
	for i, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "%d %.3f %.3f %.3f %d\n", i, v.Position[0], v.Position[1], v.Position[2], v.Domain); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "triangle %d\n", len(m.Triangles)); err != nil {
		return err
	}
	for i, t := range m.Triangles {
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", i, t.Vertices[0], t.Vertices[1], t.Vertices[2]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "inclusion %d\n", len(m.Inclusions)); err != nil {
		return err
	}
	for i, inc := range m.Inclusions {
		if _, err := fmt.Fprintf(w, "%d %d %d %.3f %.3f\n", i, inc.Type, inc.Vertex, inc.Vector[0], inc.Vector[1]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "exclusion %d\n", len(m.Exclusions)); err != nil {
		return err
	}
	for i, exc := range m.Exclusions {
		if _, err := fmt.Fprintf(w, "%d %d %.3f\n", i, exc.Vertex, exc.Radius); err != nil {
			return err
		}
	}

	return nil
}
