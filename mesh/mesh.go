package mesh

import (
	"math"
	"slices"
)

// VertexIndex addresses a vertex by its position in Mesh.Vertices.
//
// Values read from a tsi stream are not checked against the actual vertex
// count; a VertexIndex may point past the end of the section.
type VertexIndex uint32

// Mesh is a complete tsi document: a triangulated surface discretized into
// vertices and triangles, with optional point inclusions and exclusion zones,
// enclosed in a rectangular box.
type Mesh struct {
	// Dimensions is the enclosing box size in nanometers.
	Dimensions [3]float64

	Vertices   []Vertex
	Triangles  []Triangle
	Inclusions []Inclusion
	Exclusions []Exclusion
}

// Vertex is a single mesh point.
type Vertex struct {
	// Position in nanometers.
	Position [3]float64
	// Domain is a free-form integer tag. Absent on disk means 0.
	Domain int32
}

// Triangle references three vertices in fixed order. No orientation or
// ordering normalization is applied to the corners.
type Triangle struct {
	Vertices [3]VertexIndex
}

// Inclusion is a point feature attached to a vertex.
type Inclusion struct {
	// Type is an integer category tag.
	Type int32
	// Vertex the inclusion is attached to.
	Vertex VertexIndex
	// Vector is the in-plane direction. The codec stores it unit-normalized,
	// or [0, 0] when the raw input had zero length.
	Vector [2]float64
}

// Exclusion is a spherical exclusion zone anchored at a vertex.
type Exclusion struct {
	Vertex VertexIndex
	// Radius in nanometers. The sign is not validated anywhere.
	Radius float64
}

// Equal reports whether m and o are structurally identical: same dimensions,
// same section lengths, and identical elements in identical order.
func (m *Mesh) Equal(o *Mesh) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Dimensions == o.Dimensions &&
		slices.Equal(m.Vertices, o.Vertices) &&
		slices.Equal(m.Triangles, o.Triangles) &&
		slices.Equal(m.Inclusions, o.Inclusions) &&
		slices.Equal(m.Exclusions, o.Exclusions)
}

// ApproxEqual is Equal with a tolerance on every floating-point field.
// Integer fields and vertex indices still compare exactly. Two meshes that
// differ only by encoder rounding compare equal under tol = 1e-3.
func (m *Mesh) ApproxEqual(o *Mesh, tol float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !approxVec3(m.Dimensions, o.Dimensions, tol) {
		return false
	}
	if len(m.Vertices) != len(o.Vertices) ||
		len(m.Triangles) != len(o.Triangles) ||
		len(m.Inclusions) != len(o.Inclusions) ||
		len(m.Exclusions) != len(o.Exclusions) {
		return false
	}
	for i, v := range m.Vertices {
		if v.Domain != o.Vertices[i].Domain || !approxVec3(v.Position, o.Vertices[i].Position, tol) {
			return false
		}
	}
	if !slices.Equal(m.Triangles, o.Triangles) {
		return false
	}
	for i, inc := range m.Inclusions {
		w := o.Inclusions[i]
		if inc.Type != w.Type || inc.Vertex != w.Vertex {
			return false
		}
		if !approx(inc.Vector[0], w.Vector[0], tol) || !approx(inc.Vector[1], w.Vector[1], tol) {
			return false
		}
	}
	for i, exc := range m.Exclusions {
		w := o.Exclusions[i]
		if exc.Vertex != w.Vertex || !approx(exc.Radius, w.Radius, tol) {
			return false
		}
	}
	return true
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxVec3(a, b [3]float64, tol float64) bool {
	return approx(a[0], b[0], tol) && approx(a[1], b[1], tol) && approx(a[2], b[2], tol)
}
