package check

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/tsigo/codec"
	"github.com/hupe1980/tsigo/mesh"
)

// Ref locates one out-of-range vertex reference.
type Ref struct {
	// Kind is the section holding the reference.
	Kind codec.RecordKind
	// Record is the index of the offending record within its section. A
	// triangle with several bad corners yields one Ref per corner.
	Record int
	// Vertex is the referenced index, at or past the vertex count.
	Vertex mesh.VertexIndex
}

// Report summarizes the referential integrity of a mesh.
type Report struct {
	// VertexCount is the vertex section length at audit time.
	VertexCount int
	// OutOfRange lists references pointing past the vertex section, in
	// section order (triangles, inclusions, exclusions), then record order.
	OutOfRange []Ref
	// Unreferenced lists vertices that no triangle, inclusion or exclusion
	// touches, ascending. Such vertices are not errors; membranes without
	// any decoration are legitimate.
	Unreferenced []mesh.VertexIndex
}

// Clean reports whether every vertex reference points at an existing vertex.
func (r *Report) Clean() bool {
	return len(r.OutOfRange) == 0
}

// Audit walks every vertex reference of m and reports the out-of-range ones
// plus the vertices nothing references. It never mutates m.
func Audit(m *mesh.Mesh) *Report {
	n := uint32(len(m.Vertices))
	report := &Report{VertexCount: int(n)}

	referenced := roaring.New()

	mark := func(kind codec.RecordKind, record int, vi mesh.VertexIndex) {
		if uint32(vi) >= n {
			report.OutOfRange = append(report.OutOfRange, Ref{Kind: kind, Record: record, Vertex: vi})
			return
		}
		referenced.Add(uint32(vi))
	}

	for i, t := range m.Triangles {
		for _, vi := range t.Vertices {
			mark(codec.KindTriangle, i, vi)
		}
	}
	for i, inc := range m.Inclusions {
		mark(codec.KindInclusion, i, inc.Vertex)
	}
	for i, exc := range m.Exclusions {
		mark(codec.KindExclusion, i, exc.Vertex)
	}

	if n > 0 {
		unreferenced := roaring.New()
		unreferenced.AddRange(0, uint64(n))
		unreferenced.AndNot(referenced)

		if card := unreferenced.GetCardinality(); card > 0 {
			report.Unreferenced = make([]mesh.VertexIndex, 0, card)
			it := unreferenced.Iterator()
			for it.HasNext() {
				report.Unreferenced = append(report.Unreferenced, mesh.VertexIndex(it.Next()))
			}
		}
	}

	return report
}
