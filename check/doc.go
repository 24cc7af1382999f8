// Package check audits the referential integrity of a decoded mesh.
//
// The tsi codec deliberately leaves vertex references unchecked: a triangle,
// inclusion or exclusion may name an index at or past the end of the vertex
// section and still decode. Consumers that need topological soundness run
// Audit over the decoded mesh:
//
//	m, err := tsigo.ReadFile("membrane.tsi")
//	if err != nil { ... }
//	if report := check.Audit(m); !report.Clean() {
//	    for _, ref := range report.OutOfRange {
//	        log.Printf("%s %d points at vertex %d of %d",
//	            ref.Kind, ref.Record, ref.Vertex, report.VertexCount)
//	    }
//	}
//
// The audit also lists unreferenced vertices, which are legal but often
// indicate a truncated or hand-edited file.
package check
