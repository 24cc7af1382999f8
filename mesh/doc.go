// Package mesh defines the in-memory representation of a tsi document.
//
// # Types
//
//   - Mesh: Root value, box dimensions plus the four record sections
//   - Vertex: Position in nanometers with an integer domain tag
//   - VertexIndex: Position of a vertex within Mesh.Vertices (uint32)
//   - Triangle: Three vertex indices in fixed order
//   - Inclusion: Point feature anchored at a vertex with a unit direction
//   - Exclusion: Spherical exclusion zone anchored at a vertex
//
// # Invariants
//
// Slice order is canonical index order: element i of a section corresponds to
// on-disk index i. Nothing in this module reorders a section.
//
// Values are dumb containers. Construction does not validate anything: a
// Mesh built by hand may violate the on-disk invariants (for example a
// Triangle may reference a vertex index past len(Vertices)). The codec
// package is the only enforcement point, and even it does not range-check
// vertex references; use the check package for that.
package mesh
