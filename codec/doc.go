// Package codec reads and writes the tsi text format, a line-oriented
// description of a triangulated surface mesh.
//
// # Grammar
//
// One directive or record per physical line, tokens whitespace-separated:
//
//	version <tag>
//	box <x> <y> <z>
//	vertex <n>
//	<idx> <x> <y> <z> [domain]
//	...
//	triangle <n>
//	<idx> <v1> <v2> <v3>
//	...
//	inclusion <n>
//	<idx> <ty> <vertex_index> <vx> <vy>
//	...
//	exclusion <n>
//	<idx> <vertex_index> <radius>
//	...
//
// Real files order the directives as shown, but Decode accepts them in any
// order; only the presence of version (equal to Version) and box is checked,
// at end of stream. Record lines must carry their own sequential 0-based
// index. Vertex references in triangles, inclusions and exclusions are NOT
// checked against the vertex count here; see the check package.
//
// # Usage
//
//	m, err := codec.Decode(file)
//	if err != nil { ... }
//	m.Dimensions[0] *= 2
//	err = codec.Encode(out, m)
//
// Decode and Encode are pure functions of their stream arguments: no files,
// no paths, no goroutines, no shared state. Both are safe for concurrent use
// on distinct streams.
package codec
