// Package tsigo reads and writes the tsi text format for triangulated
// surface meshes.
//
// A tsi file describes a membrane discretized into vertices and triangles,
// optionally decorated with point inclusions and spherical exclusion zones,
// inside a rectangular box. The format is line oriented and versioned; this
// library supports format version 1.1.
//
// # Layout
//
//   - mesh: the in-memory data model (pure data, no behavior)
//   - codec: the decoder and encoder over io.Reader/io.Writer
//   - check: opt-in referential-integrity audit of decoded meshes
//   - tsigo (this package): file helpers with transparent compression
//
// # Quick Start
//
// Parse a stream:
//
//	m, err := tsigo.Decode(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(m.Vertices), "vertices in a", m.Dimensions, "nm box")
//
// Read and write files, compression inferred from the extension:
//
//	m, err := tsigo.ReadFile("membrane.tsi.gz")
//	...
//	m.Dimensions[0] *= 2
//	err = tsigo.WriteFile("out.tsi.zst", m,
//	    tsigo.WithCompressionLevel(19),
//	    tsigo.WithLogger(tsigo.NewTextLogger(slog.LevelDebug)),
//	)
//
// # Strictness
//
// Decoding is strict and all-or-nothing: misnumbered records, truncated
// sections, unknown keywords, unparseable numbers and unsupported versions
// each fail with a typed error from the codec package, and no partial mesh
// is ever returned. Encoding never validates: whatever mesh you hand it is
// serialized with three fractional digits on every float field.
//
// One thing decoding deliberately does NOT enforce is referential integrity:
// a triangle may name a vertex index past the end of the vertex section.
// Run check.Audit over a decoded mesh when that matters.
package tsigo
