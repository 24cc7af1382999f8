package codec

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/tsigo/mesh"
)

// Version is the single tsi format version this package reads and writes.
const Version = "1.1"

// maxLineBytes is the longest input line Decode accepts. Lines may carry
// arbitrarily many ignored trailing tokens, which bufio's default 64 KiB
// token cap would reject.
const maxLineBytes = 4 << 20

// Decode consumes r to the end and returns the mesh it describes.
//
// The input is processed one physical line at a time. Each directive line
// starts with a keyword (version, box, vertex, triangle, inclusion,
// exclusion); the counted sections then consume exactly their declared number
// of record lines. Directives are accepted in any order, and a repeated
// section keyword replaces the previously read section. A section whose
// keyword never appears decodes to an empty sequence.
//
// Decoding is all-or-nothing: the first malformed line aborts the parse and
// no partial mesh is returned. Errors from r are propagated verbatim; every
// other failure is one of the Err* types of this package or a wrapped
// *strconv.NumError for an unparseable numeric token.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineBytes)

	var (
		m       mesh.Mesh
		version string
		seenVer bool
		seenBox bool
	)

	for sc.Scan() {
		toks := fields(sc.Text())
		keyword, ok := toks.next()
		if !ok {
			return nil, &ErrMissingValue{Field: "section keyword"}
		}

		var err error
		switch keyword {
		case "version":
			version, ok = toks.next()
			if !ok {
				return nil, &ErrMissingValue{Field: "version tag"}
			}
			seenVer = true

		case "box":
			if m.Dimensions, err = toks.nextVec3("box"); err != nil {
				return nil, err
			}
			seenBox = true

		case "vertex":
			if m.Vertices, err = decodeSection(sc, toks, KindVertex, parseVertexLine); err != nil {
				return nil, err
			}

		case "triangle":
			if m.Triangles, err = decodeSection(sc, toks, KindTriangle, parseTriangleLine); err != nil {
				return nil, err
			}

		case "inclusion":
			if m.Inclusions, err = decodeSection(sc, toks, KindInclusion, parseInclusionLine); err != nil {
				return nil, err
			}

		case "exclusion":
			if m.Exclusions, err = decodeSection(sc, toks, KindExclusion, parseExclusionLine); err != nil {
				return nil, err
			}

		default:
			return nil, &ErrUnexpectedKeyword{Keyword: keyword}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !seenVer {
		return nil, &ErrMissingDefinition{Directive: "version"}
	}
	if version != Version {
		return nil, &ErrInvalidVersion{Found: version}
	}
	if !seenBox {
		return nil, &ErrMissingDefinition{Directive: "box"}
	}

	return &m, nil
}

// decodeSection reads a count token from the directive line, then consumes
// exactly that many record lines from the scanner.
func decodeSection[T any](sc *bufio.Scanner, toks *tokens, kind RecordKind, parse func(string, uint32) (T, error)) ([]T, error) {
	n, err := toks.nextUint(string(kind) + " count")
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, n)
	for idx := uint32(0); idx < n; idx++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, &ErrMissingRecord{Kind: kind, Index: idx}
		}
		rec, err := parse(sc.Text(), idx)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseVertexLine(line string, expected uint32) (mesh.Vertex, error) {
	toks := fields(line)
	if err := toks.checkIndex(KindVertex, expected); err != nil {
		return mesh.Vertex{}, err
	}

	pos, err := toks.nextVec3("vertex")
	if err != nil {
		return mesh.Vertex{}, err
	}

	// The domain may be absent, implying it is set to 0.
	var domain int32
	if tok, ok := toks.next(); ok {
		d, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return mesh.Vertex{}, fmt.Errorf("tsi: vertex domain: %w", err)
		}
		domain = int32(d)
	}

	return mesh.Vertex{Position: pos, Domain: domain}, nil
}

func parseTriangleLine(line string, expected uint32) (mesh.Triangle, error) {
	toks := fields(line)
	if err := toks.checkIndex(KindTriangle, expected); err != nil {
		return mesh.Triangle{}, err
	}

	var tri mesh.Triangle
	for i, field := range [3]string{
		"first triangle vertex index",
		"second triangle vertex index",
		"third triangle vertex index",
	} {
		v, err := toks.nextUint(field)
		if err != nil {
			return mesh.Triangle{}, err
		}
		tri.Vertices[i] = mesh.VertexIndex(v)
	}
	return tri, nil
}

func parseInclusionLine(line string, expected uint32) (mesh.Inclusion, error) {
	toks := fields(line)
	if err := toks.checkIndex(KindInclusion, expected); err != nil {
		return mesh.Inclusion{}, err
	}

	ty, err := toks.nextInt("inclusion type")
	if err != nil {
		return mesh.Inclusion{}, err
	}
	vi, err := toks.nextUint("inclusion vertex index")
	if err != nil {
		return mesh.Inclusion{}, err
	}
	x, err := toks.nextFloat("inclusion vector x")
	if err != nil {
		return mesh.Inclusion{}, err
	}
	y, err := toks.nextFloat("inclusion vector y")
	if err != nil {
		return mesh.Inclusion{}, err
	}

	// Store the direction unit-normalized. A zero-length input must not
	// divide through to NaN; it stays the zero vector.
	var vec [2]float64
	if norm := math.Hypot(x, y); norm > 0 {
		vec[0], vec[1] = x/norm, y/norm
	}

	return mesh.Inclusion{Type: ty, Vertex: mesh.VertexIndex(vi), Vector: vec}, nil
}

func parseExclusionLine(line string, expected uint32) (mesh.Exclusion, error) {
	toks := fields(line)
	if err := toks.checkIndex(KindExclusion, expected); err != nil {
		return mesh.Exclusion{}, err
	}

	vi, err := toks.nextUint("exclusion vertex index")
	if err != nil {
		return mesh.Exclusion{}, err
	}
	radius, err := toks.nextFloat("exclusion radius")
	if err != nil {
		return mesh.Exclusion{}, err
	}

	return mesh.Exclusion{Vertex: mesh.VertexIndex(vi), Radius: radius}, nil
}

// tokens walks the whitespace-separated tokens of a single line. Trailing
// tokens beyond what a parser consumes are ignored, like the formats this
// one descends from.
type tokens struct {
	rest []string
}

func fields(line string) *tokens {
	return &tokens{rest: strings.Fields(line)}
}

func (t *tokens) next() (string, bool) {
	if len(t.rest) == 0 {
		return "", false
	}
	tok := t.rest[0]
	t.rest = t.rest[1:]
	return tok, true
}

// nextFloat consumes the next token as a float64. An absent token fails with
// ErrMissingValue naming the field; an unparseable one surfaces the
// underlying *strconv.NumError.
func (t *tokens) nextFloat(field string) (float64, error) {
	tok, ok := t.next()
	if !ok {
		return 0, &ErrMissingValue{Field: field}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("tsi: %s: %w", field, err)
	}
	return v, nil
}

func (t *tokens) nextUint(field string) (uint32, error) {
	tok, ok := t.next()
	if !ok {
		return 0, &ErrMissingValue{Field: field}
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("tsi: %s: %w", field, err)
	}
	return uint32(v), nil
}

func (t *tokens) nextInt(field string) (int32, error) {
	tok, ok := t.next()
	if !ok {
		return 0, &ErrMissingValue{Field: field}
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("tsi: %s: %w", field, err)
	}
	return int32(v), nil
}

func (t *tokens) nextVec3(prefix string) ([3]float64, error) {
	var v [3]float64
	for i, axis := range [3]string{" x", " y", " z"} {
		f, err := t.nextFloat(prefix + axis)
		if err != nil {
			return [3]float64{}, err
		}
		v[i] = f
	}
	return v, nil
}

// checkIndex consumes the record's self-declared index and verifies it equals
// the expected sequential position.
func (t *tokens) checkIndex(kind RecordKind, expected uint32) error {
	found, err := t.nextUint(string(kind) + " index")
	if err != nil {
		return err
	}
	if found != expected {
		return &ErrIndexMismatch{Kind: kind, Found: found, Expected: expected}
	}
	return nil
}
