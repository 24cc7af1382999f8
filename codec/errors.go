package codec

import "fmt"

// RecordKind names the counted section a record belongs to. It appears in
// errors so callers can tell which section a bad line came from.
type RecordKind string

// Record kinds, matching the section keywords on disk.
const (
	KindVertex    RecordKind = "vertex"
	KindTriangle  RecordKind = "triangle"
	KindInclusion RecordKind = "inclusion"
	KindExclusion RecordKind = "exclusion"
)

// ErrMissingValue indicates an expected token was absent on the current line.
type ErrMissingValue struct {
	// Field names the value that was expected, e.g. "vertex x".
	Field string
}

func (e *ErrMissingValue) Error() string {
	return fmt.Sprintf("tsi: expected value for %s", e.Field)
}

// ErrMissingDefinition indicates a required top-level directive (version or
// box) was never encountered before the end of the stream.
type ErrMissingDefinition struct {
	Directive string
}

func (e *ErrMissingDefinition) Error() string {
	return fmt.Sprintf("tsi: expected definition for %s", e.Directive)
}

// ErrMissingRecord indicates a section declared more records than the stream
// had lines left.
type ErrMissingRecord struct {
	Kind RecordKind
	// Index is the sequential index of the first record that had no line.
	Index uint32
}

func (e *ErrMissingRecord) Error() string {
	return fmt.Sprintf("tsi: missing %s line for index %d", e.Kind, e.Index)
}

// ErrIndexMismatch indicates a record's self-declared index differs from its
// sequential position within the section. Sections may not be sparse,
// reordered, or renumbered.
type ErrIndexMismatch struct {
	Kind     RecordKind
	Found    uint32
	Expected uint32
}

func (e *ErrIndexMismatch) Error() string {
	return fmt.Sprintf("tsi: incorrect %s index: found %d, expected %d", e.Kind, e.Found, e.Expected)
}

// ErrInvalidVersion indicates the declared format version is not the one
// supported version string.
type ErrInvalidVersion struct {
	Found string
}

func (e *ErrInvalidVersion) Error() string {
	return fmt.Sprintf("tsi: unsupported version %q, expected %q", e.Found, Version)
}

// ErrUnexpectedKeyword indicates a directive keyword outside the recognized
// set (version, box, vertex, triangle, inclusion, exclusion).
type ErrUnexpectedKeyword struct {
	Keyword string
}

func (e *ErrUnexpectedKeyword) Error() string {
	return fmt.Sprintf("tsi: unknown keyword %q", e.Keyword)
}
