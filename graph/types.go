package graph

import (
	"errors"
	"fmt"
)

// MaxVertices is the largest vertex count New and Parse accept.
const MaxVertices = 1 << 24

// Sentinel errors for graph construction and loading.
var (
	// ErrNegativeVertexCount indicates New was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrTooManyVertices indicates New was asked for more than MaxVertices vertices.
	ErrTooManyVertices = errors.New("graph: vertex count exceeds MaxVertices")

	// ErrVertexOutOfRange indicates an edge source outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrMissingVertexCount indicates the input ended before the vertex count.
	ErrMissingVertexCount = errors.New("graph: unable to read number of vertices")

	// ErrMalformedVertexCount indicates the first token is not a non-negative integer.
	ErrMalformedVertexCount = errors.New("graph: malformed number of vertices")
)

// InputError reports a failure to load a graph description.
// Path is empty when the input did not come from a named file.
type InputError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("graph: input: %v", e.Err)
	}

	return fmt.Sprintf("graph: input %q: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *InputError) Unwrap() error { return e.Err }

// Edge is a directed, weighted connection From→To.
// Edges are plain values; once added to a Graph they are never modified.
type Edge struct {
	From   int   // source vertex id
	To     int   // destination vertex id
	Weight int64 // traversal cost, expected to be non-negative
}

// String renders the edge as "(u->v, w=N)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d->%d, w=%d)", e.From, e.To, e.Weight)
}
