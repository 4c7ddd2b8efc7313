// Package graph provides the weighted directed graph consumed by the
// dijkstra package: a fixed number of vertices 0..n-1, each owning an
// adjacency list of outgoing integer-weighted edges.
//
// Overview:
//
//   - New(n) allocates n empty adjacency lists. The vertex count never changes.
//   - AddEdge appends an Edge to the adjacency list of its source vertex.
//   - Edges(u) exposes the outgoing edges of u as a read-only view.
//   - Parse / LoadFile build a Graph from the plain-text description used by
//     the command-line tools: a vertex count followed by (src dst weight)
//     triples until end of input.
//
// Text format:
//
//	4
//	0 1 4
//	0 2 1
//	2 1 2
//	1 3 1
//
// The loader only guarantees that the vertex count is present, well formed
// and at most MaxVertices. Triples whose source lies outside [0, n) are
// skipped; destinations are not checked here and are ignored later by the
// search engine.
//
// Errors:
//
//   - ErrNegativeVertexCount: New was called with n < 0.
//   - ErrTooManyVertices:     New was called with n > MaxVertices.
//   - ErrVertexOutOfRange:    AddEdge source outside [0, n).
//   - *InputError:            load failure, wrapping ErrMissingVertexCount,
//     ErrMalformedVertexCount or the underlying I/O error.
//
// Thread safety:
//
//   - A Graph is not synchronized. Build it in one goroutine; afterwards any
//     number of goroutines may read it concurrently as long as nobody calls
//     AddEdge.
package graph
