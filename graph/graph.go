package graph

import "fmt"

// Graph is an adjacency-list directed graph over vertices 0..n-1.
//
// adjacency[i] holds every Edge whose From == i, in insertion order.
// The vertex count is fixed by New.
type Graph struct {
	adjacency [][]Edge
	edges     int
}

// New returns a Graph with n vertices and no edges, 0 ≤ n ≤ MaxVertices.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, n)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, n, MaxVertices)
	}

	return &Graph{adjacency: make([][]Edge, n)}, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return g.edges }

// HasVertex reports whether id lies in [0, n).
func (g *Graph) HasVertex(id int) bool { return id >= 0 && id < len(g.adjacency) }

// AddEdge appends from→to with the given weight.
// Only the source is bounds-checked; an edge pointing outside the graph is
// stored as given and later ignored by traversals.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: source %d not in [0, %d)", ErrVertexOutOfRange, from, len(g.adjacency))
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edges++

	return nil
}

// Edges returns the outgoing edges of u, or nil if u is out of range.
// The returned slice shares storage with the graph and must not be modified.
func (g *Graph) Edges(u int) []Edge {
	if !g.HasVertex(u) {
		return nil
	}

	return g.adjacency[u][:len(g.adjacency[u]):len(g.adjacency[u])]
}

// AllEdges returns a fresh slice of every edge, ordered by source vertex and
// then by insertion order.
func (g *Graph) AllEdges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// Weight returns the cheapest weight among the edges from→to and whether
// any such edge exists.
func (g *Graph) Weight(from, to int) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, e := range g.Edges(from) {
		if e.To != to {
			continue
		}
		if !found || e.Weight < best {
			best, found = e.Weight, true
		}
	}

	return best, found
}
