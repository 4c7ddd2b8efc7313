package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wayfind/graph"
)

// ShortestPaths computes minimum costs from source to every vertex of g.
//
// Preconditions, checked in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. every Option must be valid (ErrOptionViolation).
//  3. 0 ≤ source < g.VertexCount() (ErrOutOfRange).
//
// Edges pointing outside [0, n) are ignored. A vertex that is never reached
// keeps Dist == Infinity and Prev == None; this is an ordinary outcome, not
// an error.
func ShortestPaths(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build options and surface the first invalid one.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate the source against [0, n).
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", ErrOutOfRange, source, n)
	}

	// 4) Allocate per-run tables and the heap, then run the main loop.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state of a single run.
type runner struct {
	g       *graph.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool // settled vertices; their distance is final
	pq      nodePQ
}

// init sets every distance to Infinity, every predecessor to None, and
// seeds the heap with the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = None
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process pops the closest unsettled vertex until the heap is empty.
// Entries for already settled vertices are stale and dropped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest tentative distance.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// 2) A settled vertex means this entry is stale; drop it.
		if r.visited[u] {
			continue
		}

		// 3) The heap is ordered, so nothing left can be within the cap either.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Settle u; its distance is final. Relax its outgoing edges.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every neighbour of the settled vertex u.
func (r *runner) relax(u int) {
	n := len(r.dist)
	du := r.dist[u]
	for _, e := range r.g.Edges(u) {
		// 1) Skip edges leaving the graph and edges into settled vertices.
		v := e.To
		if v < 0 || v >= n || r.visited[v] {
			continue
		}

		// 2) Edges at or above InfEdgeThreshold are walls.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// 3) Candidate distance through u, capped by MaxDistance.
		if e.Weight > 0 && du > Infinity-1-e.Weight {
			continue // would overflow past Infinity
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// 4) Strict comparison: equal-cost alternatives keep the first predecessor.
		if nd >= r.dist[v] {
			continue
		}

		// 5) Record the improvement and push a fresh entry (lazy decrease-key).
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// nodeItem is one heap entry: a vertex and the tentative distance it was
// pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
