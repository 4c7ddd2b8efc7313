package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/wayfind/graph"
)

// ExtractPath rebuilds the shortest path to dest from the tables produced
// by ShortestPaths.
//
// It returns:
//
//   - an empty path and ErrOutOfRange if dest is outside the tables;
//   - an empty path and nil if dest was never reached;
//   - otherwise the vertex ids from the source to dest inclusive. When dest is
//     the source the path is just [dest].
//
// A predecessor chain that leaves the table or revisits a vertex cannot come
// from ShortestPaths; it is reported as ErrOutOfRange rather than looping.
func ExtractPath(dist []int64, prev []int, dest int) ([]int, error) {
	if dest < 0 || dest >= len(dist) || dest >= len(prev) {
		return []int{}, fmt.Errorf("%w: destination %d not in [0, %d)", ErrOutOfRange, dest, len(dist))
	}
	if dist[dest] == Infinity {
		return []int{}, nil
	}

	path := make([]int, 0, 8)
	for v := dest; v != None; v = prev[v] {
		if v < 0 || v >= len(prev) || len(path) > len(prev) {
			return []int{}, fmt.Errorf("%w: broken predecessor chain at %d", ErrOutOfRange, v)
		}
		path = append(path, v)
	}

	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathCost returns the total weight of path in g, or -1 if path is empty or
// some consecutive pair is not joined by an edge. Parallel edges contribute
// their cheapest weight.
func PathCost(g *graph.Graph, path []int) int64 {
	if g == nil || len(path) == 0 {
		return -1
	}

	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return -1
		}
		total += w
	}

	return total
}
