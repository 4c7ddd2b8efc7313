// Package dijkstra computes single-source shortest paths on a graph.Graph
// with non-negative integer edge weights.
//
// Overview:
//
//   - ShortestPaths fills a distance table and a predecessor table from one
//     source vertex, expanding vertices in increasing distance with a binary
//     min-heap (container/heap).
//   - ExtractPath rebuilds the concrete source→destination vertex sequence
//     from those tables.
//   - PathCost sums the edge weights along a path, returning -1 for an empty
//     one so callers can print "no path" and a cost in one place.
//
// Tables:
//
//   - Dist[v] is the minimum cost from the source to v, or Infinity when v
//     was never reached.
//   - Prev[v] is the vertex preceding v on one shortest path, or None when v
//     is the source or unreached.
//
// Options:
//
//   - WithMaxDistance(d):       vertices farther than d stay unreached (d ≥ 0).
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable (t > 0).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold one stale entry per relaxation
//     because outdated entries are skipped on pop instead of being removed
//     with a decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        a nil *graph.Graph was passed.
//   - ErrOutOfRange:      source or destination outside [0, n).
//   - ErrOptionViolation: an option received an invalid value.
//
// Negative weights are not supported. They are not rejected either, so the
// results on such input carry no guarantee.
//
// Thread safety:
//
//   - Each call owns its working state. Concurrent calls on the same graph
//     are safe as long as the graph is not modified.
package dijkstra
