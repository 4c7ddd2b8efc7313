// Package wayfind finds minimum-cost paths between two nodes in two kinds of
// graph.
//
// What is inside?
//
//	graph/     weighted directed graph over vertices 0..n-1 + text loader
//	dijkstra/  single-source shortest paths and path extraction
//	ladder/    one-edit adjacency, word dictionaries, BFS word ladders
//	present/   plain-text rendering of paths, ladders and checks
//	config/    defaults, wayfind.yaml, WAYFIND_* env and flags
//	logging/   process logger for the command-line tool
//	cli/       cobra command tree behind cmd/wayfind
//
// The weighted graph is explicit: every edge is stored. The word graph is
// implicit: two words are neighbours when ladder.IsAdjacent says so, and no
// edge list is ever built.
//
// Quick example:
//
//	g, _ := graph.Parse(strings.NewReader("3  0 1 5  1 2 1  0 2 9"))
//	res, _ := dijkstra.ShortestPaths(g, 0)
//	path, _ := res.PathTo(2) // [0 1 2], res.Dist[2] == 6
//
//	d := ladder.NewDictionary("cat", "cot", "cog", "dog")
//	ladder.ShortestLadder("cat", "dog", d) // [cat cot cog dog]
//
//	go install github.com/katalvlaran/wayfind/cmd/wayfind@latest
package wayfind
