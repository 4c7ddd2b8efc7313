package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfind/dijkstra"
	"github.com/katalvlaran/wayfind/graph"
)

// ExampleShortestPaths loads a small graph from its text form and prints the
// cheapest route from 0 to 3.
func ExampleShortestPaths() {
	g, err := graph.Parse(strings.NewReader("4\n0 1 4\n0 2 1\n2 1 2\n1 3 1\n2 3 5\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(3)
	fmt.Println(path, res.Dist[3])
	// Output: [0 2 1 3] 4
}

// ExampleExtractPath shows that an unreached destination yields an empty path.
func ExampleExtractPath() {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 2)

	res, _ := dijkstra.ShortestPaths(g, 0)
	path, err := dijkstra.ExtractPath(res.Dist, res.Prev, 2)
	fmt.Println(len(path), err, dijkstra.PathCost(g, path))
	// Output: 0 <nil> -1
}
