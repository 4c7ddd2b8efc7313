package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/dijkstra"
	"github.com/katalvlaran/wayfind/graph"
	"github.com/katalvlaran/wayfind/logging"
	"github.com/katalvlaran/wayfind/present"
)

func (a *app) dijkstraCmd() *cobra.Command {
	var source, dest int
	cmd := &cobra.Command{
		Use:   "dijkstra <graph-file>",
		Short: "Print shortest paths from a source vertex",
		Long: "Reads a graph file (vertex count, then \"src dst weight\" triples) and\n" +
			"prints the shortest path and its cost to --dest, or to every vertex\n" +
			"when --dest is omitted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadFile(args[0])
			if err != nil {
				return err
			}
			logging.Debugf("loaded graph %s: %d vertices, %d edges", args[0], g.VertexCount(), g.EdgeCount())

			start := time.Now()
			res, err := dijkstra.ShortestPaths(g, source)
			if err != nil {
				return err
			}
			logging.Debugf("shortest paths from %d in %s", source, time.Since(start))

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("dest") {
				path, err := res.PathTo(dest)
				if err != nil {
					return err
				}
				return present.WritePath(out, path, dijkstra.PathCost(g, path))
			}

			for v := 0; v < g.VertexCount(); v++ {
				path, _ := res.PathTo(v)
				if _, err := fmt.Fprintf(out, "%d -> %d\n", source, v); err != nil {
					return err
				}
				if err := present.WritePath(out, path, dijkstra.PathCost(g, path)); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex id")
	cmd.Flags().IntVarP(&dest, "dest", "d", 0, "destination vertex id (default: every vertex)")

	return cmd
}
