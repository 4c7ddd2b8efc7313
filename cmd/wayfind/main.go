// Command wayfind finds shortest paths in weighted graphs and shortest word
// ladders. Run "wayfind --help" for the command list.
package main

import (
	"os"

	"github.com/katalvlaran/wayfind/cli"
	"github.com/katalvlaran/wayfind/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
