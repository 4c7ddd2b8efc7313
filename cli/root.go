// Package cli builds the wayfind command tree: weighted shortest paths over
// a graph file and word-ladder searches over a word list.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/config"
	"github.com/katalvlaran/wayfind/ladder"
	"github.com/katalvlaran/wayfind/logging"
)

// errChecksFailed is returned by verify when any check fails.
var errChecksFailed = errors.New("verification failed")

// app carries state shared by the subcommands of one root command.
type app struct {
	cfgFile string
	cfg     config.Config
}

// NewRootCmd returns a fresh root command. Each call owns its own flags and
// state, so tests may build as many as they need.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wayfind",
		Short:         "Shortest paths on weighted graphs and shortest word ladders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: <user config dir>/wayfind/wayfind.yaml or ./wayfind.yaml)")
	pf.String("words", config.DefaultWords, "word list used by ladder commands")
	pf.Int("workers", config.DefaultWorkers, "concurrent searches in batch mode (0 = GOMAXPROCS)")
	pf.String(config.LogLevelFlag, config.DefaultLogLevel, "log level: debug, info, warn, error")

	root.AddCommand(
		a.dijkstraCmd(),
		a.ladderCmd(),
		a.batchCmd(),
		a.verifyCmd(),
		a.configCmd(),
	)

	return root
}

// Execute runs the root command with os.Args. cmd/wayfind handles the exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	a.cfg = cfg
	logging.Debugf("config: words=%s workers=%d", cfg.Words, cfg.Workers)

	return nil
}

// loadWords reads the configured word list.
func (a *app) loadWords() (*ladder.Dictionary, error) {
	d, err := ladder.LoadWordsFile(a.cfg.Words)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	logging.Debugf("loaded %d words from %s", d.Len(), a.cfg.Words)

	return d, nil
}
