package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/ladder"
	"github.com/katalvlaran/wayfind/logging"
	"github.com/katalvlaran/wayfind/present"
)

func (a *app) ladderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ladder <begin> <end>",
		Short: "Print a shortest word ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadWords()
			if err != nil {
				return err
			}
			begin, end := strings.ToLower(args[0]), strings.ToLower(args[1])
			if begin == end {
				logging.Warnf("begin and end words are both %q", begin)
			}

			start := time.Now()
			path, err := ladder.Search(begin, end, d, ladder.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			logging.Debugf("ladder %s -> %s in %s", begin, end, time.Since(start))

			return present.WriteLadder(cmd.OutOrStdout(), path)
		},
	}
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <pairs-file>",
		Short: "Answer many ladder queries, one \"begin end\" pair per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := readQueries(args[0])
			if err != nil {
				return err
			}
			d, err := a.loadWords()
			if err != nil {
				return err
			}

			start := time.Now()
			answers, err := ladder.Batch(cmd.Context(), d, queries, a.cfg.Workers)
			if err != nil {
				return err
			}
			logging.Infof("answered %d queries in %s", len(answers), time.Since(start))

			return present.WriteAnswers(cmd.OutOrStdout(), answers)
		},
	}
}

// readQueries parses a pairs file. Blank lines and lines starting with '#'
// are skipped; every other line must hold exactly two words.
func readQueries(path string) ([]ladder.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	defer f.Close()

	var queries []ladder.Query
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("read queries: %s:%d: want \"begin end\", got %q", path, line, text)
		}
		queries = append(queries, ladder.Query{
			Begin: strings.ToLower(fields[0]),
			End:   strings.ToLower(fields[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}

	return queries, nil
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check reference ladder lengths against the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.loadWords()
			if err != nil {
				return err
			}
			results := ladder.Verify(d, ladder.DefaultChecks)
			if err := present.WriteChecks(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if !ladder.AllPassed(results) {
				return errChecksFailed
			}

			return nil
		},
	}
}
