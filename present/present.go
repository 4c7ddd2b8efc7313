// Package present renders search results as the plain text printed by the
// wayfind commands.
//
// Output contract:
//
//	weighted path:   "0 2 1 3\nTotal cost is 4\n"
//	no path:         "No path found\nTotal cost is -1\n"
//	ladder:          "Word ladder found: cat cot cog dog\n"
//	no ladder:       "No word ladder found.\n"
//
// A ladder carries no cost.
package present

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wayfind/ladder"
)

// WritePath writes a vertex path and its total cost. An empty path is
// reported as "No path found" with cost -1 regardless of cost.
func WritePath(w io.Writer, path []int, cost int64) error {
	if len(path) == 0 {
		_, err := io.WriteString(w, "No path found\nTotal cost is -1\n")
		return err
	}

	ids := make([]string, len(path))
	for i, v := range path {
		ids[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(w, "%s\nTotal cost is %d\n", strings.Join(ids, " "), cost)

	return err
}

// WriteLadder writes a word ladder or the "not found" line.
func WriteLadder(w io.Writer, path []string) error {
	if len(path) == 0 {
		_, err := io.WriteString(w, "No word ladder found.\n")
		return err
	}
	_, err := fmt.Fprintf(w, "Word ladder found: %s\n", strings.Join(path, " "))

	return err
}

// WriteAnswers writes one "begin -> end: " prefixed ladder line per answer.
func WriteAnswers(w io.Writer, answers []ladder.Answer) error {
	for _, a := range answers {
		if _, err := fmt.Fprintf(w, "%s -> %s: ", a.Query.Begin, a.Query.End); err != nil {
			return err
		}
		if err := WriteLadder(w, a.Ladder); err != nil {
			return err
		}
	}

	return nil
}

// WriteChecks writes one PASS/FAIL line per verification result followed
// by a summary line.
func WriteChecks(w io.Writer, results []ladder.CheckResult) error {
	passed := 0
	for _, r := range results {
		status := "FAIL"
		if r.Passed {
			status = "PASS"
			passed++
		}
		if _, err := fmt.Fprintf(w, "%s %s -> %s: want %d words, got %d\n",
			status, r.Begin, r.End, r.Want, len(r.Got)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d/%d checks passed\n", passed, len(results))

	return err
}
