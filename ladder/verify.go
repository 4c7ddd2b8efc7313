package ladder

// Check is an expected ladder length for a begin/end pair. Want == 0 means
// no ladder is expected.
type Check struct {
	Begin string
	End   string
	Want  int
}

// CheckResult is the outcome of one Check.
type CheckResult struct {
	Check
	Got    []string
	Passed bool
}

// DefaultChecks are reference ladder lengths for the standard English word
// list shipped as words.txt alongside the tools.
var DefaultChecks = []Check{
	{Begin: "cat", End: "dog", Want: 4},
	{Begin: "marty", End: "curls", Want: 6},
	{Begin: "code", End: "data", Want: 6},
	{Begin: "work", End: "play", Want: 6},
	{Begin: "sleep", End: "awake", Want: 8},
	{Begin: "car", End: "cheat", Want: 4},
}

// Verify runs every check against dict. A check passes when the ladder has
// the wanted length and, if non-empty, is a valid ladder.
func Verify(dict *Dictionary, checks []Check) []CheckResult {
	out := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		got := ShortestLadder(c.Begin, c.End, dict)
		passed := len(got) == c.Want
		if passed && len(got) > 0 {
			passed = IsLadder(got, c.Begin, c.End)
		}
		out = append(out, CheckResult{Check: c, Got: got, Passed: passed})
	}

	return out
}

// AllPassed reports whether every result passed.
func AllPassed(results []CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}

	return true
}
