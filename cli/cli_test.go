package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/dijkstra"
	"github.com/katalvlaran/wayfind/ladder"
)

// run executes a fresh root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDijkstraCmd(t *testing.T) {
	dir := t.TempDir()
	g := write(t, dir, "g.txt", "5\n0 1 4\n0 2 1\n2 1 2\n1 3 1\n2 3 5\n")

	out, err := run(t, "dijkstra", g, "--source", "0", "--dest", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 2 1 3\nTotal cost is 4\n", out)

	out, err = run(t, "dijkstra", g, "-s", "0", "-d", "4")
	require.NoError(t, err)
	assert.Equal(t, "No path found\nTotal cost is -1\n", out)

	out, err = run(t, "dijkstra", g)
	require.NoError(t, err)
	assert.Contains(t, out, "0 -> 0\n0\nTotal cost is 0\n")
	assert.Contains(t, out, "0 -> 1\n0 2 1\nTotal cost is 3\n")
	assert.Contains(t, out, "0 -> 4\nNo path found\nTotal cost is -1\n")
}

func TestDijkstraCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	g := write(t, dir, "g.txt", "2\n0 1 1\n")

	_, err := run(t, "dijkstra", g, "--dest", "7")
	assert.ErrorIs(t, err, dijkstra.ErrOutOfRange)

	_, err = run(t, "dijkstra", g, "--source=-1")
	assert.ErrorIs(t, err, dijkstra.ErrOutOfRange)

	bad := write(t, dir, "bad.txt", "not-a-number\n")
	_, err = run(t, "dijkstra", bad)
	assert.ErrorContains(t, err, "malformed number of vertices")

	_, err = run(t, "dijkstra")
	assert.Error(t, err)
}

func TestLadderCmd(t *testing.T) {
	dir := t.TempDir()
	words := write(t, dir, "words.txt", "cat cot cog dog\n")

	out, err := run(t, "ladder", "CAT", "dog", "--words", words)
	require.NoError(t, err)
	assert.Equal(t, "Word ladder found: cat cot cog dog\n", out)

	out, err = run(t, "ladder", "cat", "emu", "--words", words)
	require.NoError(t, err)
	assert.Equal(t, "No word ladder found.\n", out)

	_, err = run(t, "ladder", "cat", "dog", "--words", filepath.Join(dir, "missing.txt"))
	var ie *ladder.InputError
	assert.ErrorAs(t, err, &ie)
}

func TestLadderCmd_WordsFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	words := write(t, dir, "dict.txt", "cat cot cog dog\n")
	cfg := write(t, dir, "wayfind.yaml", "words: "+words+"\n")

	out, err := run(t, "--config", cfg, "ladder", "cog", "dog")
	require.NoError(t, err)
	assert.Equal(t, "Word ladder found: cog dog\n", out)
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	words := write(t, dir, "words.txt", "cat cot cog dog\n")
	pairs := write(t, dir, "pairs.txt", "# begin end\ncat dog\n\nCOG dog\ncat emu\n")

	out, err := run(t, "batch", pairs, "--words", words, "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"cat -> dog: Word ladder found: cat cot cog dog\n"+
			"cog -> dog: Word ladder found: cog dog\n"+
			"cat -> emu: No word ladder found.\n",
		out)

	bad := write(t, dir, "bad.txt", "cat\n")
	_, err = run(t, "batch", bad, "--words", words)
	assert.ErrorContains(t, err, "bad.txt:1")
}

func TestVerifyCmd(t *testing.T) {
	dir := t.TempDir()
	words := write(t, dir, "words.txt", "cat cot cog dog\n")

	out, err := run(t, "verify", "--words", words)
	assert.ErrorIs(t, err, errChecksFailed)
	assert.Contains(t, out, "PASS cat -> dog: want 4 words, got 4\n")
	assert.Contains(t, out, "1/6 checks passed\n")
}

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "wayfind.yaml")

	out, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = run(t, "--config", path, "config", "init")
	assert.Error(t, err)
	_, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = run(t, "--config", path, "--workers", "7", "config", "show")
	require.NoError(t, err)
	assert.Equal(t, "words: words.txt\nworkers: 7\nlog.level: info\n", out)
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "config", "show")
	assert.Error(t, err)

	out, err := run(t, "--log-level", "debug", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "log.level: debug\n")
}
