package ladder_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/ladder"
)

func TestNewDictionary_LowercasesAndSorts(t *testing.T) {
	d := ladder.NewDictionary("Dog", "cat", "DOG", "cot")
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"cat", "cot", "dog"}, d.Words())
	assert.True(t, d.Contains("dog"))
	assert.True(t, d.Contains("DOG"))
	assert.False(t, d.Contains("cog"))
}

func TestDictionary_Add(t *testing.T) {
	var d ladder.Dictionary
	assert.True(t, d.Add("cot"))
	assert.True(t, d.Add("Cat"))
	assert.False(t, d.Add("cat"))
	assert.True(t, d.Add("dog"))
	assert.Equal(t, []string{"cat", "cot", "dog"}, d.Words())
}

func TestDictionary_WordsIsACopy(t *testing.T) {
	d := ladder.NewDictionary("a", "b")
	w := d.Words()
	w[0] = "z"
	assert.Equal(t, []string{"a", "b"}, d.Words())
}

func TestLoadWords(t *testing.T) {
	d, err := ladder.LoadWords(strings.NewReader("Cat cot\n\tCOG  dog\n\ncat"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cog", "cot", "dog"}, d.Words())
}

func TestLoadWordsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o600))

	d, err := ladder.LoadWordsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	_, err = ladder.LoadWordsFile(filepath.Join(dir, "nope.txt"))
	var ie *ladder.InputError
	require.True(t, errors.As(err, &ie))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "nope.txt")
}
