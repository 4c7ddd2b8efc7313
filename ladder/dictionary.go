package ladder

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strings"
)

// Dictionary is a set of lowercase words kept in ascending order.
//
// A Dictionary may be read by many searches at once. Add must not run
// concurrently with a search.
type Dictionary struct {
	set   map[string]struct{}
	words []string // sorted, no duplicates
}

// NewDictionary returns a Dictionary holding the lowercased words.
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(w)
		if _, ok := d.set[w]; ok {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	slices.Sort(d.words)

	return d
}

// Add inserts the lowercased word, keeping the order. It reports whether
// the word was new.
func (d *Dictionary) Add(word string) bool {
	word = strings.ToLower(word)
	if _, ok := d.set[word]; ok {
		return false
	}
	if d.set == nil {
		d.set = make(map[string]struct{})
	}
	d.set[word] = struct{}{}
	i, _ := slices.BinarySearch(d.words, word)
	d.words = slices.Insert(d.words, i, word)

	return true
}

// Contains reports whether the lowercased word is present.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a sorted copy of the dictionary.
func (d *Dictionary) Words() []string { return slices.Clone(d.words) }

// LoadWords reads whitespace-separated words from r. Each token becomes one
// lowercased entry; no other validation is applied.
func LoadWords(r io.Reader) (*Dictionary, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &InputError{Err: err}
	}

	return NewDictionary(words...), nil
}

// LoadWordsFile reads a word list from path with LoadWords.
func LoadWordsFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	d, err := LoadWords(f)
	var ie *InputError
	if errors.As(err, &ie) {
		ie.Path = path
		return nil, ie
	}

	return d, nil
}
