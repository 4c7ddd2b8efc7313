package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Parse reads a graph description from r.
//
// The first whitespace-separated token is the vertex count n. Edge triples
// (src dst weight) follow until end of input; reading stops quietly at the
// first token that is not an integer or at a trailing incomplete triple.
// Triples with src outside [0, n) are dropped.
//
// A missing or malformed vertex count, or one above MaxVertices, yields an
// *InputError.
func Parse(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, &InputError{Err: err}
		}

		return nil, &InputError{Err: ErrMissingVertexCount}
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, &InputError{Err: fmt.Errorf("%w: %q", ErrMalformedVertexCount, sc.Text())}
	}
	if n > MaxVertices {
		return nil, &InputError{Err: fmt.Errorf("%w: %d exceeds %d", ErrMalformedVertexCount, n, MaxVertices)}
	}

	g, err := New(n)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	var triple [3]int64
	for {
		ok := true
		for i := range triple {
			if !sc.Scan() {
				ok = false
				break
			}
			v, err := strconv.ParseInt(sc.Text(), 10, 64)
			if err != nil {
				ok = false
				break
			}
			triple[i] = v
		}
		if !ok {
			break
		}

		from, to := int(triple[0]), int(triple[1])
		if !g.HasVertex(from) {
			continue
		}
		g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: triple[2]})
		g.edges++
	}
	if err := sc.Err(); err != nil {
		return nil, &InputError{Err: err}
	}

	return g, nil
}

// LoadFile opens path and parses it with Parse.
// Every failure, including a missing file, is reported as an *InputError
// carrying the path.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) {
			ie.Path = path
			return nil, ie
		}

		return nil, &InputError{Path: path, Err: err}
	}

	return g, nil
}
