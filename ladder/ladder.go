package ladder

// ShortestLadder returns a shortest ladder from begin to end through dict,
// or an empty slice when begin == end, when no ladder exists, or when dict
// is nil.
func ShortestLadder(begin, end string, dict *Dictionary) []string {
	path, err := Search(begin, end, dict)
	if err != nil {
		return []string{}
	}

	return path
}

// Search runs the breadth-first ladder search with the given options.
//
// Not finding a ladder is not an error: the result is then an empty slice.
// Errors are ErrNilDictionary, ErrOptionViolation, or the context's error
// after cancellation.
func Search(begin, end string, dict *Dictionary, opts ...Option) ([]string, error) {
	// 1) Validate the dictionary and options.
	if dict == nil {
		return nil, ErrNilDictionary
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// 2) A zero-length transformation is not a ladder.
	if begin == end {
		return []string{}, nil
	}

	// 3) Seed the frontier with begin, already marked visited.
	w := &walker{
		dict:    dict.words,
		opts:    o,
		end:     end,
		visited: map[string]bool{begin: true},
		parent:  make(map[string]string),
		queue:   []queueItem{{word: begin, depth: 0}},
	}

	return w.loop()
}

// queueItem is one frontier word and its distance in edits from begin.
type queueItem struct {
	word  string
	depth int
}

// walker holds the mutable state of one Search.
type walker struct {
	dict    []string
	opts    Options
	end     string
	visited map[string]bool // marked on enqueue
	parent  map[string]string
	queue   []queueItem
}

// loop runs the BFS until end is reached, the frontier empties, or the
// context is cancelled.
func (w *walker) loop() ([]string, error) {
	for len(w.queue) > 0 {
		// 1) Cancellation check, once per dequeued word.
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// 2) Dequeue the oldest frontier word.
		item := w.queue[0]
		w.queue = w.queue[1:]

		// 3) A word at depth next closes a ladder of next+1 words.
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next+1 > w.opts.MaxDepth {
			continue
		}

		// 4) Try every dictionary word; mark on enqueue so no word is queued twice.
		for _, cand := range w.dict {
			if w.visited[cand] || !IsAdjacent(item.word, cand) {
				continue
			}
			w.visited[cand] = true
			w.parent[cand] = item.word
			// 5) Reaching end returns before anything else is enqueued.
			if cand == w.end {
				return w.pathTo(cand), nil
			}
			w.opts.OnEnqueue(cand, next)
			w.queue = append(w.queue, queueItem{word: cand, depth: next})
		}
	}

	return []string{}, nil
}

// pathTo follows parent links back to the begin word and reverses them.
func (w *walker) pathTo(word string) []string {
	path := []string{word}
	for {
		p, ok := w.parent[word]
		if !ok {
			break
		}
		path = append(path, p)
		word = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
