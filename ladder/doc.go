// Package ladder finds shortest word ladders: sequences of dictionary words
// from a start word to an end word in which every consecutive pair differs
// by exactly one single-character edit.
//
// The words form an implicit graph. No edges are stored; IsAdjacent decides
// on demand whether two words are neighbours, and Search runs a
// breadth-first search over that graph, so the first ladder reaching the end
// word is one of minimum length.
//
// Overview:
//
//   - IsAdjacent(a, b):              one substitution, insertion or deletion apart.
//   - ShortestLadder(begin, end, d): the ladder, or an empty slice if none exists.
//   - Search(begin, end, d, opts…):  the same search with a context, a depth
//     limit and an enqueue hook.
//   - Batch(ctx, d, queries, n):     many independent searches on n goroutines.
//   - Verify(d, checks):             run expected-length checks against a dictionary.
//
// Candidate words are tried in ascending lexical order, which fixes which
// ladder is returned when several of the same length exist.
//
// Complexity:
//
//   - Every dequeued word is compared against the whole dictionary, so a
//     search costs O(D·W) IsAdjacent calls, D = dictionary size and
//     W = words enqueued. The predicate dominates the running time on large
//     dictionaries.
//   - Ladders are rebuilt from a parent map, so enqueueing a word is O(1).
//
// A begin word equal to the end word yields an empty ladder: a zero-length
// transformation is not a ladder. The end word must be in the dictionary to
// be reached; the begin word need not be.
package ladder
