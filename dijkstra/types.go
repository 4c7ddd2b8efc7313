package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity marks an unreached vertex in a distance table.
const Infinity int64 = math.MaxInt64

// None marks "no predecessor" in a predecessor table.
const None = -1

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOutOfRange indicates a vertex id outside [0, n).
	ErrOutOfRange = errors.New("dijkstra: vertex id out of range")

	// ErrOptionViolation indicates an Option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures a ShortestPaths run.
//
// MaxDistance: vertices whose distance would exceed this value are not
// explored. Default Infinity (no cap).
//
// InfEdgeThreshold: edges with weight ≥ this threshold are skipped.
// Default Infinity (every edge is passable).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64

	err error // first invalid option, reported by ShortestPaths
}

// Option represents a functional option for ShortestPaths.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// WithMaxDistance caps exploration at distance d. d must be ≥ 0.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.record(fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, d))
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ t as impassable.
// t must be > 0.
func WithInfEdgeThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.record(fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, t))
			return
		}
		o.InfEdgeThreshold = t
	}
}

func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result holds the tables produced by one ShortestPaths call.
type Result struct {
	Source int     // vertex the search started from
	Dist   []int64 // Dist[v]: minimum cost to v, or Infinity
	Prev   []int   // Prev[v]: predecessor of v, or None
}

// Reachable reports whether v was reached from the source.
// Out-of-range ids are never reachable.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// PathTo is shorthand for ExtractPath(r.Dist, r.Prev, dest).
func (r *Result) PathTo(dest int) ([]int, error) {
	return ExtractPath(r.Dist, r.Prev, dest)
}
