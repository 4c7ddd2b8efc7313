package ladder

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for ladder searches.
var (
	// ErrNilDictionary is returned when a nil *Dictionary is passed.
	ErrNilDictionary = errors.New("ladder: dictionary is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// InputError reports a failure to read a word list.
type InputError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("ladder: word list: %v", e.Err)
	}

	return fmt.Sprintf("ladder: word list %q: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *InputError) Unwrap() error { return e.Err }

// Option configures Search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// Options holds the parameters of a Search.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued word.
	Ctx context.Context

	// MaxDepth, if > 0, bounds the ladder length in words. Longer ladders
	// are not explored and the search reports no ladder.
	MaxDepth int

	// OnEnqueue is called for every word added to the frontier together
	// with its distance, in edits, from the begin word.
	OnEnqueue func(word string, depth int)

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  0,
		OnEnqueue: func(string, int) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the ladder length in words.
//
//	n > 0: ladders of at most n words
//	n == 0: no limit
//	n < 0: invalid → ErrOptionViolation
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithOnEnqueue registers a callback run each time a word is enqueued.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
