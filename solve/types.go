package solve

import (
	"context"
	"math/big"
)

// Option configures Solve via functional arguments, following the same
// functional-options idiom used throughout this codebase.
type Option func(*options)

type options struct {
	ctx           context.Context
	onIteration   func(step int, nodeCount int)
	maxIterations int
}

func defaultOptions() options {
	return options{
		ctx:         context.Background(),
		onIteration: func(int, int) {},
	}
}

// WithContext sets a context whose cancellation aborts the fixpoint loop or
// witness reconstruction between steps.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnIteration registers a callback fired once per forward fixpoint
// iteration with the current frontier's node count, for --verbose
// diagnostics.
func WithOnIteration(fn func(step int, nodeCount int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onIteration = fn
		}
	}
}

// WithMaxIterations bounds the forward fixpoint loop, mainly for tests
// against boards the solver would otherwise need many iterations to
// saturate. Zero (the default) means unbounded.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// Result is the outcome of a Solve call.
type Result struct {
	// Won reports whether the forward fixpoint intersected the goal.
	Won bool
	// Steps is the number of forward fixpoint iterations performed.
	Steps int
	// Moves is the reconstructed move string ('u'/'d'/'l'/'r' characters),
	// valid only when Won is true.
	Moves string
	// ReachableStates counts the satisfying assignments of the final
	// frontier, i.e. how many distinct configurations the forward fixpoint
	// proved reachable. Diagnostic only; --verbose reports it.
	ReachableStates *big.Int
}
