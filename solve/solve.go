package solve

import (
	"fmt"

	"github.com/katalvlaran/sokobdd/annotate"
	"github.com/katalvlaran/sokobdd/bddfacade"
	"github.com/katalvlaran/sokobdd/encode"
)

// solver encapsulates mutable solve state, mirroring bfs.walker: a private
// struct driving the loop, constructed and run by the public Solve entry
// point.
type solver struct {
	engine *bddfacade.Engine
	board  *annotate.AnnotatedBoard
	opts   options

	initState bddfacade.Handle
	goal      bddfacade.Handle
	trans     *encode.Transition
	varset    bddfacade.Handle

	history []bddfacade.Handle
}

// Solve builds the initial/goal/transition encodings for board and runs the
// forward reachability fixpoint, reconstructing a move string when the
// fixpoint intersects the goal.
func Solve(engine *bddfacade.Engine, board *annotate.AnnotatedBoard, opts ...Option) (*Result, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	initState, err := encode.InitialState(engine, board)
	if err != nil {
		return nil, err
	}
	goal, err := encode.Goal(engine, board)
	if err != nil {
		return nil, err
	}
	trans, err := encode.Transitions(engine, board)
	if err != nil {
		return nil, err
	}
	varset, err := encode.VarSet(engine, board)
	if err != nil {
		return nil, err
	}

	s := &solver{
		engine:    engine,
		board:     board,
		opts:      o,
		initState: initState,
		goal:      goal,
		trans:     trans,
		varset:    varset,
		history:   []bddfacade.Handle{initState},
	}
	defer s.releaseHistory()

	return s.run()
}

// releaseHistory drops this solver's references to every handle retained in
// the history vector once the solver returns, so the engine's garbage
// collector can reclaim nodes no longer reachable from any live handle.
func (s *solver) releaseHistory() {
	for _, h := range s.history {
		s.engine.Release(h)
	}
}

// run drives the forward fixpoint loop, then reconstructs a witness if the
// fixpoint intersected the goal.
//
// The puzzle may already be won in its initial state; that case is checked
// before the loop since no transition moves the man in place, so backward
// reconstruction has no predecessor to find for a zero-step solution.
func (s *solver) run() (*Result, error) {
	if !s.engine.IsFalse(s.engine.And(s.initState, s.goal)) {
		return &Result{Won: true, Steps: 0, Moves: "", ReachableStates: s.engine.SatCount(s.initState)}, nil
	}

	frontier := s.initState
	step := 0

	for {
		if err := s.checkContext(); err != nil {
			return nil, err
		}

		next := s.engine.Relprod(frontier, s.trans.All, s.varset)
		next = s.engine.Or(next, frontier)
		s.history = append(s.history, next)
		step++

		if n, err := s.engine.NodeCount(frontier); err == nil {
			s.opts.onIteration(step, n)
		}

		if !s.engine.IsFalse(s.engine.And(next, s.goal)) {
			return s.reconstruct(step)
		}
		if bddfacade.Equal(next, frontier) {
			return &Result{Won: false, Steps: step, ReachableStates: s.engine.SatCount(next)}, nil
		}
		if s.opts.maxIterations > 0 && step >= s.opts.maxIterations {
			return &Result{Won: false, Steps: step, ReachableStates: s.engine.SatCount(next)}, nil
		}
		frontier = next
	}
}

// checkContext reports the context's error if it has been cancelled.
func (s *solver) checkContext() error {
	select {
	case <-s.opts.ctx.Done():
		return fmt.Errorf("solve: %w", s.opts.ctx.Err())
	default:
		return nil
	}
}
