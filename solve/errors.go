package solve

import "errors"

// Sentinel errors for solving.
var (
	// ErrNilBoard indicates Solve was called with a nil annotated board.
	ErrNilBoard = errors.New("solve: annotated board is nil")

	// ErrInternalReconstruction indicates backward witness reconstruction
	// found no predecessor in any of the four directions at some step. This
	// is a bug in the encoder or solver, not a property of the puzzle: the
	// forward fixpoint already confirmed a path exists.
	ErrInternalReconstruction = errors.New("solve: witness reconstruction found no predecessor")
)
