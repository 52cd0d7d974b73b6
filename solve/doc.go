// Package solve runs the forward reachability fixpoint over an encoded
// Sokoban puzzle and, when the fixpoint intersects the goal, reconstructs a
// concrete move string by backward traversal of the frontier history.
//
// The forward fixpoint accumulates a monotone sequence of reachable-state
// sets, appending each to a history vector, until either the frontier
// intersects the goal ("won") or stops growing ("lost", i.e. no solution).
// Witness reconstruction then walks the history vector backward, at each
// step picking the first of (up, down, left, right) — a fixed, reproducible
// priority order — whose reversed transition connects the current symbolic
// state back to the previous frontier.
//
// Errors:
//
//	ErrNilBoard                 - Solve was called with a nil board.
//	ErrInternalReconstruction   - witness reconstruction found no predecessor
//	                              in any direction; indicates a bug in the
//	                              encoder or solver, not a puzzle property.
package solve
