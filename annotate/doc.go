// Package annotate computes, for a parsed sokoboard.Board, the per-cell
// attributes the encoder needs: reachability by the pusher, "productive"
// cells where a box may legally rest, and a dense per-cell assignment of
// BDD variable ids.
//
// Pipeline (fixed order, single pass except productivity which iterates to
// a fixed point):
//
//  1. Reachability — four-directional flood-fill from the pusher's start
//     cell, treating Wall (and off-grid) as impassable and ignoring boxes.
//  2. Productivity — least fixed point seeded by goal cells: a cell becomes
//     productive if it is reachable and a box on it could be pushed one
//     step toward an already-productive cell from a square the pusher can
//     stand on.
//  3. Sanity — every cell with a box must be productive, or the puzzle is
//     declared impossible.
//  4. Variable assignment — row-major walk assigning a man/box current+next
//     variable quartet per cell, regardless of reachability.
//
// Errors:
//
//	ErrNilBoard        - Annotate was called with a nil board.
//	ErrBoxUnproductive - a box rests on a cell that can never be productive.
package annotate
