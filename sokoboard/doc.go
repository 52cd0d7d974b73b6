// Package sokoboard parses a Sokoban text screen into a rectangular grid of
// tagged cells.
//
// What:
//
//   - Board wraps a rectangular grid of Cell values, row-major, rows 0…R-1
//     and columns 0…C-1.
//   - ParseBoard/ParseBoardString read the ASCII screen format: ' ' empty,
//     '#' wall, '@' man, '$' box, '.' goal, '*' box-on-goal, '+' man-on-goal.
//   - Ragged input (unequal line lengths) is right-padded with Empty.
//
// Errors:
//
//	ErrEmptyScreen    - the input has no rows or no columns.
//	*UnknownRuneError - a character outside the recognized set was found.
//	ErrNoMan          - no cell has hasMan true.
//	ErrMultipleMen    - more than one cell has hasMan true.
package sokoboard
