package sokoboard

import "errors"

// Sentinel errors for board parsing.
var (
	// ErrEmptyScreen indicates the input has no rows or no columns.
	ErrEmptyScreen = errors.New("sokoboard: screen is empty")

	// ErrNoMan indicates no cell in the parsed screen has hasMan true.
	ErrNoMan = errors.New("sokoboard: screen has no man")

	// ErrMultipleMen indicates more than one cell in the parsed screen has
	// hasMan true.
	ErrMultipleMen = errors.New("sokoboard: screen has more than one man")
)

// UnknownRuneError reports an unrecognized character encountered while
// parsing a screen, together with its position.
type UnknownRuneError struct {
	Row, Col int
	Rune     rune
}

func (e *UnknownRuneError) Error() string {
	return "sokoboard: unknown character " + string(e.Rune) + " in screen"
}
