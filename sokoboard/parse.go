package sokoboard

import (
	"bufio"
	"io"
	"strings"
)

// ParseBoard reads a Sokoban screen from r, one row per line. Lines may be
// of unequal length; shorter lines are right-padded with Empty. Returns
// ErrEmptyScreen for an empty input, an *UnknownRuneError for an
// unrecognized character, ErrNoMan if no cell has hasMan true, or
// ErrMultipleMen if more than one does.
//
// Complexity: O(R×C) time and memory.
func ParseBoard(r io.Reader) (*Board, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	// Board lines can be arbitrarily wide; grow past bufio's default token
	// size rather than truncating.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buildBoard(lines)
}

// ParseBoardString is a convenience wrapper around ParseBoard for callers
// that already hold the screen as a string.
func ParseBoardString(s string) (*Board, error) {
	return ParseBoard(strings.NewReader(s))
}

func buildBoard(lines []string) (*Board, error) {
	rows := len(lines)
	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyScreen
	}

	cells := make([][]Cell, rows)
	manCount := 0
	for r, line := range lines {
		runes := []rune(line)
		row := make([]Cell, cols)
		for c := 0; c < cols; c++ {
			if c >= len(runes) {
				row[c] = Empty
				continue
			}
			cell, ok := cellFromRune(runes[c])
			if !ok {
				return nil, &UnknownRuneError{Row: r, Col: c, Rune: runes[c]}
			}
			row[c] = cell
			if cell.HasMan() {
				manCount++
			}
		}
		cells[r] = row
	}

	switch {
	case manCount == 0:
		return nil, ErrNoMan
	case manCount > 1:
		return nil, ErrMultipleMen
	}

	return &Board{rows: rows, cols: cols, cells: cells}, nil
}
