package annotate

import "github.com/katalvlaran/sokobdd/sokoboard"

// direction is one axis-aligned step, in fixed priority order: up, down,
// left, right.
type direction struct {
	dr, dc int
	move   byte
}

// directions is the canonical priority order used by the productivity
// closure. Reachability is computed through gridgraph instead; the encoder
// and the solver's witness reconstruction keep their own copies of the same
// order.
var directions = [4]direction{
	{dr: -1, dc: 0, move: 'u'},
	{dr: 1, dc: 0, move: 'd'},
	{dr: 0, dc: -1, move: 'l'},
	{dr: 0, dc: 1, move: 'r'},
}

// Connectivity selects the neighbor set flood-fill reachability explores.
// Productivity always uses the four axis directions regardless of this
// setting, since a Sokoban push is never diagonal; Connectivity exists so
// the test suite can exercise synthetic boards with richer adjacency
// without perturbing push semantics.
type Connectivity int

const (
	// Conn4 explores only the four axis-aligned neighbors (the only
	// connectivity the CLI ever uses).
	Conn4 Connectivity = iota
	// Conn8 additionally explores the four diagonal neighbors when
	// computing reachability.
	Conn8
)

// Option configures Annotate via functional arguments: zero-value-safe and
// composable. Options are applied in order at call time; their values are
// not validated.
type Option func(*options)

type options struct {
	connectivity      Connectivity
	onReachable       func(row, col int)
	onProductiveSweep func(round int, changed int)
}

func defaultOptions() options {
	return options{
		connectivity:      Conn4,
		onReachable:       func(int, int) {},
		onProductiveSweep: func(int, int) {},
	}
}

// WithConnectivity overrides the neighbor set used by reachability
// flood-fill. Reserved for the test suite; the CLI never sets this.
func WithConnectivity(c Connectivity) Option {
	return func(o *options) { o.connectivity = c }
}

// WithHooks registers observer callbacks fired as reachability and
// productivity are computed. Either callback may be nil.
func WithHooks(onReachable func(row, col int), onProductiveSweep func(round int, changed int)) Option {
	return func(o *options) {
		if onReachable != nil {
			o.onReachable = onReachable
		}
		if onProductiveSweep != nil {
			o.onProductiveSweep = onProductiveSweep
		}
	}
}

// VarPair is the (current, next) BDD variable id pair assigned to one
// Boolean per cell (either "man present" or "box present").
type VarPair struct {
	Current, Next int
}

// AnnotatedCell extends a board Cell with the attributes the encoder needs.
type AnnotatedCell struct {
	sokoboard.Cell
	Row, Col   int
	Reachable  bool
	Productive bool
	ManVar     VarPair
	BoxVar     VarPair
}

// AnnotatedBoard is the Annotator's output: the source board plus a
// per-cell attribute grid and the total variable count consumed.
type AnnotatedBoard struct {
	Board    *sokoboard.Board
	cells    [][]AnnotatedCell
	VarCount int
}

// Rows returns the number of rows in the underlying board.
func (ab *AnnotatedBoard) Rows() int { return ab.Board.Rows() }

// Cols returns the number of columns in the underlying board.
func (ab *AnnotatedBoard) Cols() int { return ab.Board.Cols() }

// At returns the AnnotatedCell at (row, col).
func (ab *AnnotatedBoard) At(row, col int) AnnotatedCell {
	return ab.cells[row][col]
}

// String renders the board in its screen form, one line per row. Productive
// cells pass through an ASCII upper-case mapping and reachable-only cells
// through a lower-case mapping; no screen glyph is a letter, so both leave
// the glyph unchanged and the output does not mark reachable or productive
// cells.
func (ab *AnnotatedBoard) String() string {
	buf := make([]byte, 0, ab.Rows()*(ab.Cols()+1))
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			cell := ab.cells[r][c]
			glyph := cell.Rune()
			switch {
			case cell.Productive:
				glyph = toUpperASCII(glyph)
			case cell.Reachable:
				glyph = toLowerASCII(glyph)
			}
			buf = append(buf, []byte(string(glyph))...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
