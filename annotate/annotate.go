package annotate

import (
	"github.com/katalvlaran/sokobdd/gridgraph"
	"github.com/katalvlaran/sokobdd/sokoboard"
)

// Annotate runs the fixed four-stage pipeline over b: reachability,
// productivity, sanity, variable assignment. It returns ErrNilBoard for a
// nil board, or a *StructuralError (wrapping ErrBoxUnproductive) naming
// every box resting on a cell that can never be productive.
//
// Annotation is deterministic: the reachable, productive, and variable-id
// arrays are pure functions of b and opts.
func Annotate(b *sokoboard.Board, opts ...Option) (*AnnotatedBoard, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := b.Rows(), b.Cols()
	cells := make([][]AnnotatedCell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]AnnotatedCell, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = AnnotatedCell{Cell: b.At(r, c), Row: r, Col: c}
		}
	}
	ab := &AnnotatedBoard{Board: b, cells: cells}

	startRow, startCol := locateMan(b)
	floodReachability(ab, startRow, startCol, o)
	closeProductivity(ab, o)
	if err := sanityCheck(ab); err != nil {
		return nil, err
	}
	assignVariables(ab)

	return ab, nil
}

// locateMan returns the coordinates of the unique hasMan cell. Board
// construction guarantees exactly one exists (sokoboard.ParseBoard already
// enforces this), so callers other than Annotate should not need to repeat
// the search.
func locateMan(b *sokoboard.Board) (int, int) {
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.At(r, c).HasMan() {
				return r, c
			}
		}
	}
	return -1, -1
}

// floodReachability marks every cell in the man's connected component of
// floor (non-Wall) cells as Reachable. Boxes are treated as passable floor:
// a cell the man could stand on if boxes were temporarily out of the way is
// still reachable.
//
// The grid is handed to gridgraph as a 0/1 land map (Wall cells are "water",
// everything else "land" under the default LandThreshold of 1); the man's
// component among gridgraph.ConnectedComponents' land regions is exactly the
// reachable set. Conn8 requests gridgraph's diagonal neighbor set, reserved
// for the test suite (see Connectivity).
func floodReachability(ab *AnnotatedBoard, startRow, startCol int, o options) {
	if startRow < 0 {
		return
	}

	rows, cols := ab.Rows(), ab.Cols()
	values := make([][]int, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			if ab.Board.At(r, c) != sokoboard.Wall {
				values[r][c] = 1
			}
		}
	}

	conn := gridgraph.Conn4
	if o.connectivity == Conn8 {
		conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{LandThreshold: 1, Conn: conn})
	if err != nil {
		// values is rectangular and non-empty by construction from a parsed
		// Board, so NewGridGraph cannot reject it; nothing to mark.
		return
	}

	for _, comp := range gg.ConnectedComponents()[1] {
		inStartComponent := false
		for _, cell := range comp {
			if cell.Y == startRow && cell.X == startCol {
				inStartComponent = true
				break
			}
		}
		if !inStartComponent {
			continue
		}
		for _, cell := range comp {
			ab.cells[cell.Y][cell.X].Reachable = true
			o.onReachable(cell.Y, cell.X)
		}
		return
	}
}

// closeProductivity computes the least fixed point of "could still reach a
// goal": productive is seeded by isGoal and grows while a reachable cell has
// a productive neighbor it could push a box toward from a reachable square
// on the opposite side.
func closeProductivity(ab *AnnotatedBoard, o options) {
	rows, cols := ab.Rows(), ab.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ab.cells[r][c].Productive = ab.cells[r][c].IsGoal()
		}
	}

	round := 0
	for {
		changed := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := &ab.cells[r][c]
				if cell.Productive || !cell.Reachable {
					continue
				}
				for _, d := range directions {
					towardRow, towardCol := r+d.dr, c+d.dc
					fromRow, fromCol := r-d.dr, c-d.dc
					if !ab.Board.InBounds(towardRow, towardCol) || !ab.Board.InBounds(fromRow, fromCol) {
						continue
					}
					if ab.cells[towardRow][towardCol].Productive && ab.cells[fromRow][fromCol].Reachable {
						cell.Productive = true
						changed++
						break
					}
				}
			}
		}
		o.onProductiveSweep(round, changed)
		round++
		if changed == 0 {
			return
		}
	}
}

// sanityCheck verifies every box-bearing cell is productive: a box parked on
// a cell that can never reach a goal makes the board unsolvable outright. It
// collects every violation before returning so the caller sees the complete
// offending set, not just the first.
func sanityCheck(ab *AnnotatedBoard) error {
	var offenders []Coord
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			cell := ab.cells[r][c]
			if cell.HasBox() && !cell.Productive {
				offenders = append(offenders, Coord{Row: r, Col: c})
			}
		}
	}
	if len(offenders) > 0 {
		return &StructuralError{Cells: offenders}
	}
	return nil
}

// assignVariables walks cells in row-major order, assigning a man
// current/next pair and a box current/next pair per cell regardless of
// reachability. Fixed row-major order keeps variable IDs stable and simple
// to reason about.
func assignVariables(ab *AnnotatedBoard) {
	k := 0
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			cell := &ab.cells[r][c]
			cell.ManVar = VarPair{Current: k, Next: k + 1}
			cell.BoxVar = VarPair{Current: k + 2, Next: k + 3}
			k += 4
		}
	}
	ab.VarCount = k
}
