package encode

import (
	"github.com/katalvlaran/sokobdd/annotate"
	"github.com/katalvlaran/sokobdd/bddfacade"
)

// Frame builds E(x, x′) parameterized by an exception set S of coordinates:
// the conjunction, over reachable cells not in S, of man_cur ⇔ man_next
// and — for productive cells — box_cur ⇔ box_next.
//
// It verifies |except| equals the number of reachable cells actually
// skipped, returning ErrFrameExceptionMismatch if a coordinate in except
// names an unreachable or duplicate cell (guarding against typos in the
// exception list).
func Frame(e *bddfacade.Engine, ab *annotate.AnnotatedBoard, except []annotate.Coord) (bddfacade.Handle, error) {
	if ab == nil {
		return bddfacade.Handle{}, ErrNilBoard
	}
	exceptSet := make(map[annotate.Coord]bool, len(except))
	for _, coord := range except {
		exceptSet[coord] = true
	}

	conj := e.True()
	skipped := 0
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			cell := ab.At(r, c)
			if !cell.Reachable {
				continue
			}
			coord := annotate.Coord{Row: r, Col: c}
			if exceptSet[coord] {
				skipped++
				continue
			}
			conj = e.And(conj, e.Biimp(e.Lit(cell.ManVar.Current), e.Lit(cell.ManVar.Next)))
			if cell.Productive {
				conj = e.And(conj, e.Biimp(e.Lit(cell.BoxVar.Current), e.Lit(cell.BoxVar.Next)))
			}
		}
	}

	if skipped != len(except) {
		return bddfacade.Handle{}, ErrFrameExceptionMismatch
	}
	return conj, nil
}
