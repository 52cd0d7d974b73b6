package encode

import (
	"github.com/katalvlaran/sokobdd/annotate"
	"github.com/katalvlaran/sokobdd/bddfacade"
)

// InitialState builds I(x): the conjunction, over every reachable cell, of a
// man literal (positive iff the cell starts with the man) and — for
// productive cells only — a box literal (positive iff the cell starts with a
// box).
func InitialState(e *bddfacade.Engine, ab *annotate.AnnotatedBoard) (bddfacade.Handle, error) {
	if ab == nil {
		return bddfacade.Handle{}, ErrNilBoard
	}
	conj := e.True()
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			cell := ab.At(r, c)
			if !cell.Reachable {
				continue
			}
			conj = e.And(conj, manLiteral(e, cell, cell.HasMan()))
			if cell.Productive {
				conj = e.And(conj, boxLiteral(e, cell, cell.HasBox()))
			}
		}
	}
	return conj, nil
}

// manLiteral returns the positive or negative current man literal for cell,
// depending on want.
func manLiteral(e *bddfacade.Engine, cell annotate.AnnotatedCell, want bool) bddfacade.Handle {
	lit := e.Lit(cell.ManVar.Current)
	if want {
		return lit
	}
	return e.Not(lit)
}

// boxLiteral returns the positive or negative current box literal for cell,
// depending on want.
func boxLiteral(e *bddfacade.Engine, cell annotate.AnnotatedCell, want bool) bddfacade.Handle {
	lit := e.Lit(cell.BoxVar.Current)
	if want {
		return lit
	}
	return e.Not(lit)
}
