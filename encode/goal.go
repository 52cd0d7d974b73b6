package encode

import (
	"github.com/katalvlaran/sokobdd/annotate"
	"github.com/katalvlaran/sokobdd/bddfacade"
)

// Goal builds G(x): the conjunction of positive box literals over every
// goal cell. Because the number of boxes equals the number of goals, a
// state satisfies G iff every goal cell holds a box.
func Goal(e *bddfacade.Engine, ab *annotate.AnnotatedBoard) (bddfacade.Handle, error) {
	if ab == nil {
		return bddfacade.Handle{}, ErrNilBoard
	}
	conj := e.True()
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			cell := ab.At(r, c)
			if !cell.IsGoal() {
				continue
			}
			conj = e.And(conj, e.Lit(cell.BoxVar.Current))
		}
	}
	return conj, nil
}
