package encode

import (
	"github.com/katalvlaran/sokobdd/annotate"
	"github.com/katalvlaran/sokobdd/bddfacade"
)

// direction mirrors annotate's fixed axis order: up, down, left, right.
type direction struct {
	dr, dc int
}

var directions = [4]direction{
	{dr: -1, dc: 0}, // up
	{dr: 1, dc: 0},  // down
	{dr: 0, dc: -1}, // left
	{dr: 0, dc: 1},  // right
}

// Transitions builds the four directional transition relations and their
// disjunction.
func Transitions(e *bddfacade.Engine, ab *annotate.AnnotatedBoard) (*Transition, error) {
	if ab == nil {
		return nil, ErrNilBoard
	}
	rels := make([]bddfacade.Handle, 4)
	for i, d := range directions {
		rel, err := directionalTransition(e, ab, d)
		if err != nil {
			return nil, err
		}
		rels[i] = rel
	}
	t := &Transition{
		Up:    rels[0],
		Down:  rels[1],
		Left:  rels[2],
		Right: rels[3],
	}
	t.All = e.OrAll(t.Up, t.Down, t.Left, t.Right)
	return t, nil
}

// directionalTransition builds T_dir = ⋁ T(r,c,dr,dc) over every reachable
// source cell.
func directionalTransition(e *bddfacade.Engine, ab *annotate.AnnotatedBoard, d direction) (bddfacade.Handle, error) {
	disj := e.False()
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			if !ab.At(r, c).Reachable {
				continue
			}
			cellRel, err := perCellTransition(e, ab, r, c, d)
			if err != nil {
				return bddfacade.Handle{}, err
			}
			disj = e.Or(disj, cellRel)
		}
	}
	return disj, nil
}

// perCellTransition builds T(r,c,dr,dc): FALSE unless (r,c) is reachable and
// its neighbor in direction d is in bounds and reachable. Otherwise the
// disjunction of the walk and push sub-cases.
func perCellTransition(e *bddfacade.Engine, ab *annotate.AnnotatedBoard, r, c int, d direction) (bddfacade.Handle, error) {
	source := annotate.Coord{Row: r, Col: c}
	if !ab.At(r, c).Reachable {
		return e.False(), nil
	}
	tr, tc := r+d.dr, c+d.dc
	if !ab.Board.InBounds(tr, tc) || !ab.At(tr, tc).Reachable {
		return e.False(), nil
	}
	target := annotate.Coord{Row: tr, Col: tc}

	walk, err := walkCase(e, ab, source, target)
	if err != nil {
		return bddfacade.Handle{}, err
	}

	pr, pc := r+2*d.dr, c+2*d.dc
	if !ab.Board.InBounds(pr, pc) || !ab.At(pr, pc).Productive {
		return walk, nil
	}
	pushTo := annotate.Coord{Row: pr, Col: pc}
	push, err := pushCase(e, ab, source, target, pushTo)
	if err != nil {
		return bddfacade.Handle{}, err
	}
	return e.Or(walk, push), nil
}

// walkCase builds sub-case (1): the pusher steps into an empty neighbor.
func walkCase(e *bddfacade.Engine, ab *annotate.AnnotatedBoard, source, target annotate.Coord) (bddfacade.Handle, error) {
	srcCell := ab.At(source.Row, source.Col)
	tgtCell := ab.At(target.Row, target.Col)

	conj := e.And(
		e.And(e.Lit(srcCell.ManVar.Current), e.Not(e.Lit(srcCell.ManVar.Next))),
		e.And(e.Not(e.Lit(tgtCell.ManVar.Current)), e.Lit(tgtCell.ManVar.Next)),
	)
	conj = e.And(conj, noBoxInvolved(e, srcCell))
	conj = e.And(conj, noBoxInvolved(e, tgtCell))

	frame, err := Frame(e, ab, []annotate.Coord{source, target})
	if err != nil {
		return bddfacade.Handle{}, err
	}
	return e.And(conj, frame), nil
}

// pushCase builds sub-case (2): the pusher pushes a box from target to
// pushTo.
func pushCase(e *bddfacade.Engine, ab *annotate.AnnotatedBoard, source, target, pushTo annotate.Coord) (bddfacade.Handle, error) {
	srcCell := ab.At(source.Row, source.Col)
	tgtCell := ab.At(target.Row, target.Col)
	pushCell := ab.At(pushTo.Row, pushTo.Col)

	manMoves := e.And(
		e.And(e.Lit(srcCell.ManVar.Current), e.Not(e.Lit(srcCell.ManVar.Next))),
		e.And(e.Not(e.Lit(tgtCell.ManVar.Current)), e.Lit(tgtCell.ManVar.Next)),
	)
	boxMoves := e.And(
		e.And(e.Lit(tgtCell.BoxVar.Current), e.Not(e.Lit(pushCell.BoxVar.Current))),
		e.And(e.Not(e.Lit(tgtCell.BoxVar.Next)), e.Lit(pushCell.BoxVar.Next)),
	)
	conj := e.And(manMoves, boxMoves)

	if srcCell.Productive {
		conj = e.And(conj, e.And(e.Not(e.Lit(srcCell.BoxVar.Current)), e.Not(e.Lit(srcCell.BoxVar.Next))))
	}
	conj = e.And(conj, e.Biimp(e.Lit(pushCell.ManVar.Current), e.Lit(pushCell.ManVar.Next)))

	frame, err := Frame(e, ab, []annotate.Coord{source, target, pushTo})
	if err != nil {
		return bddfacade.Handle{}, err
	}
	return e.And(conj, frame), nil
}

// noBoxInvolved asserts that, for a productive cell, no box is present
// before or after the move; for a non-productive cell (which carries no box
// variable) it contributes nothing.
func noBoxInvolved(e *bddfacade.Engine, cell annotate.AnnotatedCell) bddfacade.Handle {
	if !cell.Productive {
		return e.True()
	}
	return e.And(e.Not(e.Lit(cell.BoxVar.Current)), e.Not(e.Lit(cell.BoxVar.Next)))
}

// VarSet builds the quantification support V: the disjunction (engine cube)
// of every current man variable over every reachable cell, plus the current
// box variable of every reachable AND productive cell.
func VarSet(e *bddfacade.Engine, ab *annotate.AnnotatedBoard) (bddfacade.Handle, error) {
	if ab == nil {
		return bddfacade.Handle{}, ErrNilBoard
	}
	var ids []int
	for r := 0; r < ab.Rows(); r++ {
		for c := 0; c < ab.Cols(); c++ {
			cell := ab.At(r, c)
			if !cell.Reachable {
				continue
			}
			ids = append(ids, cell.ManVar.Current)
			if cell.Productive {
				ids = append(ids, cell.BoxVar.Current)
			}
		}
	}
	return e.VarSet(ids), nil
}
