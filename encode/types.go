package encode

import "github.com/katalvlaran/sokobdd/bddfacade"

// Transition bundles the four directional transition relations and their
// disjunction. The directional relations are retained separately, not just
// their union, because witness reconstruction needs to know which direction
// produced a given step.
type Transition struct {
	Up, Down, Left, Right bddfacade.Handle
	All                   bddfacade.Handle
}

// ByMove indexes the four directional relations by their move character, in
// fixed priority order: up, down, left, right. Witness reconstruction tries
// them in this order and takes the first that yields a non-empty
// predecessor set.
func (t *Transition) ByMove() []struct {
	Move byte
	Rel  bddfacade.Handle
} {
	return []struct {
		Move byte
		Rel  bddfacade.Handle
	}{
		{Move: 'u', Rel: t.Up},
		{Move: 'd', Rel: t.Down},
		{Move: 'l', Rel: t.Left},
		{Move: 'r', Rel: t.Right},
	}
}
