package bddfacade

import "github.com/dalzilio/rudd"

// renameDirection selects which half of a current/next variable pair a
// pairReplacer maps onto the other half. Every current variable id is even;
// its paired next variable is id+1.
type renameDirection int

const (
	// primeToCurrent maps an odd (next) variable id down to its even
	// (current) partner: v+1 ↦ v.
	primeToCurrent renameDirection = iota + 1
	// currentToPrime maps an even (current) variable id up to its odd
	// (next) partner: v ↦ v+1.
	currentToPrime
)

// pairReplacer implements rudd.Replacer for the current/next pairing
// convention. It never touches a variable outside the direction it was
// built for, so composing it with Apply's "unaffected branch unchanged"
// rule keeps every other variable untouched.
type pairReplacer struct {
	dir renameDirection
}

func (r pairReplacer) Id() int { return int(r.dir) }

func (r pairReplacer) Replace(level int32) (int32, bool) {
	switch r.dir {
	case primeToCurrent:
		if level%2 == 1 {
			return level - 1, true
		}
	case currentToPrime:
		if level%2 == 0 {
			return level + 1, true
		}
	}
	return 0, false
}

// renamePrimeToCurrent renames every odd (next) variable appearing in h down
// to its even (current) partner, leaving every other variable untouched.
func (e *Engine) renamePrimeToCurrent(h Handle) Handle {
	return e.wrap(e.bdd.Replace(h.node, pairReplacer{dir: primeToCurrent}))
}

// renameCurrentToPrime renames every even (current) variable appearing in h
// up to its odd (next) partner, leaving every other variable untouched.
func (e *Engine) renameCurrentToPrime(h Handle) Handle {
	return e.wrap(e.bdd.Replace(h.node, pairReplacer{dir: currentToPrime}))
}

// primedVarSet builds the quantification support over the odd (next)
// partners of every variable id found in v, using Scanset/Makeset's
// documented inverse relationship (scanset(Makeset(a)) == a).
func (e *Engine) primedVarSet(v Handle) Handle {
	levels := e.bdd.Scanset(v.node)
	primed := make([]int, len(levels))
	for i, lv := range levels {
		primed[i] = lv + 1
	}
	return e.VarSet(primed)
}

// Relprod computes the forward image of r under transition relation t:
// ∃V. r(x) ∧ t(x, x′), with the surviving primed variables renamed back to
// unprimed. V is the quantification support over current-state variables.
func (e *Engine) Relprod(r, t, v Handle) Handle {
	quantified := e.wrap(e.bdd.AppEx(r.node, t.node, rudd.OPand, v.node))
	return e.renamePrimeToCurrent(quantified)
}

// RelprodReversed computes the pre-image of r under t: the set of states x
// such that some successor x′ of x (per t) lies in r. r is first renamed
// into the primed namespace, conjoined with t, and the primed variables
// (V's next-state partners) are quantified away.
func (e *Engine) RelprodReversed(r, t, v Handle) Handle {
	rPrimed := e.renameCurrentToPrime(r)
	vPrimed := e.primedVarSet(v)
	return e.wrap(e.bdd.AppEx(rPrimed.node, t.node, rudd.OPand, vPrimed.node))
}

// ImageAndEqualize computes Relprod(r, t, v) ∧ frame by calling Relprod and
// then And; it is not fused into a single engine pass and costs the same as
// making the two calls separately. The solver does not call it.
func (e *Engine) ImageAndEqualize(r, t, v, frame Handle) Handle {
	return e.And(e.Relprod(r, t, v), frame)
}
