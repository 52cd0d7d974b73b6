package bddfacade

import (
	"fmt"

	"github.com/dalzilio/rudd"
)

// True returns the constant-true Handle.
func (e *Engine) True() Handle { return e.tru }

// False returns the constant-false Handle.
func (e *Engine) False() Handle { return e.fls }

// Lit returns the positive literal for variable id (current or next).
func (e *Engine) Lit(id int) Handle {
	return e.wrap(e.bdd.Ithvar(id))
}

// NegLit returns the negative literal for variable id (current or next).
func (e *Engine) NegLit(id int) Handle {
	return e.Not(e.Lit(id))
}

// Not negates h.
func (e *Engine) Not(h Handle) Handle {
	return e.wrap(e.bdd.Not(h.node))
}

// And conjoins a and b.
func (e *Engine) And(a, b Handle) Handle {
	return e.wrap(e.bdd.Apply(a.node, b.node, rudd.OPand))
}

// Or disjoins a and b.
func (e *Engine) Or(a, b Handle) Handle {
	return e.wrap(e.bdd.Apply(a.node, b.node, rudd.OPor))
}

// Xor computes the exclusive-or of a and b.
func (e *Engine) Xor(a, b Handle) Handle {
	return e.wrap(e.bdd.Apply(a.node, b.node, rudd.OPxor))
}

// Biimp computes a ⇔ b.
func (e *Engine) Biimp(a, b Handle) Handle {
	return e.wrap(e.bdd.Apply(a.node, b.node, rudd.OPbiimp))
}

// AndAll folds And over hs, returning True for an empty slice.
func (e *Engine) AndAll(hs ...Handle) Handle {
	res := e.True()
	for _, h := range hs {
		res = e.And(res, h)
	}
	return res
}

// OrAll folds Or over hs, returning False for an empty slice.
func (e *Engine) OrAll(hs ...Handle) Handle {
	res := e.False()
	for _, h := range hs {
		res = e.Or(res, h)
	}
	return res
}

// Equal reports whether a and b denote the same function. Handle equality
// is engine-canonical, so this is a plain == on the wrapped node.
func Equal(a, b Handle) bool { return a.node == b.node }

// IsFalse reports whether h is the constant-false function.
func (e *Engine) IsFalse(h Handle) bool { return Equal(h, e.fls) }

// VarSet builds the quantification-support Handle (a cube) over ids, for use
// as the V argument to Relprod / RelprodReversed.
func (e *Engine) VarSet(ids []int) Handle {
	return e.wrap(e.bdd.Makeset(ids))
}

// NodeCount returns the number of distinct nodes in the sub-diagram rooted
// at h, used only for --verbose diagnostics.
func (e *Engine) NodeCount(h Handle) (int, error) {
	count := 0
	err := e.bdd.Allnodes(func(id, level, low, high int) error {
		count++
		return nil
	}, h.node)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	return count, nil
}
