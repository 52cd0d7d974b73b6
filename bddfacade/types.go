package bddfacade

import (
	"fmt"
	"math/big"

	"github.com/dalzilio/rudd"
)

// Handle is a value-typed reference to a node in the engine's shared,
// reduced, ordered diagram table. Handles are cheap to copy; two Handles
// are == iff they denote the same Boolean function (canonical form).
type Handle struct {
	node rudd.Node
}

// Config records the sizing parameters an engine was initialized with, for
// diagnostics only (see Engine.Stats). The underlying engine manages its own
// node/cache growth; these are not currently forwarded to it (DESIGN.md).
type Config struct {
	TableSize   int
	CacheSize   int
	Granularity int
}

// Engine owns the ROBDD node table for one solver run. It is initialized
// once (Init) and never torn down before process exit, per the
// process-lifetime resource model of the core.
type Engine struct {
	bdd    *rudd.BDD
	cfg    Config
	tru    Handle
	fls    Handle
	refd   map[rudd.Node]int
	varTop int
}

// Init creates an Engine over varCount Boolean variables. tableSize,
// cacheSize and granularity are accepted per the engine contract and
// recorded for diagnostics; see Config.
func Init(varCount, tableSize, cacheSize, granularity int) (*Engine, error) {
	if varCount <= 0 {
		return nil, ErrInvalidVarCount
	}
	b, err := rudd.New(varCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	e := &Engine{
		bdd: b,
		cfg: Config{
			TableSize:   tableSize,
			CacheSize:   cacheSize,
			Granularity: granularity,
		},
		refd:   make(map[rudd.Node]int),
		varTop: varCount,
	}
	e.tru = e.wrap(b.True())
	e.fls = e.wrap(b.False())
	return e, nil
}

// Stats returns the Config this Engine was initialized with.
func (e *Engine) Stats() Config { return e.cfg }

// wrap protects n against garbage collection for as long as the returned
// Handle is held, and records it in the ref table.
func (e *Engine) wrap(n rudd.Node) Handle {
	e.refd[n]++
	return Handle{node: n}
}

// Release drops one reference to h. Callers invoke this exactly when a
// Handle stored in a long-lived container (the solver's frontier history)
// is superseded or the container is dropped. It never frees engine nodes
// directly; rudd's own garbage collector reclaims nodes with no external
// references on its own schedule.
func (e *Engine) Release(h Handle) {
	if c, ok := e.refd[h.node]; ok {
		if c <= 1 {
			delete(e.refd, h.node)
		} else {
			e.refd[h.node] = c - 1
		}
	}
}

// SatCount returns the number of satisfying assignments of h over the full
// variable range known to the engine.
func (e *Engine) SatCount(h Handle) *big.Int {
	return e.bdd.Satcount(h.node)
}
