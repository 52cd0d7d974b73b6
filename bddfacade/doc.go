// Package bddfacade is a thin, value-typed wrapper over a Reduced Ordered
// Binary Decision Diagram (ROBDD) engine.
//
// It exposes the logical connectives, variable literals, and the two
// relational-product operations (forward and backward image) that the
// encoder and solver packages need, without leaking the underlying engine's
// node representation. Equality of two Handle values is engine-canonical
// handle equality: two BDDs denoting the same Boolean function always wrap
// the same node.
//
// The facade does not own or free nodes itself; it relies on the engine's
// own reference counting (see Engine.wrap / Engine.Release) and never hands
// out a Handle without first protecting it against the engine's garbage
// collector.
package bddfacade
