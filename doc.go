// Command-suite sokobdd solves Sokoban puzzles by symbolic reachability: it
// represents sets of board states as reduced ordered binary decision
// diagrams and computes the set of states reachable from the initial board
// by repeated relational-product image steps, rather than enumerating
// concrete states one at a time.
//
// The solver is organized as a small pipeline of packages, each consumed by
// the next:
//
//	sokoboard/ — parses a text screen into a Board of typed cells
//	annotate/  — computes reachability, push-productivity and variable
//	             assignment over a Board, producing an AnnotatedBoard
//	bddfacade/ — a thin, reference-counted wrapper over an opaque ROBDD
//	             engine (github.com/dalzilio/rudd), exposing only Boolean
//	             connectives and the relational-product primitives the
//	             solver needs
//	encode/    — builds the initial-state, goal, transition and frame
//	             formulas over an AnnotatedBoard
//	solve/     — runs the forward fixpoint and reconstructs a concrete
//	             move string by backward traversal of the frontier history
//
// cmd/sokobdd is the CLI entry point wiring the pipeline together.
package sokobdd
