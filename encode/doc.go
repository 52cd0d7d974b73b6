// Package encode builds the Boolean-formula encodings the solver operates
// over: the initial-state BDD, the goal BDD, the frame-equality BDD (with an
// exception set), and the four directional transition relations plus their
// disjunction, all as bddfacade.Handle values over an annotate.AnnotatedBoard.
//
// Only reachable cells contribute man variables; only reachable AND
// productive cells contribute box variables. This keeps every diagram small
// and correctly expresses "a box cannot exist here" for cells that can never
// hold one.
//
// Errors:
//
//	ErrNilBoard              - a nil *annotate.AnnotatedBoard was supplied.
//	ErrFrameExceptionMismatch - an exception coordinate given to Frame does
//	                            not name a distinct reachable cell.
package encode
