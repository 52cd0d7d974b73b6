package bddfacade

import "errors"

// Sentinel errors for bddfacade operations.
var (
	// ErrInvalidVarCount is returned when Init is called with a non-positive
	// variable count.
	ErrInvalidVarCount = errors.New("bddfacade: variable count must be positive")

	// ErrEngine wraps an underlying engine failure propagated from rudd.
	// Engine errors are never recovered; the caller's only option is to
	// abort the run.
	ErrEngine = errors.New("bddfacade: engine error")

	// ErrOddVariable names a breach of the current/next pairing convention,
	// under which every current variable is even. No function in this
	// package returns it: Lit accepts any id, including odd next-state ids.
	ErrOddVariable = errors.New("bddfacade: variable id must be even (current/next pairing)")
)
