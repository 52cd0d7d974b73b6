package encode

import "errors"

// Sentinel errors for encoding.
var (
	// ErrNilBoard indicates a nil *annotate.AnnotatedBoard was supplied.
	ErrNilBoard = errors.New("encode: annotated board is nil")

	// ErrFrameExceptionMismatch indicates the exception set passed to Frame
	// does not name distinct reachable cells, catching a typo'd coordinate
	// before it silently produces the wrong formula.
	ErrFrameExceptionMismatch = errors.New("encode: frame exception set does not match reachable cells skipped")
)
