package braid

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid segment index for addressed
	// segment operations.
	ErrIndexOutOfBounds = errors.New("braid: index out of bounds")
	// ErrEmptySequence signals a boundary removal on a braid without segments.
	ErrEmptySequence = errors.New("braid: empty sequence")
	// ErrIllegalArguments signals invalid operation parameters.
	ErrIllegalArguments = errors.New("braid: illegal arguments")
	// ErrUnknownOp signals an operation kind outside the routed set.
	ErrUnknownOp = errors.New("braid: unknown operation")
)
