package segment

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid segment-local offset.
	ErrIndexOutOfBounds = errors.New("segment: index out of bounds")
	// ErrEmptySegment signals a removal from a segment with no elements.
	ErrEmptySegment = errors.New("segment: empty segment")
)
