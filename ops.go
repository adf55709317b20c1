package braid

import (
	"fmt"

	"github.com/npillmayer/braid/segment"
)

// Append appends a value at the logical end of the braid.
//
// The value is pushed onto the last segment. Segments enter the list only
// through the constructor, never implicitly from a bare value, so appending
// to a braid without segments is a reported error.
func (b *Braid[T]) Append(value T) error {
	if b == nil || len(b.segments) == 0 {
		return ErrEmptySequence
	}
	b.segments[len(b.segments)-1].Push(value)
	return nil
}

// Prepend inserts a value at the logical start of the braid.
//
// The value is unshifted onto the first segment. Historical note: an earlier
// rendition of this structure routed prepend to the last segment as well,
// making Prepend indistinguishable from Append; this implementation targets
// the first segment so that Get(0) returns the prepended value. The router
// keeps OpAppend and OpPrepend as distinct kinds.
func (b *Braid[T]) Prepend(value T) error {
	if b == nil || len(b.segments) == 0 {
		return ErrEmptySequence
	}
	b.segments[0].Unshift(value)
	return nil
}

// PopLast removes and returns the final element of the last segment.
//
// If the removal empties that segment, the segment is dropped from the
// segment list. Returns ErrEmptySequence for a braid without segments.
func (b *Braid[T]) PopLast() (T, error) {
	var none T
	if b == nil || len(b.segments) == 0 {
		return none, ErrEmptySequence
	}
	last := len(b.segments) - 1
	value, err := b.segments[last].Pop()
	assert(err == nil, "braid.PopLast: last segment unexpectedly empty")
	if b.segments[last].IsEmpty() {
		b.dropSegment(last)
	}
	return value, nil
}

// PopFirst removes and returns the first element of the first segment.
//
// If the removal empties that segment, the segment is dropped from the
// segment list. Returns ErrEmptySequence for a braid without segments.
func (b *Braid[T]) PopFirst() (T, error) {
	var none T
	if b == nil || len(b.segments) == 0 {
		return none, ErrEmptySequence
	}
	value, err := b.segments[0].Shift()
	assert(err == nil, "braid.PopFirst: first segment unexpectedly empty")
	if b.segments[0].IsEmpty() {
		b.dropSegment(0)
	}
	return value, nil
}

// SegmentAt returns the k-th segment itself, not a copy.
//
// This is an explicit escape hatch from the flattened view: the caller
// receives a live handle for direct manipulation. Emptying a segment through
// such a handle does not drop it from the segment list — only the braid's
// own PopFirst/PopLast removal path does that — so callers are responsible
// for keeping braid invariants intact.
func (b *Braid[T]) SegmentAt(k int) (*segment.Segment[T], error) {
	if b == nil || k < 0 || k >= len(b.segments) {
		return nil, fmt.Errorf("%w: no segment %d", ErrIndexOutOfBounds, k)
	}
	return b.segments[k], nil
}

// AppendAt pushes a value onto the end of segment k, bypassing boundary
// routing.
func (b *Braid[T]) AppendAt(k int, value T) error {
	seg, err := b.SegmentAt(k)
	if err != nil {
		return err
	}
	seg.Push(value)
	return nil
}

// PrependAt unshifts a value onto the start of segment k, bypassing boundary
// routing.
func (b *Braid[T]) PrependAt(k int, value T) error {
	seg, err := b.SegmentAt(k)
	if err != nil {
		return err
	}
	seg.Unshift(value)
	return nil
}
