package segment

import "iter"

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Segment is an ordered, mutable, resizable run of elements.
//
// A braid owns its segments exclusively; handles returned to clients stay
// live, so external mutation is possible but the caller is responsible for
// not breaking braid invariants (see braid.SegmentAt).
//
// The zero value Segment[T]{} is a valid empty segment.
type Segment[T any] struct {
	values []T
}

// New creates a segment from values. The input is copied.
func New[T any](values ...T) *Segment[T] {
	seg := &Segment[T]{}
	if len(values) > 0 {
		seg.values = append([]T(nil), values...)
	}
	return seg
}

// FromSlice creates a segment taking ownership of the given slice.
//
// The caller must not use the slice afterwards.
func FromSlice[T any](values []T) *Segment[T] {
	return &Segment[T]{values: values}
}

// Len returns the number of elements in this segment.
func (seg *Segment[T]) Len() int {
	if seg == nil {
		return 0
	}
	return len(seg.values)
}

// IsEmpty reports whether the segment has no elements.
func (seg *Segment[T]) IsEmpty() bool {
	return seg.Len() == 0
}

// At returns the element at a segment-local offset.
func (seg *Segment[T]) At(i int) (T, error) {
	var none T
	if seg == nil || i < 0 || i >= len(seg.values) {
		return none, ErrIndexOutOfBounds
	}
	return seg.values[i], nil
}

// Set overwrites the element at a segment-local offset.
func (seg *Segment[T]) Set(i int, value T) error {
	if seg == nil || i < 0 || i >= len(seg.values) {
		return ErrIndexOutOfBounds
	}
	seg.values[i] = value
	return nil
}

// Push appends a value at the end of the segment.
func (seg *Segment[T]) Push(value T) {
	seg.values = append(seg.values, value)
}

// Pop removes and returns the last element.
func (seg *Segment[T]) Pop() (T, error) {
	var none T
	if seg.IsEmpty() {
		return none, ErrEmptySegment
	}
	last := len(seg.values) - 1
	value := seg.values[last]
	seg.values[last] = none // release reference
	seg.values = seg.values[:last]
	return value, nil
}

// Shift removes and returns the first element.
func (seg *Segment[T]) Shift() (T, error) {
	var none T
	if seg.IsEmpty() {
		return none, ErrEmptySegment
	}
	value := seg.values[0]
	rest := make([]T, len(seg.values)-1)
	copy(rest, seg.values[1:])
	seg.values = rest
	return value, nil
}

// Unshift inserts a value at the start of the segment.
func (seg *Segment[T]) Unshift(value T) {
	grown := make([]T, 0, len(seg.values)+1)
	grown = append(grown, value)
	seg.values = append(grown, seg.values...)
}

// Values returns a copied slice of all elements in order.
func (seg *Segment[T]) Values() []T {
	if seg.Len() == 0 {
		return nil
	}
	return append([]T(nil), seg.values...)
}

// AppendTo appends all elements to buf and returns the grown slice.
//
// This avoids the intermediate copy of Values for snapshot assembly.
func (seg *Segment[T]) AppendTo(buf []T) []T {
	if seg == nil {
		return buf
	}
	return append(buf, seg.values...)
}

// Clone returns a new segment with a copied element slice.
//
// Elements themselves are copied shallowly; callers needing element-level
// copies should map over Values.
func (seg *Segment[T]) Clone() *Segment[T] {
	if seg == nil {
		return &Segment[T]{}
	}
	return New(seg.values...)
}

// All returns an iterator over (local offset, element) pairs.
func (seg *Segment[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if seg == nil {
			return
		}
		for i, value := range seg.values {
			if !yield(i, value) {
				return
			}
		}
	}
}
