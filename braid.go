package braid

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/braid/segment"
)

// Braid presents an ordered list of segments as one logical sequence.
//
// A braid created by
//
//	New[T]()
//
// is a valid object and behaves like an empty sequence. The braid takes
// ownership of every segment handed to it; clients must not keep mutating
// references to a segment after transfer, except through SegmentAt.
//
// Global positions are logical indices into the concatenation of all
// segments, in segment order. Length and index resolution are recomputed on
// every access and therefore stay consistent across segment mutation.
type Braid[T any] struct {
	segments []*segment.Segment[T]
}

// New creates a braid from initial segments, taking ownership of each.
//
// Empty or nil segments are dropped; the braid never keeps empty
// placeholders in its segment list.
func New[T any](segs ...*segment.Segment[T]) *Braid[T] {
	b := &Braid[T]{}
	for _, seg := range segs {
		if seg == nil || seg.IsEmpty() {
			continue
		}
		b.segments = append(b.segments, seg)
	}
	return b
}

// FromSlices creates a braid with one segment per input slice.
//
// Slices are copied; the braid does not alias caller storage.
func FromSlices[T any](slices ...[]T) *Braid[T] {
	segs := make([]*segment.Segment[T], 0, len(slices))
	for _, s := range slices {
		segs = append(segs, segment.New(s...))
	}
	return New(segs...)
}

// Len returns the total element count, summed over all segments.
//
// The value is recomputed on demand and never memoized.
func (b *Braid[T]) Len() int {
	if b == nil {
		return 0
	}
	total := 0
	for _, seg := range b.segments {
		total += seg.Len()
	}
	return total
}

// IsVoid reports whether the braid has no elements.
func (b *Braid[T]) IsVoid() bool {
	return b == nil || len(b.segments) == 0
}

// SegmentCount returns the number of segments in the list.
func (b *Braid[T]) SegmentCount() int {
	if b == nil {
		return 0
	}
	return len(b.segments)
}

// location addresses one element as a (segment index, local offset) pair.
type location struct {
	seg int
	off int
}

// resolve maps a global logical index to a location.
//
// The walk subtracts segment lengths until the index falls inside a segment.
// O(segment count); no cached offsets, so it is always correct after
// independent segment mutation.
func (b *Braid[T]) resolve(i int) (location, bool) {
	if b == nil || i < 0 {
		return location{}, false
	}
	for k, seg := range b.segments {
		if i < seg.Len() {
			return location{seg: k, off: i}, true
		}
		i -= seg.Len()
	}
	return location{}, false
}

// Get returns the element at global index i.
//
// Out-of-range indices report absence (ok=false), not an error.
func (b *Braid[T]) Get(i int) (T, bool) {
	var none T
	loc, ok := b.resolve(i)
	if !ok {
		return none, false
	}
	value, err := b.segments[loc.seg].At(loc.off)
	assert(err == nil, "braid.Get: resolved offset out of segment bounds")
	return value, true
}

// Set overwrites the element at global index i.
//
// Returns false for out-of-range indices, leaving all segments unchanged.
func (b *Braid[T]) Set(i int, value T) bool {
	loc, ok := b.resolve(i)
	if !ok {
		return false
	}
	err := b.segments[loc.seg].Set(loc.off, value)
	assert(err == nil, "braid.Set: resolved offset out of segment bounds")
	return true
}

// dropSegment removes the segment at list position k.
func (b *Braid[T]) dropSegment(k int) {
	assert(k >= 0 && k < len(b.segments), "braid: dropSegment index out of range")
	b.segments = append(b.segments[:k], b.segments[k+1:]...)
}
