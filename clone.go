package braid

import (
	"github.com/npillmayer/braid/deep"
	"github.com/npillmayer/braid/segment"
)

// Clone returns a new braid rebuilt from per-segment copies.
//
// Segment boundaries and order are preserved; segment storage is fresh, so
// mutating the clone's segments leaves the original untouched. Elements are
// copied shallowly; use DeepCopy for element-level copying.
func (b *Braid[T]) Clone() *Braid[T] {
	if b == nil {
		return nil
	}
	segs := make([]*segment.Segment[T], 0, len(b.segments))
	for _, seg := range b.segments {
		segs = append(segs, seg.Clone())
	}
	return New(segs...)
}

// DeepCopy implements the deep.Copier hook.
//
// The structural copier must not treat a braid as an opaque value: the copy
// is a new braid built from independently deep-copied segments, with segment
// boundaries and order preserved. Elements are routed back through deep.Copy
// so nested structures (and nested braids) are copied as well.
func (b *Braid[T]) DeepCopy() any {
	if b == nil {
		return (*Braid[T])(nil)
	}
	segs := make([]*segment.Segment[T], 0, len(b.segments))
	for _, seg := range b.segments {
		values := seg.Values()
		for i, v := range values {
			// Nil interface elements fail the assertion and stay as-is.
			if copied, ok := deep.Copy(v).(T); ok {
				values[i] = copied
			}
		}
		segs = append(segs, segment.FromSlice(values))
	}
	return New(segs...)
}

var _ deep.Copier = (*Braid[any])(nil)
