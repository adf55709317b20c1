package braid

import "slices"

// Bulk operations derive their results from a flattened snapshot: a freshly
// allocated slice holding all segments' elements in order. Mutating-looking
// calls (Splice) edit only the snapshot and never write back to owned
// segments. Only the boundary and addressed-segment operations in ops.go
// mutate owned storage.

// Snapshot returns a flat copy of all elements in logical order.
func (b *Braid[T]) Snapshot() []T {
	if b == nil {
		return nil
	}
	buf := make([]T, 0, b.Len())
	for _, seg := range b.segments {
		buf = seg.AppendTo(buf)
	}
	return buf
}

// Flatten returns the concatenation of all segments as one flat slice.
//
// For a braid this coincides with Snapshot; the name mirrors the flattening
// of the segment-of-segments structure.
func (b *Braid[T]) Flatten() []T {
	return b.Snapshot()
}

// Filter returns the snapshot elements for which pred returns true.
func (b *Braid[T]) Filter(pred func(T) bool) []T {
	var out []T
	for _, v := range b.Snapshot() {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// SliceRange extracts the snapshot range [from,to).
//
// Bounds are clamped to the snapshot like Go slicing of a shorter slice
// would be: negative from is treated as 0, to beyond the end as the end, and
// an inverted range yields an empty result.
func (b *Braid[T]) SliceRange(from, to int) []T {
	snap := b.Snapshot()
	if from < 0 {
		from = 0
	}
	if to > len(snap) {
		to = len(snap)
	}
	if from >= to {
		return nil
	}
	return append([]T(nil), snap[from:to]...)
}

// Splice performs a splice-style edit on the snapshot.
//
// Starting at start, deleteCount elements are removed and items are inserted
// in their place. Returns the removed elements and the edited snapshot. The
// owned segments are not touched; Splice is a derivation, not a mutation.
func (b *Braid[T]) Splice(start, deleteCount int, items ...T) (removed, result []T) {
	snap := b.Snapshot()
	if start < 0 {
		start = 0
	}
	if start > len(snap) {
		start = len(snap)
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if start+deleteCount > len(snap) {
		deleteCount = len(snap) - start
	}
	removed = append([]T(nil), snap[start:start+deleteCount]...)
	result = make([]T, 0, len(snap)-deleteCount+len(items))
	result = append(result, snap[:start]...)
	result = append(result, items...)
	result = append(result, snap[start+deleteCount:]...)
	return removed, result
}

// Entry is one (logical index, element) pair of a snapshot.
type Entry[T any] struct {
	Index int
	Value T
}

// Entries returns (logical index, element) pairs for the whole snapshot.
//
// Unlike cursor enumeration, the index here is the running logical index,
// not the segment index.
func (b *Braid[T]) Entries() []Entry[T] {
	snap := b.Snapshot()
	out := make([]Entry[T], len(snap))
	for i, v := range snap {
		out[i] = Entry[T]{Index: i, Value: v}
	}
	return out
}

// Map applies f to every snapshot element and returns the results.
func Map[T, U any](b *Braid[T], f func(T) U) []U {
	snap := b.Snapshot()
	out := make([]U, len(snap))
	for i, v := range snap {
		out[i] = f(v)
	}
	return out
}

// FlatMap applies f to every snapshot element and concatenates the results.
func FlatMap[T, U any](b *Braid[T], f func(T) []U) []U {
	var out []U
	for _, v := range b.Snapshot() {
		out = append(out, f(v)...)
	}
	return out
}

// Reduce folds the snapshot left to right, starting from init.
func Reduce[T, A any](b *Braid[T], init A, f func(A, T) A) A {
	acc := init
	for _, v := range b.Snapshot() {
		acc = f(acc, v)
	}
	return acc
}

// Sorted returns the snapshot sorted by cmp (stable).
func Sorted[T any](b *Braid[T], cmp func(a, b T) int) []T {
	snap := b.Snapshot()
	slices.SortStableFunc(snap, cmp)
	return snap
}
