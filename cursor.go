package braid

import "iter"

// Cursor is ephemeral enumeration state over a braid.
//
// A cursor is created fresh by each call to Braid.Cursor, advances
// monotonically through (segment index, element) pairs and cannot be
// restarted once exhausted. It does not snapshot the braid: mutating the
// braid while a cursor is live leaves the cursor position undefined.
type Cursor[T any] struct {
	b   *Braid[T]
	seg int
	off int
}

// Cursor acquires a fresh enumeration cursor positioned before the first
// element.
func (b *Braid[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{b: b}
}

// Next produces the next (segment index, element) pair.
//
// Note the first return value is the segment index, not a running logical
// index. ok is false once the cursor is exhausted; the terminal state is
// sticky.
func (c *Cursor[T]) Next() (segIndex int, value T, ok bool) {
	var none T
	if c == nil || c.b == nil {
		return 0, none, false
	}
	// Skipping exhausted segments keeps the cursor well defined even if a
	// live segment handle was emptied externally.
	for c.seg < len(c.b.segments) && c.off >= c.b.segments[c.seg].Len() {
		c.seg++
		c.off = 0
	}
	if c.seg >= len(c.b.segments) {
		c.b = nil // terminal
		return 0, none, false
	}
	value, err := c.b.segments[c.seg].At(c.off)
	assert(err == nil, "braid cursor: local offset out of segment bounds")
	segIndex = c.seg
	c.off++
	if c.off >= c.b.segments[c.seg].Len() {
		c.seg++
		c.off = 0
	}
	return segIndex, value, true
}

// Done reports whether the cursor has reached its terminal state.
func (c *Cursor[T]) Done() bool {
	return c == nil || c.b == nil
}

// All returns an iterator over (segment index, element) pairs.
//
// Each range over the returned sequence acquires its own cursor, so a fully
// consumed range does not affect later ones.
func (b *Braid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		cursor := b.Cursor()
		for {
			seg, value, ok := cursor.Next()
			if !ok {
				return
			}
			if !yield(seg, value) {
				return
			}
		}
	}
}
