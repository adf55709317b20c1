package compare

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"time"
)

// A Func is a three-way comparator over T.
type Func[T any] func(a, b T) int

// Ascending returns a comparator ordering values ascending.
func Ascending[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// Descending returns a comparator ordering values descending.
func Descending[T cmp.Ordered]() Func[T] {
	return Reversed(Ascending[T]())
}

// By returns a comparator ordering ascending by an extracted key.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByDesc returns a comparator ordering descending by an extracted key.
func ByDesc[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return Reversed(By(key))
}

// ByTime returns a comparator ordering ascending by an extracted timestamp.
func ByTime[T any](key func(T) time.Time) Func[T] {
	return func(a, b T) int {
		return key(a).Compare(key(b))
	}
}

// ByLen returns a comparator ordering ascending by string length.
func ByLen[T any](key func(T) string) Func[T] {
	return By(func(v T) int {
		return len(key(v))
	})
}

// ByPercent returns a comparator ordering ascending by a percentage key.
//
// The key reports the percentage as a float64, e.g. 42.5 for 42.5%.
func ByPercent[T any](key func(T) float64) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Bool returns a comparator ordering false before true.
func Bool[T any](key func(T) bool) Func[T] {
	return By(func(v T) int {
		if key(v) {
			return 1
		}
		return 0
	})
}

// Reversed flips a comparator.
func Reversed[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return -f(a, b)
	}
}

// Chain combines comparators into a multi-key ordering.
//
// Later comparators break ties left by earlier ones.
func Chain[T any](fs ...Func[T]) Func[T] {
	return func(a, b T) int {
		for _, f := range fs {
			if c := f(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Shuffled returns a comparator imposing a pseudo-random but consistent
// order derived from a seed.
//
// Elements are ranked by a seeded hash of their printed representation, so
// the comparator is a valid ordering (sorting will not misbehave) while the
// resulting arrangement looks shuffled. Seed 0 derives a seed from the
// clock. Equal-printing elements keep their relative order.
func Shuffled[T any](seed int64) Func[T] {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rank := func(v T) uint64 {
		h := fnv.New64a()
		fmt.Fprintf(h, "%d|%v", seed, v)
		return h.Sum64()
	}
	return func(a, b T) int {
		return cmp.Compare(rank(a), rank(b))
	}
}
