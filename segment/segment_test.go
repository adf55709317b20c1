package segment

import (
	"errors"
	"testing"
)

func TestNewCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	seg := New(src...)
	src[0] = 99
	v, err := seg.At(0)
	if err != nil {
		t.Fatalf("unexpected At error: %v", err)
	}
	if v != 1 {
		t.Fatalf("segment should not alias constructor input, got %d", v)
	}
}

func TestFromSliceTakesOwnership(t *testing.T) {
	src := []int{1, 2, 3}
	seg := FromSlice(src)
	if seg.Len() != 3 {
		t.Fatalf("unexpected len: %d", seg.Len())
	}
}

func TestAtSetBounds(t *testing.T) {
	seg := New(1, 2, 3)
	if _, err := seg.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := seg.At(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := seg.Set(1, 42); err != nil {
		t.Fatalf("unexpected Set error: %v", err)
	}
	v, _ := seg.At(1)
	if v != 42 {
		t.Fatalf("Set did not overwrite, got %d", v)
	}
	if err := seg.Set(3, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds from Set, got %v", err)
	}
}

func TestPushPopShiftUnshift(t *testing.T) {
	seg := New[int]()
	seg.Push(2)
	seg.Push(3)
	seg.Unshift(1)
	if got := seg.Values(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("unexpected values: %v", got)
	}
	v, err := seg.Shift()
	if err != nil || v != 1 {
		t.Fatalf("unexpected Shift result: %d, %v", v, err)
	}
	v, err = seg.Pop()
	if err != nil || v != 3 {
		t.Fatalf("unexpected Pop result: %d, %v", v, err)
	}
	if seg.Len() != 1 {
		t.Fatalf("unexpected len after removals: %d", seg.Len())
	}
}

func TestPopShiftEmpty(t *testing.T) {
	seg := New[string]()
	if _, err := seg.Pop(); !errors.Is(err, ErrEmptySegment) {
		t.Fatalf("expected ErrEmptySegment from Pop, got %v", err)
	}
	if _, err := seg.Shift(); !errors.Is(err, ErrEmptySegment) {
		t.Fatalf("expected ErrEmptySegment from Shift, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	seg := New(1, 2, 3)
	cpy := seg.Clone()
	if err := cpy.Set(0, 99); err != nil {
		t.Fatalf("unexpected Set error: %v", err)
	}
	v, _ := seg.At(0)
	if v != 1 {
		t.Fatalf("clone shares storage with original, got %d", v)
	}
}

func TestValuesIsACopy(t *testing.T) {
	seg := New(1, 2, 3)
	vals := seg.Values()
	vals[0] = 99
	v, _ := seg.At(0)
	if v != 1 {
		t.Fatalf("Values must not alias segment storage, got %d", v)
	}
}

func TestAllYieldsOffsetsInOrder(t *testing.T) {
	seg := New("a", "b", "c")
	wantOff := 0
	for i, v := range seg.All() {
		if i != wantOff {
			t.Fatalf("unexpected offset %d, want %d", i, wantOff)
		}
		if v != []string{"a", "b", "c"}[wantOff] {
			t.Fatalf("unexpected value %q at %d", v, i)
		}
		wantOff++
	}
	if wantOff != 3 {
		t.Fatalf("iterator yielded %d elements", wantOff)
	}
}
