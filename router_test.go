package braid

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExecuteReadAndWrite(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := FromSlices([]int{1, 2, 3}, []int{4, 5, 6})
	res, err := b.Execute(Op[int]{Kind: OpGet, Index: 3})
	if err != nil {
		t.Fatalf("unexpected Execute error: %v", err)
	}
	if !res.Ok || res.Value != 4 {
		t.Errorf("OpGet(3) = %d, %v; want 4, true", res.Value, res.Ok)
	}
	res, err = b.Execute(Op[int]{Kind: OpGet, Index: 6})
	if err != nil {
		t.Fatalf("out-of-range read must not be an error, got %v", err)
	}
	if res.Ok {
		t.Errorf("OpGet(6) must report absence")
	}
	res, err = b.Execute(Op[int]{Kind: OpSet, Index: 0, Value: 10})
	if err != nil || !res.Ok {
		t.Errorf("OpSet(0) failed: %v, %v", res.Ok, err)
	}
	res, err = b.Execute(Op[int]{Kind: OpSet, Index: 42, Value: 10})
	if err != nil {
		t.Fatalf("out-of-range write must not be an error, got %v", err)
	}
	if res.Ok {
		t.Errorf("OpSet(42) must report failure")
	}
}

func TestExecuteBoundaryOps(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := FromSlices([]int{1}, []int{2})
	if _, err := b.Execute(Op[int]{Kind: OpAppend, Value: 3}); err != nil {
		t.Fatalf("unexpected OpAppend error: %v", err)
	}
	if _, err := b.Execute(Op[int]{Kind: OpPrepend, Value: 0}); err != nil {
		t.Fatalf("unexpected OpPrepend error: %v", err)
	}
	res, err := b.Execute(Op[int]{Kind: OpPopLast})
	if err != nil || res.Value != 3 {
		t.Errorf("OpPopLast = %d, %v; want 3", res.Value, err)
	}
	res, err = b.Execute(Op[int]{Kind: OpPopFirst})
	if err != nil || res.Value != 0 {
		t.Errorf("OpPopFirst = %d, %v; want 0", res.Value, err)
	}

	void := New[int]()
	if _, err := void.Execute(Op[int]{Kind: OpPopLast}); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
}

func TestExecuteAddressedOps(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := FromSlices([]int{1}, []int{2})
	if _, err := b.Execute(Op[int]{Kind: OpAppendAt, Index: 0, Value: 9}); err != nil {
		t.Fatalf("unexpected OpAppendAt error: %v", err)
	}
	if _, err := b.Execute(Op[int]{Kind: OpPrependAt, Index: 1, Value: 8}); err != nil {
		t.Fatalf("unexpected OpPrependAt error: %v", err)
	}
	if _, err := b.Execute(Op[int]{Kind: OpAppendAt, Index: 5, Value: 9}); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	want := []int{1, 9, 8, 2}
	for i, w := range want {
		if v, _ := b.Get(i); v != w {
			t.Fatalf("unexpected contents after addressed ops, Get(%d) = %d", i, v)
		}
	}
}

func TestExecuteSnapshotAndEnumerate(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := FromSlices([]int{1, 2}, []int{3})
	res, err := b.Execute(Op[int]{Kind: OpSnapshot})
	if err != nil {
		t.Fatalf("unexpected OpSnapshot error: %v", err)
	}
	if len(res.Snapshot) != 3 {
		t.Errorf("unexpected snapshot: %v", res.Snapshot)
	}
	res, err = b.Execute(Op[int]{Kind: OpEnumerate})
	if err != nil || res.Cursor == nil {
		t.Fatalf("OpEnumerate must return a cursor, got %v, %v", res.Cursor, err)
	}
	seg, v, ok := res.Cursor.Next()
	if !ok || seg != 0 || v != 1 {
		t.Errorf("enumerated cursor starts at (%d,%d,%v)", seg, v, ok)
	}
}

func TestExecuteUnknownOp(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := FromSlices([]int{1})
	if _, err := b.Execute(Op[int]{Kind: opUnknown}); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("expected ErrUnknownOp, got %v", err)
	}
}
