package braid

import "fmt"

// An OpKind classifies an operation routed by Execute.
type OpKind uint8

// Operation kinds routed by Execute. The set is closed: every braid
// operation is one of these, and dispatch is a plain switch instead of
// open-ended reflective lookup.
const (
	OpGet OpKind = iota
	OpSet
	OpAppend
	OpPrepend
	OpPopLast
	OpPopFirst
	OpAppendAt
	OpPrependAt
	OpSnapshot
	OpEnumerate
	opUnknown
)

// An Op represents one operation to perform on a braid.
//
// Index carries the global logical index for OpGet/OpSet and the segment
// index for OpAppendAt/OpPrependAt. Value carries the operand for writing
// kinds and is ignored otherwise.
type Op[T any] struct {
	Kind  OpKind
	Index int
	Value T
}

// A Result carries the outcome of a routed operation.
//
// Value and Ok are set by element reads, writes and removals; Ok mirrors the
// absence/boolean-failure conventions of Get and Set. Snapshot is set by
// OpSnapshot, Cursor by OpEnumerate.
type Result[T any] struct {
	Value    T
	Ok       bool
	Snapshot []T
	Cursor   *Cursor[T]
}

// Execute classifies an operation and dispatches it to the braid.
//
// Routing targets, by kind:
//   - OpGet, OpSet: index resolution plus direct element access,
//   - OpAppend, OpPrepend, OpPopLast, OpPopFirst: a boundary segment,
//   - OpAppendAt, OpPrependAt: the explicitly addressed segment,
//   - OpSnapshot: a flattened derived copy,
//   - OpEnumerate: a fresh cursor.
//
// Out-of-range element access is not an error (Ok=false in the result);
// invalid segment addressing and boundary mutation on an empty braid are.
func (b *Braid[T]) Execute(op Op[T]) (Result[T], error) {
	if b == nil {
		return Result[T]{}, ErrIllegalArguments
	}
	switch op.Kind {
	case OpGet:
		value, ok := b.Get(op.Index)
		return Result[T]{Value: value, Ok: ok}, nil
	case OpSet:
		return Result[T]{Ok: b.Set(op.Index, op.Value)}, nil
	case OpAppend:
		if err := b.Append(op.Value); err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Ok: true}, nil
	case OpPrepend:
		if err := b.Prepend(op.Value); err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Ok: true}, nil
	case OpPopLast:
		value, err := b.PopLast()
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Value: value, Ok: true}, nil
	case OpPopFirst:
		value, err := b.PopFirst()
		if err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Value: value, Ok: true}, nil
	case OpAppendAt:
		if err := b.AppendAt(op.Index, op.Value); err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Ok: true}, nil
	case OpPrependAt:
		if err := b.PrependAt(op.Index, op.Value); err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Ok: true}, nil
	case OpSnapshot:
		return Result[T]{Snapshot: b.Snapshot(), Ok: true}, nil
	case OpEnumerate:
		return Result[T]{Cursor: b.Cursor(), Ok: true}, nil
	}
	return Result[T]{}, fmt.Errorf("%w: kind %d", ErrUnknownOp, op.Kind)
}
