// Package fixed provides bounded containers that never grow past the
// capacity chosen when they are created.
//
// A container either allocates its backing array once (New, NewBuffer) or
// wraps storage owned by the caller (From, BufferFrom). Appending beyond the
// capacity fails with ErrCapacity and leaves the container unchanged.
package fixed

import "errors"

// ErrCapacity is returned when an append would exceed the container capacity.
var ErrCapacity = errors.New("fixed: capacity exceeded")

// Vec is a sequence with a fixed maximum length.
// The zero value has capacity 0 and rejects every Push.
type Vec[T any] struct {
	items []T
}

// New creates an empty Vec that can hold up to capacity items.
func New[T any](capacity int) Vec[T] {
	if capacity < 0 {
		capacity = 0
	}
	return Vec[T]{items: make([]T, 0, capacity)}
}

// From creates an empty Vec backed by the caller's storage.
// The capacity is len(backing); existing contents are overwritten by Push.
func From[T any](backing []T) Vec[T] {
	return Vec[T]{items: backing[:0:len(backing)]}
}

// Push appends item. It returns ErrCapacity if the Vec is full.
func (v *Vec[T]) Push(item T) error {
	if len(v.items) == cap(v.items) {
		return ErrCapacity
	}
	v.items = append(v.items, item)
	return nil
}

// Len returns the number of items stored.
func (v *Vec[T]) Len() int { return len(v.items) }

// Cap returns the maximum number of items.
func (v *Vec[T]) Cap() int { return cap(v.items) }

// Remaining returns how many more items fit.
func (v *Vec[T]) Remaining() int { return cap(v.items) - len(v.items) }

// Full reports whether no more items fit.
func (v *Vec[T]) Full() bool { return len(v.items) == cap(v.items) }

// Slice returns the items in insertion order.
// The result aliases the Vec storage and is capped at its length,
// so appending to it never writes into the Vec.
func (v *Vec[T]) Slice() []T {
	return v.items[:len(v.items):len(v.items)]
}

// At returns the item at index i. It panics if i is out of range.
func (v *Vec[T]) At(i int) T { return v.items[i] }

// Truncate shortens the Vec to n items. It is a no-op if n >= Len.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(v.items) {
		clear(v.items[n:])
		v.items = v.items[:n]
	}
}

// Reset removes all items while keeping the capacity.
func (v *Vec[T]) Reset() { v.Truncate(0) }
