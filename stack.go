// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package circuit

import "slices"

// StackPolicy is a last-in-first-out storage policy backed by a slice.
//
// RemoveInto returns the most recently inserted value. The zero value is an
// empty stack. StackPolicy is not safe for concurrent use on its own; wrap it
// in a [Host] (see [Stack]).
type StackPolicy[T any] struct {
	items []T
}

// Insert pushes v onto the top of the stack.
func (p *StackPolicy[T]) Insert(v T) {
	p.items = append(p.items, v)
}

// RemoveInto pops the top of the stack into *out.
// Panics if the stack is empty.
func (p *StackPolicy[T]) RemoveInto(out *T) {
	n := len(p.items)
	if n == 0 {
		panic("circuit: remove from empty stack")
	}
	*out = p.items[n-1]
	var zero T
	p.items[n-1] = zero // Release reference for GC
	p.items = p.items[:n-1]
}

// IsEmpty reports whether the stack holds no values.
func (p *StackPolicy[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Len returns the number of values on the stack.
func (p *StackPolicy[T]) Len() int {
	return len(p.items)
}

// CopyFrom replaces the stack with a copy of src.
// Elements are copied by assignment.
func (p *StackPolicy[T]) CopyFrom(src *StackPolicy[T]) {
	if p == src {
		return
	}
	p.items = slices.Clone(src.items)
}

// MoveFrom takes over src's backing slice and leaves src empty.
func (p *StackPolicy[T]) MoveFrom(src *StackPolicy[T]) {
	if p == src {
		return
	}
	p.items = src.items
	src.items = nil
}

// SwapWith exchanges backing slices with other in O(1).
func (p *StackPolicy[T]) SwapWith(other *StackPolicy[T]) {
	p.items, other.items = other.items, p.items
}
