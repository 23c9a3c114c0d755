// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package circuit

import "github.com/ef-ds/deque"

// QueuePolicy is a first-in-first-out storage policy backed by a chunked
// deque ([github.com/ef-ds/deque]).
//
// RemoveInto returns the least recently inserted value. The deque grows and
// shrinks in fixed-size chunks, so a long-lived queue does not keep a
// high-water-mark slice alive the way a resliced []T would.
//
// The zero value is an empty queue. QueuePolicy is not safe for concurrent
// use on its own; wrap it in a [Host] (see [Queue]).
type QueuePolicy[T any] struct {
	d *deque.Deque // nil until first Insert
}

// Insert appends v at the tail of the queue.
func (p *QueuePolicy[T]) Insert(v T) {
	if p.d == nil {
		p.d = deque.New()
	}
	p.d.PushBack(v)
}

// RemoveInto pops the head of the queue into *out.
// Panics if the queue is empty.
func (p *QueuePolicy[T]) RemoveInto(out *T) {
	if p.d == nil {
		panic("circuit: remove from empty queue")
	}
	v, ok := p.d.PopFront()
	if !ok {
		panic("circuit: remove from empty queue")
	}
	// Comma-ok keeps nil interface values of an interface-typed T intact.
	*out, _ = v.(T)
}

// IsEmpty reports whether the queue holds no values.
func (p *QueuePolicy[T]) IsEmpty() bool {
	return p.d == nil || p.d.Len() == 0
}

// Len returns the number of values in the queue.
func (p *QueuePolicy[T]) Len() int {
	if p.d == nil {
		return 0
	}
	return p.d.Len()
}

// CopyFrom replaces the queue with a copy of src.
//
// The source is rotated once, front to back, so it ends in its original
// order. Elements are copied by assignment.
func (p *QueuePolicy[T]) CopyFrom(src *QueuePolicy[T]) {
	if p == src {
		return
	}
	if src.d == nil {
		p.d = nil
		return
	}
	d := deque.New()
	for range src.d.Len() {
		v, _ := src.d.PopFront()
		src.d.PushBack(v)
		d.PushBack(v)
	}
	p.d = d
}

// MoveFrom takes over src's deque and leaves src empty.
func (p *QueuePolicy[T]) MoveFrom(src *QueuePolicy[T]) {
	if p == src {
		return
	}
	p.d = src.d
	src.d = nil
}

// SwapWith exchanges deques with other in O(1).
func (p *QueuePolicy[T]) SwapWith(other *QueuePolicy[T]) {
	p.d, other.d = other.d, p.d
}
