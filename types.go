// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package circuit

import "context"

// Circuit is the single-ended producer-consumer container interface.
//
// A Circuit hides its removal order: callers holding one cannot tell a
// stack from a queue except by the order values come back out.
//
// Example:
//
//	c := circuit.MakeQueue[int]()
//	c.Push(1)
//	c.Push(2)
//
//	var v int
//	c.WaitPop(&v) // v == 1
//	if !c.CheckPop(&v) {
//	    // Empty - v still holds 1
//	}
type Circuit[T any] interface {
	// Push stores v and wakes one goroutine blocked in WaitPop, if any.
	// Push never blocks beyond brief lock contention and never fails.
	Push(v T)

	// WaitPop blocks until a value is available, removes it and writes it
	// to *out. There is no timeout; see [Waiter] for a context-aware form.
	WaitPop(out *T)

	// CheckPop removes a value into *out and returns true, or returns false
	// immediately with *out unmodified when the circuit is empty.
	CheckPop(out *T) bool
}

// Poller is implemented by circuits that offer a value-returning
// non-blocking pop.
type Poller[T any] interface {
	// TryPop removes and returns a value.
	// Returns (zero-value, ErrWouldBlock) if the circuit is empty.
	TryPop() (T, error)
}

// Waiter is implemented by circuits whose blocking pop can be abandoned.
//
// Example:
//
//	if w, ok := c.(circuit.Waiter[Job]); ok {
//	    ctx, cancel := context.WithTimeout(ctx, time.Second)
//	    defer cancel()
//	    var job Job
//	    if err := w.WaitPopContext(ctx, &job); err != nil {
//	        return err
//	    }
//	}
type Waiter[T any] interface {
	// WaitPopContext blocks like WaitPop until a value is available or ctx
	// is done. On success it writes the value to *out and returns nil.
	// Otherwise it returns ctx.Err() and leaves *out unmodified.
	WaitPopContext(ctx context.Context, out *T) error
}

// Sizer reports how many values a circuit holds.
//
// The count is a snapshot: under concurrent use it may be stale by the time
// the caller acts on it.
type Sizer interface {
	Len() int
	IsEmpty() bool
}

// Policy is the storage contract a [Host] delegates to.
//
// A policy owns the raw storage and the removal order and never locks;
// the host serializes every call. S is the policy's value type and the
// policy methods are declared on *S, which lets the host keep the policy
// inline and dispatch statically.
//
// Implementations shipped with the package are [StackPolicy] (LIFO) and
// [QueuePolicy] (FIFO). Zero values of S must be empty and ready to use.
type Policy[T, S any] interface {
	*S

	// Insert takes v as the next candidate for removal.
	Insert(v T)

	// RemoveInto moves the next value to remove into *out and erases it.
	// The storage must not be empty; implementations panic otherwise.
	RemoveInto(out *T)

	// IsEmpty reports whether the storage holds no values. O(1).
	IsEmpty() bool

	// Len returns the number of stored values. O(1).
	Len() int

	// CopyFrom replaces the storage with a copy of src's storage.
	CopyFrom(src *S)

	// MoveFrom takes ownership of src's storage, leaving src empty.
	MoveFrom(src *S)

	// SwapWith exchanges storage with other without copying elements.
	SwapWith(other *S)
}
