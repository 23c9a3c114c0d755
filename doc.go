// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package circuit provides unbounded, goroutine-safe single-ended containers
// with blocking and non-blocking removal.
//
// One synchronization implementation, [Host], serves every removal order.
// The order is a storage policy chosen at construction:
//
//   - [Stack]: LIFO, backed by [StackPolicy] (slice)
//   - [Queue]: FIFO, backed by [QueuePolicy] (chunked deque)
//
// # Quick Start
//
// Factory functions hide the order behind the [Circuit] interface:
//
//	c := circuit.MakeStack[Event]()
//	c := circuit.MakeQueue[*Request]()
//
// Concrete constructors keep the full API (Swap, Clone, Move, TryPop, ...):
//
//	s := circuit.NewStack[int]()
//	q := circuit.NewQueue[int]()
//
// The zero value of a host is also usable, with spinning disabled:
//
//	var s circuit.Stack[int]
//
// Builder API for configured construction:
//
//	c := circuit.Build[Event](circuit.New().LIFO())          // → *Stack
//	q := circuit.BuildQueue[Event](circuit.New().Spin(0))    // → *Queue, no spinning
//
// # Basic Usage
//
//	c := circuit.MakeQueue[int]()
//
//	// Push (never blocks, never fails)
//	c.Push(42)
//
//	// Blocking pop: parks until a value arrives
//	var v int
//	c.WaitPop(&v)
//
//	// Non-blocking pop: false when empty, v untouched
//	if c.CheckPop(&v) {
//	    use(v)
//	}
//
// # Common Patterns
//
// Worker Pool (FIFO):
//
//	jobs := circuit.MakeQueue[Job]()
//
//	for range numWorkers {
//	    go func() {
//	        var job Job
//	        for {
//	            jobs.WaitPop(&job)
//	            if job.Stop {
//	                return
//	            }
//	            job.Run()
//	        }
//	    }()
//	}
//
// Depth-First Work (LIFO):
//
//	frontier := circuit.NewStack[Node]()
//	frontier.Push(root)
//
//	var n Node
//	for frontier.CheckPop(&n) {
//	    for _, child := range n.Children() {
//	        frontier.Push(child)
//	    }
//	}
//
// Polling Consumer:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := q.TryPop()
//	    if err != nil {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    process(v)
//	}
//
// # Storage Policies
//
// A policy is a plain value type S whose pointer *S implements [Policy].
// It owns the storage and the removal order and never locks. The host keeps
// S inline and calls it through the pointer type parameter, so dispatch is
// static:
//
//	type Host[T, S any, P Policy[T, S]] struct { ... }
//
//	type Stack[T any] = Host[T, StackPolicy[T], *StackPolicy[T]]
//	type Queue[T any] = Host[T, QueuePolicy[T], *QueuePolicy[T]]
//
// Custom policies plug in the same way:
//
//	h := circuit.NewHost[Task, PriorityPolicy[Task]]()
//
// RemoveInto is only ever called by the host on non-empty storage.
// Calling it on empty storage directly panics.
//
// # Whole-Container Operations
//
//	a.Swap(b)       // exchange contents, O(1)
//	c := a.Clone()  // independent copy
//	a.CopyFrom(b)   // replace a with a copy of b
//	m := a.Move()   // new host owns a's values, a is empty
//	a.MoveFrom(b)   // a takes b's values, b is empty
//
// Operations on two hosts lock both in a fixed order (by creation id),
// so a.Swap(b) and b.Swap(a) running concurrently cannot deadlock. Values
// are copied by assignment: for pointer types the referents are shared.
//
// # Error Handling
//
// Only non-blocking removal reports absence. [Host.CheckPop] returns false;
// [Host.TryPop] returns [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency:
//
//	circuit.IsWouldBlock(err)  // true if empty
//	circuit.IsSemantic(err)    // true if control flow signal
//	circuit.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Push cannot fail: circuits are unbounded. Programmer errors panic.
//
// # Shutdown
//
// Circuits have no closed state. WaitPop blocks until a value arrives,
// however long that takes. Stop consumers by pushing a sentinel value per
// consumer, or wait with a context:
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel()
//
//	var v int
//	if err := q.WaitPopContext(ctx, &v); err != nil {
//	    return err // context.Canceled or context.DeadlineExceeded
//	}
//
// # Thread Safety
//
// All Host methods may be called from any number of goroutines. A single
// mutex per host totally orders its operations. Push wakes at least one
// waiter; which one is unspecified. Len and IsEmpty read an atomic snapshot
// without locking.
//
// Policies ([StackPolicy], [QueuePolicy]) are not safe for concurrent use
// on their own.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, [code.hybscloud.com/spin] for the spin phase of WaitPop, and
// [github.com/ef-ds/deque] for FIFO storage.
package circuit
