// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package circuit

import (
	"context"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// hostSeq hands out creation ids. Two-host operations lock in ascending id
// order so that concurrent a.Swap(b) and b.Swap(a) cannot deadlock.
var hostSeq atomix.Uint64

// Host is the goroutine-safe container that turns a single-threaded storage
// [Policy] into a shared producer-consumer circuit.
//
// A Host owns one mutex, one condition variable bound to it, and one policy
// value S stored inline. Every policy call happens with the mutex held.
// Consumers in WaitPop park on the condition variable while the storage is
// empty; Push wakes one of them.
//
// The removal order is entirely the policy's: [Stack] is a Host over
// [StackPolicy] (LIFO), [Queue] is a Host over [QueuePolicy] (FIFO).
//
// Host has no closed state. A goroutine blocked in WaitPop stays blocked
// until a value arrives; coordinate shutdown with a sentinel value or use
// WaitPopContext.
//
// The zero value is an empty circuit ready for use, with a zero spin budget:
//
//	var s circuit.Stack[int]
//	s.Push(1)
//
// A Host must not be copied after first use. Use Clone or CopyFrom.
type Host[T, S any, P Policy[T, S]] struct {
	mu    sync.Mutex
	cond  sync.Cond
	once  sync.Once
	store S
	size  atomix.Int64 // Mirror of store length, written under mu
	id    uint64
	spins int // WaitPop spin budget before parking
}

// Stack is a LIFO circuit.
type Stack[T any] = Host[T, StackPolicy[T], *StackPolicy[T]]

// Queue is a FIFO circuit.
type Queue[T any] = Host[T, QueuePolicy[T], *QueuePolicy[T]]

// NewHost creates an empty Host over policy S with the default spin budget.
// The pointer policy type is inferred:
//
//	h := circuit.NewHost[int, circuit.StackPolicy[int]]()
func NewHost[T, S any, P Policy[T, S]]() *Host[T, S, P] {
	return newHost[T, S, P](defaultSpinTries)
}

// NewStack creates an empty LIFO circuit.
func NewStack[T any]() *Stack[T] {
	return newHost[T, StackPolicy[T], *StackPolicy[T]](defaultSpinTries)
}

// NewQueue creates an empty FIFO circuit.
func NewQueue[T any]() *Queue[T] {
	return newHost[T, QueuePolicy[T], *QueuePolicy[T]](defaultSpinTries)
}

func newHost[T, S any, P Policy[T, S]](spins int) *Host[T, S, P] {
	h := &Host[T, S, P]{spins: spins}
	h.lazyInit()
	return h
}

// lazyInit binds the condition variable to the mutex and draws a creation
// id. It runs once, on first use, so the zero value works.
func (h *Host[T, S, P]) lazyInit() {
	h.once.Do(func() {
		h.cond.L = &h.mu
		h.id = hostSeq.AddAcqRel(1)
	})
}

func (h *Host[T, S, P]) policy() P {
	return P(&h.store)
}

// Push stores v and wakes one goroutine blocked in WaitPop, if any.
func (h *Host[T, S, P]) Push(v T) {
	h.lazyInit()
	h.mu.Lock()
	h.policy().Insert(v)
	h.size.AddAcqRel(1)
	h.mu.Unlock()
	h.cond.Signal()
}

// PushAll stores vs in argument order under a single lock acquisition and
// wakes up to len(vs) waiters.
func (h *Host[T, S, P]) PushAll(vs ...T) {
	if len(vs) == 0 {
		return
	}
	h.lazyInit()
	h.mu.Lock()
	p := h.policy()
	for _, v := range vs {
		p.Insert(v)
	}
	h.size.AddAcqRel(int64(len(vs)))
	h.mu.Unlock()
	for range vs {
		h.cond.Signal()
	}
}

// WaitPop blocks until a value is available, removes it per the policy's
// order and writes it to *out.
//
// Before parking, WaitPop spins briefly on the length mirror; the decision
// to remove is always re-made under the mutex.
func (h *Host[T, S, P]) WaitPop(out *T) {
	h.lazyInit()
	h.spinUntilReady()

	h.mu.Lock()
	for h.policy().IsEmpty() {
		h.cond.Wait()
	}
	h.removeLocked(out)
	h.mu.Unlock()
}

// WaitPopContext is WaitPop with cancellation. It returns ctx.Err() and
// leaves *out unmodified if ctx is done before a value is available.
//
// A value that is already present wins over a done context. A waiter that
// wakes up always checks the storage before the context, so a wake-up from
// Push is never discarded by a waiter that is about to give up.
func (h *Host[T, S, P]) WaitPopContext(ctx context.Context, out *T) error {
	if ctx == nil {
		panic("circuit: nil context")
	}
	h.lazyInit()
	h.spinUntilReady()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.policy().IsEmpty() {
		// The callback blocks on mu until this goroutine parks in Wait.
		stop := context.AfterFunc(ctx, func() {
			h.mu.Lock()
			h.cond.Broadcast()
			h.mu.Unlock()
		})
		defer stop()

		for h.policy().IsEmpty() {
			if err := ctx.Err(); err != nil {
				return err
			}
			h.cond.Wait()
		}
	}
	h.removeLocked(out)
	return nil
}

// CheckPop removes a value into *out and returns true. If the circuit is
// empty it returns false immediately and *out is left unmodified.
func (h *Host[T, S, P]) CheckPop(out *T) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.policy().IsEmpty() {
		return false
	}
	h.removeLocked(out)
	return true
}

// TryPop removes and returns a value without blocking.
// Returns (zero-value, ErrWouldBlock) if the circuit is empty.
func (h *Host[T, S, P]) TryPop() (T, error) {
	var v T
	if !h.CheckPop(&v) {
		return v, ErrWouldBlock
	}
	return v, nil
}

// Drain removes every value in policy order and returns them.
// Returns nil if the circuit is empty.
func (h *Host[T, S, P]) Drain() []T {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.policy()
	if p.IsEmpty() {
		return nil
	}
	out := make([]T, p.Len())
	for i := range out {
		p.RemoveInto(&out[i])
	}
	h.size.StoreRelease(0)
	return out
}

// Swap exchanges the full contents of h and other.
//
// Both mutexes are held for the exchange, so no goroutine observes one side
// swapped and the other not. Waiters on either side are woken, since either
// may have gone from empty to non-empty.
func (h *Host[T, S, P]) Swap(other *Host[T, S, P]) {
	if h == other {
		return
	}
	h.lazyInit()
	other.lazyInit()
	first, second := lockOrder(h, other)
	first.mu.Lock()
	second.mu.Lock()
	h.policy().SwapWith(&other.store)
	h.publishLen()
	other.publishLen()
	second.mu.Unlock()
	first.mu.Unlock()

	h.cond.Broadcast()
	other.cond.Broadcast()
}

// Clone returns an independent copy of h with its own mutex and condition
// variable. Values are copied by assignment.
func (h *Host[T, S, P]) Clone() *Host[T, S, P] {
	c := newHost[T, S, P](h.spins)
	h.mu.Lock()
	c.policy().CopyFrom(&h.store)
	h.mu.Unlock()
	c.publishLen()
	return c
}

// CopyFrom replaces h's contents with a copy of src's. Values h held
// before are dropped.
func (h *Host[T, S, P]) CopyFrom(src *Host[T, S, P]) {
	if h == src {
		return
	}
	h.lazyInit()
	src.lazyInit()
	first, second := lockOrder(h, src)
	first.mu.Lock()
	second.mu.Lock()
	h.policy().CopyFrom(&src.store)
	h.publishLen()
	second.mu.Unlock()
	first.mu.Unlock()

	h.cond.Broadcast()
}

// Move returns a new Host that owns h's values and leaves h empty.
//
// Move is safe against concurrent use of h, but a goroutine that keeps
// using h afterwards sees an empty circuit, not the moved values.
func (h *Host[T, S, P]) Move() *Host[T, S, P] {
	c := newHost[T, S, P](h.spins)
	h.mu.Lock()
	c.policy().MoveFrom(&h.store)
	h.publishLen()
	h.mu.Unlock()
	c.publishLen()
	return c
}

// MoveFrom replaces h's contents with src's values and leaves src empty.
// Values h held before are dropped.
func (h *Host[T, S, P]) MoveFrom(src *Host[T, S, P]) {
	if h == src {
		return
	}
	h.lazyInit()
	src.lazyInit()
	first, second := lockOrder(h, src)
	first.mu.Lock()
	second.mu.Lock()
	h.policy().MoveFrom(&src.store)
	h.publishLen()
	src.publishLen()
	second.mu.Unlock()
	first.mu.Unlock()

	h.cond.Broadcast()
}

// Len returns a snapshot of the number of stored values. It does not take
// the mutex.
func (h *Host[T, S, P]) Len() int {
	return int(h.size.LoadAcquire())
}

// IsEmpty reports whether the snapshot length is zero.
func (h *Host[T, S, P]) IsEmpty() bool {
	return h.Len() == 0
}

func (h *Host[T, S, P]) removeLocked(out *T) {
	h.policy().RemoveInto(out)
	h.size.AddAcqRel(-1)
}

func (h *Host[T, S, P]) publishLen() {
	h.size.StoreRelease(int64(h.policy().Len()))
}

// spinUntilReady spins while the circuit looks empty, up to the spin budget.
func (h *Host[T, S, P]) spinUntilReady() {
	if h.spins <= 0 {
		return
	}
	sw := spin.Wait{}
	for i := 0; i < h.spins && h.size.LoadAcquire() == 0; i++ {
		sw.Once()
	}
}

// lockOrder returns a and b sorted by creation id.
func lockOrder[T, S any, P Policy[T, S]](a, b *Host[T, S, P]) (first, second *Host[T, S, P]) {
	if b.id < a.id {
		return b, a
	}
	return a, b
}
