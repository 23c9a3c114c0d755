// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package circuit

// defaultSpinTries is the WaitPop spin budget used by constructors that
// take no options.
const defaultSpinTries = 16

// Order selects the removal discipline of a circuit.
type Order uint8

const (
	// FIFO removes the least recently pushed value first (queue).
	FIFO Order = iota
	// LIFO removes the most recently pushed value first (stack).
	LIFO
)

// String returns "FIFO" or "LIFO".
func (o Order) String() string {
	switch o {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	default:
		return "Order(?)"
	}
}

// Options configures circuit creation.
type Options struct {
	order     Order
	spinTries int
}

// Builder creates circuits with fluent configuration.
//
// Example:
//
//	// Stack behind the Circuit interface
//	c := circuit.Build[Event](circuit.New().LIFO())
//
//	// Concrete queue that parks immediately in WaitPop
//	q := circuit.BuildQueue[*Request](circuit.New().Spin(0))
type Builder struct {
	opts Options
}

// New creates a builder for a FIFO circuit with the default spin budget.
func New() *Builder {
	return &Builder{opts: Options{order: FIFO, spinTries: defaultSpinTries}}
}

// LIFO selects stack order.
func (b *Builder) LIFO() *Builder {
	b.opts.order = LIFO
	return b
}

// FIFO selects queue order.
func (b *Builder) FIFO() *Builder {
	b.opts.order = FIFO
	return b
}

// Spin sets how many times WaitPop spins on an empty circuit before it
// parks on the condition variable. Zero disables spinning.
//
// Spinning trades CPU for wake-up latency when producers push at a high
// rate. Panics if n < 0.
func (b *Builder) Spin(n int) *Builder {
	if n < 0 {
		panic("circuit: spin tries must be >= 0")
	}
	b.opts.spinTries = n
	return b
}

// Order returns the configured removal order.
func (b *Builder) Order() Order {
	return b.opts.order
}

// Build creates a Circuit[T] with the configured order.
//
//	LIFO → *Stack[T]
//	FIFO → *Queue[T]
//
// For concrete return types, use BuildStack or BuildQueue.
func Build[T any](b *Builder) Circuit[T] {
	if b.opts.order == LIFO {
		return newHost[T, StackPolicy[T], *StackPolicy[T]](b.opts.spinTries)
	}
	return newHost[T, QueuePolicy[T], *QueuePolicy[T]](b.opts.spinTries)
}

// BuildStack creates a *Stack[T].
// Panics if the builder is not configured with LIFO().
func BuildStack[T any](b *Builder) *Stack[T] {
	if b.opts.order != LIFO {
		panic("circuit: BuildStack requires LIFO()")
	}
	return newHost[T, StackPolicy[T], *StackPolicy[T]](b.opts.spinTries)
}

// BuildQueue creates a *Queue[T].
// Panics if the builder is not configured with FIFO order.
func BuildQueue[T any](b *Builder) *Queue[T] {
	if b.opts.order != FIFO {
		panic("circuit: BuildQueue requires FIFO()")
	}
	return newHost[T, QueuePolicy[T], *QueuePolicy[T]](b.opts.spinTries)
}
