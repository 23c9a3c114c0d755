// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package circuit_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"code.hybscloud.com/circuit"
)

// Example demonstrates the blocking hand-off between two goroutines, then
// drains the rest without blocking.
func Example() {
	s := circuit.NewStack[int]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		var v int
		s.WaitPop(&v) // Blocks until main pushes
		fmt.Println("popped:", v)
	}()

	s.Push(99)
	<-done

	s.Push(88)
	s.Push(77)

	var v int
	for s.CheckPop(&v) {
		fmt.Println("popped:", v)
	}
	fmt.Println("more:", s.CheckPop(&v))

	// Output:
	// popped: 99
	// popped: 77
	// popped: 88
	// more: false
}

// ExampleMakeQueue shows the factory hiding the removal order.
func ExampleMakeQueue() {
	for _, c := range []circuit.Circuit[string]{
		circuit.MakeQueue[string](),
		circuit.MakeStack[string](),
	} {
		c.Push("first")
		c.Push("second")

		var v string
		c.WaitPop(&v)
		fmt.Println(v)
	}

	// Output:
	// first
	// second
}

// ExampleHost_Swap exchanges the contents of two stacks.
func ExampleHost_Swap() {
	a := circuit.NewStack[int]()
	b := circuit.NewStack[int]()
	a.PushAll(1, 2)
	b.Push(9)

	a.Swap(b)

	fmt.Println("a:", a.Drain())
	fmt.Println("b:", b.Drain())

	// Output:
	// a: [9]
	// b: [2 1]
}

// ExampleHost_Clone shows that a clone is independent of its source.
func ExampleHost_Clone() {
	q := circuit.NewQueue[string]()
	q.PushAll("x", "y")

	c := q.Clone()
	c.Push("z")

	fmt.Println(q.Drain())
	fmt.Println(c.Drain())

	// Output:
	// [x y]
	// [x y z]
}

// ExampleHost_TryPop polls without blocking.
func ExampleHost_TryPop() {
	q := circuit.NewQueue[int]()

	_, err := q.TryPop()
	fmt.Println(circuit.IsWouldBlock(err))

	q.Push(3)
	v, err := q.TryPop()
	fmt.Println(v, err)

	// Output:
	// true
	// 3 <nil>
}

// ExampleHost_WaitPopContext bounds a blocking pop with a deadline.
func ExampleHost_WaitPopContext() {
	q := circuit.NewQueue[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var v int
	err := q.WaitPopContext(ctx, &v)
	fmt.Println(errors.Is(err, context.DeadlineExceeded))

	// Output:
	// true
}

// ExampleBuild configures a circuit with the builder.
func ExampleBuild() {
	c := circuit.Build[int](circuit.New().LIFO().Spin(0))
	c.Push(1)
	c.Push(2)

	var v int
	c.WaitPop(&v)
	fmt.Println(v)

	// Output:
	// 2
}
