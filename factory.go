// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package circuit

var (
	_ Circuit[int] = (*Stack[int])(nil)
	_ Circuit[int] = (*Queue[int])(nil)
	_ Poller[int]  = (*Stack[int])(nil)
	_ Waiter[int]  = (*Queue[int])(nil)
	_ Sizer        = (*Queue[int])(nil)
)

// MakeStack returns an empty LIFO circuit behind the Circuit interface.
// The caller owns the returned circuit.
func MakeStack[T any]() Circuit[T] {
	return NewStack[T]()
}

// MakeQueue returns an empty FIFO circuit behind the Circuit interface.
// The caller owns the returned circuit.
func MakeQueue[T any]() Circuit[T] {
	return NewQueue[T]()
}
