// SPDX-License-Identifier: GPL-3.0-or-later

package genx

// Func is a generic pure operation that maps an input to a result.
//
// Func instances can be composed using [Compose2], [Compose3], and [Compose4],
// and are the unit of selection used by [NewDispatchFunc].
type Func[A, B any] interface {
	Call(input A) B
}

// FuncAdapter wraps a function as a [Func] implementation.
type FuncAdapter[A, B any] func(input A) B

// Call implements [Func].
func (f FuncAdapter[A, B]) Call(input A) B {
	return f(input)
}
