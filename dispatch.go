// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import "reflect"

// Integer is the constraint satisfied by integral types, including named
// types whose underlying type is integral. Since byte and rune are aliases
// of uint8 and int32, character types are integral too; bool is not.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IsIntegral reports whether T satisfies [Integer].
//
// Interface types are never integral, regardless of the dynamic type
// of the values they may hold.
func IsIntegral[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// NewDispatchFunc returns a [*DispatchFunc] routing values of type T to integral
// when T is integral and to other otherwise.
//
// The choice is made once per constructed value, at run time, using
// [IsIntegral]; [*DispatchFunc.Call] then forwards to the selected
// implementation without branching. Use [IntegralFunc] when the integral
// requirement must be checked by the compiler.
func NewDispatchFunc[T, R any](integral, other Func[T, R]) *DispatchFunc[T, R] {
	if IsIntegral[T]() {
		return &DispatchFunc[T, R]{selected: integral, integral: true}
	}
	return &DispatchFunc[T, R]{selected: other, integral: false}
}

// DispatchFunc is a [Func] bound at construction to one of two implementations
// according to the static type T.
type DispatchFunc[T, R any] struct {
	selected Func[T, R]
	integral bool
}

var _ Func[int, Unit] = &DispatchFunc[int, Unit]{}

// Call implements [Func].
func (d *DispatchFunc[T, R]) Call(input T) R {
	return d.selected.Call(input)
}

// Integral reports whether the integral implementation was selected.
func (d *DispatchFunc[T, R]) Integral() bool {
	return d.integral
}

// IntegralFunc is a [Func] that only accepts integral inputs.
//
// Instantiating it with a non-integral type fails to compile, which makes
// it the statically checked counterpart of [NewDispatchFunc].
type IntegralFunc[T Integer, R any] func(input T) R

var _ Func[int, Unit] = IntegralFunc[int, Unit](nil)

// Call implements [Func].
func (f IntegralFunc[T, R]) Call(input T) R {
	return f(input)
}
