// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"fmt"
	"runtime"
)

// PanicError wraps a value recovered from a panicking deferred action
// together with the stack trace captured at the point of the panic.
//
// [*ScopeGuard] converts panics raised by its action into *PanicError
// so they can be classified and logged rather than re-raised.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value when it is an error, nil otherwise.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newPanicError(v any) *PanicError {
	// runtime.Stack truncates if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}
