// SPDX-License-Identifier: GPL-3.0-or-later

package genx

// Unit is a type not containing any value (analogous to an
// explicit `void` type in C and C++).
//
// Use it as the result type of a [Func] that is only called for its
// side effects, e.g. the implementations passed to [NewDispatchFunc].
type Unit struct{}
