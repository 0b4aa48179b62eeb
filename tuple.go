// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import "fmt"

// Tuple2 is the element type produced by [Zip2].
type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// String returns a human-readable representation: "(v0, v1)".
func (t Tuple2[T0, T1]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V0, t.V1)
}

// Tuple3 is the element type produced by [Zip3].
type Tuple3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

// String returns a human-readable representation: "(v0, v1, v2)".
func (t Tuple3[T0, T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V0, t.V1, t.V2)
}

// Tuple4 is the element type produced by [Zip4].
type Tuple4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

// String returns a human-readable representation: "(v0, v1, v2, v3)".
func (t Tuple4[T0, T1, T2, T3]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.V0, t.V1, t.V2, t.V3)
}

// Tuple5 is the element type produced by [Zip5].
type Tuple5[T0, T1, T2, T3, T4 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// String returns a human-readable representation: "(v0, v1, v2, v3, v4)".
func (t Tuple5[T0, T1, T2, T3, T4]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v, %v)", t.V0, t.V1, t.V2, t.V3, t.V4)
}
