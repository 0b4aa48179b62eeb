// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import "iter"

// noCopy may be embedded into structs which must not be copied
// after first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock() {}

// Unlock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Unlock() {}

// Zip2 returns a lock-step view over two slices.
//
// The returned [*Bundle2] observes s1 and s2 without owning them. Begin and
// end endpoints are captured immediately. Iteration yields one [Tuple2] per
// step and stops as soon as the shorter slice is exhausted, so the sequence
// length is min(len(s1), len(s2)) and is zero when either slice is empty.
//
// Passing anything other than a slice fails to compile. The slices must not
// be resized while the bundle is in use.
func Zip2[S1 ~[]E1, S2 ~[]E2, E1, E2 any](s1 S1, s2 S2) *Bundle2[E1, E2] {
	return &Bundle2[E1, E2]{
		begin: Iterator2[E1, E2]{c1: Begin(s1), c2: Begin(s2)},
		end:   Iterator2[E1, E2]{c1: End(s1), c2: End(s2)},
	}
}

// Bundle2 is the container bundle returned by [Zip2].
//
// Bundles are immutable after construction. Do not copy a bundle; pass the pointer.
type Bundle2[E1, E2 any] struct {
	noCopy     noCopy
	begin, end Iterator2[E1, E2]
}

// Begin returns a copy of the begin endpoint.
//
// Advancing the returned iterator does not affect the bundle, hence
// iterating again from Begin reproduces the same sequence.
func (b *Bundle2[E1, E2]) Begin() Iterator2[E1, E2] {
	return b.begin
}

// End returns a copy of the end endpoint.
func (b *Bundle2[E1, E2]) End() Iterator2[E1, E2] {
	return b.end
}

// Len returns the number of tuples produced by a full traversal.
func (b *Bundle2[E1, E2]) Len() int {
	return min(b.end.c1.pos, b.end.c2.pos)
}

// All returns the zipped sequence as an [iter.Seq].
func (b *Bundle2[E1, E2]) All() iter.Seq[Tuple2[E1, E2]] {
	return func(yield func(Tuple2[E1, E2]) bool) {
		end := b.End()
		for it := b.Begin(); !it.Done(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Iterator2 advances two [Cursor] values in lock-step.
type Iterator2[E1, E2 any] struct {
	c1 Cursor[E1]
	c2 Cursor[E2]
}

// Done reports whether iteration must stop when compared against end.
//
// Done returns true as soon as ANY component equals its end counterpart,
// which is what makes zip stop at the shortest container. Element-wise
// equality would instead run past the end of the shorter container.
func (it Iterator2[E1, E2]) Done(end Iterator2[E1, E2]) bool {
	return it.c1.Equal(end.c1) || it.c2.Equal(end.c2)
}

// Equal reports whether every component of it equals the one in other.
func (it Iterator2[E1, E2]) Equal(other Iterator2[E1, E2]) bool {
	return it.c1.Equal(other.c1) && it.c2.Equal(other.c2)
}

// Next advances every component by one position and returns the receiver.
//
// Next does not check bounds; use [Iterator2.Done] before calling [Iterator2.Value].
func (it *Iterator2[E1, E2]) Next() *Iterator2[E1, E2] {
	it.c1.Next()
	it.c2.Next()
	return it
}

// Value returns a tuple containing a copy of each current element.
func (it Iterator2[E1, E2]) Value() Tuple2[E1, E2] {
	return Tuple2[E1, E2]{V0: it.c1.Get(), V1: it.c2.Get()}
}

// Zip3 is like [Zip2] but for three slices.
func Zip3[S1 ~[]E1, S2 ~[]E2, S3 ~[]E3, E1, E2, E3 any](s1 S1, s2 S2, s3 S3) *Bundle3[E1, E2, E3] {
	return &Bundle3[E1, E2, E3]{
		begin: Iterator3[E1, E2, E3]{c1: Begin(s1), c2: Begin(s2), c3: Begin(s3)},
		end:   Iterator3[E1, E2, E3]{c1: End(s1), c2: End(s2), c3: End(s3)},
	}
}

// Bundle3 is the container bundle returned by [Zip3].
type Bundle3[E1, E2, E3 any] struct {
	noCopy     noCopy
	begin, end Iterator3[E1, E2, E3]
}

// Begin returns a copy of the begin endpoint.
func (b *Bundle3[E1, E2, E3]) Begin() Iterator3[E1, E2, E3] {
	return b.begin
}

// End returns a copy of the end endpoint.
func (b *Bundle3[E1, E2, E3]) End() Iterator3[E1, E2, E3] {
	return b.end
}

// Len returns the number of tuples produced by a full traversal.
func (b *Bundle3[E1, E2, E3]) Len() int {
	return min(b.end.c1.pos, b.end.c2.pos, b.end.c3.pos)
}

// All returns the zipped sequence as an [iter.Seq].
func (b *Bundle3[E1, E2, E3]) All() iter.Seq[Tuple3[E1, E2, E3]] {
	return func(yield func(Tuple3[E1, E2, E3]) bool) {
		end := b.End()
		for it := b.Begin(); !it.Done(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Iterator3 advances three [Cursor] values in lock-step.
type Iterator3[E1, E2, E3 any] struct {
	c1 Cursor[E1]
	c2 Cursor[E2]
	c3 Cursor[E3]
}

// Done is like [Iterator2.Done].
func (it Iterator3[E1, E2, E3]) Done(end Iterator3[E1, E2, E3]) bool {
	return it.c1.Equal(end.c1) || it.c2.Equal(end.c2) || it.c3.Equal(end.c3)
}

// Equal reports whether every component of it equals the one in other.
func (it Iterator3[E1, E2, E3]) Equal(other Iterator3[E1, E2, E3]) bool {
	return it.c1.Equal(other.c1) && it.c2.Equal(other.c2) && it.c3.Equal(other.c3)
}

// Next advances every component by one position and returns the receiver.
func (it *Iterator3[E1, E2, E3]) Next() *Iterator3[E1, E2, E3] {
	it.c1.Next()
	it.c2.Next()
	it.c3.Next()
	return it
}

// Value returns a tuple containing a copy of each current element.
func (it Iterator3[E1, E2, E3]) Value() Tuple3[E1, E2, E3] {
	return Tuple3[E1, E2, E3]{V0: it.c1.Get(), V1: it.c2.Get(), V2: it.c3.Get()}
}

// Zip4 is like [Zip2] but for four slices.
func Zip4[S1 ~[]E1, S2 ~[]E2, S3 ~[]E3, S4 ~[]E4, E1, E2, E3, E4 any](
	s1 S1, s2 S2, s3 S3, s4 S4) *Bundle4[E1, E2, E3, E4] {
	return &Bundle4[E1, E2, E3, E4]{
		begin: Iterator4[E1, E2, E3, E4]{c1: Begin(s1), c2: Begin(s2), c3: Begin(s3), c4: Begin(s4)},
		end:   Iterator4[E1, E2, E3, E4]{c1: End(s1), c2: End(s2), c3: End(s3), c4: End(s4)},
	}
}

// Bundle4 is the container bundle returned by [Zip4].
type Bundle4[E1, E2, E3, E4 any] struct {
	noCopy     noCopy
	begin, end Iterator4[E1, E2, E3, E4]
}

// Begin returns a copy of the begin endpoint.
func (b *Bundle4[E1, E2, E3, E4]) Begin() Iterator4[E1, E2, E3, E4] {
	return b.begin
}

// End returns a copy of the end endpoint.
func (b *Bundle4[E1, E2, E3, E4]) End() Iterator4[E1, E2, E3, E4] {
	return b.end
}

// Len returns the number of tuples produced by a full traversal.
func (b *Bundle4[E1, E2, E3, E4]) Len() int {
	return min(b.end.c1.pos, b.end.c2.pos, b.end.c3.pos, b.end.c4.pos)
}

// All returns the zipped sequence as an [iter.Seq].
func (b *Bundle4[E1, E2, E3, E4]) All() iter.Seq[Tuple4[E1, E2, E3, E4]] {
	return func(yield func(Tuple4[E1, E2, E3, E4]) bool) {
		end := b.End()
		for it := b.Begin(); !it.Done(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Iterator4 advances four [Cursor] values in lock-step.
type Iterator4[E1, E2, E3, E4 any] struct {
	c1 Cursor[E1]
	c2 Cursor[E2]
	c3 Cursor[E3]
	c4 Cursor[E4]
}

// Done is like [Iterator2.Done].
func (it Iterator4[E1, E2, E3, E4]) Done(end Iterator4[E1, E2, E3, E4]) bool {
	return it.c1.Equal(end.c1) || it.c2.Equal(end.c2) || it.c3.Equal(end.c3) || it.c4.Equal(end.c4)
}

// Equal reports whether every component of it equals the one in other.
func (it Iterator4[E1, E2, E3, E4]) Equal(other Iterator4[E1, E2, E3, E4]) bool {
	return it.c1.Equal(other.c1) && it.c2.Equal(other.c2) && it.c3.Equal(other.c3) && it.c4.Equal(other.c4)
}

// Next advances every component by one position and returns the receiver.
func (it *Iterator4[E1, E2, E3, E4]) Next() *Iterator4[E1, E2, E3, E4] {
	it.c1.Next()
	it.c2.Next()
	it.c3.Next()
	it.c4.Next()
	return it
}

// Value returns a tuple containing a copy of each current element.
func (it Iterator4[E1, E2, E3, E4]) Value() Tuple4[E1, E2, E3, E4] {
	return Tuple4[E1, E2, E3, E4]{V0: it.c1.Get(), V1: it.c2.Get(), V2: it.c3.Get(), V3: it.c4.Get()}
}

// Zip5 is like [Zip2] but for five slices.
func Zip5[S1 ~[]E1, S2 ~[]E2, S3 ~[]E3, S4 ~[]E4, S5 ~[]E5, E1, E2, E3, E4, E5 any](
	s1 S1, s2 S2, s3 S3, s4 S4, s5 S5) *Bundle5[E1, E2, E3, E4, E5] {
	return &Bundle5[E1, E2, E3, E4, E5]{
		begin: Iterator5[E1, E2, E3, E4, E5]{
			c1: Begin(s1), c2: Begin(s2), c3: Begin(s3), c4: Begin(s4), c5: Begin(s5)},
		end: Iterator5[E1, E2, E3, E4, E5]{
			c1: End(s1), c2: End(s2), c3: End(s3), c4: End(s4), c5: End(s5)},
	}
}

// Bundle5 is the container bundle returned by [Zip5].
type Bundle5[E1, E2, E3, E4, E5 any] struct {
	noCopy     noCopy
	begin, end Iterator5[E1, E2, E3, E4, E5]
}

// Begin returns a copy of the begin endpoint.
func (b *Bundle5[E1, E2, E3, E4, E5]) Begin() Iterator5[E1, E2, E3, E4, E5] {
	return b.begin
}

// End returns a copy of the end endpoint.
func (b *Bundle5[E1, E2, E3, E4, E5]) End() Iterator5[E1, E2, E3, E4, E5] {
	return b.end
}

// Len returns the number of tuples produced by a full traversal.
func (b *Bundle5[E1, E2, E3, E4, E5]) Len() int {
	return min(b.end.c1.pos, b.end.c2.pos, b.end.c3.pos, b.end.c4.pos, b.end.c5.pos)
}

// All returns the zipped sequence as an [iter.Seq].
func (b *Bundle5[E1, E2, E3, E4, E5]) All() iter.Seq[Tuple5[E1, E2, E3, E4, E5]] {
	return func(yield func(Tuple5[E1, E2, E3, E4, E5]) bool) {
		end := b.End()
		for it := b.Begin(); !it.Done(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Iterator5 advances five [Cursor] values in lock-step.
type Iterator5[E1, E2, E3, E4, E5 any] struct {
	c1 Cursor[E1]
	c2 Cursor[E2]
	c3 Cursor[E3]
	c4 Cursor[E4]
	c5 Cursor[E5]
}

// Done is like [Iterator2.Done].
func (it Iterator5[E1, E2, E3, E4, E5]) Done(end Iterator5[E1, E2, E3, E4, E5]) bool {
	return it.c1.Equal(end.c1) || it.c2.Equal(end.c2) || it.c3.Equal(end.c3) ||
		it.c4.Equal(end.c4) || it.c5.Equal(end.c5)
}

// Equal reports whether every component of it equals the one in other.
func (it Iterator5[E1, E2, E3, E4, E5]) Equal(other Iterator5[E1, E2, E3, E4, E5]) bool {
	return it.c1.Equal(other.c1) && it.c2.Equal(other.c2) && it.c3.Equal(other.c3) &&
		it.c4.Equal(other.c4) && it.c5.Equal(other.c5)
}

// Next advances every component by one position and returns the receiver.
func (it *Iterator5[E1, E2, E3, E4, E5]) Next() *Iterator5[E1, E2, E3, E4, E5] {
	it.c1.Next()
	it.c2.Next()
	it.c3.Next()
	it.c4.Next()
	it.c5.Next()
	return it
}

// Value returns a tuple containing a copy of each current element.
func (it Iterator5[E1, E2, E3, E4, E5]) Value() Tuple5[E1, E2, E3, E4, E5] {
	return Tuple5[E1, E2, E3, E4, E5]{
		V0: it.c1.Get(), V1: it.c2.Get(), V2: it.c3.Get(), V3: it.c4.Get(), V4: it.c5.Get()}
}
