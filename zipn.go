// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"iter"

	"github.com/bassosimone/runtimex"
)

// ZipN returns a lock-step view over a runtime-sized list of slices
// sharing the same element type.
//
// Each step yields a freshly allocated slice holding a copy of the current
// element of every input, in argument order. Iteration stops at the
// shortest input, like [Zip2].
//
// This function panics if called with no slices, since a zip over zero
// containers has no defined length.
func ZipN[S ~[]E, E any](slices ...S) iter.Seq[[]E] {
	runtimex.Assert(len(slices) > 0)
	begin := make([]Cursor[E], 0, len(slices))
	end := make([]Cursor[E], 0, len(slices))
	for _, s := range slices {
		begin = append(begin, Begin(s))
		end = append(end, End(s))
	}
	return func(yield func([]E) bool) {
		cursors := append([]Cursor[E]{}, begin...)
		for !anyAtEnd(cursors, end) {
			values := make([]E, 0, len(cursors))
			for idx := range cursors {
				values = append(values, cursors[idx].Get())
				cursors[idx].Next()
			}
			if !yield(values) {
				return
			}
		}
	}
}

func anyAtEnd[E any](cursors, end []Cursor[E]) bool {
	for idx := range cursors {
		if cursors[idx].Equal(end[idx]) {
			return true
		}
	}
	return false
}

// ZipSeq2 is like [Zip2] but for sources that are [iter.Seq] rather than slices.
//
// The second sequence is consumed with [iter.Pull]; its stop function runs
// when iteration ends for any reason. Whether the result can be iterated
// more than once depends on whether seq1 and seq2 can.
func ZipSeq2[E1, E2 any](seq1 iter.Seq[E1], seq2 iter.Seq[E2]) iter.Seq2[E1, E2] {
	return func(yield func(E1, E2) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()
		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(v1, v2) {
				return
			}
		}
	}
}
