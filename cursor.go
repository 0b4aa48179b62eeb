// SPDX-License-Identifier: GPL-3.0-or-later

package genx

// Cursor is a forward position inside a slice-backed container.
//
// A Cursor observes the slice without owning it. The slice must not be
// resized while the cursor is in use; no invalidation handling is provided.
//
// The zero value is a cursor over an empty container, at its end.
type Cursor[E any] struct {
	elems []E
	pos   int
}

// Begin returns a [Cursor] positioned at the first element of s.
func Begin[S ~[]E, E any](s S) Cursor[E] {
	return Cursor[E]{elems: s, pos: 0}
}

// End returns a [Cursor] positioned one past the last element of s.
func End[S ~[]E, E any](s S) Cursor[E] {
	return Cursor[E]{elems: s, pos: len(s)}
}

// Get returns a copy of the element at the current position.
//
// Calling Get on an end cursor panics with an index out of range error.
func (c Cursor[E]) Get() E {
	return c.elems[c.pos]
}

// Next advances the cursor by one position.
//
// Next does not check bounds: the caller is responsible for comparing
// against the corresponding end cursor before dereferencing.
func (c *Cursor[E]) Next() {
	c.pos++
}

// Equal reports whether c and other refer to the same position.
//
// Cursors are only meaningfully comparable when they observe the same
// container, which is the case for a begin/end pair.
func (c Cursor[E]) Equal(other Cursor[E]) bool {
	return c.pos == other.pos
}

// Pos returns the zero-based position of the cursor.
func (c Cursor[E]) Pos() int {
	return c.pos
}
