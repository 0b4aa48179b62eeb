// SPDX-License-Identifier: GPL-3.0-or-later

package genx

// AllOf reports whether every value in bs is true.
//
// It stops examining values at the first false one. An empty list is true,
// the identity for conjunction. When all arguments are constants the call
// is inlined and folded by the compiler.
//
// Compile-time validation of [Zip2] and friends does not go through AllOf:
// there, each argument carries its own slice constraint and the compiler
// rejects the call unless all of them hold.
func AllOf(bs ...bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

// AllOfFunc is like [AllOf] but evaluates each predicate lazily, so
// predicates following the first false one are never called.
func AllOfFunc(preds ...func() bool) bool {
	for _, pred := range preds {
		if !pred() {
			return false
		}
	}
	return true
}

// AnyOf reports whether at least one value in bs is true.
//
// It stops at the first true value. An empty list is false.
func AnyOf(bs ...bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}
