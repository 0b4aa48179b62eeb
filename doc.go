// SPDX-License-Identifier: GPL-3.0-or-later

// Package genx provides small generic-programming primitives.
//
// # Zip
//
// [Zip2] through [Zip5] take slices of possibly different element types
// and return a bundle that iterates over them in lock-step, yielding a
// tuple ([Tuple2] through [Tuple5]) per step:
//
//	names := []string{"a", "b", "c"}
//	ages := []int{1, 2}
//	for t := range genx.Zip2(names, ages).All() {
//		fmt.Println(t.V0, t.V1) // a 1, then b 2
//	}
//
// Iteration stops as soon as the shortest input is exhausted. Bundles also
// expose explicit endpoints for manual traversal:
//
//	b := genx.Zip2(names, ages)
//	for it, end := b.Begin(), b.End(); !it.Done(end); it.Next() {
//		_ = it.Value()
//	}
//
// Done is true as soon as any component reaches its own end, which is what
// implements the shortest-wins rule. Endpoints are captured at construction
// and traversal works on copies, so a bundle can be iterated many times.
// Tuples hold copies of the elements: writing to a tuple does not modify
// the underlying slices. Bundles do not own the slices and do not detect
// resizing; keep the slices alive and unchanged in length while iterating.
//
// Arguments are checked by the compiler: passing a value that is not a
// slice is rejected with an error naming the parameter that does not
// satisfy its constraint. [ZipN] handles a runtime-sized list of slices
// of the same type, and [ZipSeq2] zips two [iter.Seq].
//
// # Scope guards
//
// A [*ScopeGuard] runs an action exactly once when [*ScopeGuard.Exit] is
// called, which is meant to be deferred:
//
//	guard := genx.NewScopeGuard(genx.NewConfig(), logger, func() error {
//		return fp.Close()
//	})
//	defer guard.Exit()
//
// The action runs on every exit path, including panics. Errors and panics
// raised by the action are recovered and logged, never re-raised.
// [ScopeExit] is the shorthand for actions that cannot fail.
//
// # Conjunction
//
// [AllOf] computes the short-circuiting conjunction of a list of booleans,
// with the empty list being true. [AllOfFunc] evaluates predicates lazily.
//
// # Tag dispatch
//
// [NewDispatchFunc] selects, once per instantiation, between an integral
// and a non-integral [Func] implementation according to the static type of
// its input. [IntegralFunc] is the compile-time checked alternative for
// code that only makes sense for integers.
//
// # Observability
//
// Only [*ScopeGuard] logs. By default logging is disabled; pass a
// [*slog.Logger] to [NewScopeGuard] to enable it. Events are scopeExitStart
// and scopeExitDone at [slog.LevelInfo] and scopeExitDismissed at
// [slog.LevelDebug]. All events carry guardID (a UUIDv7 from [NewSpanID])
// and t; scopeExitDone also carries t0, err, and errClass, where errClass
// comes from the configured [ErrClassifier].
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use without external
// synchronization. All operations run synchronously on the caller's goroutine.
package genx
