// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"errors"
	"log/slog"
	"time"
)

// ErrGoexit is recorded by [*ScopeGuard] when its action calls [runtime.Goexit].
var ErrGoexit = errors.New("genx: scope exit action called runtime.Goexit")

// NewScopeGuard returns a new [*ScopeGuard] wrapping the given action.
//
// The cfg argument contains the common configuration for genx primitives.
//
// The logger argument is the [SLogger] to use for structured logging.
//
// The action argument is the function to run at scope exit.
//
// Bind the guard to the enclosing function with defer:
//
//	guard := genx.NewScopeGuard(cfg, logger, func() error { return fp.Close() })
//	defer guard.Exit()
func NewScopeGuard(cfg *Config, logger SLogger, action func() error) *ScopeGuard {
	return &ScopeGuard{
		Action:        action,
		ErrClassifier: cfg.ErrClassifier,
		ID:            NewSpanID(),
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// ScopeExit returns a function that runs action exactly once, for use
// with defer when the action cannot fail and logging is not needed:
//
//	defer genx.ScopeExit(func() { fp.Close() })()
//
// Note the trailing call: without it, defer would only evaluate ScopeExit
// and the action would never run. Panics raised by action are recovered
// and discarded.
func ScopeExit(action func()) func() {
	guard := NewScopeGuard(NewConfig(), DefaultSLogger(), func() error {
		action()
		return nil
	})
	return guard.Exit
}

// ScopeGuard runs a stored action exactly once when [*ScopeGuard.Exit] is
// called, which is meant to happen through defer so that the action runs
// on every exit path: normal completion, early return, and panic.
//
// Failures of the action, either a returned error or a panic, are recovered,
// classified, and logged. They are never re-raised, so a guard running while
// the enclosing function panics does not replace or abort that panic, which
// keeps propagating once the guard returns.
//
// All fields are safe to modify after construction but before the guard exits.
// A ScopeGuard is not safe for concurrent use.
type ScopeGuard struct {
	// Action is the function invoked at scope exit.
	//
	// Set by [NewScopeGuard] to the user-provided action.
	Action func() error

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewScopeGuard] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// ID identifies this guard in structured logs.
	//
	// Set by [NewScopeGuard] using [NewSpanID].
	ID string

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewScopeGuard] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewScopeGuard] from [Config.TimeNow].
	TimeNow func() time.Time

	done bool
	err  error
}

// Exit runs the action unless it already ran or the guard was dismissed.
//
// The scopeExitDone event is emitted even when the action calls
// [runtime.Goexit], in which case [*ScopeGuard.Err] returns [ErrGoexit]
// and the goroutine keeps unwinding after Exit.
func (g *ScopeGuard) Exit() {
	if g.done {
		return
	}
	g.done = true
	t0 := g.TimeNow()
	g.logScopeExitStart(t0)
	returned := false
	defer func() {
		if !returned {
			g.err = ErrGoexit
		}
		g.logScopeExitDone(t0, g.err)
	}()
	g.err = g.invoke()
	returned = true
}

// invoke must not be the deferred function itself: recover only stops the
// panic raised by Action here and leaves a panic of the guarded block alone.
func (g *ScopeGuard) invoke() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return g.Action()
}

// Dismiss cancels the pending action. A later [*ScopeGuard.Exit] is a no-op.
//
// Dismissing a guard that already exited has no effect.
func (g *ScopeGuard) Dismiss() {
	if g.done {
		return
	}
	g.done = true
	g.Logger.Debug(
		"scopeExitDismissed",
		slog.String("guardID", g.ID),
		slog.Time("t", g.TimeNow()),
	)
}

// Err returns the failure recovered from the action, if any.
func (g *ScopeGuard) Err() error {
	return g.err
}

func (g *ScopeGuard) logScopeExitStart(t0 time.Time) {
	g.Logger.Info(
		"scopeExitStart",
		slog.String("guardID", g.ID),
		slog.Time("t", t0),
	)
}

func (g *ScopeGuard) logScopeExitDone(t0 time.Time, err error) {
	g.Logger.Info(
		"scopeExitDone",
		slog.Any("err", err),
		slog.String("errClass", g.ErrClassifier.Classify(err)),
		slog.String("guardID", g.ID),
		slog.Time("t0", t0),
		slog.Time("t", g.TimeNow()),
	)
}
