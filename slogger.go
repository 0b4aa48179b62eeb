// SPDX-License-Identifier: GPL-3.0-or-later

package genx

// SLogger is the subset of [*slog.Logger] used by [*ScopeGuard].
//
// Guard lifecycle events (scopeExitStart, scopeExitDone) are emitted at Info
// level, while dismissals are emitted at Debug level.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DefaultSLogger returns a no-op [SLogger].
//
// Libraries should stay silent unless the caller opts in, so pass a
// custom [*slog.Logger] to see guard events.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

type discardSLogger struct{}

var _ SLogger = discardSLogger{}

// Debug implements [SLogger].
func (discardSLogger) Debug(msg string, args ...any) {}

// Info implements [SLogger].
func (discardSLogger) Info(msg string, args ...any) {}
