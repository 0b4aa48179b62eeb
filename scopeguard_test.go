// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"errors"
	"log/slog"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewScopeGuard populates all fields from Config and the provided arguments.
func TestNewScopeGuard(t *testing.T) {
	cfg := NewConfig()
	logger := DefaultSLogger()

	guard := NewScopeGuard(cfg, logger, func() error { return nil })

	require.NotNil(t, guard)
	assert.NotNil(t, guard.Action)
	assert.NotNil(t, guard.ErrClassifier)
	assert.NotNil(t, guard.Logger)
	assert.NotNil(t, guard.TimeNow)
	_, err := uuid.Parse(guard.ID)
	assert.NoError(t, err)
	assert.NoError(t, guard.Err())
}

func TestScopeGuardExitPaths(t *testing.T) {
	// run executes a guarded block that appends "A", registers a guard
	// appending "X", and then leaves the block the way exit says.
	run := func(log *[]string, exit string) {
		guard := NewScopeGuard(NewConfig(), DefaultSLogger(), func() error {
			*log = append(*log, "X")
			return nil
		})
		defer guard.Exit()
		*log = append(*log, "A")
		switch exit {
		case "return":
			return
		case "panic":
			panic("boom")
		}
		*log = append(*log, "B")
	}

	t.Run("normal completion", func(t *testing.T) {
		var log []string
		run(&log, "")
		assert.Equal(t, []string{"A", "B", "X"}, log)
	})

	t.Run("early return", func(t *testing.T) {
		var log []string
		run(&log, "return")
		assert.Equal(t, []string{"A", "X"}, log)
	})

	t.Run("propagating panic", func(t *testing.T) {
		var log []string
		assert.PanicsWithValue(t, "boom", func() { run(&log, "panic") })
		assert.Equal(t, []string{"A", "X"}, log)
	})
}

func TestScopeGuardRunsOnce(t *testing.T) {
	count := 0
	guard := NewScopeGuard(NewConfig(), DefaultSLogger(), func() error {
		count++
		return nil
	})

	guard.Exit()
	guard.Exit()
	guard.Exit()

	assert.Equal(t, 1, count)
}

func TestScopeGuardActionFailure(t *testing.T) {
	t.Run("returned error is recorded and logged", func(t *testing.T) {
		logger, records := newCapturingLogger()
		cfg := newFixedConfig()
		cfg.ErrClassifier = ErrClassifierFunc(func(err error) string {
			if err != nil {
				return "ECLOSE"
			}
			return ""
		})
		wantErr := errors.New("close failed")
		guard := NewScopeGuard(cfg, logger, func() error { return wantErr })

		assert.NotPanics(t, guard.Exit)

		require.ErrorIs(t, guard.Err(), wantErr)
		require.Len(t, *records, 2)
		done := (*records)[1]
		assert.Equal(t, "scopeExitDone", done.Message)
		attrs := recordAttrs(done)
		assert.Equal(t, "ECLOSE", attrs["errClass"].String())
		assert.Equal(t, wantErr, attrs["err"].Any())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		guard := NewScopeGuard(NewConfig(), DefaultSLogger(), func() error {
			panic("inner")
		})

		assert.NotPanics(t, guard.Exit)

		var perr *PanicError
		require.ErrorAs(t, guard.Err(), &perr)
		assert.Equal(t, "inner", perr.Value)
		assert.NotEmpty(t, perr.Stack)
	})

	t.Run("panic during a propagating panic", func(t *testing.T) {
		guard := NewScopeGuard(NewConfig(), DefaultSLogger(), func() error {
			panic("inner")
		})

		assert.PanicsWithValue(t, "outer", func() {
			defer guard.Exit()
			panic("outer")
		})

		var perr *PanicError
		require.ErrorAs(t, guard.Err(), &perr)
		assert.Equal(t, "inner", perr.Value)
	})
}

func TestScopeGuardActionGoexit(t *testing.T) {
	logger, records := newCapturingLogger()
	guard := NewScopeGuard(newFixedConfig(), logger, func() error {
		runtime.Goexit()
		return nil
	})

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		guard.Exit()
	}()
	<-finished

	require.ErrorIs(t, guard.Err(), ErrGoexit)
	require.Len(t, *records, 2)
	assert.Equal(t, "scopeExitStart", (*records)[0].Message)
	done := (*records)[1]
	assert.Equal(t, "scopeExitDone", done.Message)
	assert.Equal(t, ErrGoexit, recordAttrs(done)["err"].Any())
}

func TestScopeGuardLogging(t *testing.T) {
	logger, records := newCapturingLogger()
	cfg := newFixedConfig()
	guard := NewScopeGuard(cfg, logger, func() error { return nil })

	guard.Exit()

	require.Len(t, *records, 2)

	start := (*records)[0]
	assert.Equal(t, "scopeExitStart", start.Message)
	assert.Equal(t, slog.LevelInfo, start.Level)
	startAttrs := recordAttrs(start)
	assert.Equal(t, guard.ID, startAttrs["guardID"].String())
	assert.True(t, cfg.TimeNow().Equal(startAttrs["t"].Time()))

	done := (*records)[1]
	assert.Equal(t, "scopeExitDone", done.Message)
	assert.Equal(t, slog.LevelInfo, done.Level)
	doneAttrs := recordAttrs(done)
	assert.Equal(t, guard.ID, doneAttrs["guardID"].String())
	assert.Equal(t, "", doneAttrs["errClass"].String())
	assert.Nil(t, doneAttrs["err"].Any())
	assert.True(t, cfg.TimeNow().Equal(doneAttrs["t0"].Time()))
}

func TestScopeGuardDismiss(t *testing.T) {
	t.Run("dismissed guard does not run", func(t *testing.T) {
		logger, records := newCapturingLogger()
		called := false
		guard := NewScopeGuard(newFixedConfig(), logger, func() error {
			called = true
			return nil
		})

		guard.Dismiss()
		guard.Exit()

		assert.False(t, called)
		require.Len(t, *records, 1)
		assert.Equal(t, "scopeExitDismissed", (*records)[0].Message)
		assert.Equal(t, slog.LevelDebug, (*records)[0].Level)
	})

	t.Run("dismiss after exit is a no-op", func(t *testing.T) {
		logger, records := newCapturingLogger()
		count := 0
		guard := NewScopeGuard(newFixedConfig(), logger, func() error {
			count++
			return nil
		})

		guard.Exit()
		guard.Dismiss()

		assert.Equal(t, 1, count)
		assert.Len(t, *records, 2)
	})
}

func TestScopeExit(t *testing.T) {
	t.Run("runs on return", func(t *testing.T) {
		var log []string
		func() {
			defer ScopeExit(func() { log = append(log, "X") })()
			log = append(log, "A")
		}()
		assert.Equal(t, []string{"A", "X"}, log)
	})

	t.Run("runs once", func(t *testing.T) {
		count := 0
		exit := ScopeExit(func() { count++ })
		exit()
		exit()
		assert.Equal(t, 1, count)
	})

	t.Run("panicking action is swallowed", func(t *testing.T) {
		assert.NotPanics(t, func() {
			defer ScopeExit(func() { panic("inner") })()
		})
	})
}
