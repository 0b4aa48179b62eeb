// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"context"
	"log/slog"
	"time"

	"github.com/bassosimone/slogstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// recordAttrs flattens the attributes of a record into a map.
func recordAttrs(record slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value
		return true
	})
	return attrs
}

// newFixedConfig returns a [*Config] whose clock always returns the same time.
func newFixedConfig() *Config {
	cfg := NewConfig()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cfg.TimeNow = func() time.Time { return fixed }
	return cfg
}
