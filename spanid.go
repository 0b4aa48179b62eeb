// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 string.
//
// Each [*ScopeGuard] gets one at construction and logs it as guardID, so
// the scopeExitStart and scopeExitDone events of the same guard can be
// correlated. Callers can also attach one to a logger using With.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
