// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSLogger(t *testing.T) {
	logger := DefaultSLogger()

	assert.NotNil(t, logger)
	assert.IsType(t, discardSLogger{}, logger)

	// Should be able to call Debug and Info without panic (discards output)
	logger.Debug("scopeExitDismissed", "guardID", "x")
	logger.Info("scopeExitDone", "guardID", "x", "err", nil)
}
