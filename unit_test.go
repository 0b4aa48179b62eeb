// SPDX-License-Identifier: GPL-3.0-or-later

package genx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitAsSideEffectResult(t *testing.T) {
	var visited []int
	visit := FuncAdapter[int, Unit](func(n int) Unit {
		visited = append(visited, n)
		return Unit{}
	})

	for n := range 3 {
		assert.Equal(t, Unit{}, visit.Call(n))
	}
	assert.Equal(t, []int{0, 1, 2}, visited)
}
