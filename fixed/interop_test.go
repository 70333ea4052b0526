// SPDX-License-Identifier: MIT

package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	xfixed "golang.org/x/image/math/fixed"

	"github.com/katalvlaran/fixedpoint/fixed"
	"github.com/katalvlaran/fixedpoint/width"
)

func TestInterop_XImage(t *testing.T) {
	x := q1616(1.5)
	assert.Equal(t, xfixed.Int26_6(96), x.Int26_6())
	assert.Equal(t, xfixed.Int52_12(6144), x.Int52_12())
	assert.Equal(t, "1:32", x.Int26_6().String())

	assert.Equal(t, int32(196608), fixed.FromInt26_6[width.W16, width.W16](xfixed.I(3)).Raw())
	assert.Equal(t, q1616(-2.25), fixed.FromInt52_12[width.W16, width.W16](xfixed.Int52_12(-9216)))

	// Q8.8 → 26.6 drops two fractional bits (floor).
	assert.Equal(t, xfixed.Int26_6(-1), raw88(-1).Int26_6())
	assert.Equal(t, q88(2.5), fixed.FromInt26_6[width.W8, width.W8](xfixed.Int26_6(160)))

	p := fixed.Point26_6(q1616(1), q1616(-0.5))
	assert.Equal(t, xfixed.P(1, 0).X, p.X)
	assert.Equal(t, xfixed.Int26_6(-32), p.Y)
}
