package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/killown/cube-simulator/common"
	"github.com/killown/cube-simulator/engine/telemetry"
)

func TestGlyphSet(t *testing.T) {
	// '0' is a ring: lit top-left corner, unlit center.
	assert.True(t, Digits[0].Set(0, 0))
	assert.False(t, Digits[0].Set(1, 2))

	// '8' has a lit middle bar.
	assert.True(t, Digits[8].Set(1, 2))

	// Out-of-grid coordinates are never lit.
	assert.False(t, Digits[8].Set(-1, 0))
	assert.False(t, Digits[8].Set(3, 0))
	assert.False(t, Digits[8].Set(0, 5))
}

func TestCharSDFCellCenters(t *testing.T) {
	// Lit cell centers read 1, unlit cells and cell borders read 0.
	assert.Equal(t, float32(1.0), CharSDF(common.Vec2{X: 0.5, Y: 0.5}, Digits[0]))
	assert.Equal(t, float32(0.0), CharSDF(common.Vec2{X: 1.5, Y: 2.5}, Digits[0]))
	assert.Equal(t, float32(0.0), CharSDF(common.Vec2{X: 0.95, Y: 0.5}, Digits[0]))

	// Outside the 3x5 grid.
	assert.Equal(t, float32(0.0), CharSDF(common.Vec2{X: -0.5, Y: 0.5}, Digits[8]))
	assert.Equal(t, float32(0.0), CharSDF(common.Vec2{X: 3.5, Y: 0.5}, Digits[8]))
}

func TestDrawNumberDigitSuppression(t *testing.T) {
	// Sample the center cell of the tens glyph slot.
	tensCenter := common.Vec2{X: glyphPitch + 1.5, Y: 2.5}
	assert.Equal(t, float32(1.0), DrawNumber(tensCenter, 88))
	assert.Equal(t, float32(0.0), DrawNumber(tensCenter, 8))

	// And the hundreds slot.
	hundredsCenter := common.Vec2{X: 1.5, Y: 2.5}
	assert.Equal(t, float32(1.0), DrawNumber(hundredsCenter, 888))
	assert.Equal(t, float32(0.0), DrawNumber(hundredsCenter, 88))
}

func TestDrawNumberTruncatesToThreeDigits(t *testing.T) {
	// 1888 renders as 888: the hundreds slot shows an 8, not a 1.
	hundredsCenter := common.Vec2{X: 1.5, Y: 2.5}
	assert.Equal(t, float32(1.0), DrawNumber(hundredsCenter, 1888))
}

func TestHUDUVAnchor(t *testing.T) {
	uv := HUDUV(common.Vec2{X: anchorX, Y: anchorY})
	assert.InDelta(t, 0.0, uv.X, 1e-5)
	assert.InDelta(t, 0.0, uv.Y, 1e-5)

	// Moving down the screen increases the grid Y.
	uv = HUDUV(common.Vec2{X: anchorX, Y: anchorY - 0.1})
	assert.InDelta(t, 11.0, uv.Y, 1e-3)
}

func TestCoverageFPSLabel(t *testing.T) {
	// The top-left cell of the 'F' in the FPS row.
	frag := common.Vec2{X: anchorX + 0.5/hudScale, Y: anchorY - 0.5/hudScale}
	assert.Equal(t, float32(1.0), Coverage(frag, telemetry.Sample{}, false))

	// The center of the screen is clear of the HUD.
	assert.Equal(t, float32(0.0), Coverage(common.Vec2{}, telemetry.Sample{}, false))
}

func TestCoverageExtendedRows(t *testing.T) {
	// Top-left cell of the 'J' in the jitter row, present only when extended.
	frag := common.Vec2{
		X: anchorX + 0.5/hudScale,
		Y: anchorY - (4.0*rowPitch+0.5)/hudScale,
	}
	assert.Equal(t, float32(0.0), Coverage(frag, telemetry.Sample{}, false))
	assert.Equal(t, float32(1.0), Coverage(frag, telemetry.Sample{}, true))
}

func TestCompositeSelectsHighlight(t *testing.T) {
	scene := common.Vec3{X: 0.2, Y: 0.3, Z: 0.4}

	frag := common.Vec2{X: anchorX + 0.5/hudScale, Y: anchorY - 0.5/hudScale}
	assert.Equal(t, HighlightColor, Composite(scene, frag, telemetry.Sample{}, false))
	assert.Equal(t, scene, Composite(scene, common.Vec2{}, telemetry.Sample{}, false))
}
