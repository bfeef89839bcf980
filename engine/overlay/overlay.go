// Package overlay renders the telemetry HUD glyphs as a signed-distance bitmap
// font. It is the host-side mirror of the HUD functions in the fragment shader
// and is what the software renderer composites with; keeping it in plain Go
// also makes the glyph geometry unit-testable without a device.
package overlay

import (
	"github.com/killown/cube-simulator/common"
	"github.com/killown/cube-simulator/engine/telemetry"
)

const (
	// cellInset is the anti-bleed margin inside each lit glyph cell.
	cellInset = 0.4

	// glyphPitch is the horizontal spacing between glyphs in grid units.
	glyphPitch = 4.0

	// numberOffset is where a row's numeric field starts, past its label.
	numberOffset = 14.0

	// rowPitch is the vertical spacing between HUD rows in grid units.
	rowPitch = 6.0

	// hudScale converts clip-space units to glyph-grid units, making the HUD
	// size independent of surface resolution.
	hudScale = 110.0

	// anchorX, anchorY place the HUD's top-left corner in clip space.
	anchorX = -0.98
	anchorY = 0.98
)

// HighlightColor is the flat color painted wherever a glyph cell covers the
// pixel.
var HighlightColor = common.Vec3{X: 0.0, Y: 1.0, Z: 0.5}

// CharSDF tests one glyph at a local grid coordinate: it returns 1 when uv
// falls inside a lit cell of the 3x5 grid (respecting the per-cell inset) and
// 0 everywhere else, including outside the grid.
func CharSDF(uv common.Vec2, g Glyph) float32 {
	if uv.X < 0.0 || uv.X >= 3.0 || uv.Y < 0.0 || uv.Y >= 5.0 {
		return 0.0
	}
	if !g.Set(int(uv.X), int(uv.Y)) {
		return 0.0
	}
	lx := common.Fract(uv.X) - 0.5
	ly := common.Fract(uv.Y) - 0.5
	if lx < 0 {
		lx = -lx
	}
	if ly < 0 {
		ly = -ly
	}
	d := lx
	if ly > d {
		d = ly
	}
	if d-cellInset < 0.0 {
		return 1.0
	}
	return 0.0
}

// DrawNumber renders up to three decimal digits of value at the fixed glyph
// pitch: units always, tens from 10 up, hundreds from 100 up. Values are
// truncated to their low three digits by the per-digit modulo.
func DrawNumber(uv common.Vec2, value int32) float32 {
	units := int(value % 10)
	tens := int((value / 10) % 10)
	hundreds := int((value / 100) % 10)

	d := CharSDF(common.Vec2{X: uv.X - 2.0*glyphPitch, Y: uv.Y}, Digits[units])
	if value >= 10 {
		d = maxf(d, CharSDF(common.Vec2{X: uv.X - glyphPitch, Y: uv.Y}, Digits[tens]))
	}
	if value >= 100 {
		d = maxf(d, CharSDF(uv, Digits[hundreds]))
	}
	return d
}

// hudRow renders a three-glyph label followed by a numeric field.
func hudRow(uv common.Vec2, label [3]Glyph, value int32) float32 {
	d := CharSDF(uv, label[0])
	d = maxf(d, CharSDF(common.Vec2{X: uv.X - glyphPitch, Y: uv.Y}, label[1]))
	d = maxf(d, CharSDF(common.Vec2{X: uv.X - 2.0*glyphPitch, Y: uv.Y}, label[2]))
	d = maxf(d, DrawNumber(common.Vec2{X: uv.X - numberOffset, Y: uv.Y}, value))
	return d
}

// HUDUV converts a clip-space fragment coordinate to the HUD's glyph-grid
// coordinate system, anchored at the top-left corner of the screen.
func HUDUV(fragUV common.Vec2) common.Vec2 {
	return common.Vec2{
		X: (fragUV.X - anchorX) * hudScale,
		Y: (anchorY - fragUV.Y) * hudScale,
	}
}

// Coverage returns 1 where any HUD glyph covers the clip-space coordinate and
// 0 elsewhere. The base variant shows FPS, MAX, MIN and 1%-low rows; the
// extended variant appends jitter and acquire-latency rows.
func Coverage(fragUV common.Vec2, s telemetry.Sample, extended bool) float32 {
	uv := HUDUV(fragUV)

	d := hudRow(uv, [3]Glyph{GlyphF, GlyphP, GlyphS}, int32(s.CurrentFPS))
	d = maxf(d, hudRow(common.Vec2{X: uv.X, Y: uv.Y - rowPitch}, [3]Glyph{GlyphM, GlyphA, GlyphX}, int32(s.MaxFPS)))
	d = maxf(d, hudRow(common.Vec2{X: uv.X, Y: uv.Y - 2.0*rowPitch}, [3]Glyph{GlyphM, GlyphI, GlyphN}, int32(s.MinFPS)))
	d = maxf(d, hudRow(common.Vec2{X: uv.X, Y: uv.Y - 3.0*rowPitch}, [3]Glyph{Digits[1], GlyphPercent, GlyphL}, int32(s.OnePercentLowFPS)))

	if extended {
		d = maxf(d, hudRow(common.Vec2{X: uv.X, Y: uv.Y - 4.0*rowPitch}, [3]Glyph{GlyphJ, GlyphI, GlyphT}, int32(s.JitterMS)))
		d = maxf(d, hudRow(common.Vec2{X: uv.X, Y: uv.Y - 5.0*rowPitch}, [3]Glyph{GlyphL, GlyphA, GlyphT}, int32(s.AcquireLatencyMS)))
	}
	return d
}

// Composite overrides the scene color with the highlight color wherever the
// HUD covers the pixel. Coverage is binary, so this is a hard-edged select.
func Composite(sceneColor common.Vec3, fragUV common.Vec2, s telemetry.Sample, extended bool) common.Vec3 {
	return common.Mix3(sceneColor, HighlightColor, Coverage(fragUV, s, extended))
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
