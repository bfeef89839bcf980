package field

import (
	"github.com/chewxy/math32"

	"github.com/killown/cube-simulator/common"
)

// Fixed shading tones. The background is a vertical blend between two dark
// blues; hits are lit by a single directional light with an ambient floor.
var (
	backgroundLow  = common.Vec3{X: 0.01, Y: 0.02, Z: 0.05}
	backgroundHigh = common.Vec3{X: 0.05, Y: 0.08, Z: 0.15}
	lightDirection = common.Vec3{X: 1, Y: 2, Z: 1}.Normalize()
)

const (
	ambientFloor    = 0.2
	grainMissAmount = 0.04
	grainHitAmount  = 0.03
)

// Hash maps a 2-D coordinate to a pseudo-random value in [0, 1). It is the
// classic fract(sin(dot)) screen-space hash and is used only as a dither/grain
// term, so its statistical quality is irrelevant.
func Hash(p common.Vec2) float32 {
	return common.Fract(math32.Sin(p.Dot(common.Vec2{X: 127.1, Y: 311.7})) * 43758.5453123)
}

// Shade turns a trace result into a final scene color (before the telemetry
// overlay). uv is the clip-space screen coordinate in [-1, 1], used for the
// background gradient and the grain term. Pure function; no failure modes.
//
// Parameters:
//   - uv: clip-space screen coordinate of the pixel
//   - res: the trace result for the pixel's primary ray
//   - t: scene time in seconds
//   - params: the scene parameters (base color)
//
// Returns:
//   - common.Vec3: linear RGB color
func Shade(uv common.Vec2, res TraceResult, t float32, params Params) common.Vec3 {
	grain := Hash(common.Vec2{X: uv.X + common.Fract(t), Y: uv.Y + common.Fract(t)})

	if !res.Hit {
		s := uv.Y*0.5 + 0.5
		return common.Vec3{
			X: common.Mix(backgroundLow.X, backgroundHigh.X, s) + grain*grainMissAmount,
			Y: common.Mix(backgroundLow.Y, backgroundHigh.Y, s) + grain*grainMissAmount,
			Z: common.Mix(backgroundLow.Z, backgroundHigh.Z, s) + grain*grainMissAmount,
		}
	}

	n := Normal(res.Point, t, params)
	light := math32.Max(n.Dot(lightDirection), ambientFloor)
	return common.Vec3{
		X: params.Color[0]*light + grain*grainHitAmount,
		Y: params.Color[1]*light + grain*grainHitAmount,
		Z: params.Color[2]*light + grain*grainHitAmount,
	}
}
