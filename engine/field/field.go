// Package field implements the signed-distance model of the cube scene and the
// sphere tracer that renders it. Every function here is pure and stateless, so
// the same code paths can run per-pixel on the CPU (see engine/softrender)
// and be verified against the WGSL twin that runs on the GPU.
package field

import (
	"github.com/chewxy/math32"

	"github.com/killown/cube-simulator/common"
)

// normalEpsilon is the finite-difference step used for surface normal estimation.
const normalEpsilon = 0.005

// distanceSentinel seeds the min-union accumulator; effectively +infinity.
const distanceSentinel = 1e10

// rotate applies a 2-D plane rotation by angle to the pair (a, b).
func rotate(a, b, angle float32) (float32, float32) {
	s, c := math32.Sincos(angle)
	return c*a - s*b, s*a + c*b
}

// Distance returns the signed distance from point p to the nearest surface of
// the cube field at time t. Each primitive is the Boolean difference of a cube
// (Chebyshev distance minus Size) and a concentric sphere (Euclidean distance
// minus Size*1.4), carried through a per-index time-dependent rigid transform;
// the scene is the min-union over all primitives.
//
// The cube and sphere terms are exact per primitive and the min-union is a valid
// SDF, but the max(-sphere, cube) difference is only a conservative lower bound.
// The tracer tolerates that slight non-exactness; see Trace.
//
// Parameters:
//   - p: the world-space query point
//   - t: scene time in seconds
//   - params: the scene parameters (count is clamped to MaxCubeCount)
//
// Returns:
//   - float32: signed distance to the nearest surface (negative inside)
func Distance(p common.Vec3, t float32, params Params) float32 {
	d := float32(distanceSentinel)
	speed := params.Speed

	for i := uint32(0); i < params.EffectiveCubeCount(); i++ {
		fi := float32(i)

		// Lissajous-style drift: three independently phased sine terms. All
		// three use sine so the index-0 primitive sits at the origin at t=0.
		offset := common.Vec3{
			X: math32.Sin(t*0.5*speed+fi*1.047) * 3.5,
			Y: math32.Sin(t*0.7*speed+fi*0.8) * 2.0,
			Z: math32.Sin(t*0.3*speed+fi*2.1) * 1.5,
		}

		q := p.Sub(offset)
		q.X, q.Z = rotate(q.X, q.Z, t*speed*(0.2+fi*0.1))
		q.Y, q.Z = rotate(q.Y, q.Z, t*speed*(0.15+fi*0.05))

		a := q.Abs()
		cube := a.MaxComponent() - params.Size
		sphere := q.Length() - params.Size*1.4
		d = math32.Min(d, math32.Max(-sphere, cube))
	}

	return d
}

// Normal estimates the surface normal at p via central finite differences of
// Distance along each axis (six extra evaluations).
//
// Parameters:
//   - p: the world-space surface point
//   - t: scene time in seconds
//   - params: the scene parameters
//
// Returns:
//   - common.Vec3: the unit surface normal
func Normal(p common.Vec3, t float32, params Params) common.Vec3 {
	e := float32(normalEpsilon)
	n := common.Vec3{
		X: Distance(common.Vec3{X: p.X + e, Y: p.Y, Z: p.Z}, t, params) -
			Distance(common.Vec3{X: p.X - e, Y: p.Y, Z: p.Z}, t, params),
		Y: Distance(common.Vec3{X: p.X, Y: p.Y + e, Z: p.Z}, t, params) -
			Distance(common.Vec3{X: p.X, Y: p.Y - e, Z: p.Z}, t, params),
		Z: Distance(common.Vec3{X: p.X, Y: p.Y, Z: p.Z + e}, t, params) -
			Distance(common.Vec3{X: p.X, Y: p.Y, Z: p.Z - e}, t, params),
	}
	return n.Normalize()
}
