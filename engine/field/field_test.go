package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/killown/cube-simulator/common"
)

func testParams() Params {
	return Params{CubeCount: 1, Size: 0.5, Speed: 1.0, Color: [3]float32{0.5, 0.8, 0.2}}
}

func TestEffectiveCubeCountClamps(t *testing.T) {
	assert.Equal(t, uint32(6), Params{CubeCount: 6}.EffectiveCubeCount())
	assert.Equal(t, uint32(MaxCubeCount), Params{CubeCount: 500}.EffectiveCubeCount())
	assert.Equal(t, uint32(0), Params{}.EffectiveCubeCount())
}

func TestDistancePrimitiveAtOriginAtTimeZero(t *testing.T) {
	p := testParams()

	// All motion terms are sine-based, so the index-0 primitive is centered at
	// the origin with no rotation at t=0. The concentric sphere (radius
	// Size*1.4) carves the cube's center out.
	assert.InDelta(t, 0.7, Distance(common.Vec3{}, 0, p), 1e-4)

	// A point on the front face near the corner survives the carve: the cube
	// term is exactly zero and the sphere term is inactive there.
	assert.InDelta(t, 0.0, Distance(common.Vec3{X: 0.45, Y: 0.45, Z: 0.5}, 0, p), 1e-4)

	// Far from everything the distance is dominated by the range to the shape.
	assert.Greater(t, Distance(common.Vec3{Z: 20}, 0, p), float32(18.0))
}

func TestDistanceZeroCubesIsEmptyScene(t *testing.T) {
	d := Distance(common.Vec3{}, 0, Params{Size: 0.5})
	assert.Greater(t, d, float32(1e9))
}

func TestCameraRay(t *testing.T) {
	origin, dir := CameraRay(common.Vec2{}, DefaultAspect)
	assert.Equal(t, common.Vec3{Z: 10.0}, origin)
	assert.InDelta(t, 0.0, dir.X, 1e-6)
	assert.InDelta(t, 0.0, dir.Y, 1e-6)
	assert.InDelta(t, -1.0, dir.Z, 1e-6)

	_, dir = CameraRay(common.Vec2{X: 1}, DefaultAspect)
	assert.InDelta(t, 1.0, dir.Length(), 1e-5)
	assert.Positive(t, dir.X)
	assert.Negative(t, dir.Z)
}

func TestTraceHitsFrontFace(t *testing.T) {
	p := testParams()

	origin := common.Vec3{Z: 10.0}
	target := common.Vec3{X: 0.45, Y: 0.45, Z: 0.5}
	dir := target.Sub(origin).Normalize()

	res := Trace(origin, dir, 0, p)
	assert.True(t, res.Hit)
	assert.InDelta(t, target.X, res.Point.X, 0.05)
	assert.InDelta(t, target.Y, res.Point.Y, 0.05)
	assert.InDelta(t, target.Z, res.Point.Z, 0.05)
}

func TestTraceMissesThroughCarvedCenter(t *testing.T) {
	p := testParams()

	// The sphere carve opens a hole through the middle of every face, so the
	// axial ray passes straight through the primitive.
	res := Trace(common.Vec3{Z: 10.0}, common.Vec3{Z: -1.0}, 0, p)
	assert.False(t, res.Hit)
}

func TestNormalOnFrontFace(t *testing.T) {
	p := testParams()

	n := Normal(common.Vec3{X: 0.45, Y: 0.45, Z: 0.5}, 0, p)
	assert.InDelta(t, 1.0, n.Length(), 1e-5)
	assert.InDelta(t, 0.0, n.X, 0.05)
	assert.InDelta(t, 0.0, n.Y, 0.05)
	assert.InDelta(t, 1.0, n.Z, 0.05)
}

func TestHashStaysInUnitInterval(t *testing.T) {
	points := []common.Vec2{
		{},
		{X: 0.5, Y: -0.25},
		{X: -1.0, Y: 1.0},
		{X: 13.37, Y: -42.0},
	}
	for _, p := range points {
		h := Hash(p)
		assert.GreaterOrEqual(t, h, float32(0.0))
		assert.Less(t, h, float32(1.0))
	}
}

func TestShadeMissBlendsBackground(t *testing.T) {
	p := testParams()

	// At the bottom of the screen the gradient sits on the low tone, plus at
	// most the grain amount.
	c := Shade(common.Vec2{Y: -1.0}, TraceResult{}, 0.25, p)
	assert.GreaterOrEqual(t, c.X, float32(0.01))
	assert.LessOrEqual(t, c.X, float32(0.0501))
	assert.GreaterOrEqual(t, c.Z, float32(0.05))
	assert.LessOrEqual(t, c.Z, float32(0.0901))
}

func TestShadeHitScalesBaseColor(t *testing.T) {
	p := testParams()

	point := common.Vec3{X: 0.45, Y: 0.45, Z: 0.5}
	c := Shade(common.Vec2{X: 0.1, Y: 0.1}, TraceResult{Hit: true, Point: point}, 0, p)

	// The front-face normal is +Z, so the diffuse term is lightDirection.Z
	// (about 0.408); each channel lands within a grain step of base*light.
	light := float32(0.4082)
	for i, ch := range []float32{c.X, c.Y, c.Z} {
		lo := p.Color[i] * light
		assert.GreaterOrEqual(t, ch, lo-0.001)
		assert.LessOrEqual(t, ch, lo+0.0301)
	}
}
