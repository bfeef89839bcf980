package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	assert.Equal(t, Vec3{X: 0, Y: 2.5, Z: 5}, a.Add(b))
	assert.Equal(t, Vec3{X: 2, Y: 1.5, Z: 1}, a.Sub(b))
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.InDelta(t, 6.0, a.Dot(b), 1e-6)
}

func TestVec3LengthAndNormalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	assert.InDelta(t, 5.0, v.Length(), 1e-6)
	assert.InDelta(t, 1.0, v.Normalize().Length(), 1e-6)

	// A zero vector normalizes to itself instead of dividing by zero.
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3ChebyshevHelpers(t *testing.T) {
	v := Vec3{X: -4, Y: 2, Z: -1}
	assert.Equal(t, Vec3{X: 4, Y: 2, Z: 1}, v.Abs())
	assert.Equal(t, float32(4.0), v.Abs().MaxComponent())
}

func TestVec2Dot(t *testing.T) {
	a := Vec2{X: 2, Y: 3}
	b := Vec2{X: -1, Y: 4}
	assert.InDelta(t, 10.0, a.Dot(b), 1e-6)
	assert.Equal(t, Vec2{X: 3, Y: -1}, a.Sub(b))
}

func TestScalarHelpers(t *testing.T) {
	assert.InDelta(t, 0.25, Fract(3.25), 1e-6)
	assert.InDelta(t, 0.75, Fract(-0.25), 1e-6)

	assert.InDelta(t, 1.5, Mix(1, 2, 0.5), 1e-6)
	assert.Equal(t, Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Mix3(Vec3{}, Vec3{X: 1, Y: 1, Z: 1}, 0.5))

	assert.Equal(t, float32(0.0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(1.0), Clamp(2, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
}
