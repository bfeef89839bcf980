// package common contains common types that are used throughout this program. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/chewxy/math32"

// Vec2 is a 2-component float32 vector, used for screen-space and glyph-grid coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component float32 vector, used for world-space points, directions, and colors.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Abs returns the component-wise absolute value of v.
func (v Vec3) Abs() Vec3 {
	return Vec3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}

// MaxComponent returns the largest component of v. For an absolute-valued
// vector this is the Chebyshev (L∞) norm.
func (v Vec3) MaxComponent() float32 {
	return math32.Max(v.X, math32.Max(v.Y, v.Z))
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1.0 / l)
}

// Fract returns the fractional part of x (x - floor(x)).
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}

// Mix linearly interpolates between a and b by s.
func Mix(a, b, s float32) float32 {
	return a + (b-a)*s
}

// Mix3 linearly interpolates between a and b component-wise by s.
func Mix3(a, b Vec3, s float32) Vec3 {
	return Vec3{
		X: Mix(a.X, b.X, s),
		Y: Mix(a.Y, b.Y, s),
		Z: Mix(a.Z, b.Z, s),
	}
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
