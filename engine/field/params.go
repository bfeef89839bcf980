package field

// MaxCubeCount is the hard upper bound on the number of primitives evaluated per
// distance query. It matches the GPU-side loop bound, so requested counts above
// it are silently clamped rather than rejected.
const MaxCubeCount = 128

// Params holds the scene parameters for the cube field. They are set once from
// CLI configuration and treated as immutable for the lifetime of the run.
type Params struct {
	// CubeCount is the requested number of primitives. Values above MaxCubeCount
	// are clamped; see EffectiveCubeCount.
	CubeCount uint32

	// Size is the cube half-extent in world units. Must be > 0.
	Size float32

	// Speed scales all time-dependent motion (offsets and rotations).
	Speed float32

	// Color is the base RGB surface color applied to lit primitives.
	Color [3]float32
}

// DefaultParams returns the parameter set used when no CLI overrides are given.
//
// Returns:
//   - Params: 6 cubes, half-extent 0.5, speed 1.0, greenish base color
func DefaultParams() Params {
	return Params{
		CubeCount: 6,
		Size:      0.5,
		Speed:     1.0,
		Color:     [3]float32{0.5, 0.8, 0.2},
	}
}

// EffectiveCubeCount returns the primitive count actually evaluated: the
// requested count clamped to MaxCubeCount.
func (p Params) EffectiveCubeCount() uint32 {
	if p.CubeCount > MaxCubeCount {
		return MaxCubeCount
	}
	return p.CubeCount
}
