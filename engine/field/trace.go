package field

import "github.com/killown/cube-simulator/common"

const (
	// maxMarchSteps bounds the sphere-tracing loop per ray.
	maxMarchSteps = 80

	// hitEpsilon is the surface-thickness tolerance; a distance below it is a hit.
	hitEpsilon = 0.002

	// farPlane is the traveled-distance bound past which a ray is a miss.
	farPlane = 30.0

	// cameraDistance is the eye's distance from the scene center along +Z.
	cameraDistance = 10.0

	// focalLength controls the ray fan; larger values narrow the field of view.
	focalLength = 1.8

	// DefaultAspect matches the fixed aspect multiplier applied to the ray fan
	// on the GPU path (tuned for 16:9 fullscreen).
	DefaultAspect = 1.77
)

// TraceResult is the outcome of marching a single ray.
type TraceResult struct {
	// Hit reports whether the ray reached a surface before the step or distance
	// bound. A miss is not an error; it selects the background branch.
	Hit bool

	// Point is the world-space position where marching stopped. Only meaningful
	// when Hit is true.
	Point common.Vec3
}

// CameraRay builds the primary ray for a screen position. uv is the clip-space
// coordinate in [-1, 1] on both axes; aspect is the horizontal stretch applied
// before ray construction (DefaultAspect on the GPU path).
//
// Returns:
//   - common.Vec3: the ray origin
//   - common.Vec3: the unit ray direction
func CameraRay(uv common.Vec2, aspect float32) (common.Vec3, common.Vec3) {
	origin := common.Vec3{Z: cameraDistance}
	dir := common.Vec3{X: uv.X * aspect, Y: uv.Y, Z: -focalLength}
	return origin, dir.Normalize()
}

// Trace sphere-traces a ray against the cube field: at each step the ray
// advances by the distance returned by the SDF, which cannot skip a surface as
// long as the SDF is a true lower bound. Marching terminates as a hit when the
// distance falls below hitEpsilon, or as a miss when the traveled distance
// exceeds farPlane or maxMarchSteps runs out.
//
// Because the Boolean-difference primitive is only an approximate lower bound,
// a step may occasionally overshoot a thin shell at grazing angles. No step
// dampening is applied.
//
// Parameters:
//   - origin: ray origin in world space
//   - dir: unit ray direction
//   - t: scene time in seconds
//   - params: the scene parameters
//
// Returns:
//   - TraceResult: hit flag and termination point
func Trace(origin, dir common.Vec3, t float32, params Params) TraceResult {
	var total float32
	p := origin

	for i := 0; i < maxMarchSteps; i++ {
		p = origin.Add(dir.Scale(total))
		d := Distance(p, t, params)
		if d < hitEpsilon {
			return TraceResult{Hit: true, Point: p}
		}
		total += d
		if total > farPlane {
			break
		}
	}

	return TraceResult{Point: p}
}
