package softrender

// RendererOption is a functional option used to configure a Renderer during construction.
type RendererOption func(*softRenderer)

// WithWorkers sets the number of pool workers used for row-parallel rendering.
// Non-positive counts are ignored and the per-CPU default is kept.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - RendererOption: the option to apply the worker count
func WithWorkers(workers int) RendererOption {
	return func(r *softRenderer) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithAspect overrides the horizontal aspect scale used for ray generation.
//
// Parameters:
//   - aspect: the aspect ratio (width over height)
//
// Returns:
//   - RendererOption: the option to apply the aspect ratio
func WithAspect(aspect float32) RendererOption {
	return func(r *softRenderer) {
		if aspect > 0 {
			r.aspect = aspect
		}
	}
}

// WithHUD enables or disables the telemetry overlay, and selects between the
// base and extended HUD variants when enabled.
//
// Parameters:
//   - enabled: true to composite the HUD over the scene
//   - extended: true for the extended variant with jitter and latency rows
//
// Returns:
//   - RendererOption: the option to apply the HUD settings
func WithHUD(enabled, extended bool) RendererOption {
	return func(r *softRenderer) {
		r.hud = enabled
		r.hudExt = extended
	}
}
