package engine

import (
	"time"

	"github.com/killown/cube-simulator/engine/field"
	"github.com/killown/cube-simulator/engine/profiler"
	"github.com/killown/cube-simulator/engine/renderer"
	"github.com/killown/cube-simulator/engine/window"
)

// EngineBuilderOption defines a function that configures an engine during
// construction.
type EngineBuilderOption func(*engine)

// WithWindow sets the window to use for the engine.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - EngineBuilderOption: a function that sets the window
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer to use for the engine.
//
// Parameters:
//   - r: the renderer instance
//
// Returns:
//   - EngineBuilderOption: a function that sets the renderer
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithParams sets the scene parameters for the cube field.
//
// Parameters:
//   - params: the scene parameters
//
// Returns:
//   - EngineBuilderOption: a function that sets the scene parameters
func WithParams(params field.Params) EngineBuilderOption {
	return func(e *engine) {
		e.params = params
	}
}

// WithExtendedHUD enables the extended telemetry overlay, adding frame-time
// jitter and surface-acquire latency rows below the FPS block.
//
// Parameters:
//   - extended: whether to enable the extended overlay
//
// Returns:
//   - EngineBuilderOption: a function that sets the extended overlay flag
func WithExtendedHUD(extended bool) EngineBuilderOption {
	return func(e *engine) {
		e.extendedHUD = extended
	}
}

// WithTelemetryWindow sets the telemetry aggregation window. Non-positive
// values are ignored and the default window is kept.
//
// Parameters:
//   - window: the aggregation window duration
//
// Returns:
//   - EngineBuilderOption: a function that sets the telemetry window
func WithTelemetryWindow(window time.Duration) EngineBuilderOption {
	return func(e *engine) {
		if window > 0 {
			e.telemetryWindow = window
		}
	}
}

// WithProfiling enables periodic logging of heap and GC statistics from the
// render loop.
//
// Parameters:
//   - enabled: whether to enable the memory profiler
//
// Returns:
//   - EngineBuilderOption: a function that sets the profiler
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		if enabled {
			e.profiler = profiler.NewProfiler()
		}
	}
}
