package engine

import (
	"log"
	"sync"
	"time"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/killown/cube-simulator/engine/field"
	"github.com/killown/cube-simulator/engine/profiler"
	"github.com/killown/cube-simulator/engine/renderer"
	"github.com/killown/cube-simulator/engine/renderer/bind_group_provider"
	"github.com/killown/cube-simulator/engine/renderer/pipeline"
	"github.com/killown/cube-simulator/engine/renderer/shader"
	"github.com/killown/cube-simulator/engine/telemetry"
	"github.com/killown/cube-simulator/engine/window"
)

// cubeFieldPipelineKey identifies the single render pipeline in the cache.
const cubeFieldPipelineKey = "cube_field"

// maxSurfaceFailures is how many consecutive frames may fail to acquire the
// surface before the engine gives up and shuts down. Transient conditions
// (resize, occlusion) recover within a frame or two; a failure streak this
// long means the surface is not coming back.
const maxSurfaceFailures = 30

// engine implements the Engine interface.
// Coordinates the render goroutine and the main-thread window message pump.
type engine struct {
	wg sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	renderer renderer.Renderer

	params      field.Params
	extendedHUD bool

	aggregator      *telemetry.Aggregator
	telemetryWindow time.Duration

	profiler *profiler.Profiler

	uniformProvider bind_group_provider.BindGroupProvider
	bindGroups      []bind_group_provider.BindGroupProvider

	// startTime anchors the scene clock. Elapsed milliseconds ride into the
	// vertex stage as the draw's first-instance index.
	startTime time.Time

	// resizePending is set by the window's resize callback and consumed by the
	// render goroutine before the next frame's acquire.
	resizeMu      sync.Mutex
	resizePending bool
	resizeWidth   int
	resizeHeight  int
}

// Engine is the main entry point for the cube-field simulator.
// It owns the frame loop, the telemetry cadence, and uniform synchronization.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Params returns the scene parameters the engine was built with.
	//
	// Returns:
	//   - field.Params: the scene parameters
	Params() field.Params

	// Run starts the render goroutine and blocks on the window message loop
	// until the window closes or Quit is called.
	Run()

	// Quit signals the render goroutine to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options, registers
// the cube-field pipeline on the renderer, and uploads the initial uniform
// record so the first frames draw with valid parameters before the first
// telemetry window closes.
//
// A window and a renderer are required; NewEngine panics without them, matching
// the fatal-at-startup handling of GPU initialization failures.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel:     make(chan struct{}),
		params:          field.DefaultParams(),
		telemetryWindow: telemetry.DefaultWindow,
		startTime:       time.Now(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine: a window is required")
	}
	if e.renderer == nil {
		panic("engine: a renderer is required")
	}

	e.aggregator = telemetry.NewAggregator(telemetry.WithWindow(e.telemetryWindow))

	e.window.SetResizeCallback(func(width, height int) {
		e.resizeMu.Lock()
		e.resizePending = true
		e.resizeWidth = width
		e.resizeHeight = height
		e.resizeMu.Unlock()
	})

	if err := e.initPipeline(); err != nil {
		panic(err)
	}

	return e
}

// initPipeline builds the cube-field shaders and pipeline, creates the uniform
// bind group, and writes the initial uniform record.
func (e *engine) initPipeline() error {
	uniformLayout := wgpu.BindGroupLayoutDescriptor{
		Label: "Cube Field Uniform Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 64,
				},
			},
		},
	}

	vs := shader.NewShader("cube_field_vs", shader.ShaderTypeVertex,
		field.CubeFieldShaderSource, field.VertexEntryPoint)

	fragmentEntry := field.FragmentEntryPoint
	if e.extendedHUD {
		fragmentEntry = field.FragmentEntryPointExtended
	}
	fs := shader.NewShader("cube_field_fs", shader.ShaderTypeFragment,
		field.CubeFieldShaderSource, fragmentEntry,
		shader.WithBindGroupLayoutDescriptor(0, uniformLayout))

	p := pipeline.NewPipeline(cubeFieldPipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleStrip),
	)
	if err := e.renderer.RegisterPipelines(p); err != nil {
		return err
	}

	e.uniformProvider = bind_group_provider.NewBindGroupProvider("Cube Field Uniforms")
	if err := e.renderer.InitBindGroup(e.uniformProvider, uniformLayout, nil); err != nil {
		return err
	}
	e.bindGroups = []bind_group_provider.BindGroupProvider{e.uniformProvider}

	e.syncUniforms(telemetry.Sample{})
	return nil
}

// syncUniforms packs the scene parameters and a telemetry sample into the
// uniform record and stages it for GPU transfer. The write is ordered before
// the next draw that observes it.
func (e *engine) syncUniforms(sample telemetry.Sample) {
	uniforms := field.NewGPUFieldUniforms(e.params, sample)
	e.renderer.WriteBuffers([]bind_group_provider.BufferWrite{
		{
			Provider: e.uniformProvider,
			Binding:  0,
			Offset:   0,
			Data:     uniforms.Marshal(),
		},
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Params() field.Params {
	return e.params
}

func (e *engine) Run() {
	e.wg.Add(2)
	go e.handleRender()
	go e.handleQuit()

	// The message pump owns the main thread (a GLFW requirement); rendering
	// happens on the goroutine above.
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
}

// Quit signals the render goroutine to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handleRender runs the frame loop in its own goroutine: drain any pending
// resize, acquire and draw, then feed the telemetry aggregator. When a
// telemetry window closes, the fresh sample is packed into the uniform record
// before the next frame's draw.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	surfaceFailures := 0
	for {
		select {
		case <-e.quitChannel:
			return
		default:
			e.applyPendingResize()

			// Scene time in whole milliseconds, transported through the
			// first-instance index; the vertex stage scales it back to seconds.
			timeMS := uint32(time.Since(e.startTime).Milliseconds())

			if err := e.renderer.BeginFrame(); err != nil {
				// Transient surface condition (outdated/lost): reconfigure and
				// skip this frame. The skipped frame stays out of telemetry.
				surfaceFailures++
				if surfaceFailures >= maxSurfaceFailures {
					log.Printf("[Engine] surface failed %d frames in a row, shutting down: %v", surfaceFailures, err)
					e.signalQuit()
					return
				}
				log.Printf("[Engine] skipping frame, surface reconfigure: %v", err)
				e.renderer.Resize(e.window.Width(), e.window.Height())
				continue
			}
			surfaceFailures = 0

			if err := e.renderer.DrawCall(cubeFieldPipelineKey, timeMS, e.bindGroups); err != nil {
				log.Printf("[Engine] draw call failed: %v", err)
			}
			e.renderer.EndFrame()
			e.renderer.Present()

			if e.profiler != nil {
				e.profiler.Tick()
			}

			e.aggregator.SetAcquireLatency(e.renderer.AcquireLatency())
			if sample, closed := e.aggregator.Tick(time.Now()); closed {
				e.syncUniforms(sample)
				log.Printf("[Telemetry] fps=%.1f min=%.1f max=%.1f low1%%=%.1f jitter=%.2fms acquire=%.2fms",
					sample.CurrentFPS, sample.MinFPS, sample.MaxFPS,
					sample.OnePercentLowFPS, sample.JitterMS, sample.AcquireLatencyMS)
			}
		}
	}
}

// applyPendingResize reconfigures the surface with the latest size reported by
// the window, if any. Runs on the render goroutine so the surface is never
// reconfigured mid-frame.
func (e *engine) applyPendingResize() {
	e.resizeMu.Lock()
	pending, w, h := e.resizePending, e.resizeWidth, e.resizeHeight
	e.resizePending = false
	e.resizeMu.Unlock()

	if pending && w > 0 && h > 0 {
		e.renderer.Resize(w, h)
	}
}

// handleQuit blocks until the quit channel is closed, then closes the window
// so the message pump on the main thread unblocks.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
	if e.window.IsRunning() {
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] window close: %v", err)
		}
	}
}
