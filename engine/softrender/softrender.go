// Package softrender renders the cube field on the CPU into an image, with no
// GPU or window involved. It evaluates the same trace/shade/overlay functions
// the WGSL shader implements, so it doubles as a reference for the GPU path
// and as the snapshot mode's backend.
package softrender

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/killown/cube-simulator/common"
	"github.com/killown/cube-simulator/engine/field"
	"github.com/killown/cube-simulator/engine/overlay"
	"github.com/killown/cube-simulator/engine/telemetry"
)

// softRenderer is the implementation of the Renderer interface.
type softRenderer struct {
	workers int
	aspect  float32
	hud     bool
	hudExt  bool

	// pool manages a bounded set of reusable goroutines for the per-row
	// parallel render phase. Workers persist across frames.
	pool worker.DynamicWorkerPool
}

// Renderer renders cube-field frames on the CPU. Row-parallel: each image row
// is one pool task, and a WaitGroup provides the per-frame barrier.
type Renderer interface {
	// RenderFrame renders one frame at the given scene time into a new RGBA image.
	//
	// Parameters:
	//   - width: output image width in pixels
	//   - height: output image height in pixels
	//   - t: scene time in seconds
	//   - params: the scene parameters
	//   - sample: telemetry shown on the HUD overlay (ignored when the HUD is disabled)
	//
	// Returns:
	//   - *image.RGBA: the rendered frame
	//   - error: an error if the dimensions are not positive
	RenderFrame(width, height int, t float32, params field.Params, sample telemetry.Sample) (*image.RGBA, error)
}

var _ Renderer = &softRenderer{}

// NewRenderer creates a CPU renderer with one worker per logical CPU by
// default, then applies the provided options.
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(options ...RendererOption) Renderer {
	r := &softRenderer{
		workers: runtime.NumCPU(),
		aspect:  field.DefaultAspect,
		hud:     true,
	}
	for _, opt := range options {
		opt(r)
	}
	// Queue size of 256 accommodates typical row counts per frame with headroom.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r
}

func (r *softRenderer) RenderFrame(width, height int, t float32, params field.Params, sample telemetry.Sample) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("softrender: invalid frame size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// One task per row. pool.Wait() blocks until workers idle-exit, which is
	// unsuitable for frame workloads, so a WaitGroup provides the barrier.
	var wg sync.WaitGroup
	for y := 0; y < height; y++ {
		wg.Add(1)
		row := y
		r.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				r.renderRow(img, row, width, height, t, params, sample)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return img, nil
}

// renderRow shades every pixel of one image row. Rows share no mutable state
// beyond their disjoint slices of the output image.
func (r *softRenderer) renderRow(img *image.RGBA, y, width, height int, t float32, params field.Params, sample telemetry.Sample) {
	for x := 0; x < width; x++ {
		// Pixel center to clip space, +y up.
		uv := common.Vec2{
			X: (float32(x)+0.5)/float32(width)*2.0 - 1.0,
			Y: 1.0 - (float32(y)+0.5)/float32(height)*2.0,
		}

		origin, dir := field.CameraRay(uv, r.aspect)
		res := field.Trace(origin, dir, t, params)
		c := field.Shade(uv, res, t, params)
		if r.hud {
			c = overlay.Composite(c, uv, sample, r.hudExt)
		}

		img.SetRGBA(x, y, color.RGBA{
			R: channelByte(c.X),
			G: channelByte(c.Y),
			B: channelByte(c.Z),
			A: 255,
		})
	}
}

// channelByte clamps a linear channel value to [0, 1] and quantizes to 8 bits.
func channelByte(v float32) uint8 {
	return uint8(common.Clamp(v, 0, 1)*255.0 + 0.5)
}
