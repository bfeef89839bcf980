package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/killown/cube-simulator/engine"
	"github.com/killown/cube-simulator/engine/field"
	"github.com/killown/cube-simulator/engine/renderer"
	"github.com/killown/cube-simulator/engine/softrender"
	"github.com/killown/cube-simulator/engine/telemetry"
	"github.com/killown/cube-simulator/engine/window"
)

func main() {
	var (
		cubes  = flag.Int("cubes", 6, "number of animated cubes (clamped to the shader limit)")
		size   = flag.Float64("size", 0.5, "cube half-extent")
		speed  = flag.Float64("speed", 1.0, "animation speed multiplier")
		red    = flag.Float64("red", 0.5, "cube color, red channel")
		green  = flag.Float64("green", 0.8, "cube color, green channel")
		blue   = flag.Float64("blue", 0.2, "cube color, blue channel")
		width  = flag.Int("width", 1280, "window width in pixels")
		height = flag.Int("height", 720, "window height in pixels")

		vsync      = flag.Bool("vsync", false, "synchronize presentation with the display refresh")
		fullscreen = flag.Bool("fullscreen", false, "run fullscreen on the primary monitor")
		extended   = flag.Bool("extended", false, "show the extended telemetry overlay (jitter and acquire latency)")
		software   = flag.Bool("software", false, "force a software rendering adapter")
		profile    = flag.Bool("profile", false, "log heap and GC statistics periodically")

		snapshot     = flag.String("snapshot", "", "render a single frame on the CPU to this PNG path and exit")
		snapshotTime = flag.Float64("snapshot-time", 0, "scene time in seconds for the snapshot frame")
		workers      = flag.Int("workers", 0, "CPU worker count for snapshot rendering (0 = all cores)")
	)
	flag.Parse()

	if *cubes < 0 {
		*cubes = 0
	}
	params := field.Params{
		CubeCount: uint32(*cubes),
		Size:      float32(*size),
		Speed:     float32(*speed),
		Color:     [3]float32{float32(*red), float32(*green), float32(*blue)},
	}

	if *snapshot != "" {
		if err := writeSnapshot(*snapshot, *width, *height, float32(*snapshotTime), params, *workers, *extended); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		fmt.Printf("wrote %s (%dx%d, t=%.2fs)\n", *snapshot, *width, *height, *snapshotTime)
		return
	}

	win := window.NewWindow(
		window.WithTitle("Cube Simulator"),
		window.WithWidth(*width),
		window.WithHeight(*height),
		window.WithFullscreen(*fullscreen),
	)

	presentMode := renderer.PresentModeUncapped
	if *vsync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(*software),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithParams(params),
		engine.WithExtendedHUD(*extended),
		engine.WithProfiling(*profile),
	)
	eng.Run()
}

// writeSnapshot renders one frame with the CPU reference renderer and encodes
// it as a PNG. The overlay is drawn with a zero telemetry sample, matching a
// GPU frame before the first telemetry window closes.
func writeSnapshot(path string, width, height int, t float32, params field.Params, workers int, extended bool) error {
	options := []softrender.RendererOption{
		softrender.WithAspect(float32(width) / float32(height)),
		softrender.WithHUD(true, extended),
	}
	if workers > 0 {
		options = append(options, softrender.WithWorkers(workers))
	}

	img, err := softrender.NewRenderer(options...).RenderFrame(width, height, t, params, telemetry.Sample{})
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
