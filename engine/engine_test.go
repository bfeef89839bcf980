package engine

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/killown/cube-simulator/engine/renderer"
	"github.com/killown/cube-simulator/engine/renderer/bind_group_provider"
	"github.com/killown/cube-simulator/engine/renderer/pipeline"
	"github.com/killown/cube-simulator/engine/window"
)

// stubWindow satisfies window.Window without any platform windowing, so the
// engine's goroutine orchestration is testable headless.
type stubWindow struct {
	mu      sync.Mutex
	running bool
}

var _ window.Window = &stubWindow{}

func newStubWindow() *stubWindow {
	return &stubWindow{running: true}
}

func (w *stubWindow) SetUpdateCallback(func()) {}

func (w *stubWindow) SetResizeCallback(func(width, height int)) {}

func (w *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }

func (w *stubWindow) Width() int { return 640 }

func (w *stubWindow) Height() int { return 360 }

func (w *stubWindow) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *stubWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
	return nil
}

func (w *stubWindow) ProcessMessages() {
	for w.IsRunning() {
		time.Sleep(time.Millisecond)
	}
}

// stubRenderer satisfies renderer.Renderer with no GPU behind it. beginErr,
// when set, is returned from every BeginFrame call.
type stubRenderer struct {
	beginErr    error
	beginFrames int
	resizes     int
}

var _ renderer.Renderer = &stubRenderer{}

func (r *stubRenderer) Pipeline(string) pipeline.Pipeline { return nil }

func (r *stubRenderer) RegisterPipelines(...pipeline.Pipeline) error { return nil }

func (r *stubRenderer) Resize(int, int) { r.resizes++ }

func (r *stubRenderer) WriteBuffers([]bind_group_provider.BufferWrite) {}

func (r *stubRenderer) AcquireLatency() time.Duration { return 0 }

func (r *stubRenderer) EndFrame() {}

func (r *stubRenderer) Present() {}

func (r *stubRenderer) SetPresentMode(renderer.PresentMode) {}

func (r *stubRenderer) InitBindGroup(bind_group_provider.BindGroupProvider, wgpu.BindGroupLayoutDescriptor, map[int]uint64) error {
	return nil
}

func (r *stubRenderer) BeginFrame() error {
	r.beginFrames++
	return r.beginErr
}

func (r *stubRenderer) DrawCall(string, uint32, []bind_group_provider.BindGroupProvider) error {
	return nil
}

func TestRunStopsAfterPersistentSurfaceFailure(t *testing.T) {
	win := newStubWindow()
	r := &stubRenderer{beginErr: fmt.Errorf("surface lost")}
	eng := NewEngine(WithWindow(win), WithRenderer(r))

	done := make(chan struct{})
	go func() {
		eng.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine kept running with a surface that never acquires")
	}

	assert.Equal(t, maxSurfaceFailures, r.beginFrames)
	// Every failed frame but the last attempts a surface reconfigure.
	assert.Equal(t, maxSurfaceFailures-1, r.resizes)
	assert.False(t, win.IsRunning())
}

func TestQuitStopsRun(t *testing.T) {
	win := newStubWindow()
	r := &stubRenderer{}
	eng := NewEngine(WithWindow(win), WithRenderer(r))

	done := make(chan struct{})
	go func() {
		eng.Run()
		close(done)
	}()

	// Let the render loop turn over a few frames before quitting.
	time.Sleep(10 * time.Millisecond)
	eng.Quit()
	eng.Quit() // second call must be a no-op

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop after Quit")
	}

	assert.Greater(t, r.beginFrames, 0)
	assert.False(t, win.IsRunning())
}
