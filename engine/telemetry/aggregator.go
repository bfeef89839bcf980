// Package telemetry computes frame-pacing statistics over fixed wall-clock
// windows. Statistics are exact over each window; no exponential smoothing is
// applied between windows.
package telemetry

import (
	"sort"
	"time"
)

// DefaultWindow is the aggregation window length between telemetry samples.
const DefaultWindow = 500 * time.Millisecond

// Sample is one telemetry window's worth of frame statistics. MinFPS and MaxFPS
// are process-lifetime monotone: min only ever decreases-or-stays and max only
// ever increases-or-stays across windows; they are never reset.
type Sample struct {
	// CurrentFPS is the mean frame rate over the closed window.
	CurrentFPS float32

	// MinFPS is the lowest window-mean frame rate seen this run.
	MinFPS float32

	// MaxFPS is the highest window-mean frame rate seen this run.
	MaxFPS float32

	// OnePercentLowFPS is the frame rate of the slowest 1% of frames in the
	// window (at least one frame), a tail-latency metric.
	OnePercentLowFPS float32

	// JitterMS is the mean absolute difference between consecutive frame
	// durations in the window, in milliseconds.
	JitterMS float32

	// AcquireLatencyMS is the most recent swapchain-acquire blocking time, in
	// milliseconds. Zero when not measured.
	AcquireLatencyMS float32
}

// Aggregator accumulates per-frame durations and closes an aggregation window
// once the configured wall-clock interval has elapsed. It has exactly one
// writer (the frame loop) and no concurrent readers, so it carries no locking.
type Aggregator struct {
	window          time.Duration
	lastWindowClose time.Time
	lastFrame       time.Time

	frameTimes []float32 // durations in ms, cleared at every window close
	frameCount int

	minFPS, maxFPS float32
	acquireMS      float32
}

// NewAggregator creates an Aggregator with the default half-second window,
// then applies the provided options.
//
// Returns:
//   - *Aggregator: the newly created aggregator
func NewAggregator(options ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		window:     DefaultWindow,
		frameTimes: make([]float32, 0, 120),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// SetAcquireLatency records the latest swapchain-acquire blocking duration.
// The value is carried into the next sample's AcquireLatencyMS field.
func (a *Aggregator) SetAcquireLatency(d time.Duration) {
	a.acquireMS = float32(d.Seconds() * 1000.0)
}

// Tick must be called once per presented frame with the frame's completion
// time. It appends the frame duration to the window history and, once the
// window interval has elapsed, closes the window: it computes a Sample, resets
// the history and counter, and returns (sample, true). All other calls return
// (Sample{}, false).
//
// The first call only seeds the frame and window clocks. Skipped frames
// (transient presentation failures) should simply not call Tick, which keeps
// their duration out of the statistics.
//
// Parameters:
//   - now: the frame's completion timestamp (monotonic clock)
//
// Returns:
//   - Sample: the closed window's statistics, valid only when the bool is true
//   - bool: true if a window closed on this tick
func (a *Aggregator) Tick(now time.Time) (Sample, bool) {
	if a.lastFrame.IsZero() {
		a.lastFrame = now
		a.lastWindowClose = now
		a.frameCount++
		return Sample{}, false
	}

	deltaMS := float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
	a.frameTimes = append(a.frameTimes, deltaMS)
	a.frameCount++
	a.lastFrame = now

	elapsed := now.Sub(a.lastWindowClose)
	if elapsed < a.window {
		return Sample{}, false
	}

	var currentFPS float32
	if sec := elapsed.Seconds(); sec > 0 {
		currentFPS = float32(a.frameCount) / float32(sec)
	}

	// Lifetime min/max tighten monotonically; the first nonzero sample seeds both.
	if currentFPS > 0 {
		if a.minFPS == 0 || currentFPS < a.minFPS {
			a.minFPS = currentFPS
		}
		if currentFPS > a.maxFPS {
			a.maxFPS = currentFPS
		}
	}

	// jitter reads the chronological sequence and onePercentLow sorts the
	// history in place, so jitter must be computed first.
	jitterMS := jitter(a.frameTimes)

	sample := Sample{
		CurrentFPS:       currentFPS,
		MinFPS:           a.minFPS,
		MaxFPS:           a.maxFPS,
		OnePercentLowFPS: onePercentLow(a.frameTimes),
		JitterMS:         jitterMS,
		AcquireLatencyMS: a.acquireMS,
	}

	a.frameTimes = a.frameTimes[:0]
	a.frameCount = 0
	a.lastWindowClose = now

	return sample, true
}

// jitter returns the mean absolute difference between consecutive frame
// durations, or 0 with fewer than two samples.
func jitter(frameTimes []float32) float32 {
	if len(frameTimes) < 2 {
		return 0
	}
	var sum float32
	for i := 1; i < len(frameTimes); i++ {
		d := frameTimes[i] - frameTimes[i-1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / float32(len(frameTimes)-1)
}

// onePercentLow averages the slowest ceil(1%) of the window's frame durations
// (floor one frame, capped at the total count) and inverts to FPS. Empty
// history or a zero average yields 0 rather than a division by zero.
//
// Note: sorts frameTimes in place; callers reset the slice right after.
func onePercentLow(frameTimes []float32) float32 {
	n := len(frameTimes)
	if n == 0 {
		return 0
	}

	sort.Slice(frameTimes, func(i, j int) bool {
		return frameTimes[i] > frameTimes[j]
	})

	count := (n + 99) / 100 // ceil(n * 0.01)
	if count < 1 {
		count = 1
	}
	if count > n {
		count = n
	}

	var sum float32
	for _, ft := range frameTimes[:count] {
		sum += ft
	}
	avg := sum / float32(count)
	if avg <= 0 {
		return 0
	}
	return 1000.0 / avg
}
