package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickFirstCallSeedsClocks(t *testing.T) {
	a := NewAggregator()
	sample, closed := a.Tick(time.Now())
	assert.False(t, closed)
	assert.Equal(t, Sample{}, sample)
}

func TestTickClosesWindow(t *testing.T) {
	a := NewAggregator(WithWindow(140 * time.Millisecond))
	a.SetAcquireLatency(2 * time.Millisecond)
	base := time.Now()

	// Seed, then four 10ms frames and one 100ms stall closing the window.
	_, closed := a.Tick(base)
	assert.False(t, closed)
	for _, ms := range []int{10, 20, 30, 40} {
		_, closed = a.Tick(base.Add(time.Duration(ms) * time.Millisecond))
		assert.False(t, closed)
	}
	sample, closed := a.Tick(base.Add(140 * time.Millisecond))
	assert.True(t, closed)

	// Six frames over 140ms.
	assert.InDelta(t, 42.857, sample.CurrentFPS, 0.01)
	assert.InDelta(t, 42.857, sample.MinFPS, 0.01)
	assert.InDelta(t, 42.857, sample.MaxFPS, 0.01)
	// Slowest 1% of 5 frames is the single 100ms stall.
	assert.InDelta(t, 10.0, sample.OnePercentLowFPS, 0.01)
	// Consecutive diffs 0, 0, 0, 90 over four pairs.
	assert.InDelta(t, 22.5, sample.JitterMS, 0.01)
	assert.InDelta(t, 2.0, sample.AcquireLatencyMS, 0.01)
}

func TestMinMaxAreMonotoneAcrossWindows(t *testing.T) {
	a := NewAggregator(WithWindow(140 * time.Millisecond))
	base := time.Now()

	a.Tick(base)
	first, closed := a.Tick(base.Add(140 * time.Millisecond))
	assert.True(t, closed)
	assert.InDelta(t, first.CurrentFPS, first.MinFPS, 0.001)
	assert.InDelta(t, first.CurrentFPS, first.MaxFPS, 0.001)

	// Faster window: seven 20ms frames.
	var second Sample
	for i := 1; i <= 7; i++ {
		second, closed = a.Tick(base.Add(140*time.Millisecond + time.Duration(i*20)*time.Millisecond))
	}
	assert.True(t, closed)
	assert.InDelta(t, 50.0, second.CurrentFPS, 0.01)
	assert.InDelta(t, 50.0, second.MaxFPS, 0.01)
	assert.InDelta(t, first.MinFPS, second.MinFPS, 0.001)

	// Slower window: a single 140ms frame. Max must not regress.
	third, closed := a.Tick(base.Add(420 * time.Millisecond))
	assert.True(t, closed)
	assert.InDelta(t, 7.143, third.CurrentFPS, 0.01)
	assert.InDelta(t, 7.143, third.MinFPS, 0.01)
	assert.InDelta(t, 50.0, third.MaxFPS, 0.01)
}

func TestJitterUsesChronologicalOrder(t *testing.T) {
	a := NewAggregator(WithWindow(50 * time.Millisecond))
	base := time.Now()

	// Alternating 10ms/20ms frames. In chronological order every consecutive
	// pair differs by 10ms; sorted descending the same history would yield
	// diffs 0, 10, 0 and a jitter of 3.33.
	_, closed := a.Tick(base)
	assert.False(t, closed)
	for _, ms := range []int{10, 30, 40} {
		_, closed = a.Tick(base.Add(time.Duration(ms) * time.Millisecond))
		assert.False(t, closed)
	}
	sample, closed := a.Tick(base.Add(60 * time.Millisecond))
	assert.True(t, closed)

	assert.InDelta(t, 10.0, sample.JitterMS, 0.01)
	// Slowest 1% of 4 frames is a single 20ms frame.
	assert.InDelta(t, 50.0, sample.OnePercentLowFPS, 0.01)
}

func TestJitterZeroWithSingleFrame(t *testing.T) {
	a := NewAggregator(WithWindow(50 * time.Millisecond))
	base := time.Now()

	a.Tick(base)
	sample, closed := a.Tick(base.Add(50 * time.Millisecond))
	assert.True(t, closed)
	assert.Zero(t, sample.JitterMS)
	assert.InDelta(t, 20.0, sample.OnePercentLowFPS, 0.01)
}

func TestWithWindowIgnoresNonPositive(t *testing.T) {
	a := NewAggregator(WithWindow(0))
	assert.Equal(t, DefaultWindow, a.window)

	a = NewAggregator(WithWindow(-time.Second))
	assert.Equal(t, DefaultWindow, a.window)
}
