package telemetry

import "time"

// AggregatorOption is a function that modifies the properties of an Aggregator
// during construction.
type AggregatorOption func(*Aggregator)

// WithWindow sets the aggregation window length. Non-positive durations are
// ignored and the default is kept.
//
// Parameters:
//   - window: the wall-clock interval between samples
//
// Returns:
//   - AggregatorOption: the option to apply the window setting
func WithWindow(window time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		if window > 0 {
			a.window = window
		}
	}
}
