// Package telemetry collects frame timing and writes summary records to
// CSV for offline analysis.
package telemetry

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// FrameStats summarizes frame durations over a window.
type FrameStats struct {
	Frames int
	MeanMs float64
	P50Ms  float64
	P90Ms  float64
	MaxMs  float64
	FPS    float64
}

// FrameCollector tracks frame durations over a rolling window.
type FrameCollector struct {
	samples []float64 // milliseconds
	idx     int
	count   int
}

// NewFrameCollector creates a collector averaging over windowSize frames.
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameCollector{samples: make([]float64, windowSize)}
}

// Record adds one frame duration to the window.
func (c *FrameCollector) Record(d time.Duration) {
	c.samples[c.idx] = float64(d) / float64(time.Millisecond)
	c.idx = (c.idx + 1) % len(c.samples)
	if c.count < len(c.samples) {
		c.count++
	}
}

// Count returns the number of recorded frames, capped at the window size.
func (c *FrameCollector) Count() int {
	return c.count
}

// Stats computes the summary over the recorded window.
func (c *FrameCollector) Stats() FrameStats {
	if c.count == 0 {
		return FrameStats{}
	}

	window := make([]float64, c.count)
	copy(window, c.samples[:c.count])
	sort.Float64s(window)

	mean := stat.Mean(window, nil)
	s := FrameStats{
		Frames: c.count,
		MeanMs: mean,
		P50Ms:  stat.Quantile(0.5, stat.Empirical, window, nil),
		P90Ms:  stat.Quantile(0.9, stat.Empirical, window, nil),
		MaxMs:  window[len(window)-1],
	}
	if mean > 0 {
		s.FPS = 1000 / mean
	}
	return s
}

// Reset discards all recorded samples.
func (c *FrameCollector) Reset() {
	c.idx = 0
	c.count = 0
}
