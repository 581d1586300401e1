package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestFrameStatsKnownSamples(t *testing.T) {
	c := NewFrameCollector(10)
	for i := 1; i <= 10; i++ {
		c.Record(time.Duration(i) * time.Millisecond)
	}

	s := c.Stats()
	if s.Frames != 10 {
		t.Fatalf("Frames = %d, want 10", s.Frames)
	}
	if math.Abs(s.MeanMs-5.5) > 0.001 {
		t.Errorf("MeanMs = %v, want 5.5", s.MeanMs)
	}
	if s.MaxMs != 10 {
		t.Errorf("MaxMs = %v, want 10", s.MaxMs)
	}
	if s.P50Ms < 5 || s.P50Ms > 6 {
		t.Errorf("P50Ms = %v, want in [5, 6]", s.P50Ms)
	}
	if s.P90Ms < 9 || s.P90Ms > 10 {
		t.Errorf("P90Ms = %v, want in [9, 10]", s.P90Ms)
	}
	if math.Abs(s.FPS-1000/5.5) > 0.01 {
		t.Errorf("FPS = %v, want %v", s.FPS, 1000/5.5)
	}
}

func TestFrameStatsEmpty(t *testing.T) {
	c := NewFrameCollector(10)
	s := c.Stats()
	if s.Frames != 0 || s.MeanMs != 0 || s.FPS != 0 {
		t.Errorf("empty collector stats = %+v, want zero value", s)
	}
}

func TestFrameCollectorRollingWindow(t *testing.T) {
	c := NewFrameCollector(4)
	// Fill beyond the window; only the last 4 samples should remain.
	for i := 0; i < 8; i++ {
		c.Record(time.Duration(i+1) * time.Millisecond)
	}

	if c.Count() != 4 {
		t.Fatalf("Count = %d, want 4", c.Count())
	}
	s := c.Stats()
	// Window holds 5, 6, 7, 8 ms.
	if math.Abs(s.MeanMs-6.5) > 0.001 {
		t.Errorf("MeanMs = %v, want 6.5", s.MeanMs)
	}
}

func TestFrameCollectorReset(t *testing.T) {
	c := NewFrameCollector(4)
	c.Record(time.Millisecond)
	c.Reset()
	if c.Count() != 0 {
		t.Errorf("Count after Reset = %d, want 0", c.Count())
	}
}
