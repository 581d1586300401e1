package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/catbox/config"
)

// FrameRecord is one row of frames.csv: a stats window stamped with the
// wall-clock second it ended at.
type FrameRecord struct {
	ElapsedSec float64 `csv:"elapsed_sec"`
	Frames     int     `csv:"frames"`
	MeanMs     float64 `csv:"mean_ms"`
	P50Ms      float64 `csv:"p50_ms"`
	P90Ms      float64 `csv:"p90_ms"`
	MaxMs      float64 `csv:"max_ms"`
	FPS        float64 `csv:"fps"`
}

// Record converts a stats window into a CSV record.
func Record(elapsedSec float64, s FrameStats) FrameRecord {
	return FrameRecord{
		ElapsedSec: elapsedSec,
		Frames:     s.Frames,
		MeanMs:     s.MeanMs,
		P50Ms:      s.P50Ms,
		P90Ms:      s.P90Ms,
		MaxMs:      s.MaxMs,
		FPS:        s.FPS,
	}
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir        string
	framesFile *os.File

	headerWritten bool
}

// NewOutputManager creates an output manager writing into dir. Returns
// nil if dir is empty (output disabled); methods on a nil manager are
// no-ops.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}

	return &OutputManager{dir: dir, framesFile: f}, nil
}

// WriteConfig saves the current configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrames appends a frame-stats record to frames.csv. The header is
// written once, on the first record.
func (om *OutputManager) WriteFrames(rec FrameRecord) error {
	if om == nil {
		return nil
	}

	records := []FrameRecord{rec}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.framesFile.Close()
}
