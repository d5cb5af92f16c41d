package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sentinel errors for report operations.
var (
	// ErrNoSamples indicates TimingPlot received an empty duration slice.
	ErrNoSamples = errors.New("report: no timing samples to plot")
	// ErrEmptyPath indicates an empty output path.
	ErrEmptyPath = errors.New("report: output path must be non-empty")
)

// Plot dimensions; the figure is landscape to keep long runs readable.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// TimingPlot writes a PNG of per-step elapsed time (seconds) against
// step index to path. The image format follows the path extension;
// ".png" is the conventional choice.
func TimingPlot(durations []time.Duration, path string) error {
	if len(durations) == 0 {
		return ErrNoSamples
	}
	if path == "" {
		return ErrEmptyPath
	}

	p := plot.New()
	p.X.Label.Text = "steps"
	p.Y.Label.Text = "time"

	pts := make(plotter.XYs, len(durations))
	for i, d := range durations {
		pts[i].X = float64(i)
		pts[i].Y = d.Seconds()
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: building timing line: %w", err)
	}
	p.Add(line)

	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: saving plot: %w", err)
	}

	return nil
}

// WriteSummary prints the fixed total-time line to w, e.g.
// "total time: 1.5s".
func WriteSummary(w io.Writer, total time.Duration) error {
	_, err := fmt.Fprintf(w, "total time: %vs\n", total.Seconds())

	return err
}
