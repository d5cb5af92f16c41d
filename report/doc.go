// Package report renders the outputs of an evolution run: a PNG plot
// of per-step wall-clock time versus step index, and the one-line
// total-time summary.
//
// The plot mirrors the conventional demonstration figure: step index
// on the horizontal axis ("steps"), per-step elapsed seconds on the
// vertical axis ("time"). Rendering uses gonum.org/v1/plot.
//
// Errors:
//
//   - ErrNoSamples: TimingPlot called with no durations.
//   - ErrEmptyPath: an empty output path.
package report
