// Package app wires the parsed CLI options into an evolution run:
// chain construction, the Trotter driver, progress logging, the timing
// plot, and the total-time summary line.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/katalvlaran/spinchain/heisenberg"
	"github.com/katalvlaran/spinchain/internal/cli"
	"github.com/katalvlaran/spinchain/report"
	"github.com/katalvlaran/spinchain/trotter"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run parses argv, executes the simulation, writes the plot and the
// summary line to stdout, and returns the process exit code. All
// logging goes to stderr; stdout carries only the summary.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("spinchain")
	fs.SetOutput(stderr)

	opt, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(stderr, err)

		return ExitUsage
	}

	logger := newLogger(stderr, opt)

	chainOpts := []heisenberg.Option{
		heisenberg.WithCouplings(opt.Jx, opt.Jy, opt.Jz),
	}
	if opt.Omega != 0 {
		chainOpts = append(chainOpts, heisenberg.WithOmega(opt.Omega))
	}
	chain, err := heisenberg.NewChain(opt.Spins, chainOpts...)
	if err != nil {
		logger.Error("invalid chain", "err", err)

		return ExitUsage
	}

	logger.Info("starting evolution",
		"spins", opt.Spins, "steps", opt.Steps, "dt", opt.Dt)

	runOpts := trotter.Options{
		Steps: opt.Steps,
		Dt:    opt.Dt,
		Chain: chain,
		OnStep: func(si trotter.StepInfo) {
			logger.Debug("step complete",
				"step", si.Step,
				"t", si.Time,
				"terms", si.Terms,
				"magnetization", si.Expectation,
				"elapsed", si.Elapsed)
		},
	}
	result, err := trotter.Run(runOpts)
	if err != nil {
		logger.Error("evolution failed", "err", err)

		return ExitError
	}

	if err = report.TimingPlot(result.StepDurations, opt.PlotPath); err != nil {
		logger.Error("plot failed", "err", err)

		return ExitError
	}
	logger.Info("timing plot written", "path", opt.PlotPath)

	if err = report.WriteSummary(stdout, result.Total); err != nil {
		logger.Error("summary failed", "err", err)

		return ExitError
	}

	return ExitOK
}

// newLogger builds the stderr logger honoring -quiet and -v.
func newLogger(stderr io.Writer, opt cli.Options) *charmlog.Logger {
	logger := charmlog.New(stderr)
	switch {
	case opt.Quiet:
		logger.SetLevel(charmlog.ErrorLevel)
	case opt.Verbose:
		logger.SetLevel(charmlog.DebugLevel)
	default:
		logger.SetLevel(charmlog.InfoLevel)
	}

	return logger
}
