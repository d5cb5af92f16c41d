// Package trotter: options, results, and sentinel errors.
package trotter

import (
	"errors"
	"time"

	"github.com/katalvlaran/spinchain/heisenberg"
	"github.com/katalvlaran/spinchain/spinop"
)

// Sentinel errors for trotter operations.
var (
	// ErrLengthMismatch indicates coefficient and word sequences of
	// different lengths.
	ErrLengthMismatch = errors.New("trotter: coefficients and words must have equal length")
	// ErrBadSteps indicates a non-positive step count.
	ErrBadSteps = errors.New("trotter: step count must be positive")
	// ErrBadDt indicates a non-positive time increment.
	ErrBadDt = errors.New("trotter: time increment must be positive")
	// ErrObservableMismatch indicates an observable sized for a
	// different register than the chain.
	ErrObservableMismatch = errors.New("trotter: observable qubit count does not match chain")
)

// DEFAULTS - single source of truth for the demonstration driver.
const (
	// DefaultSteps is the number of discrete evolution steps.
	DefaultSteps = 100
	// DefaultSpins is the chain length used when Options.Chain is nil.
	DefaultSpins = 25
	// DefaultDt is the discrete time increment.
	DefaultDt = 0.05
)

// Options configures a Run.
type Options struct {
	// Steps is the number of discrete time steps (> 0).
	Steps int
	// Dt is the time increment per step (> 0).
	Dt float64
	// Chain is the model to evolve under. Nil selects a DefaultSpins
	// chain with default couplings.
	Chain *heisenberg.Chain
	// Observable is the per-step expectation target. Nil selects the
	// average magnetization of the chain.
	Observable *spinop.Operator
	// OnStep, when non-nil, is invoked once after each completed step.
	OnStep func(StepInfo)
}

// DefaultOptions returns Options matching the demonstration constants:
// Steps=100, Dt=0.05, default chain and observable.
func DefaultOptions() Options {
	return Options{
		Steps: DefaultSteps,
		Dt:    DefaultDt,
	}
}

// StepInfo describes one completed driver step.
type StepInfo struct {
	// Step is the zero-based step index.
	Step int
	// Time is the simulation time the Hamiltonian was built at, i·dt.
	Time float64
	// Terms is the Hamiltonian term count applied this step.
	Terms int
	// Expectation is the observable value on the evolved state.
	Expectation float64
	// Elapsed is the wall-clock duration of the step.
	Elapsed time.Duration
}

// Result collects the ordered per-step outputs of a Run. Both slices
// grow by exactly one entry per step and are never reordered.
type Result struct {
	// Expectations holds one observable value per step.
	Expectations []float64
	// StepDurations holds one wall-clock duration per step.
	StepDurations []time.Duration
	// Total is the wall-clock duration of the whole run.
	Total time.Duration
}
