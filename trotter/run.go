package trotter

import (
	"time"

	"github.com/katalvlaran/spinchain/heisenberg"
	"github.com/katalvlaran/spinchain/qstate"
	"github.com/katalvlaran/spinchain/spinop"
)

// Run executes the full evolution loop described by opts and returns
// the ordered expectation and timing sequences.
//
// Starting from the alternating-spin state, step i (i = 0 … Steps−1):
//
//  1. builds the chain Hamiltonian at t = i·Dt,
//  2. extracts its coefficient and word sequences in term order,
//  3. evolves the current state by one Step,
//  4. records the observable expectation of the evolved state,
//  5. records the step's wall-clock duration.
//
// The expectation at index i is measured on the state after step i's
// evolution, and that same state is the input of step i+1. Any error
// aborts the run; partial results are discarded.
func Run(opts Options) (*Result, error) {
	if opts.Steps < 1 {
		return nil, ErrBadSteps
	}
	if opts.Dt <= 0 {
		return nil, ErrBadDt
	}

	chain := opts.Chain
	if chain == nil {
		var err error
		if chain, err = heisenberg.NewChain(DefaultSpins); err != nil {
			return nil, err
		}
	}

	observable := opts.Observable
	if observable == nil {
		var err error
		if observable, err = spinop.Magnetization(chain.Spins()); err != nil {
			return nil, err
		}
	}
	if observable.NumQubits() != chain.Spins() {
		return nil, ErrObservableMismatch
	}

	state, err := qstate.Alternating(chain.Spins())
	if err != nil {
		return nil, err
	}

	res := &Result{
		Expectations:  make([]float64, 0, opts.Steps),
		StepDurations: make([]time.Duration, 0, opts.Steps),
	}

	start := time.Now()
	for i := 0; i < opts.Steps; i++ {
		stepStart := time.Now()

		t := float64(i) * opts.Dt
		ham, err := chain.Hamiltonian(t)
		if err != nil {
			return nil, err
		}
		coefficients := ham.Coefficients()
		words := ham.Words()

		evolved, err := Step(state, coefficients, words, opts.Dt)
		if err != nil {
			return nil, err
		}
		expectation, err := evolved.Expectation(observable)
		if err != nil {
			return nil, err
		}
		state = evolved

		elapsed := time.Since(stepStart)
		res.Expectations = append(res.Expectations, expectation)
		res.StepDurations = append(res.StepDurations, elapsed)

		if opts.OnStep != nil {
			opts.OnStep(StepInfo{
				Step:        i,
				Time:        t,
				Terms:       ham.Len(),
				Expectation: expectation,
				Elapsed:     elapsed,
			})
		}
	}
	res.Total = time.Since(start)

	return res, nil
}
