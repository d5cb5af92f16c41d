// Package trotter implements first-order (Lie–Trotter) product-formula
// time evolution of a statevector under a term-decomposed Hamiltonian,
// plus the step-loop driver that rebuilds a time-dependent Hamiltonian
// each step, records an observable, and times every iteration.
//
// What:
//
//   - Step applies one discrete time step: for each (coefficient,
//     word) pair, in sequence order, one e^{iθP} rotation with
//     θ = Re(coefficient)·dt. This sequential product is the
//     first-order approximation of evolution under the summed
//     operator; its error is O(dt²) per step and depends on term
//     order, which is why Step applies terms strictly positionally.
//   - Run drives n steps from the alternating initial state: at step i
//     it builds the chain Hamiltonian at t = i·dt, extracts the
//     parallel coefficient/word sequences, evolves the state, records
//     the observable expectation of the evolved state, and records the
//     step's wall-clock duration. The state entering step i+1 is
//     exactly the state step i produced.
//
// The driver is strictly sequential with no retries: the first error
// from any inner operation aborts the run.
//
// Options:
//
//   - Steps, Dt: grid of the discrete evolution (defaults 100, 0.05).
//   - Chain: the heisenberg.Chain to evolve under (default: a
//     DefaultSpins-site chain with default couplings).
//   - Observable: expectation target (default: average magnetization).
//   - OnStep: optional per-step callback for progress reporting.
//
// Errors:
//
//   - ErrLengthMismatch: coefficient and word sequences differ in length.
//   - ErrBadSteps, ErrBadDt: non-positive grid parameters.
//   - ErrObservableMismatch: observable sized for another register.
package trotter
