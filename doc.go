// Package spinchain is a classical playground for spin-chain quantum
// dynamics: Pauli-string operators, statevector simulation, and
// first-order Trotterized time evolution.
//
// 🚀 What is spinchain?
//
//	A pure-Go simulation library that brings together:
//		• Pauli words: immutable Pauli strings with bitmask basis actions
//		• Spin operators: ordered weighted term sums with stable extraction
//		• Model builders: driven Heisenberg-chain Hamiltonians H(t)
//		• Statevector engine: basis prep, X gates, e^{iθP} rotations,
//		  observable expectation values
//		• Trotter driver: per-step Hamiltonian rebuild, evolution,
//		  magnetization observation and wall-clock timing
//		• Reporting: per-step timing plots (PNG) and the total-time line
//
// ✨ Why choose spinchain?
//
//   - Deterministic – term order is part of the contract, runs reproduce
//   - Value-semantics states – each step's input survives the step
//   - Clear errors – package-prefixed sentinels, errors.Is all the way
//   - Pure Go core – the only heavyweight dependency is the plotter
//
// Under the hood, everything is organized as small root packages:
//
//	pauli/      — Pauli letters & words, basis-action masks
//	spinop/     — operators, observables, dense export
//	heisenberg/ — time-dependent chain Hamiltonian builder
//	qstate/     — dense statevector simulator
//	trotter/    — product-formula step kernel & evolution driver
//	report/     — timing plot + summary output
//
// Quick ASCII picture of the model:
//
//	q0 ── q1 ── q2 ── … ── qN−1        nearest-neighbor bonds
//	 ↑     ↑     ↑          ↑          cos(Ωt)·X drive on every site
//
// The cmd/spinchain binary reproduces the canonical demonstration:
// 100 Trotter steps on a 25-spin chain, dt=0.05, magnetization per
// step, timing plot written to img.png.
//
//	go get github.com/katalvlaran/spinchain
package spinchain
