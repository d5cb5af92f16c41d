// Package spinop represents quantum spin operators as ordered weighted
// sums of Pauli words, the sparse form consumed by product-formula
// (Trotter) evolution.
//
// What:
//
//   - Term pairs one complex coefficient with one pauli.Word.
//   - Operator is an ordered sum of Terms over a fixed qubit count.
//     AddTerm merges equal words in place; distinct words keep their
//     first-insertion position.
//   - Coefficients and Words extract the two equal-length parallel
//     sequences a Trotter kernel applies positionally.
//   - Magnetization builds the average single-site Z observable,
//     Σ_q (1/n)·Z_q − 1.
//   - Dense expands a small operator to its full 2^n×2^n matrix, the
//     brute-force reference used by tests and examples.
//
// Determinism:
//
//	Term order is insertion order, always. Two builds that perform the
//	same AddTerm sequence produce element-wise identical Terms,
//	Coefficients and Words. First-order Trotterization is sensitive to
//	term order, so this guarantee is part of the public contract, not
//	an implementation detail.
//
// Errors:
//
//   - ErrBadQubitCount: operator qubit count outside [1, pauli.MaxQubits].
//   - ErrNilOperator: nil *Operator receiver or argument.
//   - ErrQubitMismatch: a word or operand sized for a different register.
//   - ErrQubitRange: a site index outside [0, NumQubits).
//   - ErrTooLarge: Dense called above DenseMaxQubits.
package spinop
