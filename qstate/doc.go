// Package qstate implements a dense statevector simulator for small
// qubit registers: basis-state preparation, bit-flip gates,
// exponentiated Pauli-word rotations, and observable expectation
// values.
//
// What:
//
//   - Vector holds the 2^n complex amplitudes of an n-qubit register.
//     Qubit q is bit q of the basis index (qubit 0 is the low bit).
//   - Zero prepares |0…0⟩; Alternating flips every even-indexed qubit,
//     the textbook alternating-spin initial state.
//   - WithX applies a single-qubit X; ExpPauli applies e^{iθP} for a
//     Pauli word P via the identity e^{iθP} = cosθ·I + i·sinθ·P
//     (valid because P² = I).
//   - Expectation evaluates Re⟨ψ|O|ψ⟩ for a spinop.Operator; identity
//     words contribute ⟨ψ|ψ⟩, carrying constant offsets.
//
// Value semantics:
//
//	Evolution never mutates its input. WithX and ExpPauli return fresh
//	vectors, so the state of step i stays intact while step i+1 is
//	produced from it — callers may hold both.
//
// Complexity:
//
//   - WithX, ExpPauli: O(2^n) time, O(2^n) memory per call.
//   - Expectation: O(terms·2^n) time, O(1) extra memory.
//
// Errors:
//
//   - ErrBadQubitCount: register size outside [1, pauli.MaxQubits].
//   - ErrQubitRange: gate target outside [0, NumQubits).
//   - ErrSizeMismatch: a word or operator sized for another register.
//   - ErrNilVector: nil *Vector receiver or argument.
package qstate
