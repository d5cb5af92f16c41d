// Package pauli provides immutable Pauli-string words over a fixed
// register of qubits, plus the bitmask decomposition of their action on
// computational basis states.
//
// What:
//
//   - Axis is a single-qubit Pauli letter: I, X, Y or Z.
//   - Word is a fixed-length Pauli string ("XXI", "IZZ", ...), qubit 0
//     first. Words are immutable values; With returns a modified copy.
//   - Action decomposes a Word into (flipMask, phaseMask, yCount) so a
//     statevector engine can apply P|b⟩ with two masks and a popcount:
//
//     P|b⟩ = i^yCount · (−1)^popcount(b & phaseMask) · |b ⊕ flipMask⟩
//
// Why:
//
//   - Weighted sums of Pauli words are the standard sparse encoding of
//     spin Hamiltonians and observables.
//   - Product-formula (Trotter) evolution applies one exponentiated
//     word per term; the mask form makes each application O(2^n) with
//     trivial constants.
//
// Limits:
//
//   - Words are capped at MaxQubits letters so basis states fit in a
//     uint64 index.
//
// Errors:
//
//   - ErrEmptyWord: Parse received an empty string.
//   - ErrInvalidLetter: a letter outside {I,X,Y,Z}.
//   - ErrWordTooLong: more than MaxQubits letters.
//   - ErrQubitRange: qubit index outside [0, Len).
package pauli
