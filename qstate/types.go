// Package qstate: core types and sentinel errors.
package qstate

import "errors"

// Sentinel errors for qstate operations.
var (
	// ErrBadQubitCount indicates a register size outside [1, pauli.MaxQubits].
	ErrBadQubitCount = errors.New("qstate: qubit count must be in [1, pauli.MaxQubits]")
	// ErrQubitRange indicates a gate target outside [0, NumQubits).
	ErrQubitRange = errors.New("qstate: qubit index out of range")
	// ErrSizeMismatch indicates a word or operator sized for another register.
	ErrSizeMismatch = errors.New("qstate: qubit count mismatch")
	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("qstate: nil state vector")
)

// Vector is the dense statevector of an n-qubit register. Qubit q is
// bit q of the basis index. The zero value is unusable; construct via
// Zero, Alternating, or FromAmplitudes.
//
// Vectors are treated as immutable values by every operation in this
// package: gates return new vectors and never write to the receiver.
type Vector struct {
	numQubits int
	amps      []complex128
}
