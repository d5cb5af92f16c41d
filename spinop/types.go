// Package spinop: core types and sentinel errors.
package spinop

import (
	"errors"

	"github.com/katalvlaran/spinchain/pauli"
)

// Sentinel errors for spinop operations.
var (
	// ErrBadQubitCount indicates a qubit count outside [1, pauli.MaxQubits].
	ErrBadQubitCount = errors.New("spinop: qubit count must be in [1, pauli.MaxQubits]")
	// ErrNilOperator indicates a nil *Operator receiver or argument.
	ErrNilOperator = errors.New("spinop: nil operator")
	// ErrQubitMismatch indicates a word or operand sized for a different register.
	ErrQubitMismatch = errors.New("spinop: qubit count mismatch")
	// ErrQubitRange indicates a site index outside [0, NumQubits).
	ErrQubitRange = errors.New("spinop: qubit index out of range")
	// ErrTooLarge indicates a dense export above DenseMaxQubits.
	ErrTooLarge = errors.New("spinop: operator too large for dense export")
)

// DenseMaxQubits caps Dense exports: a 2^12×2^12 complex128 matrix is
// already 256 MiB. Larger operators stay in sparse term form.
const DenseMaxQubits = 12

// Term is one immutable summand of an operator: Coefficient·Word.
type Term struct {
	Coefficient complex128
	Word        pauli.Word
}

// Operator is an ordered weighted sum of Pauli words over a fixed
// register. The zero value is unusable; construct via New.
//
// Term order is insertion order: AddTerm merges an already-present word
// into its original position and appends unseen words at the end. The
// order reported by Terms, Coefficients and Words is therefore stable
// and reproducible across equivalent rebuilds.
type Operator struct {
	numQubits int
	terms     []Term
	index     map[string]int
}
