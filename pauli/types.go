// Package pauli: core types and sentinel errors.
package pauli

import "errors"

// Sentinel errors for pauli operations.
var (
	// ErrEmptyWord indicates Parse received an empty string.
	ErrEmptyWord = errors.New("pauli: word must contain at least one letter")
	// ErrInvalidLetter indicates a letter outside {I, X, Y, Z}.
	ErrInvalidLetter = errors.New("pauli: letter must be one of I, X, Y, Z")
	// ErrWordTooLong indicates a word longer than MaxQubits letters.
	ErrWordTooLong = errors.New("pauli: word exceeds the maximum supported qubit count")
	// ErrQubitRange indicates a qubit index outside [0, Len).
	ErrQubitRange = errors.New("pauli: qubit index out of range")
)

// MaxQubits bounds the register size so every computational basis state
// fits in a uint64 index. Statevector memory (16·2^n bytes) runs out
// long before this cap does.
const MaxQubits = 63

// Axis is a single-qubit Pauli letter. Its value is the ASCII letter,
// so Axis values print naturally inside words.
type Axis byte

// The four Pauli letters.
const (
	I Axis = 'I'
	X Axis = 'X'
	Y Axis = 'Y'
	Z Axis = 'Z'
)

// Valid reports whether a is one of the four Pauli letters.
func (a Axis) Valid() bool {
	switch a {
	case I, X, Y, Z:
		return true
	default:
		return false
	}
}

// Word is an immutable Pauli string over a fixed number of qubits.
// The letter at position q acts on qubit q. The zero Word has zero
// length and represents no register; construct Words via New or Parse.
type Word struct {
	letters string
}
