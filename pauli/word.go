package pauli

import (
	"fmt"
	"math/bits"
	"strings"
)

// New returns the all-identity word over n qubits.
// Returns ErrEmptyWord for n ≤ 0 and ErrWordTooLong for n > MaxQubits.
func New(n int) (Word, error) {
	if n <= 0 {
		return Word{}, ErrEmptyWord
	}
	if n > MaxQubits {
		return Word{}, ErrWordTooLong
	}

	return Word{letters: strings.Repeat(string(I), n)}, nil
}

// Parse validates s as a Pauli word and returns it.
// Accepts upper-case letters only; qubit 0 is the first character.
func Parse(s string) (Word, error) {
	if len(s) == 0 {
		return Word{}, ErrEmptyWord
	}
	if len(s) > MaxQubits {
		return Word{}, ErrWordTooLong
	}
	for i := 0; i < len(s); i++ {
		if !Axis(s[i]).Valid() {
			return Word{}, fmt.Errorf("position %d (%q): %w", i, s[i], ErrInvalidLetter)
		}
	}

	return Word{letters: s}, nil
}

// Len returns the number of qubits the word acts on.
func (w Word) Len() int { return len(w.letters) }

// String returns the canonical textual form, one letter per qubit,
// qubit 0 first.
func (w Word) String() string { return w.letters }

// At returns the letter acting on qubit q.
// Returns ErrQubitRange if q is outside [0, Len).
func (w Word) At(q int) (Axis, error) {
	if q < 0 || q >= len(w.letters) {
		return 0, ErrQubitRange
	}

	return Axis(w.letters[q]), nil
}

// With returns a copy of w with the letter on qubit q replaced by a.
// The receiver is never modified.
func (w Word) With(q int, a Axis) (Word, error) {
	if q < 0 || q >= len(w.letters) {
		return Word{}, ErrQubitRange
	}
	if !a.Valid() {
		return Word{}, ErrInvalidLetter
	}
	b := []byte(w.letters)
	b[q] = byte(a)

	return Word{letters: string(b)}, nil
}

// IsIdentity reports whether every letter of w is I.
func (w Word) IsIdentity() bool {
	for i := 0; i < len(w.letters); i++ {
		if Axis(w.letters[i]) != I {
			return false
		}
	}

	return true
}

// Apply maps one computational basis state through the word:
// P|b⟩ = phase·|out⟩. It is the scalar counterpart of Action and is
// meant for dense exports and reference calculations, not hot loops.
func (w Word) Apply(b uint64) (out uint64, phase complex128) {
	flip, phaseMask, yCount := w.Action()
	phase = complex(1, 0)
	switch yCount % 4 {
	case 1:
		phase = complex(0, 1)
	case 2:
		phase = complex(-1, 0)
	case 3:
		phase = complex(0, -1)
	}
	if bits.OnesCount64(b&phaseMask)%2 == 1 {
		phase = -phase
	}

	return b ^ flip, phase
}

// Action decomposes the word into its computational-basis action:
//
//	P|b⟩ = i^yCount · (−1)^popcount(b & phaseMask) · |b ⊕ flipMask⟩
//
// flipMask has a bit set for every X or Y letter, phaseMask for every
// Y or Z letter, and yCount counts the Y letters. A zero flipMask
// means the word is diagonal in the computational basis.
func (w Word) Action() (flipMask, phaseMask uint64, yCount int) {
	for q := 0; q < len(w.letters); q++ {
		switch Axis(w.letters[q]) {
		case X:
			flipMask |= 1 << uint(q)
		case Y:
			flipMask |= 1 << uint(q)
			phaseMask |= 1 << uint(q)
			yCount++
		case Z:
			phaseMask |= 1 << uint(q)
		}
	}

	return flipMask, phaseMask, yCount
}
