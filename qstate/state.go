package qstate

import (
	"math/bits"

	"github.com/katalvlaran/spinchain/pauli"
)

// Zero prepares |0…0⟩ over n qubits.
// Returns ErrBadQubitCount for n outside [1, pauli.MaxQubits].
func Zero(n int) (*Vector, error) {
	if n < 1 || n > pauli.MaxQubits {
		return nil, ErrBadQubitCount
	}
	amps := make([]complex128, 1<<uint(n))
	amps[0] = 1

	return &Vector{numQubits: n, amps: amps}, nil
}

// Alternating prepares the alternating-spin product state: every
// even-indexed qubit excited to |1⟩, every odd-indexed qubit left in
// |0⟩. For n qubits that is exactly ⌈n/2⌉ excitations. The result is
// the computational basis state whose index has bits 0, 2, 4, … set.
func Alternating(n int) (*Vector, error) {
	v, err := Zero(n)
	if err != nil {
		return nil, err
	}
	var basis uint64
	for q := 0; q < n; q += 2 {
		basis |= 1 << uint(q)
	}
	v.amps[0] = 0
	v.amps[basis] = 1

	return v, nil
}

// FromAmplitudes builds a vector from an explicit amplitude slice,
// copying it. The length must be a power of two no larger than
// 2^pauli.MaxQubits; callers are responsible for normalization.
func FromAmplitudes(amps []complex128) (*Vector, error) {
	dim := len(amps)
	if dim < 2 || dim&(dim-1) != 0 {
		return nil, ErrBadQubitCount
	}
	n := bits.TrailingZeros(uint(dim))
	if n > pauli.MaxQubits {
		return nil, ErrBadQubitCount
	}
	cp := make([]complex128, dim)
	copy(cp, amps)

	return &Vector{numQubits: n, amps: cp}, nil
}

// NumQubits returns the register size.
func (v *Vector) NumQubits() int { return v.numQubits }

// Dim returns the amplitude count, 2^NumQubits.
func (v *Vector) Dim() int { return len(v.amps) }

// Amplitudes returns a copy of the amplitude slice.
func (v *Vector) Amplitudes() []complex128 {
	out := make([]complex128, len(v.amps))
	copy(out, v.amps)

	return out
}

// Probability returns |⟨b|ψ⟩|², the weight of one basis state.
// Out-of-range indices have zero weight.
func (v *Vector) Probability(basis uint64) float64 {
	if basis >= uint64(len(v.amps)) {
		return 0
	}
	a := v.amps[basis]

	return real(a)*real(a) + imag(a)*imag(a)
}

// Clone returns a deep copy of the vector. Every copy-on-write gate is
// Clone followed by an in-place update on the copy; kernels that chain
// many rotations clone once and use the InPlace variants on the copy.
func (v *Vector) Clone() *Vector {
	amps := make([]complex128, len(v.amps))
	copy(amps, v.amps)

	return &Vector{numQubits: v.numQubits, amps: amps}
}
