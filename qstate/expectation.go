package qstate

import (
	"math/bits"

	"github.com/katalvlaran/spinchain/spinop"
)

// Expectation evaluates Re⟨ψ|O|ψ⟩ for the operator op against v.
//
// Each term contributes c·Σ_b conj(ψ[b⊕flip])·phase(b)·ψ[b]; identity
// words reduce to c·⟨ψ|ψ⟩, so constant offsets baked into an
// observable (such as the −1 in spinop.Magnetization) shift the result
// exactly as intended. The imaginary part of the sum is discarded: it
// vanishes analytically for Hermitian operators and carries only
// rounding noise here.
func (v *Vector) Expectation(op *spinop.Operator) (float64, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	if op == nil {
		return 0, spinop.ErrNilOperator
	}
	if op.NumQubits() != v.numQubits {
		return 0, ErrSizeMismatch
	}

	dim := uint64(len(v.amps))
	var total complex128
	for _, t := range op.Terms() {
		flip, phaseMask, yCount := t.Word.Action()
		yPhase := yPhaseFactor(yCount)

		var sum complex128
		for b := uint64(0); b < dim; b++ {
			a := v.amps[b]
			if a == 0 {
				continue
			}
			partner := v.amps[b^flip]
			p := yPhase
			if bits.OnesCount64(b&phaseMask)%2 == 1 {
				p = -p
			}
			sum += cConj(partner) * p * a
		}
		total += t.Coefficient * sum
	}

	return real(total), nil
}

// cConj is complex conjugation without pulling in math/cmplx for one
// call site.
func cConj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
