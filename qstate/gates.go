package qstate

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/spinchain/pauli"
)

// WithX returns a copy of v with the X (bit-flip) gate applied to
// qubit q.
func (v *Vector) WithX(q int) (*Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	if q < 0 || q >= v.numQubits {
		return nil, ErrQubitRange
	}
	out := v.Clone()
	bit := uint64(1) << uint(q)
	for i := uint64(0); i < uint64(len(out.amps)); i++ {
		if i&bit == 0 {
			j := i | bit
			out.amps[i], out.amps[j] = out.amps[j], out.amps[i]
		}
	}

	return out, nil
}

// ExpPauli returns e^{iθP}·v for the Pauli word w, leaving v intact.
// It is Clone followed by ExpPauliInPlace; kernels applying long term
// sequences should clone once and use the in-place form on the copy.
func (v *Vector) ExpPauli(theta float64, w pauli.Word) (*Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	out := v.Clone()
	if err := out.ExpPauliInPlace(theta, w); err != nil {
		return nil, err
	}

	return out, nil
}

// ExpPauliInPlace applies e^{iθP} to the receiver's amplitudes.
//
// Because P² = I the exponential collapses to cosθ·I + i·sinθ·P, so
// one pass over the amplitudes suffices. Words without X or Y letters
// are diagonal and take a cheaper phase-only path; all other words
// pair amplitude i with i⊕flipMask and update both from the saved
// originals.
func (v *Vector) ExpPauliInPlace(theta float64, w pauli.Word) error {
	if v == nil {
		return ErrNilVector
	}
	if w.Len() != v.numQubits {
		return ErrSizeMismatch
	}

	flip, phaseMask, yCount := w.Action()
	cos := complex(math.Cos(theta), 0)
	isin := complex(0, math.Sin(theta))
	dim := uint64(len(v.amps))

	if flip == 0 {
		// Diagonal word: amplitude b picks up e^{±iθ} by the sign of
		// its Z-parity. yCount is zero here (Y always sets flip).
		plus, minus := cos+isin, cos-isin
		for b := uint64(0); b < dim; b++ {
			if bits.OnesCount64(b&phaseMask)%2 == 0 {
				v.amps[b] *= plus
			} else {
				v.amps[b] *= minus
			}
		}

		return nil
	}

	// Off-diagonal word: basis states pair up as {i, i⊕flip}. The
	// lowest set bit of flip distinguishes the two members, so each
	// pair is visited exactly once.
	yPhase := yPhaseFactor(yCount)
	pivot := flip & -flip
	for i := uint64(0); i < dim; i++ {
		if i&pivot != 0 {
			continue
		}
		j := i ^ flip
		ai, aj := v.amps[i], v.amps[j]
		v.amps[i] = cos*ai + isin*basisPhase(j, phaseMask, yPhase)*aj
		v.amps[j] = cos*aj + isin*basisPhase(i, phaseMask, yPhase)*ai
	}

	return nil
}

// yPhaseFactor returns i^yCount.
func yPhaseFactor(yCount int) complex128 {
	switch yCount % 4 {
	case 1:
		return complex(0, 1)
	case 2:
		return complex(-1, 0)
	case 3:
		return complex(0, -1)
	default:
		return complex(1, 0)
	}
}

// basisPhase returns the scalar with which the word maps |b⟩ onto its
// partner: i^yCount·(−1)^popcount(b & phaseMask).
func basisPhase(b, phaseMask uint64, yPhase complex128) complex128 {
	if bits.OnesCount64(b&phaseMask)%2 == 1 {
		return -yPhase
	}

	return yPhase
}
