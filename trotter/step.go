package trotter

import (
	"github.com/katalvlaran/spinchain/pauli"
	"github.com/katalvlaran/spinchain/qstate"
)

// Step evolves state by one first-order Trotter step: one e^{iθP}
// rotation per (coefficient, word) pair, applied in sequence order
// with θ = Re(coefficients[i])·dt. The input state is left intact and
// the evolved state is returned.
//
// The two sequences must be positionally aligned and of equal length;
// reordering them changes the O(dt²) error term of the approximation,
// so Step never sorts or merges.
func Step(state *qstate.Vector, coefficients []complex128, words []pauli.Word, dt float64) (*qstate.Vector, error) {
	if state == nil {
		return nil, qstate.ErrNilVector
	}
	if len(coefficients) != len(words) {
		return nil, ErrLengthMismatch
	}

	out := state.Clone()
	for i, w := range words {
		if err := out.ExpPauliInPlace(real(coefficients[i])*dt, w); err != nil {
			return nil, err
		}
	}

	return out, nil
}
