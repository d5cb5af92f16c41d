package spinop

import "github.com/katalvlaran/spinchain/pauli"

// Magnetization builds the average-magnetization observable over n
// spins:
//
//	O = Σ_q (1/n)·Z_q − 1
//
// The constant offset is carried as an explicit identity-word term with
// coefficient −1, so expectation values come out already shifted into
// the reporting convention of the evolution driver.
//
// The observable has n+1 terms: one Z per site, in site order, followed
// by the identity term.
func Magnetization(n int) (*Operator, error) {
	op, err := New(n)
	if err != nil {
		return nil, err
	}
	weight := complex(1/float64(n), 0)
	for q := 0; q < n; q++ {
		if err = op.AddAxis(weight, q, pauli.Z); err != nil {
			return nil, err
		}
	}
	identity, err := pauli.New(n)
	if err != nil {
		return nil, err
	}
	if err = op.AddTerm(complex(-1, 0), identity); err != nil {
		return nil, err
	}

	return op, nil
}
