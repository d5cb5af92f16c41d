package heisenberg

import (
	"math"

	"github.com/katalvlaran/spinchain/pauli"
	"github.com/katalvlaran/spinchain/spinop"
)

// Hamiltonian builds the chain operator at simulation time t.
//
// Term order is fixed: for each bond i (left to right) the three
// couplings X_iX_{i+1}, X_iY_{i+1}, X_iZ_{i+1}, then one driven X per
// site. The result always carries exactly 3(n−1)+n terms; the drive
// terms are emitted even when cos(Ω·t) vanishes, so the term layout is
// identical at every t.
func (c *Chain) Hamiltonian(t float64) (*spinop.Operator, error) {
	op, err := spinop.New(c.spins)
	if err != nil {
		return nil, err
	}

	for i := 0; i < c.spins-1; i++ {
		if err = c.addBond(op, i); err != nil {
			return nil, err
		}
	}

	drive := complex(math.Cos(c.omega*t), 0)
	for i := 0; i < c.spins; i++ {
		if err = op.AddAxis(drive, i, pauli.X); err != nil {
			return nil, err
		}
	}

	return op, nil
}

// addBond emits the three two-site couplings for bond i.
func (c *Chain) addBond(op *spinop.Operator, i int) error {
	pairs := []struct {
		coeff float64
		right pauli.Axis
	}{
		{c.jx, pauli.X},
		{c.jy, pauli.Y},
		{c.jz, pauli.Z},
	}
	for _, p := range pairs {
		w, err := pauli.New(c.spins)
		if err != nil {
			return err
		}
		if w, err = w.With(i, pauli.X); err != nil {
			return err
		}
		if w, err = w.With(i+1, p.right); err != nil {
			return err
		}
		if err = op.AddTerm(complex(p.coeff, 0), w); err != nil {
			return err
		}
	}

	return nil
}
