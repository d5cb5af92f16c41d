package spinop

import (
	"github.com/katalvlaran/spinchain/pauli"
)

// New returns an empty operator over n qubits.
// Returns ErrBadQubitCount for n outside [1, pauli.MaxQubits].
func New(n int) (*Operator, error) {
	if n < 1 || n > pauli.MaxQubits {
		return nil, ErrBadQubitCount
	}

	return &Operator{
		numQubits: n,
		terms:     nil,
		index:     make(map[string]int),
	}, nil
}

// NumQubits returns the register size the operator acts on.
func (op *Operator) NumQubits() int { return op.numQubits }

// Len returns the number of additive terms.
func (op *Operator) Len() int { return len(op.terms) }

// AddTerm adds c·w to the operator. If w is already present its
// coefficient is accumulated in place; otherwise the term is appended.
// Zero coefficients are kept: the term count of a built operator is a
// function of the AddTerm call sequence alone, never of coefficient
// values, so equivalent rebuilds stay element-wise identical.
func (op *Operator) AddTerm(c complex128, w pauli.Word) error {
	if op == nil {
		return ErrNilOperator
	}
	if w.Len() != op.numQubits {
		return ErrQubitMismatch
	}
	key := w.String()
	if i, ok := op.index[key]; ok {
		op.terms[i].Coefficient += c

		return nil
	}
	op.index[key] = len(op.terms)
	op.terms = append(op.terms, Term{Coefficient: c, Word: w})

	return nil
}

// AddAxis adds c·A_q, the single-letter word with a on site q.
func (op *Operator) AddAxis(c complex128, q int, a pauli.Axis) error {
	if op == nil {
		return ErrNilOperator
	}
	if q < 0 || q >= op.numQubits {
		return ErrQubitRange
	}
	w, err := pauli.New(op.numQubits)
	if err != nil {
		return err
	}
	if w, err = w.With(q, a); err != nil {
		return err
	}

	return op.AddTerm(c, w)
}

// Add merges every term of other into op, preserving op's existing
// order and appending other's unseen words in their own order.
func (op *Operator) Add(other *Operator) error {
	if op == nil || other == nil {
		return ErrNilOperator
	}
	if other.numQubits != op.numQubits {
		return ErrQubitMismatch
	}
	for _, t := range other.terms {
		if err := op.AddTerm(t.Coefficient, t.Word); err != nil {
			return err
		}
	}

	return nil
}

// Terms returns a copy of the term list in insertion order.
func (op *Operator) Terms() []Term {
	out := make([]Term, len(op.terms))
	copy(out, op.terms)

	return out
}

// Coefficients returns the coefficient sequence in term order.
// Index i of Coefficients pairs with index i of Words.
func (op *Operator) Coefficients() []complex128 {
	out := make([]complex128, len(op.terms))
	for i, t := range op.terms {
		out[i] = t.Coefficient
	}

	return out
}

// Words returns the Pauli-word sequence in term order.
// Index i of Words pairs with index i of Coefficients.
func (op *Operator) Words() []pauli.Word {
	out := make([]pauli.Word, len(op.terms))
	for i, t := range op.terms {
		out[i] = t.Word
	}

	return out
}
