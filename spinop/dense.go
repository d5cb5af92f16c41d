package spinop

// Dense expands the operator into its full 2^n×2^n matrix,
// row-major, M[row][col]. Column b of a word's matrix has its single
// nonzero entry at row b⊕flipMask with the word's basis phase, so the
// expansion costs O(terms·2^n) instead of Kronecker products.
//
// Dense is a reference path for tests, examples and small-system
// inspection; it returns ErrTooLarge above DenseMaxQubits.
func (op *Operator) Dense() ([][]complex128, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if op.numQubits > DenseMaxQubits {
		return nil, ErrTooLarge
	}
	dim := 1 << uint(op.numQubits)
	m := make([][]complex128, dim)
	for r := range m {
		m[r] = make([]complex128, dim)
	}
	for _, t := range op.terms {
		for col := uint64(0); col < uint64(dim); col++ {
			row, phase := t.Word.Apply(col)
			m[row][col] += t.Coefficient * phase
		}
	}

	return m, nil
}
