package heisenberg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinchain/heisenberg"
)

func TestNewChain_TooFewSpins(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := heisenberg.NewChain(n)
		require.ErrorIs(t, err, heisenberg.ErrTooFewSpins, "spins=%d", n)
	}
}

func TestNewChain_Defaults(t *testing.T) {
	c, err := heisenberg.NewChain(4)
	require.NoError(t, err)
	jx, jy, jz := c.Couplings()
	require.Equal(t, heisenberg.DefaultJx, jx)
	require.Equal(t, heisenberg.DefaultJy, jy)
	require.Equal(t, heisenberg.DefaultJz, jz)
	require.Equal(t, heisenberg.DefaultOmega, c.Omega())
	require.Equal(t, 4, c.Spins())
}

func TestNewChain_Options(t *testing.T) {
	c, err := heisenberg.NewChain(3,
		heisenberg.WithCouplings(0.5, -1, 2),
		heisenberg.WithOmega(math.Pi),
	)
	require.NoError(t, err)
	jx, jy, jz := c.Couplings()
	require.Equal(t, 0.5, jx)
	require.Equal(t, -1.0, jy)
	require.Equal(t, 2.0, jz)
	require.Equal(t, math.Pi, c.Omega())
}

// TestHamiltonian_TermCount verifies the 3(n−1) bond terms plus n drive
// terms, for several chain lengths and times.
func TestHamiltonian_TermCount(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		c, err := heisenberg.NewChain(n)
		require.NoError(t, err)
		for _, tm := range []float64{0, 0.05, 0.25, 1.7} {
			op, err := c.Hamiltonian(tm)
			require.NoError(t, err)
			require.Equal(t, 3*(n-1)+n, op.Len(), "n=%d t=%v", n, tm)
		}
	}
}

// TestHamiltonian_TermLayout pins the exact word sequence for a
// three-spin chain: bond 0, bond 1, then the three drive terms.
func TestHamiltonian_TermLayout(t *testing.T) {
	c, err := heisenberg.NewChain(3, heisenberg.WithCouplings(1, 2, 3))
	require.NoError(t, err)
	op, err := c.Hamiltonian(0)
	require.NoError(t, err)

	want := []struct {
		word  string
		coeff complex128
	}{
		{"XXI", 1},
		{"XYI", 2},
		{"XZI", 3},
		{"IXX", 1},
		{"IXY", 2},
		{"IXZ", 3},
		{"XII", 1}, // cos(0) = 1
		{"IXI", 1},
		{"IIX", 1},
	}
	terms := op.Terms()
	require.Len(t, terms, len(want))
	for i, w := range want {
		require.Equal(t, w.word, terms[i].Word.String(), "term %d", i)
		require.Equal(t, w.coeff, terms[i].Coefficient, "term %d", i)
	}
}

// TestHamiltonian_DriveWeight checks the cos(Ω·t) drive coefficient.
func TestHamiltonian_DriveWeight(t *testing.T) {
	c, err := heisenberg.NewChain(2, heisenberg.WithOmega(2*math.Pi))
	require.NoError(t, err)

	const tm = 0.05
	op, err := c.Hamiltonian(tm)
	require.NoError(t, err)

	terms := op.Terms()
	wantDrive := math.Cos(2 * math.Pi * tm)
	// Last two terms are the driven X on each site.
	require.InDelta(t, wantDrive, real(terms[3].Coefficient), 1e-15)
	require.InDelta(t, wantDrive, real(terms[4].Coefficient), 1e-15)
}

// TestHamiltonian_Deterministic verifies that two builds at the same t
// are element-wise identical (no hidden state).
func TestHamiltonian_Deterministic(t *testing.T) {
	c, err := heisenberg.NewChain(6)
	require.NoError(t, err)

	const tm = 0.35
	a, err := c.Hamiltonian(tm)
	require.NoError(t, err)
	b, err := c.Hamiltonian(tm)
	require.NoError(t, err)

	require.Equal(t, a.Coefficients(), b.Coefficients())
	aw, bw := a.Words(), b.Words()
	require.Len(t, bw, len(aw))
	for i := range aw {
		require.Equal(t, aw[i].String(), bw[i].String(), "term %d", i)
	}
}
