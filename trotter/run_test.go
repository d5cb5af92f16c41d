package trotter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinchain/heisenberg"
	"github.com/katalvlaran/spinchain/spinop"
	"github.com/katalvlaran/spinchain/trotter"
)

//----------------------------------------------------------------------------//
// Dense two-qubit reference machinery (independent of qstate/spinop)
//----------------------------------------------------------------------------//

var (
	refI = [2][2]complex128{{1, 0}, {0, 1}}
	refX = [2][2]complex128{{0, 1}, {1, 0}}
	refY = [2][2]complex128{{0, -1i}, {1i, 0}}
	refZ = [2][2]complex128{{1, 0}, {0, -1}}
)

// kron2 builds the 4×4 matrix of a two-qubit word with qubit 0 on the
// low bit of the basis index: M = high ⊗ low.
func kron2(high, low [2][2]complex128) [4][4]complex128 {
	var m [4][4]complex128
	for r1 := 0; r1 < 2; r1++ {
		for c1 := 0; c1 < 2; c1++ {
			for r0 := 0; r0 < 2; r0++ {
				for c0 := 0; c0 < 2; c0++ {
					m[r1*2+r0][c1*2+c0] = high[r1][c1] * low[r0][c0]
				}
			}
		}
	}

	return m
}

func refLetter(b byte) [2][2]complex128 {
	switch b {
	case 'X':
		return refX
	case 'Y':
		return refY
	case 'Z':
		return refZ
	default:
		return refI
	}
}

// refWord builds the dense matrix of a two-letter word, qubit 0 first.
func refWord(word string) [4][4]complex128 {
	return kron2(refLetter(word[1]), refLetter(word[0]))
}

// refRotate applies e^{iθP}ψ = cosθ·ψ + i·sinθ·Pψ on four amplitudes.
func refRotate(theta float64, p [4][4]complex128, psi [4]complex128) [4]complex128 {
	var out [4]complex128
	cos := complex(math.Cos(theta), 0)
	isin := complex(0, math.Sin(theta))
	for r := 0; r < 4; r++ {
		var mv complex128
		for c := 0; c < 4; c++ {
			mv += p[r][c] * psi[c]
		}
		out[r] = cos*psi[r] + isin*mv
	}

	return out
}

// refExpectation computes ⟨ψ|M|ψ⟩ on four amplitudes.
func refExpectation(m [4][4]complex128, psi [4]complex128) float64 {
	var total complex128
	for r := 0; r < 4; r++ {
		var mv complex128
		for c := 0; c < 4; c++ {
			mv += m[r][c] * psi[c]
		}
		total += complex(real(psi[r]), -imag(psi[r])) * mv
	}

	return real(total)
}

//----------------------------------------------------------------------------//
// Run Tests
//----------------------------------------------------------------------------//

func TestRun_Validation(t *testing.T) {
	opts := trotter.DefaultOptions()
	opts.Steps = 0
	_, err := trotter.Run(opts)
	require.ErrorIs(t, err, trotter.ErrBadSteps)

	opts = trotter.DefaultOptions()
	opts.Dt = 0
	_, err = trotter.Run(opts)
	require.ErrorIs(t, err, trotter.ErrBadDt)

	chain, err := heisenberg.NewChain(2)
	require.NoError(t, err)
	wrongObs, err := spinop.Magnetization(3)
	require.NoError(t, err)
	opts = trotter.DefaultOptions()
	opts.Chain = chain
	opts.Observable = wrongObs
	_, err = trotter.Run(opts)
	require.ErrorIs(t, err, trotter.ErrObservableMismatch)
}

func TestDefaultOptions_Constants(t *testing.T) {
	opts := trotter.DefaultOptions()
	require.Equal(t, 100, opts.Steps)
	require.Equal(t, 0.05, opts.Dt)
	require.Nil(t, opts.Chain)
	require.Nil(t, opts.Observable)
}

// TestRun_SingleStepTwoSpins is the end-to-end scenario: one step on a
// two-spin chain must produce exactly one expectation and one timing
// entry, and the expectation must match a hand-built dense simulation
// of the same circuit.
func TestRun_SingleStepTwoSpins(t *testing.T) {
	const dt = 0.05
	chain, err := heisenberg.NewChain(2)
	require.NoError(t, err)

	opts := trotter.Options{Steps: 1, Dt: dt, Chain: chain}
	res, err := trotter.Run(opts)
	require.NoError(t, err)
	require.Len(t, res.Expectations, 1)
	require.Len(t, res.StepDurations, 1)
	require.Greater(t, res.Total.Nanoseconds(), int64(0))

	// Reference: H(0) on two spins is XX + XY + XZ (bond 0), then the
	// drive cos(0)·X on each site, in that order.
	refWords := []string{"XX", "XY", "XZ", "XI", "IX"}

	// Alternating start: qubit 0 excited → basis |01⟩ = index 1.
	psi := [4]complex128{0, 1, 0, 0}
	for _, w := range refWords {
		psi = refRotate(1*dt, refWord(w), psi)
	}

	// Average magnetization: (Z⊗I + I⊗Z)/2 − I, with qubit 0 low.
	var mag [4][4]complex128
	z0 := refWord("ZI")
	z1 := refWord("IZ")
	eye := refWord("II")
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			mag[r][c] = (z0[r][c]+z1[r][c])*complex(0.5, 0) - eye[r][c]
		}
	}

	want := refExpectation(mag, psi)
	require.InDelta(t, want, res.Expectations[0], 1e-12)
}

// TestRun_SequencesGrowPerStep checks one entry per step, in order.
func TestRun_SequencesGrowPerStep(t *testing.T) {
	chain, err := heisenberg.NewChain(3)
	require.NoError(t, err)

	const steps = 7
	res, err := trotter.Run(trotter.Options{Steps: steps, Dt: 0.05, Chain: chain})
	require.NoError(t, err)
	require.Len(t, res.Expectations, steps)
	require.Len(t, res.StepDurations, steps)
	for i, ev := range res.Expectations {
		require.False(t, math.IsNaN(ev) || math.IsInf(ev, 0), "step %d", i)
		// Magnetization minus its offset stays within [-2, 0].
		require.GreaterOrEqual(t, ev, -2.0, "step %d", i)
		require.LessOrEqual(t, ev, 0.0, "step %d", i)
	}
}

// TestRun_Deterministic verifies two identical runs produce identical
// expectation sequences (timing aside, the loop is pure).
func TestRun_Deterministic(t *testing.T) {
	chain, err := heisenberg.NewChain(4)
	require.NoError(t, err)
	opts := trotter.Options{Steps: 5, Dt: 0.05, Chain: chain}

	a, err := trotter.Run(opts)
	require.NoError(t, err)
	b, err := trotter.Run(opts)
	require.NoError(t, err)
	require.Equal(t, a.Expectations, b.Expectations)
}

// TestRun_OnStepCallback checks the per-step callback sees every step
// in order with the right metadata.
func TestRun_OnStepCallback(t *testing.T) {
	chain, err := heisenberg.NewChain(2)
	require.NoError(t, err)

	var infos []trotter.StepInfo
	opts := trotter.Options{
		Steps: 4,
		Dt:    0.05,
		Chain: chain,
		OnStep: func(si trotter.StepInfo) {
			infos = append(infos, si)
		},
	}
	res, err := trotter.Run(opts)
	require.NoError(t, err)
	require.Len(t, infos, 4)
	for i, si := range infos {
		require.Equal(t, i, si.Step)
		require.InDelta(t, float64(i)*0.05, si.Time, 1e-15)
		require.Equal(t, 5, si.Terms) // 3·(2−1) bonds + 2 drives
		require.Equal(t, res.Expectations[i], si.Expectation)
	}
}
