package statevec_test

import (
	"math"
	"testing"

	"github.com/quvant/qsim/gates"
	"github.com/quvant/qsim/parexec"
	"github.com/quvant/qsim/statevec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestNew_Validation verifies register-size validation and the initial state.
func TestNew_Validation(t *testing.T) {
	_, err := statevec.New(0)
	assert.ErrorIs(t, err, statevec.ErrQubitCount, "n=0 must be rejected")

	_, err = statevec.New(-1)
	assert.ErrorIs(t, err, statevec.ErrQubitCount, "negative n must be rejected")

	_, err = statevec.New(statevec.MaxQubits + 1)
	assert.ErrorIs(t, err, statevec.ErrQubitCount, "oversized n must be rejected")

	s, err := statevec.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Qubits())
	assert.Equal(t, 8, s.Dim())

	amps := s.Amplitudes()
	assert.Equal(t, complex128(1), amps[0], "|000⟩ amplitude")
	for i := 1; i < len(amps); i++ {
		assert.Equal(t, complex128(0), amps[i], "amplitude %d", i)
	}
}

// TestApplyGate_HadamardOnZero pins H|0⟩ = (|0⟩+|1⟩)/√2.
func TestApplyGate_HadamardOnZero(t *testing.T) {
	s, err := statevec.New(1)
	require.NoError(t, err)
	require.NoError(t, s.ApplyGate(gates.H, 0, 0))

	amps := s.Amplitudes()
	want := 1 / math.Sqrt2
	assert.InDelta(t, want, real(amps[0]), eps)
	assert.InDelta(t, 0.0, imag(amps[0]), eps)
	assert.InDelta(t, want, real(amps[1]), eps)
	assert.InDelta(t, 0.0, imag(amps[1]), eps)
}

// TestApplyGate_PauliXOnZero pins X|0⟩ = |1⟩ exactly.
func TestApplyGate_PauliXOnZero(t *testing.T) {
	s, err := statevec.New(1)
	require.NoError(t, err)
	require.NoError(t, s.ApplyGate(gates.X, 0, 0))

	amps := s.Amplitudes()
	assert.Equal(t, complex128(0), amps[0])
	assert.Equal(t, complex128(1), amps[1])
}

// TestApplyGate_InvalidInputs verifies failures surface without mutating
// the register.
func TestApplyGate_InvalidInputs(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.NoError(t, s.ApplyGate(gates.H, 0, 0))
	before := s.Amplitudes()

	assert.ErrorIs(t, s.ApplyGate(gates.H, 2, 0), statevec.ErrQubitOutOfRange)
	assert.ErrorIs(t, s.ApplyGate(gates.H, -1, 0), statevec.ErrQubitOutOfRange)
	assert.ErrorIs(t, s.ApplyGate(gates.CNOT, 0, 0), gates.ErrUnknownGate)
	assert.ErrorIs(t, s.ApplyGate(gates.Kind(42), 0, 0), gates.ErrUnknownGate)

	assert.Equal(t, before, s.Amplitudes(), "failed calls must not mutate state")
}

// TestApplyCNOT_FlipsTarget verifies CNOT(control=0, target=1) maps |01⟩
// (qubit 0 set) to |11⟩.
func TestApplyCNOT_FlipsTarget(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.NoError(t, s.ApplyGate(gates.X, 0, 0)) // |01⟩, basis index 1
	require.NoError(t, s.ApplyCNOT(0, 1))

	amps := s.Amplitudes()
	assert.Equal(t, complex128(1), amps[3], "|11⟩ must carry the full amplitude")
	assert.Equal(t, complex128(0), amps[1])
}

// TestApplyCNOT_ControlClearIsIdentity verifies nothing moves when the
// control bit is never set.
func TestApplyCNOT_ControlClearIsIdentity(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.NoError(t, s.ApplyCNOT(0, 1))

	amps := s.Amplitudes()
	assert.Equal(t, complex128(1), amps[0], "|00⟩ untouched by CNOT")
}

// TestApplyCNOT_InvalidInputs verifies index validation happens before any
// mutation.
func TestApplyCNOT_InvalidInputs(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.NoError(t, s.ApplyGate(gates.H, 1, 0))
	before := s.Amplitudes()

	assert.ErrorIs(t, s.ApplyCNOT(0, 0), statevec.ErrSameQubit)
	assert.ErrorIs(t, s.ApplyCNOT(2, 0), statevec.ErrQubitOutOfRange)
	assert.ErrorIs(t, s.ApplyCNOT(0, 2), statevec.ErrQubitOutOfRange)
	assert.ErrorIs(t, s.ApplyCNOT(-1, 1), statevec.ErrQubitOutOfRange)

	assert.Equal(t, before, s.Amplitudes())
}

// TestApplyControlledRY_RotatesControlledSubspace prepares |01⟩ and applies
// CRY(θ) with control 0, target 1: amplitude must split into
// cos(θ/2)|01⟩ + sin(θ/2)|11⟩.
func TestApplyControlledRY_RotatesControlledSubspace(t *testing.T) {
	theta := math.Pi / 3
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.NoError(t, s.ApplyGate(gates.X, 0, 0))
	require.NoError(t, s.ApplyControlledRY(0, 1, theta))

	amps := s.Amplitudes()
	assert.InDelta(t, math.Cos(theta/2), real(amps[1]), eps)
	assert.InDelta(t, math.Sin(theta/2), real(amps[3]), eps)
	assert.InDelta(t, 0.0, real(amps[0]), eps)
	assert.InDelta(t, 0.0, real(amps[2]), eps)
}

// TestApplyControlledRY_ControlClearIsIdentity verifies the uncontrolled
// subspace passes through unchanged.
func TestApplyControlledRY_ControlClearIsIdentity(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	require.NoError(t, s.ApplyControlledRY(0, 1, math.Pi/2))

	amps := s.Amplitudes()
	assert.Equal(t, complex128(1), amps[0])
}

// TestApplyControlledRY_InvalidInputs mirrors the CNOT validation contract.
func TestApplyControlledRY_InvalidInputs(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	before := s.Amplitudes()

	assert.ErrorIs(t, s.ApplyControlledRY(1, 1, 0.1), statevec.ErrSameQubit)
	assert.ErrorIs(t, s.ApplyControlledRY(5, 0, 0.1), statevec.ErrQubitOutOfRange)
	assert.Equal(t, before, s.Amplitudes())
}

// TestNormPreservation applies a long mixed gate sequence and requires the
// squared norm to stay 1 (every matrix is unitary; no renormalization runs).
func TestNormPreservation(t *testing.T) {
	s, err := statevec.New(4)
	require.NoError(t, err)

	seq := []struct {
		kind   gates.Kind
		target int
		theta  float64
	}{
		{gates.H, 0, 0}, {gates.RX, 1, 0.7}, {gates.T, 2, 0},
		{gates.RY, 3, 1.1}, {gates.Z, 0, 0}, {gates.RZ, 2, 2.3},
		{gates.S, 1, 0}, {gates.Y, 3, 0}, {gates.H, 2, 0},
	}
	for _, g := range seq {
		require.NoError(t, s.ApplyGate(g.kind, g.target, g.theta))
	}
	require.NoError(t, s.ApplyCNOT(0, 3))
	require.NoError(t, s.ApplyControlledRY(1, 2, 0.9))

	assert.InDelta(t, 1.0, s.Norm(), 1e-6)
}

// TestExpectationValue covers the ground state (exactly 0) and a fully
// excited qubit (exactly 1).
func TestExpectationValue(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	assert.Zero(t, s.ExpectationValue(), "fresh register must read 0")

	require.NoError(t, s.ApplyGate(gates.X, 0, 0))
	assert.InDelta(t, 1.0, s.ExpectationValue(), eps)
}

// TestEntropy covers the basis-state (0) and uniform one-qubit (1) cases.
func TestEntropy(t *testing.T) {
	s, err := statevec.New(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s.Entropy(), eps, "basis state has no measurement entropy")

	one, err := statevec.New(1)
	require.NoError(t, err)
	require.NoError(t, one.ApplyGate(gates.H, 0, 0))
	assert.InDelta(t, 1.0, one.Entropy(), eps, "uniform 1-qubit distribution has entropy 1")
}

// TestResonanceSpectrum_Range verifies the three bands stay within [0, 1]
// on a spread-out state, and that the tiny-register path is NaN-free.
func TestResonanceSpectrum_Range(t *testing.T) {
	s, err := statevec.New(4)
	require.NoError(t, err)
	for q := 0; q < 4; q++ {
		require.NoError(t, s.ApplyGate(gates.H, q, 0))
	}

	bands := s.ResonanceSpectrum()
	for i, b := range bands {
		assert.False(t, math.IsNaN(b), "band %d must be finite", i)
		assert.GreaterOrEqual(t, b, 0.0, "band %d lower bound", i)
		assert.LessOrEqual(t, b, 1.0, "band %d upper bound", i)
	}

	tiny, err := statevec.New(1)
	require.NoError(t, err)
	for i, b := range tiny.ResonanceSpectrum() {
		assert.False(t, math.IsNaN(b), "band %d on D=2 must be finite", i)
	}
}

// referenceApply is an independent per-index implementation of the pair
// update used to cross-check both evaluation strategies.
func referenceApply(amps []complex128, m [2][2]complex128, target int) []complex128 {
	out := make([]complex128, len(amps))
	bit := 1 << target
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			out[i] = m[0][0]*amps[i] + m[0][1]*amps[j]
			out[j] = m[1][0]*amps[i] + m[1][1]*amps[j]
		}
	}

	return out
}

// prepare spreads a register into a non-trivial state via a fixed sequence.
func prepare(t *testing.T, s *statevec.StateVector) {
	t.Helper()
	for q := 0; q < s.Qubits(); q++ {
		require.NoError(t, s.ApplyGate(gates.H, q, 0))
		require.NoError(t, s.ApplyGate(gates.RY, q, 0.3*float64(q+1)))
	}
}

// TestSequentialParallelEquivalence runs every single-qubit kind on every
// target of an above-threshold register (D = 2048) under both executors and
// against the reference implementation. The paths must agree within 1e-6.
func TestSequentialParallelEquivalence(t *testing.T) {
	const qubits = 11 // dimension 2048 > ParallelThreshold
	theta := 0.37

	for _, kind := range []gates.Kind{
		gates.H, gates.X, gates.Y, gates.Z, gates.S, gates.T,
		gates.RX, gates.RY, gates.RZ,
	} {
		for target := 0; target < qubits; target++ {
			seq, err := statevec.New(qubits, statevec.WithExecutor(parexec.Sync{}))
			require.NoError(t, err)
			par, err := statevec.New(qubits, statevec.WithExecutor(parexec.NewPool(4)))
			require.NoError(t, err)
			prepare(t, seq)
			prepare(t, par)

			want := referenceApply(seq.Amplitudes(), mustMatrix(t, kind, theta), target)
			require.NoError(t, seq.ApplyGate(kind, target, theta))
			require.NoError(t, par.ApplyGate(kind, target, theta))

			sa, pa := seq.Amplitudes(), par.Amplitudes()
			for i := range want {
				assert.InDelta(t, real(want[i]), real(sa[i]), 1e-6, "%s target=%d seq[%d] re", kind, target, i)
				assert.InDelta(t, real(sa[i]), real(pa[i]), 1e-6, "%s target=%d par[%d] re", kind, target, i)
				assert.InDelta(t, imag(sa[i]), imag(pa[i]), 1e-6, "%s target=%d par[%d] im", kind, target, i)
			}
		}
	}
}

// TestCNOTSequentialParallelEquivalence mirrors the equivalence check for
// the per-index CNOT sweep.
func TestCNOTSequentialParallelEquivalence(t *testing.T) {
	const qubits = 11

	seq, err := statevec.New(qubits, statevec.WithExecutor(parexec.Sync{}))
	require.NoError(t, err)
	par, err := statevec.New(qubits, statevec.WithExecutor(parexec.NewPool(4)))
	require.NoError(t, err)
	prepare(t, seq)
	prepare(t, par)

	require.NoError(t, seq.ApplyCNOT(2, 9))
	require.NoError(t, par.ApplyCNOT(2, 9))

	assert.Equal(t, seq.Amplitudes(), par.Amplitudes(),
		"CNOT permutation is exact; both paths must agree bit-for-bit")
}

func mustMatrix(t *testing.T, kind gates.Kind, theta float64) [2][2]complex128 {
	t.Helper()
	m, err := gates.Matrix(kind, theta)
	require.NoError(t, err)

	return m
}

// TestProbabilitiesAndPairs covers the host-binding accessors.
func TestProbabilitiesAndPairs(t *testing.T) {
	s, err := statevec.New(1)
	require.NoError(t, err)
	require.NoError(t, s.ApplyGate(gates.H, 0, 0))

	probs := s.Probabilities()
	assert.InDelta(t, 0.5, probs[0], eps)
	assert.InDelta(t, 0.5, probs[1], eps)

	pairs := s.AmplitudePairs()
	assert.InDelta(t, 1/math.Sqrt2, pairs[0][0], eps)
	assert.InDelta(t, 0.0, pairs[0][1], eps)
}
