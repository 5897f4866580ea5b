package gates_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/quvant/qsim/gates"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

// singleQubitKinds lists every kind Matrix must accept.
var singleQubitKinds = []gates.Kind{
	gates.H, gates.X, gates.Y, gates.Z, gates.S, gates.T,
	gates.RX, gates.RY, gates.RZ,
}

// assertUnitary checks m·m† = I within eps.
func assertUnitary(t *testing.T, m [2][2]complex128, kind gates.Kind) {
	t.Helper()
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			var sum complex128
			for k := 0; k < 2; k++ {
				sum += m[r][k] * cmplx.Conj(m[c][k])
			}
			want := 0.0
			if r == c {
				want = 1.0
			}
			assert.InDelta(t, want, real(sum), eps, "%s: (m·m†)[%d][%d] real", kind, r, c)
			assert.InDelta(t, 0.0, imag(sum), eps, "%s: (m·m†)[%d][%d] imag", kind, r, c)
		}
	}
}

// TestMatrix_AllKindsUnitary verifies every single-qubit matrix is unitary,
// including the rotations at several angles.
func TestMatrix_AllKindsUnitary(t *testing.T) {
	angles := []float64{0, math.Pi / 7, math.Pi / 2, math.Pi, 2 * math.Pi}
	for _, kind := range singleQubitKinds {
		for _, theta := range angles {
			m, err := gates.Matrix(kind, theta)
			assert.NoError(t, err, "kind %s must be accepted", kind)
			assertUnitary(t, m, kind)
		}
	}
}

// TestMatrix_Hadamard pins the exact Hadamard entries.
func TestMatrix_Hadamard(t *testing.T) {
	m, err := gates.Matrix(gates.H, 0)
	assert.NoError(t, err)
	s := 1 / math.Sqrt2
	assert.InDelta(t, s, real(m[0][0]), eps)
	assert.InDelta(t, s, real(m[0][1]), eps)
	assert.InDelta(t, s, real(m[1][0]), eps)
	assert.InDelta(t, -s, real(m[1][1]), eps)
}

// TestMatrix_PauliAndPhase pins X, Y, Z, S and T entries.
func TestMatrix_PauliAndPhase(t *testing.T) {
	x, _ := gates.Matrix(gates.X, 0)
	assert.Equal(t, complex128(1), x[0][1], "X off-diagonal")
	assert.Equal(t, complex128(0), x[0][0], "X diagonal")

	y, _ := gates.Matrix(gates.Y, 0)
	assert.Equal(t, complex128(-1i), y[0][1], "Y upper")
	assert.Equal(t, complex128(1i), y[1][0], "Y lower")

	z, _ := gates.Matrix(gates.Z, 0)
	assert.Equal(t, complex128(-1), z[1][1], "Z phase")

	s, _ := gates.Matrix(gates.S, 0)
	assert.Equal(t, complex128(1i), s[1][1], "S phase")

	tm, _ := gates.Matrix(gates.T, 0)
	assert.InDelta(t, math.Pi/4, cmplx.Phase(tm[1][1]), eps, "T phase angle")
	assert.InDelta(t, 1.0, cmplx.Abs(tm[1][1]), eps, "T phase magnitude")
}

// TestMatrix_RZPhases verifies RZ(φ) = diag(e^{-iφ/2}, e^{iφ/2}).
func TestMatrix_RZPhases(t *testing.T) {
	phi := math.Pi / 3
	m, err := gates.Matrix(gates.RZ, phi)
	assert.NoError(t, err)
	assert.InDelta(t, -phi/2, cmplx.Phase(m[0][0]), eps)
	assert.InDelta(t, phi/2, cmplx.Phase(m[1][1]), eps)
	assert.Equal(t, complex128(0), m[0][1])
	assert.Equal(t, complex128(0), m[1][0])
}

// TestMatrix_TwoQubitKindsRejected ensures controlled kinds and unknown
// values surface ErrUnknownGate on the single-qubit path.
func TestMatrix_TwoQubitKindsRejected(t *testing.T) {
	for _, kind := range []gates.Kind{gates.CNOT, gates.CRY, gates.CRZ, gates.Kind(99)} {
		_, err := gates.Matrix(kind, 0)
		assert.ErrorIs(t, err, gates.ErrUnknownGate, "kind %v must be rejected", kind)
	}
}

// TestParseKind round-trips every kind name and rejects unknown ones.
func TestParseKind(t *testing.T) {
	all := append([]gates.Kind{}, singleQubitKinds...)
	all = append(all, gates.CNOT, gates.CRY, gates.CRZ)
	for _, kind := range all {
		got, err := gates.ParseKind(kind.String())
		assert.NoError(t, err, "name %q", kind)
		assert.Equal(t, kind, got)
	}

	_, err := gates.ParseKind("HADAMARD")
	assert.ErrorIs(t, err, gates.ErrUnknownGate)
	_, err = gates.ParseKind("h")
	assert.ErrorIs(t, err, gates.ErrUnknownGate, "matching is case-sensitive")
}

// TestKind_Predicates covers the String/Controlled/Parameterized helpers.
func TestKind_Predicates(t *testing.T) {
	assert.Equal(t, "H", gates.H.String())
	assert.Equal(t, "CRY", gates.CRY.String())
	assert.Equal(t, "Kind(99)", gates.Kind(99).String())

	assert.True(t, gates.CNOT.Controlled())
	assert.True(t, gates.CRZ.Controlled())
	assert.False(t, gates.RY.Controlled())

	assert.True(t, gates.RX.Parameterized())
	assert.True(t, gates.CRY.Parameterized())
	assert.False(t, gates.H.Parameterized())
	assert.False(t, gates.CNOT.Parameterized())
}
