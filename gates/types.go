// Package gates: gate-kind enumeration and its predicates.
package gates

import (
	"errors"
	"strconv"
)

// ErrUnknownGate indicates that a kind without a single-qubit matrix
// (a two-qubit kind or an out-of-range value) reached the low-level
// matrix path. Callers match it with errors.Is.
var ErrUnknownGate = errors.New("gates: unknown gate kind")

// Kind enumerates every gate kind the circuit model recognizes.
//
// The set is closed: Matrix and the engines switch over Kind exhaustively,
// so a kind outside this list cannot be silently ignored — it surfaces as
// ErrUnknownGate.
type Kind int

const (
	// H is the Hadamard gate.
	H Kind = iota

	// X is the Pauli-X (NOT) gate.
	X

	// Y is the Pauli-Y gate.
	Y

	// Z is the Pauli-Z gate.
	Z

	// S is the phase gate diag(1, i).
	S

	// T is the π/8 gate diag(1, e^{iπ/4}).
	T

	// RX is the rotation about the X axis by θ radians.
	RX

	// RY is the rotation about the Y axis by θ radians.
	RY

	// RZ is the rotation about the Z axis by φ radians.
	RZ

	// CNOT is the controlled-NOT two-qubit gate.
	CNOT

	// CRY is the controlled rotation about the Y axis.
	CRY

	// CRZ is the controlled rotation about the Z axis.
	// Recognized by the circuit model; the evolution engines reject it.
	CRZ
)

// kindNames backs String; order mirrors the constant block above.
var kindNames = [...]string{"H", "X", "Y", "Z", "S", "T", "RX", "RY", "RZ", "CNOT", "CRY", "CRZ"}

// String returns the conventional short name of the kind, or "Kind(n)"
// for values outside the enumeration.
func (k Kind) String() string {
	if k < H || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Controlled reports whether the kind addresses a control qubit in
// addition to its target (CNOT, CRY, CRZ).
func (k Kind) Controlled() bool {
	return k == CNOT || k == CRY || k == CRZ
}

// ParseKind maps a conventional short name ("H", "RX", "CNOT", …) back to
// its Kind, case-sensitively. Unrecognized names yield ErrUnknownGate.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return H, ErrUnknownGate
}

// Parameterized reports whether the kind carries a rotation angle.
func (k Kind) Parameterized() bool {
	switch k {
	case RX, RY, RZ, CRY, CRZ:
		return true
	default:
		return false
	}
}
