// Package gates is the leaf matrix library of qsim: it maps an elementary
// gate kind (plus rotation angle, where the kind is parameterized) to its
// textbook 2×2 unitary matrix.
//
// 🚀 What lives here?
//
//	• Kind        — closed enumeration of the supported gate kinds
//	• Matrix      — Kind (+θ) → [2][2]complex128 unitary
//	• Kind helpers — String / Controlled / Parameterized predicates
//
// Supported kinds:
//
//	H, X, Y, Z, S, T          — fixed single-qubit gates
//	RX(θ), RY(θ), RZ(φ)       — rotation generators (cos/sin of half angle)
//	CNOT, CRY(θ), CRZ(φ)      — two-qubit kinds (recognized but produced
//	                            elsewhere; Matrix rejects them)
//
// Matrix definitions:
//
//	H  = 1/√2 · [[1, 1], [1, -1]]
//	X  = [[0, 1], [1, 0]]      Y = [[0, -i], [i, 0]]     Z = diag(1, -1)
//	S  = diag(1, i)            T = diag(1, e^{iπ/4})
//	RX = [[cos θ/2, -i·sin θ/2], [-i·sin θ/2, cos θ/2]]
//	RY = [[cos θ/2, -sin θ/2],   [sin θ/2,     cos θ/2]]
//	RZ = diag(e^{-iφ/2}, e^{iφ/2})
//
// Errors (sentinel):
//
//	– ErrUnknownGate if Matrix receives a kind with no single-qubit matrix
//	  (a two-qubit kind, or a value outside the enumeration).
//
// Complexity: O(1) per call; no allocation beyond the returned array.
package gates
