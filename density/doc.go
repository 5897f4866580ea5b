// SPDX-License-Identifier: MIT

// Package density implements the mixed-state engine of qsim: a 2^n × 2^n
// complex matrix ρ, constructed from a finished pure state by outer product
// and degraded by simplified decoherence channels.
//
// 🚀 What lives here?
//
//	• DensityMatrix          — flattened D×D matrix, |0…0⟩⟨0…0| at construction
//	• FromPureState          — ρ = |ψ⟩⟨ψ| from a statevec.StateVector
//	• ApplyAmplitudeDamping  — off-diagonal decay, compounded per qubit
//	• ApplyPhaseDamping      — off-diagonal decay, applied once
//	• ExpectationValue       — 1 − Re ρ₀₀
//	• Entropy                — linear entropy 1 − Tr(ρ²)
//	• ResonanceBands         — 3-band diagonal-probability summary
//
// Layout: entry ⟨row|ρ|col⟩ lives at matrix[row·D + col].
//
// Channel fidelity — read before use:
//
//	Both channels are explicit approximations, not Kraus-operator sums.
//	Amplitude damping multiplies every off-diagonal entry by √(1−p) once
//	per register qubit — the decay compounds with n — and performs no
//	population transfer toward the ground state. Phase damping applies the
//	√(1−p) factor exactly once, which is correct single-application
//	dephasing. The compounded variant can be replaced by a single pass via
//	WithSinglePass; the compounding default is preserved deliberately.
//	After a channel the matrix may violate strict positivity; the engine
//	does not verify Hermiticity, trace or positive semi-definiteness.
//
// No gate application exists on ρ: mixed-state evolution is pure-state
// replay first, conversion second, channels last.
//
// ResonanceBands bins the D diagonal probabilities into three contiguous
// bands (sum × 2, clamped to 1). Unlike statevec.ResonanceSpectrum it runs
// no Fourier transform — the asymmetry between the two engines is part of
// the contract, not an accident of implementation.
//
// Errors (sentinel):
//
//	– ErrQubitCount    — New with n < 1 or n > MaxQubits.
//	– ErrNilState      — FromPureState(nil).
//	– ErrQubitMismatch — converting a state of a different register size.
//	– ErrOutOfRange    — At with an index ≥ D.
//
// Complexity: O(4^n) for construction and channels, O(2^n) for the
// diagonal summaries.
package density
