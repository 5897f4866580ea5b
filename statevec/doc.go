// SPDX-License-Identifier: MIT

// Package statevec implements the pure-state engine of qsim: a register of
// n qubits held as 2^n complex amplitudes, evolved in place by unitary gate
// application and summarized by scalar/vector diagnostics.
//
// 🚀 What lives here?
//
//	• StateVector          — 2^n amplitudes, |0…0⟩ at construction
//	• ApplyGate            — any single-qubit kind from package gates
//	• ApplyCNOT            — controlled-NOT permutation
//	• ApplyControlledRY    — controlled RY(θ) pair rotation
//	• ExpectationValue     — 1 − |⟨0…0|ψ⟩|²
//	• Entropy              — basis-measurement Shannon entropy / n
//	• ResonanceSpectrum    — 3-band DFT magnitude summary
//
// Indexing:
//
//	Amplitude index i is an n-bit basis label; bit k of i is the value of
//	qubit k (LSB-relative). A single-qubit gate on target t pairs every
//	index with its t-bit sibling: step = 2^t, blocks of 2·step, the first
//	step indices of a block pairing with the next step.
//
// Evaluation strategy:
//
//	Gate and CNOT sweeps always read the pre-update amplitudes and write a
//	freshly allocated buffer, committed only on success. For dimensions
//	above ParallelThreshold the chunk list is mapped over the injected
//	parexec.Executor; at or below it, the same chunk list runs sequentially.
//	Both paths share one kernel, so they cannot diverge in semantics — their
//	equivalence is asserted by tests.
//
// Diagnostics caveats:
//
//	Entropy is the Shannon entropy of the basis-measurement distribution
//	(normalized by n), an approximation of von Neumann entropy valid only
//	for classical-basis statistics. ResonanceSpectrum is a visualization
//	statistic, not a physical observable; its density-matrix counterpart
//	(density.ResonanceBands) intentionally uses a different computation —
//	see that package's contract.
//
// Errors (sentinel):
//
//	– ErrQubitCount      — New called with n < 1 or n > MaxQubits.
//	– ErrQubitOutOfRange — target or control index ≥ n.
//	– ErrSameQubit       — control equals target.
//	– gates.ErrUnknownGate — unrecognized kind on the single-qubit path.
//
// No failure leaves the register partially mutated: indices are validated
// first and sweeps write into fresh buffers.
//
// Complexity: O(2^n) per gate, O(2^n log 2^n) for ResonanceSpectrum.
package statevec
