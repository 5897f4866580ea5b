// Package qsim is a numerical simulation engine for multi-qubit quantum
// registers: unitary gate evolution over a pure state vector, optional
// simplified decoherence over a density matrix, and derived diagnostics.
//
// 🚀 What is qsim?
//
//	A deterministic, CPU-bound library that brings together:
//		• Gate matrices: H, Pauli X/Y/Z, S, T, RX/RY/RZ rotations
//		• Pure-state evolution: single-qubit gates, CNOT, controlled-RY
//		• Mixed states: outer-product construction + damping channels
//		• Diagnostics: energy expectation, entropy, 3-band resonance
//		• Data parallelism: injected executor over disjoint chunks
//
// Everything is organized under five packages:
//
//	gates/    — gate-kind enumeration and 2×2 unitary construction
//	statevec/ — the 2^n-amplitude pure-state engine
//	density/  — the 2^n × 2^n mixed-state engine and noise channels
//	circuit/  — ordered gate programs with Execute / ExecuteNoisy replay
//	parexec/  — the parallel-executor capability the engines depend on
//
// Quick example — a noisy Bell pair:
//
//	dm, err := circuit.New(2).H(0).CNOT(0, 1).ExecuteNoisy(0.1, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dm.Entropy())
//
// The engines favor fidelity to their reference semantics over physical
// exactness in two documented places: the amplitude-damping channel and the
// asymmetric resonance computations — see the density and statevec package
// docs before relying on either.
//
//	go get github.com/quvant/qsim
package qsim
