// SPDX-License-Identifier: MIT

// Package statevec: gate application. One size-independent kernel per
// operation, invoked either by a sequential loop over the chunk list or by
// the injected executor over the same list — the two call sites cannot
// diverge in semantics.
package statevec

import (
	"github.com/quvant/qsim/gates"
	"github.com/quvant/qsim/parexec"
)

// cnotChunk is the basis-index block size used to partition CNOT sweeps;
// the per-pair operations are instead chunked by their natural block of
// 2·step indices.
const cnotChunk = 1 << 11

// chunkExecutor selects the evaluation strategy for the register dimension:
// the injected executor above ParallelThreshold, in-order otherwise.
func (s *StateVector) chunkExecutor() parexec.Executor {
	if s.dim > ParallelThreshold {
		return s.exec
	}

	return parexec.Sync{}
}

// applyPairBlock rewrites one block of 2·step amplitudes: index base+j
// pairs with base+j+step, and the pair (a, b) becomes
// (m00·a + m01·b, m10·a + m11·b). Reads src only, writes dst only inside
// [base, base+2·step).
func applyPairBlock(dst, src []complex128, m [2][2]complex128, base, step int) {
	for j := 0; j < step; j++ {
		i0 := base + j
		i1 := i0 + step
		a := src[i0]
		b := src[i1]
		dst[i0] = m[0][0]*a + m[0][1]*b
		dst[i1] = m[1][0]*a + m[1][1]*b
	}
}

// ApplyGate applies a single-qubit gate to the target qubit. The theta
// argument is consumed only by the parameterized kinds (RX, RY, RZ).
//
// Fails with gates.ErrUnknownGate for kinds without a 2×2 matrix and with
// ErrQubitOutOfRange for an invalid target; the register is untouched on
// failure — the sweep writes a fresh buffer committed only at the end.
func (s *StateVector) ApplyGate(kind gates.Kind, target int, theta float64) error {
	if target < 0 || target >= s.qubits {
		return ErrQubitOutOfRange
	}
	m, err := gates.Matrix(kind, theta)
	if err != nil {
		return err
	}

	step := 1 << target
	block := 2 * step
	chunks := s.dim / block
	dst := make([]complex128, s.dim)
	src := s.amps

	s.chunkExecutor().Map(chunks, func(chunk int) {
		applyPairBlock(dst, src, m, chunk*block, step)
	})

	s.amps = dst

	return nil
}

// cnotBlock permutes one contiguous index range [lo, hi): where the control
// bit is set the amplitude comes from the target-flipped index, elsewhere it
// is copied through.
func cnotBlock(dst, src []complex128, controlMask, targetMask, lo, hi int) {
	for i := lo; i < hi; i++ {
		if i&controlMask != 0 {
			dst[i] = src[i^targetMask]
		} else {
			dst[i] = src[i]
		}
	}
}

// ApplyCNOT applies a controlled-NOT: for every basis index with the control
// bit set, the target bit is flipped. Indices with a clear control bit are
// unchanged.
//
// Fails with ErrQubitOutOfRange / ErrSameQubit before any mutation.
func (s *StateVector) ApplyCNOT(control, target int) error {
	if control < 0 || control >= s.qubits || target < 0 || target >= s.qubits {
		return ErrQubitOutOfRange
	}
	if control == target {
		return ErrSameQubit
	}

	controlMask := 1 << control
	targetMask := 1 << target
	dst := make([]complex128, s.dim)
	src := s.amps

	block := cnotChunk
	if block > s.dim {
		block = s.dim
	}
	chunks := (s.dim + block - 1) / block

	s.chunkExecutor().Map(chunks, func(chunk int) {
		lo := chunk * block
		hi := lo + block
		if hi > s.dim {
			hi = s.dim
		}
		cnotBlock(dst, src, controlMask, targetMask, lo, hi)
	})

	s.amps = dst

	return nil
}

// ApplyControlledRY applies RY(θ) to the target qubit on the subspace where
// the control qubit is 1: every pair of indices differing only in the target
// bit, whose lower index has the control bit set, is rotated; other pairs
// pass through. The sweep is sequential at every size.
//
// Fails with ErrQubitOutOfRange / ErrSameQubit before any mutation.
func (s *StateVector) ApplyControlledRY(control, target int, theta float64) error {
	if control < 0 || control >= s.qubits || target < 0 || target >= s.qubits {
		return ErrQubitOutOfRange
	}
	if control == target {
		return ErrSameQubit
	}

	// RY is always a known kind; the error path is unreachable here.
	m, err := gates.Matrix(gates.RY, theta)
	if err != nil {
		return err
	}

	controlMask := 1 << control
	targetMask := 1 << target
	dst := make([]complex128, s.dim)
	copy(dst, s.amps)

	for i := 0; i < s.dim; i++ {
		if i&controlMask != 0 && i&targetMask == 0 {
			i1 := i | targetMask
			a := s.amps[i]
			b := s.amps[i1]
			dst[i] = m[0][0]*a + m[0][1]*b
			dst[i1] = m[1][0]*a + m[1][1]*b
		}
	}

	s.amps = dst

	return nil
}
