// SPDX-License-Identifier: MIT

// Package density: sentinel errors, numeric-policy constants and
// functional configuration for the mixed-state engine.
package density

import (
	"errors"

	"github.com/quvant/qsim/parexec"
)

// Sentinel errors returned by the density-matrix engine.
var (
	// ErrQubitCount indicates a register size outside [1, MaxQubits].
	ErrQubitCount = errors.New("density: qubit count must be in [1, MaxQubits]")

	// ErrNilState indicates that FromPureState received a nil state.
	ErrNilState = errors.New("density: pure state is nil")

	// ErrQubitMismatch indicates that the pure state's register size does
	// not match the density matrix's register size.
	ErrQubitMismatch = errors.New("density: register size mismatch")

	// ErrOutOfRange indicates a row or column index ≥ the matrix dimension.
	ErrOutOfRange = errors.New("density: index out of range")
)

// MaxQubits caps the register size for the mixed-state engine: the matrix
// holds 4^n entries, so the bound sits well below the pure-state limit.
const MaxQubits = 15

// Options configures a DensityMatrix.
//
// Executor   — data-parallel capability for outer products and channel
// sweeps above statevec.ParallelThreshold.
// SinglePass — apply the amplitude-damping factor exactly once instead of
// once per qubit (the corrected, non-compounding variant).
type Options struct {
	Executor   parexec.Executor
	SinglePass bool
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithExecutor injects the executor used for large-state sweeps.
// A nil executor is a programmer error and panics immediately.
func WithExecutor(exec parexec.Executor) Option {
	if exec == nil {
		panic("density: WithExecutor(nil)")
	}

	return func(o *Options) {
		o.Executor = exec
	}
}

// WithSinglePass switches ApplyAmplitudeDamping to a single application of
// the √(1−p) decay factor. The default compounds the factor once per
// register qubit, faithfully to the engine this design replicates.
func WithSinglePass() Option {
	return func(o *Options) {
		o.SinglePass = true
	}
}

// DefaultOptions returns the documented defaults: the shared parexec pool
// and compounding amplitude damping.
func DefaultOptions() Options {
	return Options{Executor: parexec.Default()}
}
