// SPDX-License-Identifier: MIT

// Package statevec: sentinel errors, numeric-policy constants and
// functional configuration for the pure-state engine.
package statevec

import (
	"errors"

	"github.com/quvant/qsim/parexec"
)

// Sentinel errors returned by the state-vector engine. All user-triggered
// failures return one of these; tests match them via errors.Is.
var (
	// ErrQubitCount indicates a register size outside [1, MaxQubits].
	ErrQubitCount = errors.New("statevec: qubit count must be in [1, MaxQubits]")

	// ErrQubitOutOfRange indicates a target or control index ≥ register size.
	ErrQubitOutOfRange = errors.New("statevec: qubit index out of range")

	// ErrSameQubit indicates a controlled operation where control == target.
	ErrSameQubit = errors.New("statevec: control and target must differ")
)

// Numeric policy — single source of truth.
const (
	// MaxQubits caps the register size so that 2^n amplitudes (and the
	// 2^n × 2^n density matrix derived from them) remain allocatable.
	MaxQubits = 30

	// ParallelThreshold is the state dimension above which gate and CNOT
	// sweeps are mapped over the injected executor instead of running
	// sequentially. The split is a pure function of the dimension, so a
	// given register always takes the same path.
	ParallelThreshold = 1024

	// ProbEpsilon is the probability floor below which basis states are
	// ignored by Entropy (0·log 0 treated as 0).
	ProbEpsilon = 1e-9
)

// Options configures a StateVector.
//
// Executor — the data-parallel capability used above ParallelThreshold.
// Defaults to the shared parexec pool; tests inject parexec.Sync for
// fully deterministic scheduling.
type Options struct {
	Executor parexec.Executor
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithExecutor injects the executor used for large-state sweeps.
// A nil executor is a programmer error and panics immediately.
func WithExecutor(exec parexec.Executor) Option {
	if exec == nil {
		panic("statevec: WithExecutor(nil)")
	}

	return func(o *Options) {
		o.Executor = exec
	}
}

// DefaultOptions returns the documented defaults: the process-wide
// parexec pool.
func DefaultOptions() Options {
	return Options{Executor: parexec.Default()}
}
