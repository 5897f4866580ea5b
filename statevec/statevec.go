// SPDX-License-Identifier: MIT

package statevec

import "github.com/quvant/qsim/parexec"

// StateVector holds a pure n-qubit state as 2^n complex amplitudes.
//
// A StateVector is created once per circuit execution, mutated once per
// gate, and read (or converted to a density matrix) afterwards. It is
// exclusively owned by a single logical caller; concurrent mutation is
// not supported.
type StateVector struct {
	qubits int
	dim    int
	amps   []complex128
	exec   parexec.Executor
}

// New allocates a register of the given qubit count initialized to the
// all-zero basis state |0…0⟩: amplitude 0 is 1, all others 0.
//
// Returns ErrQubitCount for counts outside [1, MaxQubits]; validation
// happens before any allocation.
func New(qubits int, opts ...Option) (*StateVector, error) {
	if qubits < 1 || qubits > MaxQubits {
		return nil, ErrQubitCount
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dim := 1 << qubits
	amps := make([]complex128, dim)
	amps[0] = 1

	return &StateVector{
		qubits: qubits,
		dim:    dim,
		amps:   amps,
		exec:   o.Executor,
	}, nil
}

// Qubits returns the register size n.
func (s *StateVector) Qubits() int { return s.qubits }

// Dim returns the state dimension 2^n.
func (s *StateVector) Dim() int { return s.dim }

// Amplitudes returns a copy of the amplitude vector. Index i is the n-bit
// basis label with bit k holding the value of qubit k.
func (s *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, s.dim)
	copy(out, s.amps)

	return out
}

// AmplitudePairs returns the amplitudes as (real, imaginary) float pairs,
// the representation host bindings consume.
func (s *StateVector) AmplitudePairs() [][2]float64 {
	out := make([][2]float64, s.dim)
	for i, a := range s.amps {
		out[i] = [2]float64{real(a), imag(a)}
	}

	return out
}

// Probabilities returns the basis-measurement distribution |amp_i|².
func (s *StateVector) Probabilities() []float64 {
	out := make([]float64, s.dim)
	for i, a := range s.amps {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return out
}

// Norm returns Σ|amp_i|². Every supported gate matrix is unitary, so the
// norm stays 1 across replay without an explicit renormalization step;
// the accessor exists so callers and tests can assert exactly that.
func (s *StateVector) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	return sum
}
