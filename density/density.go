// SPDX-License-Identifier: MIT

package density

import (
	"math/cmplx"

	"github.com/quvant/qsim/parexec"
	"github.com/quvant/qsim/statevec"
)

// DensityMatrix holds a (possibly mixed) n-qubit state as a flattened
// D×D complex matrix, D = 2^n, with ⟨row|ρ|col⟩ at matrix[row·D + col].
//
// A DensityMatrix is created once per noisy execution, filled from a
// finished pure state, mutated by successive channel calls, and read. It
// is exclusively owned by a single logical caller.
type DensityMatrix struct {
	qubits     int
	dim        int
	matrix     []complex128
	exec       parexec.Executor
	singlePass bool
}

// New allocates the ground-state projector |0…0⟩⟨0…0|: a D×D zero matrix
// with entry (0,0) set to 1.
//
// Returns ErrQubitCount for register sizes outside [1, MaxQubits];
// validation happens before the 4^n allocation.
func New(qubits int, opts ...Option) (*DensityMatrix, error) {
	if qubits < 1 || qubits > MaxQubits {
		return nil, ErrQubitCount
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dim := 1 << qubits
	matrix := make([]complex128, dim*dim)
	matrix[0] = 1

	return &DensityMatrix{
		qubits:     qubits,
		dim:        dim,
		matrix:     matrix,
		exec:       o.Executor,
		singlePass: o.SinglePass,
	}, nil
}

// Qubits returns the register size n.
func (d *DensityMatrix) Qubits() int { return d.qubits }

// Dim returns the matrix dimension D = 2^n.
func (d *DensityMatrix) Dim() int { return d.dim }

// At returns ⟨row|ρ|col⟩, or ErrOutOfRange for indices outside [0, D).
func (d *DensityMatrix) At(row, col int) (complex128, error) {
	if row < 0 || row >= d.dim || col < 0 || col >= d.dim {
		return 0, ErrOutOfRange
	}

	return d.matrix[row*d.dim+col], nil
}

// Trace returns Σ ρ_ii; 1 (within rounding) for any physical state.
func (d *DensityMatrix) Trace() complex128 {
	var tr complex128
	for i := 0; i < d.dim; i++ {
		tr += d.matrix[i*d.dim+i]
	}

	return tr
}

// Diagonal returns a copy of the real parts of the diagonal: the
// basis-measurement probability distribution.
func (d *DensityMatrix) Diagonal() []float64 {
	out := make([]float64, d.dim)
	for i := 0; i < d.dim; i++ {
		out[i] = real(d.matrix[i*d.dim+i])
	}

	return out
}

// FromPureState overwrites ρ with the outer product |ψ⟩⟨ψ|:
// matrix[row,col] = amp[row] · conj(amp[col]). All prior contents are
// replaced. Rows are filled independently, one chunk per row, under the
// usual size split.
//
// Fails with ErrNilState or ErrQubitMismatch before touching the matrix.
func (d *DensityMatrix) FromPureState(state *statevec.StateVector) error {
	if state == nil {
		return ErrNilState
	}
	if state.Qubits() != d.qubits {
		return ErrQubitMismatch
	}

	amps := state.Amplitudes()
	dim := d.dim
	m := d.matrix

	d.rowExecutor().Map(dim, func(row int) {
		a := amps[row]
		base := row * dim
		for col := 0; col < dim; col++ {
			m[base+col] = a * cmplx.Conj(amps[col])
		}
	})

	return nil
}

// rowExecutor mirrors the statevec strategy split: the injected executor
// above the shared threshold, in-order below it.
func (d *DensityMatrix) rowExecutor() parexec.Executor {
	if d.dim > statevec.ParallelThreshold {
		return d.exec
	}

	return parexec.Sync{}
}
