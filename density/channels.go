// SPDX-License-Identifier: MIT

// Package density: simplified decoherence channels. Both scale coherences
// (off-diagonal entries) in place; partitions are whole rows, so no two
// chunks ever touch the same entry.
package density

import "math"

// clampProb confines a channel probability to [0, 1].
func clampProb(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}

// scaleOffDiagonal multiplies every off-diagonal entry by factor, one row
// per chunk.
func (d *DensityMatrix) scaleOffDiagonal(factor complex128) {
	dim := d.dim
	m := d.matrix

	d.rowExecutor().Map(dim, func(row int) {
		base := row * dim
		for col := 0; col < dim; col++ {
			if col != row {
				m[base+col] *= factor
			}
		}
	})
}

// ApplyAmplitudeDamping decays coherences by the energy-loss channel with
// probability p (clamped to [0, 1]): every off-diagonal entry is multiplied
// by √(1−p) once per register qubit, so the decay compounds with n. No
// population transfers toward the ground state — this is a simplification
// of per-qubit Kraus amplitude damping, kept deliberately (see the package
// contract). Under WithSinglePass the factor applies exactly once.
func (d *DensityMatrix) ApplyAmplitudeDamping(p float64) {
	factor := complex(math.Sqrt(1-clampProb(p)), 0)

	passes := d.qubits
	if d.singlePass {
		passes = 1
	}
	for q := 0; q < passes; q++ {
		d.scaleOffDiagonal(factor)
	}
}

// ApplyPhaseDamping dephases the state with probability p (clamped to
// [0, 1]): every off-diagonal entry is multiplied by √(1−p) exactly once.
// Diagonal populations are untouched; p=0 is the identity and p=1 removes
// every coherence.
func (d *DensityMatrix) ApplyPhaseDamping(p float64) {
	d.scaleOffDiagonal(complex(math.Sqrt(1-clampProb(p)), 0))
}
