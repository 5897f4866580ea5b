// SPDX-License-Identifier: MIT

// Package density: derived diagnostics over the mixed state.
package density

import "math"

// ExpectationValue returns 1 − Re ρ₀₀: the population outside the ground
// state. Exactly 0 on a fresh ground-state projector.
func (d *DensityMatrix) ExpectationValue() float64 {
	return 1 - real(d.matrix[0])
}

// Entropy returns the linear entropy 1 − Tr(ρ²), computed as 1 − Σ|entry|²
// over the whole matrix. It is an efficient proxy for von Neumann entropy,
// not the exact quantity: 0 for pure states, approaching 1 − 1/D for the
// maximally mixed state.
func (d *DensityMatrix) Entropy() float64 {
	var purity float64
	for _, v := range d.matrix {
		purity += real(v)*real(v) + imag(v)*imag(v)
	}

	return 1 - purity
}

// ResonanceBands summarizes the basis-measurement distribution as three
// values in [0, 1]: the D diagonal probabilities are split into three
// contiguous bands (two of ⌊D/3⌋ entries, the remainder in the third) and
// each band contributes its sum, scaled by 2 and clamped to at most 1.
// Bands that are empty at small dimensions contribute 0.
//
// Unlike statevec.ResonanceSpectrum there is no Fourier transform and the
// bands are summed rather than averaged; the asymmetry is intentional and
// part of the public contract.
func (d *DensityMatrix) ResonanceBands() [3]float64 {
	probs := d.Diagonal()
	band := d.dim / 3

	return [3]float64{
		bandSum(probs[:band]),
		bandSum(probs[band : 2*band]),
		bandSum(probs[2*band:]),
	}
}

// bandSum totals one band, scales by 2 and clamps to 1.
func bandSum(band []float64) float64 {
	var sum float64
	for _, p := range band {
		sum += p
	}

	return math.Min(sum*2, 1)
}
