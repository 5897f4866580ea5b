// SPDX-License-Identifier: MIT

// Package statevec: derived diagnostics over the amplitude vector.
package statevec

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ExpectationValue returns 1 − |amplitude₀|²: the population outside the
// ground state, read as a simplified energy. Exactly 0 on a fresh register.
func (s *StateVector) ExpectationValue() float64 {
	a := s.amps[0]

	return 1 - (real(a)*real(a) + imag(a)*imag(a))
}

// Entropy returns the Shannon entropy of the basis-measurement distribution,
// −Σ p·log2 p over probabilities above ProbEpsilon, normalized by the qubit
// count. This is a classical-basis approximation of von Neumann entropy,
// not the mixed-state quantity (see density.Entropy for that engine's proxy).
func (s *StateVector) Entropy() float64 {
	var entropy float64
	for _, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p > ProbEpsilon {
			entropy -= p * math.Log2(p)
		}
	}

	return entropy / float64(s.qubits)
}

// ResonanceSpectrum summarizes the state's frequency content as three values
// in [0, 1]: the amplitude vector is run through an unnormalized forward DFT,
// the magnitude of each frequency component is taken, and the magnitudes are
// split into three contiguous bands (two of ⌊D/3⌋ components, the remainder
// in the third). Each band contributes its mean, scaled by 2 and clamped to
// at most 1. Bands that are empty at small dimensions contribute 0.
//
// This is a visualization statistic, not a physical observable. Its
// density-matrix counterpart (ResonanceBands) deliberately bins diagonal
// probabilities instead of a spectrum.
func (s *StateVector) ResonanceSpectrum() [3]float64 {
	fft := fourier.NewCmplxFFT(s.dim)
	coeffs := fft.Coefficients(nil, s.amps)

	mags := make([]float64, s.dim)
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	band := s.dim / 3

	return [3]float64{
		bandMean(mags[:band]),
		bandMean(mags[band : 2*band]),
		bandMean(mags[2*band:]),
	}
}

// bandMean averages one band, scales by 2 and clamps to 1; an empty band
// yields 0 rather than the 0/0 the naive division would produce.
func bandMean(band []float64) float64 {
	if len(band) == 0 {
		return 0
	}
	var sum float64
	for _, m := range band {
		sum += m
	}
	v := sum / float64(len(band)) * 2

	return math.Min(v, 1)
}
