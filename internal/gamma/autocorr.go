package gamma

import (
	"math/cmplx"

	"gonum.org/v1/gonum/fourier"
)

// DirectGamma computes the unbiased autocorrelation function of an expanded
// (dense, possibly zero-padded-at-gaps) series by direct O(N^2) summation.
func DirectGamma(d []float64) []float64 {
	l := len(d)
	out := make([]float64, l)
	for t := 0; t < l; t++ {
		var sum float64
		for i := 0; i < l-t; i++ {
			sum += d[i] * d[i+t]
		}
		out[t] = sum / float64(l-t)
	}
	return out
}

// FFTGamma computes the same autocorrelation function via the Wiener-Khinchin
// theorem: zero-pad to the next power of two at least 2*len(d), take the
// real FFT, multiply by its own conjugate (the power spectrum), inverse
// transform and keep the real part of the first len(d) lags. Grounded on
// the cross-correlate-via-FFT idiom in gonum.org/v1/gonum/fourier
// (NewFFT/Coefficients/Sequence).
func FFTGamma(d []float64) []float64 {
	l := len(d)
	if l == 0 {
		return nil
	}

	padded := nextPowerOfTwo(2 * l)
	x := make([]float64, padded)
	copy(x, d)

	fft := fourier.NewFFT(padded)
	coeffs := fft.Coefficients(nil, x)

	power := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		power[i] = c * cmplx.Conj(c)
	}

	corr := fft.Sequence(nil, power)

	out := make([]float64, l)
	for t := 0; t < l; t++ {
		out[t] = corr[t] / float64(padded) / float64(l-t)
	}
	return out
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
