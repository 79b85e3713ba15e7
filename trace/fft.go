// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// FFT resamples in the frequency domain. The spectrum of the input is tapered
// with a Hann window centred on DC, linearly interpolated onto the frequency
// grid of the output length and transformed back. Upsampling adds no energy
// above the input Nyquist frequency; downsampling relies on the taper alone
// and does not apply an anti-alias filter first.
type FFT struct{}

func (FFT) Resample(tr *Trace, rate float64) (*Trace, error) {
	if err := checkResample(tr, rate); err != nil {
		return nil, err
	}

	npts := tr.Len()
	num := outputLen(npts, tr.SampleRate, rate)
	if num < 1 {
		return nil, ErrTraceTooShort
	}

	if num == npts && rate == tr.SampleRate {
		return tr.withData(append([]float64(nil), tr.Data...), rate), nil
	}

	spectrum := fft.FFTReal(tr.Data)
	taper := spectralTaper(npts)

	half := npts/2 + 1
	df := tr.SampleRate / float64(npts)

	freqs := make([]float64, half)
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		c := spectrum[k] * complex(taper[k], 0)
		freqs[k] = df * float64(k)
		re[k] = real(c)
		im[k] = imag(c)
	}

	outHalf := num/2 + 1
	dLargeF := rate / float64(num)

	full := make([]complex128, num)
	for k := range outHalf {
		f := dLargeF * float64(k)
		full[k] = complex(interpLinear(f, freqs, re), interpLinear(f, freqs, im))
	}
	for k := 1; k < outHalf; k++ {
		if j := num - k; j > k {
			full[j] = cmplx.Conj(full[k])
		}
	}

	// DC and Nyquist bins have no mirror, so only their real part survives.
	timeDomain := fft.IFFT(full)
	scale := float64(num) / float64(npts)

	out := make([]float64, num)
	for i, c := range timeDomain {
		out[i] = real(c) * scale
	}

	return tr.withData(out, rate), nil
}

// spectralTaper returns a periodic Hann window of length n rotated so that its
// peak sits at index 0 (the DC bin).
func spectralTaper(n int) []float64 {
	if n == 1 {
		return []float64{1}
	}

	w := window.Hann(n + 1)[:n]

	out := make([]float64, n)
	shift := n / 2
	for i := range out {
		out[i] = w[(i+shift)%n]
	}

	return out
}

// interpLinear evaluates the piecewise linear function through (xp, fp) at x.
// xp must be increasing. Values outside the range are clamped to the end points.
func interpLinear(x float64, xp, fp []float64) float64 {
	n := len(xp)
	if n == 0 {
		return 0
	}
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[n-1] {
		return fp[n-1]
	}

	// xp is evenly spaced from 0, so the bracket index is direct.
	step := xp[1] - xp[0]
	i := int((x - xp[0]) / step)
	if i >= n-1 {
		i = n - 2
	}

	t := (x - xp[i]) / (xp[i+1] - xp[i])
	return fp[i] + t*(fp[i+1]-fp[i])
}
