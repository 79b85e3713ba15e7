// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"fmt"
	"io"

	"github.com/ik5/sem2segy/utils"
)

// CubicResampler streams from src to a target sampling rate using cubic
// interpolation. A one-pole low-pass is applied to the input when downsampling.
type CubicResampler struct {
	src     Source
	srcRate float64
	dstRate float64
	ratio   float64 // source samples per output sample

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4]float64
	hasFrame [4]bool

	// Position between frames[1] and frames[2], in source samples.
	pos float64

	primed bool
	eof    bool
	one    [1]float64

	useFilter   bool
	filterAlpha float64
	filterState float64
}

func NewCubicResampler(src Source, dstRate float64) *CubicResampler {
	ratio := src.SampleRate() / dstRate

	r := &CubicResampler{
		src:     src,
		srcRate: src.SampleRate(),
		dstRate: dstRate,
		ratio:   ratio,
	}

	if ratio > 1.0 {
		r.useFilter = true
		r.filterAlpha = 0.5
	}

	return r
}

func (r *CubicResampler) SampleRate() float64 { return r.dstRate }

func (r *CubicResampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readRaw pulls one unfiltered sample from the source.
func (r *CubicResampler) readRaw() (float64, bool, error) {
	if r.eof {
		return 0, false, nil
	}

	n, err := r.src.ReadSamples(r.one[:])
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return 0, false, fmt.Errorf("%w", err)
	}

	if n == 0 {
		r.eof = true
		return 0, false, nil
	}

	return r.one[0], true, nil
}

func (r *CubicResampler) readFiltered() (float64, bool, error) {
	v, ok, err := r.readRaw()
	if !ok || err != nil {
		return 0, ok, err
	}

	if r.useFilter {
		// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
		v = r.filterAlpha*v + (1-r.filterAlpha)*r.filterState
		r.filterState = v
	}

	return v, true, nil
}

func (r *CubicResampler) prime() error {
	r.primed = true

	first, ok, err := r.readRaw()
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	// Seed the filter with the first sample to avoid a warm-up transient.
	r.filterState = first
	r.frames[0], r.frames[1] = first, first
	r.hasFrame[1] = true

	for i := 2; i < 4; i++ {
		v, ok, err := r.readFiltered()
		if err != nil {
			return err
		}
		r.frames[i], r.hasFrame[i] = v, ok
	}

	return nil
}

// shift advances the frame window by one source sample.
func (r *CubicResampler) shift() error {
	r.frames[0], r.frames[1], r.frames[2] = r.frames[1], r.frames[2], r.frames[3]
	r.hasFrame[0], r.hasFrame[1], r.hasFrame[2] = r.hasFrame[1], r.hasFrame[2], r.hasFrame[3]

	v, ok, err := r.readFiltered()
	if err != nil {
		return err
	}
	r.frames[3], r.hasFrame[3] = v, ok

	if !r.hasFrame[2] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces samples at the destination rate. The stream ends when
// no source sample is left to the right of the current position.
func (r *CubicResampler) ReadSamples(dst []float64) (int, error) {
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0

	for written < len(dst) {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.shift(); err != nil {
				return written, err
			}
		}

		if !r.hasFrame[2] {
			return written, io.EOF
		}

		y0 := r.frames[0]
		if !r.hasFrame[0] {
			y0 = r.frames[1]
		}

		y3 := r.frames[3]
		if !r.hasFrame[3] {
			y3 = r.frames[2]
		}

		dst[written] = utils.CubicInterpolate(y0, r.frames[1], r.frames[2], y3, r.pos)
		written++
		r.pos += r.ratio
	}

	return written, nil
}

// Cubic resamples whole traces through a CubicResampler.
type Cubic struct{}

func (Cubic) Resample(tr *Trace, rate float64) (*Trace, error) {
	if err := checkResample(tr, rate); err != nil {
		return nil, err
	}

	num := outputLen(tr.Len(), tr.SampleRate, rate)
	if num < 1 {
		return nil, ErrTraceTooShort
	}

	rs := NewCubicResampler(NewSource(tr), rate)
	defer rs.Close()

	out := make([]float64, 0, num)
	buf := make([]float64, 1024)

	for {
		n, err := rs.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cubic resample: %w", err)
		}
	}

	return tr.withData(fitLength(out, num), rate), nil
}

// fitLength trims data to n samples or pads it by holding the last value.
func fitLength(data []float64, n int) []float64 {
	if len(data) >= n {
		return data[:n]
	}

	var last float64
	if len(data) > 0 {
		last = data[len(data)-1]
	}
	for len(data) < n {
		data = append(data, last)
	}

	return data
}
