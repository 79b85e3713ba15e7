// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"math"
	"time"
)

// Trace is one seismogram recorded at a single receiver.
type Trace struct {
	// Station is the receiver identification number taken from the file name.
	Station int
	// Data holds the amplitude samples.
	Data []float64
	// SampleRate in Hz.
	SampleRate float64
	// StartTime of the first sample.
	StartTime time.Time
	// Distance between source and receiver in metres.
	Distance float64
}

// Len returns the number of samples.
func (t *Trace) Len() int { return len(t.Data) }

// Delta returns the sample interval in seconds.
func (t *Trace) Delta() float64 {
	if t.SampleRate <= 0 {
		return 0
	}
	return 1 / t.SampleRate
}

// Duration is the time covered by the samples.
func (t *Trace) Duration() time.Duration {
	return time.Duration(float64(t.Len()) * t.Delta() * float64(time.Second))
}

// Clone returns a deep copy of t.
func (t *Trace) Clone() *Trace {
	c := *t
	c.Data = append([]float64(nil), t.Data...)
	return &c
}

// MaxAbs returns the largest absolute amplitude in the trace.
func (t *Trace) MaxAbs() float64 {
	var m float64
	for _, v := range t.Data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// withData copies the metadata of t onto a new trace carrying data at rate.
func (t *Trace) withData(data []float64, rate float64) *Trace {
	return &Trace{
		Station:    t.Station,
		Data:       data,
		SampleRate: rate,
		StartTime:  t.StartTime,
		Distance:   t.Distance,
	}
}
