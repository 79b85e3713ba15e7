// SPDX-License-Identifier: EPL-2.0

package tracetest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates seismogram samples.
// It implements the trace.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   float64
	totalSamples int
	generated    int
	waveform     func(sample int) float64
}

// NewMockSource creates a new mock source producing totalSamples values.
// waveform generates the sample value for a given sample index.
func NewMockSource(sampleRate float64, totalSamples int, waveform func(sample int) float64) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate float64, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float64 {
		t := float64(sample) / sampleRate
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate float64, totalSamples int, value float64) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(int) float64 {
		return value
	})
}

func (m *MockSource) SampleRate() float64 { return m.sampleRate }
func (m *MockSource) Close() error        { return nil }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	n := min(len(dst), m.totalSamples-m.generated)
	for i := range n {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}

	return n, nil
}
