// SPDX-License-Identifier: EPL-2.0

package trace

import "io"

// Source streams the samples of a single trace.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() float64
	// ReadSamples fills dst and returns the number of samples written.
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float64) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Trace from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Trace, error)
}

type sliceSource struct {
	data []float64
	rate float64
	pos  int
}

// NewSource returns a Source reading the samples of tr from the start.
func NewSource(tr *Trace) Source {
	return &sliceSource{data: tr.Data, rate: tr.SampleRate}
}

func (s *sliceSource) SampleRate() float64 { return s.rate }
func (s *sliceSource) Close() error        { return nil }

func (s *sliceSource) ReadSamples(dst []float64) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(dst, s.data[s.pos:])
	s.pos += n
	if s.pos >= len(s.data) {
		return n, io.EOF
	}
	return n, nil
}
