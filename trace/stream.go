// SPDX-License-Identifier: EPL-2.0

package trace

// Stream is an ordered collection of traces, typically one common shot gather.
type Stream []*Trace

// Append adds traces at the end of the stream.
func (s *Stream) Append(tr ...*Trace) {
	*s = append(*s, tr...)
}

func (s Stream) Len() int { return len(s) }

// Delta returns the sample interval of the last trace, or 0 for an empty stream.
// After resampling every trace shares it.
func (s Stream) Delta() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Delta()
}

// MaxLen returns the sample count of the longest trace.
func (s Stream) MaxLen() int {
	n := 0
	for _, tr := range s {
		n = max(n, tr.Len())
	}
	return n
}

// OffsetRange returns the smallest and largest source-receiver distance.
func (s Stream) OffsetRange() (lo, hi float64) {
	for i, tr := range s {
		if i == 0 || tr.Distance < lo {
			lo = tr.Distance
		}
		if i == 0 || tr.Distance > hi {
			hi = tr.Distance
		}
	}
	return lo, hi
}

// MaxAbs returns the largest absolute amplitude over all traces.
func (s Stream) MaxAbs() float64 {
	var m float64
	for _, tr := range s {
		m = max(m, tr.MaxAbs())
	}
	return m
}
