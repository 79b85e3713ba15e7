// SPDX-License-Identifier: EPL-2.0

// Package trace provides the seismogram data model and resampling.
//
// A Trace is a single time series recorded at one receiver together with the
// sampling rate, the start time and the source-receiver distance. A Stream is
// an ordered collection of traces, usually one common shot gather.
//
// # Resampling
//
// Two methods are available through the Registry:
//
//	reg := trace.DefaultRegistry()
//	rs, err := reg.Lookup("fft")
//	out, err := rs.Resample(tr, 200)
//
// "fft" works in the frequency domain with a Hann taper on the spectrum and
// yields exactly int(npts * newRate / oldRate) samples. "cubic" streams the
// samples through a Catmull-Rom interpolator (CubicResampler) and is padded or
// trimmed to the same length.
//
// CubicResampler can also be used directly on any Source:
//
//	rs := trace.NewCubicResampler(trace.NewSource(tr), 200)
//	buf := make([]float64, 4096)
//	n, err := rs.ReadSamples(buf)
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package trace
