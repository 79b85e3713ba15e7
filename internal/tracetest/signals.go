// SPDX-License-Identifier: EPL-2.0

package tracetest

import "math"

// Sine returns n samples of a unit sine of frequency f sampled at rate.
func Sine(rate float64, n int, f float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * f * float64(i) / rate)
	}
	return out
}

// Ricker returns n samples of a Ricker wavelet with peak frequency f centred
// at time t0, sampled at rate.
func Ricker(rate float64, n int, f, t0 float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i)/rate - t0
		a := math.Pi * math.Pi * f * f * t * t
		out[i] = (1 - 2*a) * math.Exp(-a)
	}
	return out
}

// Times returns n sample times starting at t0 with spacing dt.
func Times(t0, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + float64(i)*dt
	}
	return out
}
