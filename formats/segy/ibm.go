// SPDX-License-Identifier: EPL-2.0

package segy

import "math"

const ibmMaxMagnitude uint32 = 0x7FFFFFFF

// IEEEToIBM converts a float32 to an IBM System/360 single precision value.
// The mantissa is rounded to nearest. Values beyond the IBM range saturate,
// values below it flush to zero, and NaN maps to zero.
func IEEEToIBM(f float32) uint32 {
	if f == 0 || math.IsNaN(float64(f)) {
		return 0
	}

	sign := math.Float32bits(f) & 0x80000000
	if math.IsInf(float64(f), 0) {
		return sign | ibmMaxMagnitude
	}

	// v = frac * 2^e2 with frac in [0.5, 1)
	frac, e2 := math.Frexp(math.Abs(float64(f)))

	// Move to base 16: v = frac16 * 16^e16 with frac16 in [1/16, 1)
	e16 := e2 / 4
	if e2 > 4*e16 {
		e16++
	}
	frac16 := math.Ldexp(frac, e2-4*e16)

	mant := uint32(math.Round(frac16 * (1 << 24)))
	if mant >= 1<<24 {
		mant >>= 4
		e16++
	}

	biased := e16 + 64
	switch {
	case biased > 127:
		return sign | ibmMaxMagnitude
	case biased < 0:
		shift := uint(-4 * biased)
		if shift >= 24 {
			return 0
		}
		mant >>= shift
		biased = 0
	}

	return sign | uint32(biased)<<24 | mant
}

// IBMToIEEE converts an IBM System/360 single precision value to float32.
// Magnitudes beyond the float32 range become infinities.
func IBMToIEEE(b uint32) float32 {
	mant := b & 0x00FFFFFF
	if mant == 0 {
		return 0
	}

	exp := int((b>>24)&0x7F) - 64
	v := math.Ldexp(float64(mant), 4*exp-24)
	if b&0x80000000 != 0 {
		v = -v
	}

	return float32(v)
}
