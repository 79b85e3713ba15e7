// SPDX-License-Identifier: EPL-2.0

// Package aiff writes seismic traces as AIFF files for listening.
//
// It mirrors package wav for tools that prefer Apple's format: each file is
// mono 16-bit big-endian PCM normalised to full scale and played back at a
// chosen rate.
//
//	f, _ := os.Create("S0001.aiff")
//	err := aiff.WriteTrace(f, tr, 8000)
//
// Decoder reads such a file back into a trace. This package uses
// github.com/go-audio/aiff.
package aiff
