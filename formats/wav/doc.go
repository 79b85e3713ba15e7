// SPDX-License-Identifier: EPL-2.0

// Package wav writes seismic traces as WAV files for listening.
//
// Seismograms sit far below the audible range. Writing the samples unchanged
// with a higher playback rate shifts them up: a 200 Hz trace played at
// 8000 Hz sounds 40 times faster and higher.
//
//	f, _ := os.Create("S0001.wav")
//	err := wav.WriteTrace(f, tr, 8000)
//
// Each file is mono 16-bit PCM, normalised so that the largest sample reaches
// full scale. Decoder reads such a file back into a trace.
//
// Encoding and decoding rely on github.com/go-audio/wav.
package wav
