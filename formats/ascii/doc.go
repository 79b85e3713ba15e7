// SPDX-License-Identifier: EPL-2.0

// Package ascii decodes the ASCII seismograms produced by the wave simulator
// (files such as OUTPUT_FILES/AA.S0001.BXZ.semv).
//
// Each line holds a time in seconds and an amplitude. Lines whose time is not
// strictly positive are dropped, and the sampling rate is derived from the
// remaining times as n / (t[n-1] - t[0]):
//
//	tr, err := ascii.ReadFile("OUTPUT_FILES/AA.S0001.BXZ.semv")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(tr.SampleRate, tr.Len())
//
// The sampling rate formula counts n samples over n-1 intervals, so it reads
// slightly high; it is kept for compatibility with gathers produced by the
// existing tooling.
package ascii
