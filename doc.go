// SPDX-License-Identifier: EPL-2.0

// Package sem2segy assembles SEG-Y common shot gathers from the ASCII
// seismograms written by 2-D wave propagation simulators such as SPECFEM2D.
//
// The simulator writes one file per receiver, named after the station number,
// the component and the seismogram type:
//
//	OUTPUT_FILES/AA.S0001.BXZ.semv
//	OUTPUT_FILES/AA.S0002.BXZ.semv
//	...
//
// A Gather names the files to read and the source to receiver offset of each
// station. Convert reads them, resamples every trace to a common rate and
// writes the gather:
//
//	g := sem2segy.DefaultGather()
//	g.Type, g.Component = "v", "Z"
//	g.LastStation = 48
//	g.FirstOffset, g.LastOffset, g.OffsetSpacing = -2.35, 2.35, 0.1
//	g.OutName = "shot1.segy"
//
//	paths, err := sem2segy.Convert(ctx, g)
//
// # Outputs
//
//   - <base>.segy: the gather, IBM floats, big endian by default
//   - <base>.pdf: a wiggle section when PlotPDF is set
//   - <AuditionDir>/<base>_S0001.wav ...: each trace as sound when
//     AuditionDir is set
//
// # Sampling Rate
//
// The rate of an input seismogram is computed as n / (t[n-1] - t[0]) over the
// rows with positive time. This counts one interval too many and reads
// slightly high, which matches the gathers produced by earlier tooling.
//
// # Logging
//
// Progress is logged through the slog.Logger stored in the context by
// internal/ctxlog: one Info record per file saved and Debug records per
// station.
package sem2segy
