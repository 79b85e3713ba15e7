// SPDX-License-Identifier: EPL-2.0

// Package plot renders a gather as a variable area wiggle section for a quick
// visual check of the converted data.
//
// Traces are placed at their source to receiver distance and normalised to
// their own peak, so the largest deflection of every trace equals the median
// trace spacing. Positive lobes are filled black:
//
//	sec, err := plot.NewSection(stream, plot.DefaultOptions())
//	if err != nil {
//	    // Handle error
//	}
//	err = sec.Save("shot.pdf")
package plot
