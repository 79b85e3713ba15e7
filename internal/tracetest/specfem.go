// SPDX-License-Identifier: EPL-2.0

package tracetest

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteSeismogram writes times and values in the two-column layout of the
// simulator's ASCII seismograms (right aligned, space separated).
func WriteSeismogram(w io.Writer, times, values []float64) error {
	bw := bufio.NewWriter(w)
	for i := range times {
		if _, err := fmt.Fprintf(bw, "  %14.7E  %14.7E\n", times[i], values[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSeismogramFile is WriteSeismogram into a new file at path.
func WriteSeismogramFile(path string, times, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteSeismogram(f, times, values); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
