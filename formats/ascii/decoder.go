// SPDX-License-Identifier: EPL-2.0

package ascii

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/sem2segy/trace"
)

// Decoder reads the two-column ASCII seismograms written by the simulator:
// one "time amplitude" pair per line, separated by any amount of whitespace.
// Columns after the second are ignored.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*trace.Trace, error) {
	var times, values []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 columns, got %d", ErrMalformedRow, line, len(fields))
		}

		t, err := parseFloat(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: time %q", ErrMalformedRow, line, fields[0])
		}

		// Rows at or before the origin time are dropped.
		if !(t > 0) {
			continue
		}

		v, err := parseFloat(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: amplitude %q", ErrMalformedRow, line, fields[1])
		}

		times = append(times, t)
		values = append(values, v)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if len(times) < 2 {
		return nil, ErrTooFewSamples
	}

	return &trace.Trace{
		Data:       values,
		SampleRate: SampleRate(times),
		StartTime:  time.Unix(0, 0).UTC(),
	}, nil
}

// SampleRate derives the sampling rate from the sample times as the number of
// samples per second of time span, n / (t[n-1] - t[0]).
func SampleRate(times []float64) float64 {
	n := len(times)
	if n < 2 {
		return 0
	}
	return 1 / ((times[n-1] - times[0]) / float64(n))
}

// ReadFile decodes the seismogram stored at path.
func ReadFile(path string) (*trace.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	tr, err := Decoder{}.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tr, nil
}

// parseFloat accepts Fortran style exponents ("1.0D-03") as well as Go syntax.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}

	if strings.ContainsAny(s, "dD") {
		return strconv.ParseFloat(strings.NewReplacer("d", "e", "D", "E").Replace(s), 64)
	}

	return 0, err
}
