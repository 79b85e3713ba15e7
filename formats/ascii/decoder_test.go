// SPDX-License-Identifier: EPL-2.0

package ascii

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/sem2segy/internal/tracetest"
)

func TestDecoder_ValidFile(t *testing.T) {
	t.Parallel()

	input := `  -0.0500000E+00   0.0000000E+00
   0.0000000E+00   1.0000000E-09
   1.0000000E-03   2.5000000E-08
   2.0000000E-03  -3.0000000E-08
   3.0000000E-03   4.0000000E-08
`

	tr, err := Decoder{}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []float64{2.5e-8, -3e-8, 4e-8}
	if tr.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", tr.Len(), len(want))
	}
	for i := range want {
		if tr.Data[i] != want[i] {
			t.Errorf("Data[%d] = %v, want %v", i, tr.Data[i], want[i])
		}
	}

	// 3 samples over 2 ms
	if math.Abs(tr.SampleRate-1500) > 1e-6 {
		t.Errorf("SampleRate = %v, want 1500", tr.SampleRate)
	}

	if tr.StartTime.Unix() != 0 {
		t.Errorf("StartTime = %v, want Unix epoch", tr.StartTime)
	}
}

func TestDecoder_ExtraColumnsAndBlankLines(t *testing.T) {
	t.Parallel()

	input := "0.001 1.0 ignored\n\n   \n0.002\t2.0  x y\n0.003 3.0\n"

	tr, err := Decoder{}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
}

func TestDecoder_FortranExponent(t *testing.T) {
	t.Parallel()

	input := "1.0D-03 5.0D+00\n2.0d-03 -5.0d+00\n"

	tr, err := Decoder{}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if tr.Data[0] != 5 || tr.Data[1] != -5 {
		t.Errorf("Data = %v, want [5 -5]", tr.Data)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"single column", "0.1\n0.2 1\n", ErrMalformedRow},
		{"bad time", "abc 1\n0.2 1\n", ErrMalformedRow},
		{"bad amplitude", "0.1 1\n0.2 one\n", ErrMalformedRow},
		{"empty", "", ErrTooFewSamples},
		{"only negative times", "-0.2 1\n-0.1 2\n0 3\n", ErrTooFewSamples},
		{"single positive row", "-0.1 1\n0.1 2\n", ErrTooFewSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_BadAmplitudeBeforeOriginIgnored(t *testing.T) {
	t.Parallel()

	// Rows dropped by the time filter never have their amplitude parsed.
	input := "-0.1 NaNish\n0.1 1\n0.2 2\n"

	if _, err := (Decoder{}).Decode(strings.NewReader(input)); err != nil {
		t.Errorf("Decode() error = %v, want nil", err)
	}
}

func TestSampleRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		times []float64
		want  float64
	}{
		{"empty", nil, 0},
		{"one sample", []float64{1}, 0},
		{"two samples", []float64{0.1, 0.2}, 20},
		{"thousand samples at 1 ms", tracetest.Times(0.001, 0.001, 1000), 1000.0 / 0.999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SampleRate(tt.times)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("SampleRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "AA.S0001.BXZ.semv")

	times := tracetest.Times(-0.01025, 0.0005, 2020)
	values := tracetest.Ricker(2000, 2020, 10, 0.2)
	if err := tracetest.WriteSeismogramFile(path, times, values); err != nil {
		t.Fatalf("WriteSeismogramFile() error = %v", err)
	}

	tr, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// The first 21 rows have t <= 0.
	if tr.Len() != 1999 {
		t.Errorf("Len() = %d, want 1999", tr.Len())
	}
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want os.ErrNotExist", err)
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	buf := new(bytes.Buffer)
	n := 10000
	if err := tracetest.WriteSeismogram(buf, tracetest.Times(0.0005, 0.0005, n), tracetest.Sine(2000, n, 5)); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
