// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/ik5/sem2segy/internal/tracetest"
	"github.com/ik5/sem2segy/trace"
)

func gather(n int) trace.Stream {
	var s trace.Stream
	for i := range n {
		s.Append(&trace.Trace{
			Station:    i + 1,
			Data:       tracetest.Ricker(200, 400, 8, 0.3+0.05*float64(i)),
			SampleRate: 200,
			Distance:   float64(-1000 + 250*i),
		})
	}
	return s
}

func TestNewSection_Axes(t *testing.T) {
	t.Parallel()

	sec, err := NewSection(gather(9), DefaultOptions())
	if err != nil {
		t.Fatalf("NewSection() error = %v", err)
	}

	p := sec.plot
	if p.X.Min != -1125 || p.X.Max != 1125 {
		t.Errorf("X range = [%v, %v], want [-1125, 1125]", p.X.Min, p.X.Max)
	}
	if p.Y.Min != 0 || p.Y.Max != 2 {
		t.Errorf("Y range = [%v, %v], want [0, 2]", p.Y.Min, p.Y.Max)
	}
	if _, ok := p.Y.Scale.(gplot.InvertedScale); !ok {
		t.Errorf("Y scale = %T, want time growing downward", p.Y.Scale)
	}
}

func TestNewSection_Empty(t *testing.T) {
	t.Parallel()

	if _, err := NewSection(nil, DefaultOptions()); !errors.Is(err, ErrEmptyStream) {
		t.Errorf("NewSection(nil) error = %v, want ErrEmptyStream", err)
	}
}

func TestTraceShapes(t *testing.T) {
	t.Parallel()

	tr := &trace.Trace{
		Data:       []float64{0, 2, -4, 1},
		SampleRate: 10,
		Distance:   500,
	}

	wiggle, fill := traceShapes(tr, 100)

	wantWiggle := plotter.XYs{{X: 500, Y: 0}, {X: 550, Y: 0.1}, {X: 400, Y: 0.2}, {X: 525, Y: 0.30000000000000004}}
	if diff := cmp.Diff(wantWiggle, wiggle); diff != "" {
		t.Errorf("wiggle mismatch (-want +got):\n%s", diff)
	}

	wantFill := plotter.XYs{
		{X: 500, Y: 0},
		{X: 500, Y: 0}, {X: 550, Y: 0.1}, {X: 500, Y: 0.2}, {X: 525, Y: 0.30000000000000004},
		{X: 500, Y: 0.30000000000000004},
	}
	if diff := cmp.Diff(wantFill, fill); diff != "" {
		t.Errorf("fill mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceShapes_Silent(t *testing.T) {
	t.Parallel()

	tr := &trace.Trace{Data: make([]float64, 5), SampleRate: 1, Distance: 42}
	wiggle, _ := traceShapes(tr, 10)

	for i, xy := range wiggle {
		if xy.X != 42 {
			t.Errorf("wiggle[%d].X = %v, want 42", i, xy.X)
		}
	}
}

func TestMedianSpacing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		distances []float64
		want      float64
	}{
		{"regular", []float64{0, 100, 200, 300}, 100},
		{"unsorted", []float64{300, 0, 200, 100}, 100},
		{"one gap wider", []float64{0, 100, 200, 1000}, 100},
		{"even count of gaps", []float64{0, 10, 30, 60, 100}, 25},
		{"single trace", []float64{750}, 1},
		{"coincident", []float64{5, 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s trace.Stream
			for _, d := range tt.distances {
				s.Append(&trace.Trace{Distance: d})
			}
			if got := medianSpacing(s); got != tt.want {
				t.Errorf("medianSpacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSection_Render(t *testing.T) {
	t.Parallel()

	sec, err := NewSection(gather(4), DefaultOptions())
	if err != nil {
		t.Fatalf("NewSection() error = %v", err)
	}

	var buf bytes.Buffer
	n, err := sec.Render(&buf, "PDF")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if n == 0 || !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("Render() wrote %d bytes without a PDF signature", n)
	}
}

func TestSection_Save(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Title = "shot 1"

	sec, err := NewSection(gather(3), opts)
	if err != nil {
		t.Fatalf("NewSection() error = %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "shot.pdf")
	if err := sec.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Save() left no PDF at %s: %v", path, err)
	}

	if err := sec.Save(filepath.Join(dir, "shot")); !errors.Is(err, ErrNoFormat) {
		t.Errorf("Save() without extension error = %v, want ErrNoFormat", err)
	}
}
