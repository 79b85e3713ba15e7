// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"slices"
	"strings"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ik5/sem2segy/trace"
)

// Options controls the appearance of a section.
type Options struct {
	Title string
	// Scale multiplies the trace deflection. 1 makes the largest peak of
	// each trace reach the median trace spacing.
	Scale  float64
	Width  vg.Length
	Height vg.Length
	// Fill paints positive lobes black. Negative lobes are left white.
	Fill bool
}

// DefaultOptions returns A4-landscape-sized options with filled lobes.
func DefaultOptions() Options {
	return Options{
		Scale:  1,
		Width:  29.7 * vg.Centimeter,
		Height: 21 * vg.Centimeter,
		Fill:   true,
	}
}

// Section is a rendered variable area wiggle section.
type Section struct {
	plot *gplot.Plot
	opts Options
}

// NewSection draws every trace of s at its source to receiver distance.
// Time starts at the top of the plot and grows downward.
func NewSection(s trace.Stream, opts Options) (*Section, error) {
	if len(s) == 0 {
		return nil, ErrEmptyStream
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}

	p := gplot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Offset (m)"
	p.Y.Label.Text = "Time (s)"

	spacing := medianSpacing(s)
	lo, hi := s.OffsetRange()

	var end float64

	for _, tr := range s {
		wiggle, fill := traceShapes(tr, spacing*opts.Scale)
		end = max(end, tr.Duration().Seconds())

		if opts.Fill {
			poly, err := plotter.NewPolygon(fill)
			if err != nil {
				return nil, fmt.Errorf("station %d: %w", tr.Station, err)
			}
			poly.Color = color.Black
			poly.LineStyle.Width = 0
			p.Add(poly)
		}

		line, err := plotter.NewLine(wiggle)
		if err != nil {
			return nil, fmt.Errorf("station %d: %w", tr.Station, err)
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	// Add widens the axes to the data, so the ranges are fixed afterwards.
	p.X.Min = lo - spacing/2
	p.X.Max = hi + spacing/2
	p.Y.Min = 0
	p.Y.Max = end
	p.Y.Scale = gplot.InvertedScale{Normalizer: p.Y.Scale}

	return &Section{plot: p, opts: opts}, nil
}

// Save writes the section to path. The format is taken from the extension
// (pdf, svg, png, eps...).
func (sec *Section) Save(path string) error {
	if filepath.Ext(path) == "" {
		return fmt.Errorf("%w: %s", ErrNoFormat, path)
	}
	if err := sec.plot.Save(sec.opts.Width, sec.opts.Height, path); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Render writes the section to w in format.
func (sec *Section) Render(w io.Writer, format string) (int64, error) {
	wt, err := sec.plot.WriterTo(sec.opts.Width, sec.opts.Height, strings.ToLower(format))
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return wt.WriteTo(w)
}

// traceShapes returns the wiggle line of tr and the polygon enclosing its
// positive lobes. Amplitudes are normalised to the trace maximum and scaled
// to width metres.
func traceShapes(tr *trace.Trace, width float64) (wiggle, fill plotter.XYs) {
	gain := 0.0
	if m := tr.MaxAbs(); m > 0 {
		gain = width / m
	}
	dt := tr.Delta()
	x0 := tr.Distance

	wiggle = make(plotter.XYs, tr.Len())
	fill = make(plotter.XYs, 0, tr.Len()+2)
	fill = append(fill, plotter.XY{X: x0, Y: 0})

	for i, v := range tr.Data {
		t := float64(i) * dt
		wiggle[i] = plotter.XY{X: x0 + v*gain, Y: t}
		fill = append(fill, plotter.XY{X: x0 + max(v, 0)*gain, Y: t})
	}

	fill = append(fill, plotter.XY{X: x0, Y: float64(max(tr.Len()-1, 0)) * dt})

	return wiggle, fill
}

// medianSpacing is the median distance between neighbouring traces, or 1 m
// when it cannot be measured.
func medianSpacing(s trace.Stream) float64 {
	d := make([]float64, 0, len(s))
	for _, tr := range s {
		d = append(d, tr.Distance)
	}
	slices.Sort(d)

	gaps := make([]float64, 0, len(d))
	for i := 1; i < len(d); i++ {
		if g := d[i] - d[i-1]; g > 0 {
			gaps = append(gaps, g)
		}
	}
	if len(gaps) == 0 {
		return 1
	}

	slices.Sort(gaps)
	mid := len(gaps) / 2
	if len(gaps)%2 == 0 {
		return (gaps[mid-1] + gaps[mid]) / 2
	}
	return gaps[mid]
}
