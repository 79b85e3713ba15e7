// SPDX-License-Identifier: EPL-2.0

package sem2segy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/sem2segy/formats/aiff"
	"github.com/ik5/sem2segy/formats/ascii"
	"github.com/ik5/sem2segy/formats/segy"
	"github.com/ik5/sem2segy/formats/wav"
	"github.com/ik5/sem2segy/internal/ctxlog"
	"github.com/ik5/sem2segy/plot"
	"github.com/ik5/sem2segy/trace"
)

// BuildStream reads the seismogram of every station of g, places it at its
// offset and resamples it to g.ResampleRate. Traces keep the station order.
func BuildStream(ctx context.Context, g Gather) (trace.Stream, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx)

	resampler, err := trace.DefaultRegistry().Lookup(g.Method)
	if err != nil {
		return nil, err
	}

	offsets := g.Offsets()
	stations := g.Stations()
	stream := make(trace.Stream, 0, len(stations))

	for i, station := range stations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := g.FileName(station)
		tr, err := ascii.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("station %d: %w", station, err)
		}
		tr.Station = station
		tr.Distance = offsets[i] * 1000

		logger.Debug("Seismogram read.",
			"station", station, "file", name, "samples", tr.Len(), "rate", tr.SampleRate)

		out, err := resampler.Resample(tr, g.ResampleRate)
		if err != nil {
			return nil, fmt.Errorf("station %d: %w", station, err)
		}

		logger.Debug("Trace resampled.",
			"station", station, "method", g.Method, "samples", out.Len(), "offset_m", out.Distance)

		stream.Append(out)
	}

	return stream, nil
}

// Convert builds the gather described by g and writes <base>.segy, plus
// <base>.pdf when PlotPDF is set and one sound file per trace when
// AuditionDir is set. It returns the paths written.
func Convert(ctx context.Context, g Gather) ([]string, error) {
	stream, err := BuildStream(ctx, g)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx)
	base := g.OutputBase()
	var written []string

	format, _ := g.dataFormat()
	order, _ := g.byteOrder()

	path := base + ".segy"
	err = segy.WriteFile(path, stream,
		segy.WithFormat(format),
		segy.WithByteOrder(order),
		segy.WithComments(g.comments()...),
	)
	if err != nil {
		return written, fmt.Errorf("%s: %w", path, err)
	}
	written = append(written, path)
	logger.Info("file saved", "path", path, "traces", stream.Len(), "interval", stream.Delta())

	if g.PlotPDF {
		opts := plot.DefaultOptions()
		opts.Title = filepath.Base(base)

		sec, err := plot.NewSection(stream, opts)
		if err != nil {
			return written, err
		}

		path := base + ".pdf"
		if err := sec.Save(path); err != nil {
			return written, fmt.Errorf("%s: %w", path, err)
		}
		written = append(written, path)
		logger.Info("file saved", "path", path)
	}

	if g.AuditionDir != "" {
		paths, err := writeAudition(ctx, g, stream)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

func writeAudition(ctx context.Context, g Gather, stream trace.Stream) ([]string, error) {
	if err := os.MkdirAll(g.AuditionDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	write := wav.WriteFile
	if g.AuditionFormat == "aiff" {
		write = aiff.WriteFile
	}

	logger := ctxlog.FromContext(ctx)
	prefix := filepath.Base(g.OutputBase())
	var written []string

	for _, tr := range stream {
		name := fmt.Sprintf("%s_S%04d.%s", prefix, tr.Station, g.AuditionFormat)
		path := filepath.Join(g.AuditionDir, name)

		if err := write(path, tr, g.AuditionRate); err != nil {
			return written, fmt.Errorf("%s: %w", path, err)
		}
		written = append(written, path)
		logger.Info("file saved", "path", path)
	}

	return written, nil
}
