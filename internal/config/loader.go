// SPDX-License-Identifier: EPL-2.0

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	sem2segy "github.com/ik5/sem2segy"
	"github.com/ik5/sem2segy/internal/ctxlog"
)

// Load parses and decodes the job file at path. Expressions are evaluated
// against env, a list of KEY=value pairs as returned by os.Environ.
func Load(ctx context.Context, path string, env []string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding job file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return Parse(ctx, src, path, env)
}

// Parse decodes job file source. filename is used in diagnostics only.
func Parse(ctx context.Context, src []byte, filename string, env []string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse job file %s: %w", filename, diags)
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode job file %s: %w", filename, diags)
	}

	ctxlog.FromContext(ctx).Debug("Successfully decoded job file.", "path", filename)
	return &cfg, nil
}

func evalContext(env []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for _, kv := range env {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" || !validIdentifier(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	envVal := cty.EmptyObjectVal
	if len(vars) > 0 {
		envVal = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"format": stdlib.FormatFunc,
		},
	}
}

// validIdentifier reports whether name can be used as env.<name>.
func validIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return true
}

// Apply copies every value set in f onto g.
func (f *File) Apply(g *sem2segy.Gather) {
	set(&g.Folder, f.DataFolder)
	set(&g.Prefix, f.Prefix)

	if s := f.Seismogram; s != nil {
		set(&g.Type, s.Type)
		set(&g.Component, s.Component)
	}
	if s := f.Stations; s != nil {
		set(&g.FirstStation, s.First)
		set(&g.LastStation, s.Last)
	}
	if o := f.Offsets; o != nil {
		set(&g.FirstOffset, o.First)
		set(&g.LastOffset, o.Last)
		set(&g.OffsetSpacing, o.Spacing)
	}
	if r := f.Resample; r != nil {
		set(&g.ResampleRate, r.Rate)
		set(&g.Method, r.Method)
	}
	if o := f.Output; o != nil {
		set(&g.OutName, o.Name)
		set(&g.PlotPDF, o.PlotPDF)
		set(&g.Encoding, o.Encoding)
		set(&g.ByteOrder, o.ByteOrder)
	}
	if a := f.Audition; a != nil {
		set(&g.AuditionDir, a.Dir)
		set(&g.AuditionFormat, a.Format)
		set(&g.AuditionRate, a.Rate)
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
