// SPDX-License-Identifier: EPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	sem2segy "github.com/ik5/sem2segy"
)

const fullJob = `
data_folder = "run1/OUTPUT_FILES/"
prefix      = "XX.R"

seismogram {
  type      = lower("V")
  component = "Z"
}

stations {
  first = 2
  last  = 48
}

offsets {
  first   = -2.35
  last    = 2.35
  spacing = 0.1
}

resample {
  rate   = 250
  method = "cubic"
}

output {
  name       = "${env.SHOT}.segy"
  plot_pdf   = true
  encoding   = "ieee"
  byte_order = "little"
}

audition {
  dir    = format("%s/audition", env.SHOT)
  format = "aiff"
  rate   = 11025
}
`

func TestParse_Full(t *testing.T) {
	t.Parallel()

	f, err := Parse(context.Background(), []byte(fullJob), "job.hcl", []string{"SHOT=shot7", "HOME=/root"})
	require.NoError(t, err)

	g := sem2segy.DefaultGather()
	f.Apply(&g)

	want := sem2segy.Gather{
		Folder:         "run1/OUTPUT_FILES/",
		Prefix:         "XX.R",
		Type:           "v",
		Component:      "Z",
		FirstStation:   2,
		LastStation:    48,
		FirstOffset:    -2.35,
		LastOffset:     2.35,
		OffsetSpacing:  0.1,
		ResampleRate:   250,
		Method:         "cubic",
		PlotPDF:        true,
		OutName:        "shot7.segy",
		Encoding:       "ieee",
		ByteOrder:      "little",
		AuditionDir:    "shot7/audition",
		AuditionFormat: "aiff",
		AuditionRate:   11025,
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("applied gather mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	src := `
stations {
  last = 12
}
output {
  name = "line.sgy"
}
`
	f, err := Parse(context.Background(), []byte(src), "job.hcl", nil)
	require.NoError(t, err)
	require.Nil(t, f.Offsets)
	require.Nil(t, f.Audition)

	g := sem2segy.DefaultGather()
	f.Apply(&g)

	want := sem2segy.DefaultGather()
	want.LastStation = 12
	want.OutName = "line.sgy"

	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("applied gather mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"syntax", "stations {\n  last = \n", "failed to parse"},
		{"unknown attribute", `colour = "red"`, "Unsupported argument"},
		{"wrong type", "stations {\n  last = \"many\"\n}\n", "failed to decode"},
		{"fractional station", "stations {\n  last = 1.5\n}\n", "failed to decode"},
		{"missing variable", `prefix = env.NOPE`, "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(context.Background(), []byte(tt.src), "job.hcl", nil)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "job.hcl")
	require.NoError(t, os.WriteFile(path, []byte("prefix = \"AB.C\"\n"), 0o600))

	f, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	require.NotNil(t, f.Prefix)
	require.Equal(t, "AB.C", *f.Prefix)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "none.hcl"), nil)
	require.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestEvalContext_Env(t *testing.T) {
	t.Parallel()

	ctx := evalContext([]string{"A=1", "B_2=two=2", "=C:=C:\\", "9X=bad", "NOEQUALS"})
	env := ctx.Variables["env"].AsValueMap()

	require.Len(t, env, 2)
	require.Equal(t, "1", env["A"].AsString())
	require.Equal(t, "two=2", env["B_2"].AsString())
}
