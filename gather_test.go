// SPDX-License-Identifier: EPL-2.0

package sem2segy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/sem2segy/trace"
)

func validGather() Gather {
	g := DefaultGather()
	g.Type = "v"
	g.Component = "Z"
	g.FirstStation = 1
	g.LastStation = 5
	g.FirstOffset = -1
	g.LastOffset = 1
	g.OffsetSpacing = 0.5
	g.OutName = "shot.segy"
	return g
}

func TestGather_Suffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ, comp string
		want      string
	}{
		{"v", "Z", ".BXZ.semv"},
		{"d", "X", ".BXX.semd"},
		{"a", "Y", ".BXY.sema"},
		{"p", "", ".PRE.semp"},
		{"p", "Z", ".PRE.semp"},
	}

	for _, tt := range tests {
		g := Gather{Type: tt.typ, Component: tt.comp}
		if got := g.Suffix(); got != tt.want {
			t.Errorf("Suffix(%q, %q) = %q, want %q", tt.typ, tt.comp, got, tt.want)
		}
	}
}

func TestGather_FileName(t *testing.T) {
	t.Parallel()

	g := validGather()
	if got, want := g.FileName(12), "OUTPUT_FILES/AA.S0012.BXZ.semv"; got != want {
		t.Errorf("FileName(12) = %q, want %q", got, want)
	}

	g.Folder = "run2/"
	g.Prefix = "XX.R"
	if got, want := g.FileName(123), "run2/XX.R0123.BXZ.semv"; got != want {
		t.Errorf("FileName(123) = %q, want %q", got, want)
	}
}

func TestGather_Stations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		first, last int
		want        []int
	}{
		{"range", 3, 6, []int{3, 4, 5, 6}},
		{"single", 7, 7, []int{7}},
		{"reversed", 5, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := Gather{FirstStation: tt.first, LastStation: tt.last}
			if diff := cmp.Diff(tt.want, g.Stations()); diff != "" {
				t.Errorf("Stations() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGather_Offsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		first, last, step float64
		want              []float64
	}{
		{"symmetric", -1, 1, 0.5, []float64{-1, -0.5, 0, 0.5, 1}},
		{"positive", 0, 2, 0.25, []float64{0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}},
		{"single", 3, 3, 1, []float64{3}},
		{"descending", 1, -1, -1, []float64{1, 0, -1}},
		{"wrong direction", 1, -1, 1, nil},
		{"zero step", 0, 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := Gather{FirstOffset: tt.first, LastOffset: tt.last, OffsetSpacing: tt.step}
			if diff := cmp.Diff(tt.want, g.Offsets()); diff != "" {
				t.Errorf("Offsets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGather_OutputBase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"shot.segy":       "shot",
		"shot.sgy":        "shot",
		"shot":            "shot",
		"out/shot.segy":   "out/shot",
		"shot.segy.segy":  "shot.segy",
		"shot.SEGY":       "shot.SEGY",
		"shot.sgy.backup": "shot.sgy.backup",
	}

	for in, want := range tests {
		g := Gather{OutName: in}
		if got := g.OutputBase(); got != want {
			t.Errorf("OutputBase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGather_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Gather)
		wantErr error
	}{
		{"valid", func(*Gather) {}, nil},
		{"pressure without component", func(g *Gather) { g.Type, g.Component = "p", "" }, nil},
		{"extra offsets are fine", func(g *Gather) { g.LastStation = 3 }, nil},
		{"unknown type", func(g *Gather) { g.Type = "x" }, ErrUnknownType},
		{"unknown component", func(g *Gather) { g.Component = "z" }, ErrUnknownComponent},
		{"reversed stations", func(g *Gather) { g.FirstStation = 6 }, ErrNoStations},
		{"zero spacing", func(g *Gather) { g.OffsetSpacing = 0 }, ErrZeroSpacing},
		{"too few offsets", func(g *Gather) { g.LastStation = 6 }, ErrTooFewOffsets},
		{"zero rate", func(g *Gather) { g.ResampleRate = 0 }, ErrInvalidResampleRate},
		{"negative rate", func(g *Gather) { g.ResampleRate = -200 }, ErrInvalidResampleRate},
		{"unknown method", func(g *Gather) { g.Method = "sinc" }, trace.ErrUnknownMethod},
		{"no output", func(g *Gather) { g.OutName = ".segy" }, ErrNoOutputName},
		{"ieee", func(g *Gather) { g.Encoding = "ieee" }, nil},
		{"unknown encoding", func(g *Gather) { g.Encoding = "int32" }, ErrUnknownEncoding},
		{"little endian", func(g *Gather) { g.ByteOrder = "little" }, nil},
		{"unknown byte order", func(g *Gather) { g.ByteOrder = "middle" }, ErrUnknownByteOrder},
		{"audition aiff", func(g *Gather) { g.AuditionDir, g.AuditionFormat = "snd", "aiff" }, nil},
		{"audition mp3", func(g *Gather) { g.AuditionDir, g.AuditionFormat = "snd", "mp3" }, ErrUnknownAudition},
		{"audition rate", func(g *Gather) { g.AuditionDir, g.AuditionRate = "snd", 0 }, ErrInvalidAuditionRate},
		{"audition format ignored without dir", func(g *Gather) { g.AuditionFormat = "mp3" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := validGather()
			tt.modify(&g)

			err := g.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
