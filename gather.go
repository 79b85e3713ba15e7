// SPDX-License-Identifier: EPL-2.0

package sem2segy

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/ik5/sem2segy/formats/segy"
	"github.com/ik5/sem2segy/trace"
)

// Gather describes a common shot gather to assemble from simulator
// seismograms: where the files are, which receivers to take, where those
// receivers sit and how the result is written.
type Gather struct {
	// Folder holding the seismograms, including its trailing separator.
	Folder string
	// Prefix of every file name before the station number.
	Prefix string
	// Type is d (displacement), v (velocity), a (acceleration) or p (pressure).
	Type string
	// Component is X, Y or Z. Pressure seismograms have none.
	Component string

	FirstStation int
	LastStation  int

	// Offsets of the first and last station and their spacing, in km.
	// Negative offsets lie on the other side of the source.
	FirstOffset   float64
	LastOffset    float64
	OffsetSpacing float64

	// ResampleRate in Hz and the resampler used to reach it.
	ResampleRate float64
	Method       string

	PlotPDF bool
	OutName string

	Encoding  string // ibm or ieee
	ByteOrder string // big or little

	// AuditionDir receives one sound file per trace when not empty.
	AuditionDir    string
	AuditionFormat string // wav or aiff
	AuditionRate   int
}

// DefaultGather returns a Gather with every optional field set to its
// default. The caller fills the type, component, station and offset ranges
// and the output name.
func DefaultGather() Gather {
	return Gather{
		Folder:         "OUTPUT_FILES/",
		Prefix:         "AA.S",
		FirstStation:   1,
		ResampleRate:   200,
		Method:         "fft",
		Encoding:       "ibm",
		ByteOrder:      "big",
		AuditionFormat: "wav",
		AuditionRate:   8000,
	}
}

// Suffix returns the part of the file name after the station number, such as
// ".BXZ.semv".
func (g Gather) Suffix() string {
	if g.Type == "p" {
		return ".PRE.semp"
	}
	return ".BX" + g.Component + ".sem" + g.Type
}

// Stations returns the station numbers from FirstStation to LastStation
// inclusive.
func (g Gather) Stations() []int {
	if g.LastStation < g.FirstStation {
		return nil
	}

	out := make([]int, 0, g.LastStation-g.FirstStation+1)
	for n := g.FirstStation; n <= g.LastStation; n++ {
		out = append(out, n)
	}
	return out
}

// Offsets returns the station offsets in km, starting at FirstOffset and
// stepping by OffsetSpacing up to and including LastOffset. Like a half-open
// range over [FirstOffset, LastOffset+OffsetSpacing), rounding in the step may
// add one extra value at the end.
func (g Gather) Offsets() []float64 {
	if g.OffsetSpacing == 0 {
		return nil
	}

	stop := g.LastOffset + g.OffsetSpacing
	n := int(math.Ceil((stop - g.FirstOffset) / g.OffsetSpacing))
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = g.FirstOffset + float64(i)*g.OffsetSpacing
	}
	return out
}

// FileName returns the path of the seismogram of a station. Folder is joined
// as is, so it must end with a separator.
func (g Gather) FileName(station int) string {
	return g.Folder + g.Prefix + fmt.Sprintf("%04d", station) + g.Suffix()
}

// OutputBase returns OutName without a .segy or .sgy extension. Every output
// file is named after it.
func (g Gather) OutputBase() string {
	if base, ok := strings.CutSuffix(g.OutName, ".segy"); ok {
		return base
	}
	base, _ := strings.CutSuffix(g.OutName, ".sgy")
	return base
}

// Validate checks the gather before any file is read.
func (g Gather) Validate() error {
	switch g.Type {
	case "d", "v", "a", "p":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, g.Type)
	}

	if g.Type != "p" {
		switch g.Component {
		case "X", "Y", "Z":
		default:
			return fmt.Errorf("%w: %q", ErrUnknownComponent, g.Component)
		}
	}

	if g.LastStation < g.FirstStation {
		return fmt.Errorf("%w: %d < %d", ErrNoStations, g.LastStation, g.FirstStation)
	}
	if g.OffsetSpacing == 0 {
		return ErrZeroSpacing
	}
	if stations, offsets := len(g.Stations()), len(g.Offsets()); offsets < stations {
		return fmt.Errorf("%w: %d offsets for %d stations", ErrTooFewOffsets, offsets, stations)
	}

	if !(g.ResampleRate > 0) || math.IsInf(g.ResampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidResampleRate, g.ResampleRate)
	}
	if _, err := trace.DefaultRegistry().Lookup(g.Method); err != nil {
		return err
	}

	if g.OutputBase() == "" {
		return ErrNoOutputName
	}
	if _, err := g.dataFormat(); err != nil {
		return err
	}
	if _, err := g.byteOrder(); err != nil {
		return err
	}

	if g.AuditionDir != "" {
		switch g.AuditionFormat {
		case "wav", "aiff":
		default:
			return fmt.Errorf("%w: %q", ErrUnknownAudition, g.AuditionFormat)
		}
		if g.AuditionRate <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidAuditionRate, g.AuditionRate)
		}
	}

	return nil
}

func (g Gather) dataFormat() (segy.DataFormat, error) {
	switch strings.ToLower(g.Encoding) {
	case "ibm", "":
		return segy.FormatIBMFloat, nil
	case "ieee":
		return segy.FormatIEEEFloat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, g.Encoding)
	}
}

func (g Gather) byteOrder() (binary.ByteOrder, error) {
	switch strings.ToLower(g.ByteOrder) {
	case "big", "":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownByteOrder, g.ByteOrder)
	}
}

// comments describe the gather on the free cards of the SEG-Y textual header.
func (g Gather) comments() []string {
	return []string{
		fmt.Sprintf("SOURCE FILES %s%s####%s", g.Folder, g.Prefix, g.Suffix()),
		fmt.Sprintf("STATIONS %d TO %d", g.FirstStation, g.LastStation),
		fmt.Sprintf("OFFSETS %g TO %g KM STEP %g KM", g.FirstOffset, g.LastOffset, g.OffsetSpacing),
		fmt.Sprintf("RESAMPLED TO %g HZ (%s)", g.ResampleRate, g.Method),
	}
}
