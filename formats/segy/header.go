// SPDX-License-Identifier: EPL-2.0

package segy

import (
	"encoding/binary"
	"time"
)

const (
	TextualHeaderSize = 3200
	BinaryHeaderSize  = 400
	TraceHeaderSize   = 240
)

// DataFormat is the data sample format code of the binary file header.
type DataFormat int16

const (
	FormatIBMFloat  DataFormat = 1
	FormatIEEEFloat DataFormat = 5
)

func (f DataFormat) String() string {
	switch f {
	case FormatIBMFloat:
		return "4-byte IBM floating-point"
	case FormatIEEEFloat:
		return "4-byte IEEE floating-point"
	default:
		return "unknown"
	}
}

func (f DataFormat) valid() bool {
	return f == FormatIBMFloat || f == FormatIEEEFloat
}

// Revision1 is the SEG-Y revision number written to the binary header.
const Revision1 uint16 = 0x0100

// BinaryHeader holds the fields of the 400-byte binary file header that this
// package reads and writes. Other bytes are zero.
type BinaryHeader struct {
	JobID                int32
	LineNumber           int32
	ReelNumber           int32
	TracesPerEnsemble    int16
	AuxTracesPerEnsemble int16
	SampleInterval       uint16 // microseconds
	OriginalInterval     uint16
	SamplesPerTrace      uint16
	OriginalSamples      uint16
	Format               DataFormat
	EnsembleFold         int16
	SortingCode          int16
	MeasurementSystem    int16 // 1 metres, 2 feet
	Revision             uint16
	FixedLength          int16
	ExtendedTextHeaders  int16
}

func (h *BinaryHeader) marshal(b []byte, order binary.ByteOrder) {
	clear(b[:BinaryHeaderSize])

	order.PutUint32(b[0:], uint32(h.JobID))
	order.PutUint32(b[4:], uint32(h.LineNumber))
	order.PutUint32(b[8:], uint32(h.ReelNumber))
	order.PutUint16(b[12:], uint16(h.TracesPerEnsemble))
	order.PutUint16(b[14:], uint16(h.AuxTracesPerEnsemble))
	order.PutUint16(b[16:], h.SampleInterval)
	order.PutUint16(b[18:], h.OriginalInterval)
	order.PutUint16(b[20:], h.SamplesPerTrace)
	order.PutUint16(b[22:], h.OriginalSamples)
	order.PutUint16(b[24:], uint16(h.Format))
	order.PutUint16(b[26:], uint16(h.EnsembleFold))
	order.PutUint16(b[28:], uint16(h.SortingCode))
	order.PutUint16(b[54:], uint16(h.MeasurementSystem))
	order.PutUint16(b[300:], h.Revision)
	order.PutUint16(b[302:], uint16(h.FixedLength))
	order.PutUint16(b[304:], uint16(h.ExtendedTextHeaders))
}

func (h *BinaryHeader) unmarshal(b []byte, order binary.ByteOrder) {
	h.JobID = int32(order.Uint32(b[0:]))
	h.LineNumber = int32(order.Uint32(b[4:]))
	h.ReelNumber = int32(order.Uint32(b[8:]))
	h.TracesPerEnsemble = int16(order.Uint16(b[12:]))
	h.AuxTracesPerEnsemble = int16(order.Uint16(b[14:]))
	h.SampleInterval = order.Uint16(b[16:])
	h.OriginalInterval = order.Uint16(b[18:])
	h.SamplesPerTrace = order.Uint16(b[20:])
	h.OriginalSamples = order.Uint16(b[22:])
	h.Format = DataFormat(order.Uint16(b[24:]))
	h.EnsembleFold = int16(order.Uint16(b[26:]))
	h.SortingCode = int16(order.Uint16(b[28:]))
	h.MeasurementSystem = int16(order.Uint16(b[54:]))
	h.Revision = order.Uint16(b[300:])
	h.FixedLength = int16(order.Uint16(b[302:]))
	h.ExtendedTextHeaders = int16(order.Uint16(b[304:]))
}

// TraceHeader holds the fields of the 240-byte trace header used by this
// package. Byte positions follow SEG-Y revision 1.
type TraceHeader struct {
	SequenceInLine   int32 // bytes 1-4
	SequenceInFile   int32 // bytes 5-8
	FieldRecord      int32 // bytes 9-12
	TraceNumber      int32 // bytes 13-16
	TraceID          int16 // bytes 29-30, 1 = seismic data
	Offset           int32 // bytes 37-40, source to receiver group distance
	CoordinateScalar int16 // bytes 71-72
	SourceX          int32 // bytes 73-76
	SourceY          int32 // bytes 77-80
	GroupX           int32 // bytes 81-84
	GroupY           int32 // bytes 85-88
	CoordinateUnits  int16 // bytes 89-90, 1 = length
	NumSamples       uint16
	SampleInterval   uint16 // microseconds
	Year             int16
	DayOfYear        int16
	Hour             int16
	Minute           int16
	Second           int16
	TimeBasis        int16 // 4 = UTC
}

// SetStartTime fills the recording time fields from t (second resolution).
func (h *TraceHeader) SetStartTime(t time.Time) {
	t = t.UTC()
	h.Year = int16(t.Year())
	h.DayOfYear = int16(t.YearDay())
	h.Hour = int16(t.Hour())
	h.Minute = int16(t.Minute())
	h.Second = int16(t.Second())
	h.TimeBasis = 4
}

// StartTime returns the recording time stored in the header.
func (h *TraceHeader) StartTime() time.Time {
	if h.Year == 0 {
		return time.Time{}
	}
	t := time.Date(int(h.Year), time.January, 1, int(h.Hour), int(h.Minute), int(h.Second), 0, time.UTC)
	return t.AddDate(0, 0, int(h.DayOfYear)-1)
}

func (h *TraceHeader) marshal(b []byte, order binary.ByteOrder) {
	clear(b[:TraceHeaderSize])

	order.PutUint32(b[0:], uint32(h.SequenceInLine))
	order.PutUint32(b[4:], uint32(h.SequenceInFile))
	order.PutUint32(b[8:], uint32(h.FieldRecord))
	order.PutUint32(b[12:], uint32(h.TraceNumber))
	order.PutUint16(b[28:], uint16(h.TraceID))
	order.PutUint32(b[36:], uint32(h.Offset))
	order.PutUint16(b[70:], uint16(h.CoordinateScalar))
	order.PutUint32(b[72:], uint32(h.SourceX))
	order.PutUint32(b[76:], uint32(h.SourceY))
	order.PutUint32(b[80:], uint32(h.GroupX))
	order.PutUint32(b[84:], uint32(h.GroupY))
	order.PutUint16(b[88:], uint16(h.CoordinateUnits))
	order.PutUint16(b[114:], h.NumSamples)
	order.PutUint16(b[116:], h.SampleInterval)
	order.PutUint16(b[156:], uint16(h.Year))
	order.PutUint16(b[158:], uint16(h.DayOfYear))
	order.PutUint16(b[160:], uint16(h.Hour))
	order.PutUint16(b[162:], uint16(h.Minute))
	order.PutUint16(b[164:], uint16(h.Second))
	order.PutUint16(b[166:], uint16(h.TimeBasis))
}

func (h *TraceHeader) unmarshal(b []byte, order binary.ByteOrder) {
	h.SequenceInLine = int32(order.Uint32(b[0:]))
	h.SequenceInFile = int32(order.Uint32(b[4:]))
	h.FieldRecord = int32(order.Uint32(b[8:]))
	h.TraceNumber = int32(order.Uint32(b[12:]))
	h.TraceID = int16(order.Uint16(b[28:]))
	h.Offset = int32(order.Uint32(b[36:]))
	h.CoordinateScalar = int16(order.Uint16(b[70:]))
	h.SourceX = int32(order.Uint32(b[72:]))
	h.SourceY = int32(order.Uint32(b[76:]))
	h.GroupX = int32(order.Uint32(b[80:]))
	h.GroupY = int32(order.Uint32(b[84:]))
	h.CoordinateUnits = int16(order.Uint16(b[88:]))
	h.NumSamples = order.Uint16(b[114:])
	h.SampleInterval = order.Uint16(b[116:])
	h.Year = int16(order.Uint16(b[156:]))
	h.DayOfYear = int16(order.Uint16(b[158:]))
	h.Hour = int16(order.Uint16(b[160:]))
	h.Minute = int16(order.Uint16(b[162:]))
	h.Second = int16(order.Uint16(b[164:]))
	h.TimeBasis = int16(order.Uint16(b[166:]))
}
