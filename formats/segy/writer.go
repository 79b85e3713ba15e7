// SPDX-License-Identifier: EPL-2.0

package segy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/sem2segy/trace"
)

// Options controls how a stream is serialized.
type Options struct {
	Format       DataFormat
	ByteOrder    binary.ByteOrder
	TextEncoding TextEncoding
	// Comments are placed on the free cards of the textual header.
	Comments   []string
	LineNumber int32
}

// Option configures the writer.
type Option func(*Options)

// WithFormat selects the sample encoding (FormatIBMFloat or FormatIEEEFloat).
func WithFormat(f DataFormat) Option {
	return func(o *Options) {
		o.Format = f
	}
}

// WithByteOrder selects the byte order of headers and samples.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) {
		if order != nil {
			o.ByteOrder = order
		}
	}
}

// WithTextEncoding selects EBCDIC or ASCII for the textual header.
func WithTextEncoding(enc TextEncoding) Option {
	return func(o *Options) {
		o.TextEncoding = enc
	}
}

// WithComments adds free text lines to the textual header.
func WithComments(lines ...string) Option {
	return func(o *Options) {
		o.Comments = append(o.Comments, lines...)
	}
}

// WithLineNumber sets the line number of the binary header.
func WithLineNumber(n int32) Option {
	return func(o *Options) {
		o.LineNumber = n
	}
}

func defaultOptions() Options {
	return Options{
		Format:       FormatIBMFloat,
		ByteOrder:    binary.BigEndian,
		TextEncoding: TextEBCDIC,
		LineNumber:   1,
	}
}

// the first four cards describe the file, the last two close the header
const (
	firstCommentCard = 4
	lastCommentCard  = cardCount - 2
)

// Write serializes s as a SEG-Y revision 1 file. Every trace is written with
// the sample interval of the stream, which is the interval of its last trace.
// Samples are converted to float32 before encoding.
func Write(w io.Writer, s trace.Stream, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if !o.Format.valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, o.Format)
	}
	if len(s) == 0 {
		return ErrEmptyStream
	}

	interval, err := intervalMicros(s.Delta())
	if err != nil {
		return err
	}

	maxLen := s.MaxLen()
	fixed := int16(1)
	for _, tr := range s {
		if tr.Len() > math.MaxUint16 {
			return fmt.Errorf("%w: station %d has %d", ErrTooManySamples, tr.Station, tr.Len())
		}
		if tr.Len() != maxLen {
			fixed = 0
		}
	}

	bw := bufio.NewWriter(w)

	cards := TextualCards(textualLines(o, len(s), maxLen, interval))
	text, err := encodeTextual(cards, o.TextEncoding)
	if err != nil {
		return err
	}
	if _, err := bw.Write(text); err != nil {
		return fmt.Errorf("%w", err)
	}

	bh := BinaryHeader{
		JobID:             1,
		LineNumber:        o.LineNumber,
		ReelNumber:        1,
		TracesPerEnsemble: int16(min(len(s), math.MaxInt16)),
		SampleInterval:    interval,
		OriginalInterval:  interval,
		SamplesPerTrace:   uint16(maxLen),
		OriginalSamples:   uint16(maxLen),
		Format:            o.Format,
		EnsembleFold:      1,
		SortingCode:       1,
		MeasurementSystem: 1,
		Revision:          Revision1,
		FixedLength:       fixed,
	}

	buf := make([]byte, max(BinaryHeaderSize, TraceHeaderSize+4*maxLen))
	bh.marshal(buf, o.ByteOrder)
	if _, err := bw.Write(buf[:BinaryHeaderSize]); err != nil {
		return fmt.Errorf("%w", err)
	}

	for i, tr := range s {
		th := HeaderFor(i, tr, interval)
		th.marshal(buf, o.ByteOrder)
		encodeSamples(buf[TraceHeaderSize:], tr.Data, o.Format, o.ByteOrder)

		if _, err := bw.Write(buf[:TraceHeaderSize+4*tr.Len()]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile writes s to a new file at path.
func WriteFile(path string, s trace.Stream, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Write(f, s, opts...); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// HeaderFor builds the trace header of the i-th trace (0-based) of a gather.
// The offset is the trace distance truncated toward zero.
func HeaderFor(i int, tr *trace.Trace, interval uint16) TraceHeader {
	number := int32(tr.Station)
	if number == 0 {
		number = int32(i + 1)
	}

	offset := int32(tr.Distance)

	th := TraceHeader{
		SequenceInLine:   int32(i + 1),
		SequenceInFile:   int32(i + 1),
		FieldRecord:      1,
		TraceNumber:      number,
		TraceID:          1,
		Offset:           offset,
		CoordinateScalar: 1,
		GroupX:           offset,
		CoordinateUnits:  1,
		NumSamples:       uint16(tr.Len()),
		SampleInterval:   interval,
	}
	if !tr.StartTime.IsZero() {
		th.SetStartTime(tr.StartTime)
	}

	return th
}

func intervalMicros(delta float64) (uint16, error) {
	us := math.Round(delta * 1e6)
	if us < 1 || us > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %g s", ErrIntervalOutOfRange, delta)
	}
	return uint16(us), nil
}

func encodeSamples(dst []byte, data []float64, f DataFormat, order binary.ByteOrder) {
	for i, v := range data {
		x := float32(v)

		var u uint32
		if f == FormatIBMFloat {
			u = IEEEToIBM(x)
		} else {
			u = math.Float32bits(x)
		}
		order.PutUint32(dst[4*i:], u)
	}
}

func textualLines(o Options, traces, samples int, interval uint16) []string {
	lines := make([]string, cardCount)
	lines[0] = "SEG-Y COMMON SHOT GATHER FROM SIMULATOR ASCII SEISMOGRAMS"
	lines[1] = fmt.Sprintf("TRACES %d  SAMPLES/TRACE %d  SAMPLE INTERVAL %d US", traces, samples, interval)
	lines[2] = fmt.Sprintf("SAMPLE FORMAT %s  BYTE ORDER %s", o.Format, o.ByteOrder)
	lines[3] = "TRACE HEADER BYTES 1-4 CHANNEL  13-16 STATION  37-40 OFFSET (M)"

	for i, c := range o.Comments {
		if firstCommentCard+i >= lastCommentCard {
			break
		}
		lines[firstCommentCard+i] = c
	}

	lines[cardCount-2] = "SEG Y REV1"
	lines[cardCount-1] = "END TEXTUAL HEADER"

	return lines
}
