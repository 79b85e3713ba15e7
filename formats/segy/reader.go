// SPDX-License-Identifier: EPL-2.0

package segy

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/sem2segy/trace"
)

// Trace is one decoded trace with its samples as stored (float32).
type Trace struct {
	Header TraceHeader
	Data   []float32
}

// File is a decoded SEG-Y file.
type File struct {
	Textual      []string
	TextEncoding TextEncoding
	Binary       BinaryHeader
	ByteOrder    binary.ByteOrder
	Traces       []Trace
}

// Decode reads a complete SEG-Y file. The byte order is detected from the
// data sample format code of the binary header.
func Decode(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)

	raw := make([]byte, TextualHeaderSize)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("%w: textual header: %w", ErrTruncated, err)
	}

	lines, enc, err := decodeTextual(raw)
	if err != nil {
		return nil, err
	}

	bin := make([]byte, BinaryHeaderSize)
	if _, err := io.ReadFull(br, bin); err != nil {
		return nil, fmt.Errorf("%w: binary header: %w", ErrTruncated, err)
	}

	order, err := detectByteOrder(bin)
	if err != nil {
		return nil, err
	}

	f := &File{
		Textual:      lines,
		TextEncoding: enc,
		ByteOrder:    order,
	}
	f.Binary.unmarshal(bin, order)

	if !f.Binary.Format.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, f.Binary.Format)
	}

	if n := f.Binary.ExtendedTextHeaders; n > 0 {
		if _, err := io.CopyN(io.Discard, br, int64(n)*TextualHeaderSize); err != nil {
			return nil, fmt.Errorf("%w: extended textual header: %w", ErrTruncated, err)
		}
	}

	hdr := make([]byte, TraceHeaderSize)
	var samples []byte

	for {
		if _, err := io.ReadFull(br, hdr); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: trace %d header: %w", ErrTruncated, len(f.Traces)+1, err)
		}

		var tr Trace
		tr.Header.unmarshal(hdr, order)

		ns := int(tr.Header.NumSamples)
		if ns == 0 {
			ns = int(f.Binary.SamplesPerTrace)
		}
		if f.Binary.FixedLength == 1 && ns != int(f.Binary.SamplesPerTrace) {
			return nil, fmt.Errorf("%w: trace %d has %d samples, header says %d",
				ErrMismatchedLength, len(f.Traces)+1, ns, f.Binary.SamplesPerTrace)
		}

		if cap(samples) < 4*ns {
			samples = make([]byte, 4*ns)
		}
		samples = samples[:4*ns]
		if _, err := io.ReadFull(br, samples); err != nil {
			return nil, fmt.Errorf("%w: trace %d samples: %w", ErrTruncated, len(f.Traces)+1, err)
		}

		tr.Data = decodeSamples(samples, f.Binary.Format, order)
		f.Traces = append(f.Traces, tr)
	}

	return f, nil
}

// ReadFile decodes the SEG-Y file at path.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Stream converts the decoded traces back to a trace.Stream. The station is
// taken from the trace number within the field record and the distance from
// the offset field.
func (f *File) Stream() trace.Stream {
	s := make(trace.Stream, 0, len(f.Traces))

	for _, tr := range f.Traces {
		interval := tr.Header.SampleInterval
		if interval == 0 {
			interval = f.Binary.SampleInterval
		}

		var rate float64
		if interval > 0 {
			rate = 1e6 / float64(interval)
		}

		data := make([]float64, len(tr.Data))
		for i, v := range tr.Data {
			data[i] = float64(v)
		}

		s.Append(&trace.Trace{
			Station:    int(tr.Header.TraceNumber),
			Data:       data,
			SampleRate: rate,
			StartTime:  tr.Header.StartTime(),
			Distance:   float64(tr.Header.Offset),
		})
	}

	return s
}

func detectByteOrder(bin []byte) (binary.ByteOrder, error) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		if code := order.Uint16(bin[24:]); code >= 1 && code <= 16 {
			return order, nil
		}
	}
	return nil, ErrUnknownByteOrder
}

func decodeSamples(b []byte, f DataFormat, order binary.ByteOrder) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		u := order.Uint32(b[4*i:])
		if f == FormatIBMFloat {
			out[i] = IBMToIEEE(u)
		} else {
			out[i] = math.Float32frombits(u)
		}
	}
	return out
}
