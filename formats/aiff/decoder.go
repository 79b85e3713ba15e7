// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/aiff"

	"github.com/ik5/sem2segy/trace"
)

// Decoder reads a mono 16-bit AIFF file into a trace with samples in [-1, 1].
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*trace.Trace, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.BitDepth != bitDepth {
		return nil, ErrOnlyPCM16bitSupported
	}
	if dec.NumChans != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedAiffLayout, dec.NumChans)
	}

	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float64(v) / 32768.0
	}

	return &trace.Trace{
		Data:       data,
		SampleRate: float64(dec.SampleRate),
		StartTime:  time.Unix(0, 0).UTC(),
	}, nil
}
