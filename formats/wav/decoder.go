// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/wav"

	"github.com/ik5/sem2segy/trace"
)

// Decoder reads a mono 16-bit PCM WAV file back into a trace with samples in
// [-1, 1]. It implements trace.Decoder.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*trace.Trace, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.WavAudioFormat != pcmFormat || dec.BitDepth != bitDepth {
		return nil, ErrOnlyPCM16bitSupported
	}
	if dec.NumChans != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, dec.NumChans)
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
