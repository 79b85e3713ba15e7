// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/sem2segy/trace"
	"github.com/ik5/sem2segy/utils"
)

const (
	bitDepth  = 16
	pcmFormat = 1
)

// WriteTrace writes tr as a mono 16-bit PCM WAV file. The samples are
// normalised to full scale and stamped with playbackRate, so a seismogram
// recorded at 200 Hz and played at 8000 Hz is heard 40 times faster.
func WriteTrace(w io.WriteSeeker, tr *trace.Trace, playbackRate int) error {
	if playbackRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPlaybackRate, playbackRate)
	}

	pcm := utils.NormalizeToPCM16(tr.Data)
	data := make([]int, len(pcm))
	for i, v := range pcm {
		data[i] = int(v)
	}

	enc := wav.NewEncoder(w, playbackRate, bitDepth, 1, pcmFormat)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: playbackRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile writes tr to a new WAV file at path.
func WriteFile(path string, tr *trace.Trace, playbackRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := WriteTrace(f, tr, playbackRate); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
