package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/soundwave3d/wavemesh/audio"
	"github.com/soundwave3d/wavemesh/utils"
)

type Decoder struct{}

// Decode reads an entire Ogg Vorbis stream and returns its samples
// as a channel-major buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(data) == 0 || format.Channels < 1 {
		return nil, ErrNoAudioData
	}

	return &audio.Buffer{
		Channels:   utils.Deinterleave(data, format.Channels),
		SampleRate: format.SampleRate,
	}, nil
}
