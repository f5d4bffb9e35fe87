package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/soundwave3d/wavemesh/audio"
)

// go-mp3 always emits 16-bit little-endian PCM with two channels.
const (
	mp3Channels        = 2
	mp3BytesPerSample  = 2
	mp3Int16Normalizer = 32768.0
)

type Decoder struct{}

// Decode reads an entire MP3 stream and returns its samples as a
// channel-major stereo buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 data: %w", err)
	}

	frames := len(raw) / (mp3BytesPerSample * mp3Channels)
	if frames == 0 {
		return nil, ErrNoAudioData
	}

	left := make([]float32, frames)
	right := make([]float32, frames)
	for f := 0; f < frames; f++ {
		base := f * mp3BytesPerSample * mp3Channels
		left[f] = sampleAt(raw, base)
		right[f] = sampleAt(raw, base+mp3BytesPerSample)
	}

	return &audio.Buffer{
		Channels:   [][]float32{left, right},
		SampleRate: dec.SampleRate(),
	}, nil
}

// sampleAt reads the int16 little-endian sample at byte offset i and
// normalizes it to [-1,1].
func sampleAt(raw []byte, i int) float32 {
	low := uint16(raw[i])
	high := uint16(raw[i+1])
	return float32(int16(low|(high<<8))) / mp3Int16Normalizer
}
