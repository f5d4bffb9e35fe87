// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Buffer holds a fully decoded audio clip as channel-major float32
// samples plus the sample rate of the recording.
//
// Channels[c][i] is sample i of channel c. All channels carry the same
// number of samples. A Buffer is immutable by convention: decoders hand
// it off and consumers never write to it.
type Buffer struct {
	Channels   [][]float32
	SampleRate int
}

// NumChannels reports the channel count (1=mono, 2=stereo).
func (b *Buffer) NumChannels() int { return len(b.Channels) }

// Len reports the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration reports the clip length derived from Len and SampleRate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Len()) / float64(b.SampleRate) * float64(time.Second))
}

// Validate checks that the buffer has a positive sample rate and that
// every channel carries the same number of samples.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	n := b.Len()
	for _, ch := range b.Channels {
		if len(ch) != n {
			return ErrRaggedChannels
		}
	}
	return nil
}

// Decoder constructs a Buffer from a reader holding one encoded audio
// file. Decoding reads the whole stream; there is no partial result on
// error.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Registry maps format keys (e.g. "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Lookup is like Get but reports a missing decoder as ErrNoDecoder,
// for callers that treat an unavailable codec as a hard failure.
func (r *Registry) Lookup(format string) (Decoder, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, ErrNoDecoder
	}
	return d, nil
}

// FormatFromPath derives the registry key from a file path's
// extension: "/tmp/clip.WAV" -> "wav".
func FormatFromPath(path string) string {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:] // drop dot
	}
	return strings.ToLower(ext)
}
