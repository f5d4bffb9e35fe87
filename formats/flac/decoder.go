package flac

import (
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"

	"github.com/soundwave3d/wavemesh/audio"
	"github.com/soundwave3d/wavemesh/utils"
)

type Decoder struct{}

// Decode reads an entire FLAC stream and returns its samples as a
// channel-major buffer. FLAC frames already carry per-channel
// subframes, so no deinterleaving pass is needed.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil {
		return nil, ErrNoStreamInfo
	}
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	chans := make([][]float32, channels)
	if n := info.NSamples; n > 0 {
		for c := range chans {
			chans[c] = make([]float32, 0, n)
		}
	}

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing flac frame: %w", err)
		}

		for c, sub := range frame.Subframes {
			if c >= channels {
				break
			}
			for _, s := range sub.Samples {
				chans[c] = append(chans[c], utils.IntToFloat32(int(s), bitDepth))
			}
		}
	}

	if channels == 0 || len(chans[0]) == 0 {
		return nil, ErrNoAudioData
	}

	return &audio.Buffer{
		Channels:   chans,
		SampleRate: int(info.SampleRate),
	}, nil
}
