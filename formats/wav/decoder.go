package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/soundwave3d/wavemesh/audio"
	"github.com/soundwave3d/wavemesh/utils"
)

type Decoder struct{}

// Decode reads an entire WAV file and returns its samples as a
// channel-major buffer. Uses github.com/go-audio/wav for chunk
// parsing, so non-canonical chunk layouts and 8/16/24/32-bit PCM are
// all handled.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires io.ReadSeeker; buffer the stream.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	ibuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if ibuf == nil || len(ibuf.Data) == 0 {
		return nil, ErrNoAudioData
	}

	return &audio.Buffer{
		Channels:   utils.DeinterleaveInts(ibuf.Data, ibuf.Format.NumChannels, int(dec.BitDepth)),
		SampleRate: ibuf.Format.SampleRate,
	}, nil
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
