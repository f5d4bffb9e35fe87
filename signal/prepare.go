// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"github.com/soundwave3d/wavemesh/audio"
)

// Reduction selects how multi-channel input collapses to the channels
// the geometry builders consume.
type Reduction int

const (
	// ReduceAverage mixes all channels into one by sample-wise mean.
	ReduceAverage Reduction = iota
	// ReduceFirst keeps channel 0 and drops the rest.
	ReduceFirst
	// ReduceKeepPair keeps the first two channels as a (primary, depth)
	// pair. Falls back to ReduceFirst behavior on mono input.
	ReduceKeepPair
)

// Options controls one preparation pass.
type Options struct {
	// Resolution is the target sample count. Values above the available
	// sample count are clamped (reported via Prepared.Clamped).
	Resolution int
	// Reduction selects the channel-collapse policy.
	Reduction Reduction
	// Normalize rescales each retained channel so its peak absolute
	// value maps to 1.0. All-zero channels are left untouched.
	Normalize bool
}

// Prepared is the fixed-length sample sequence ready for geometry
// mapping. Depth is nil unless ReduceKeepPair was applied to
// multi-channel input.
type Prepared struct {
	Samples []float32
	Depth   []float32

	// Clamped is set when the requested resolution exceeded the
	// available samples and was capped.
	Clamped bool
}

// Len reports the number of retained samples.
func (p *Prepared) Len() int { return len(p.Samples) }

// Prepare reduces, downsamples and optionally normalizes buf.
//
// The downsampler is a point-sampler: it keeps every stride-th sample
// (stride = floor(N/resolution), minimum 1) starting at index 0 and
// performs no averaging or filtering. Aliasing is accepted; the
// output drives a visualization, not playback.
//
// Returns ErrEmptySignal when buf holds no samples.
func Prepare(buf *audio.Buffer, opts Options) (*Prepared, error) {
	if buf == nil || buf.Len() == 0 {
		return nil, ErrEmptySignal
	}

	primary, depth := reduce(buf, opts.Reduction)

	n := len(primary)
	res := opts.Resolution
	clamped := false
	if res > n {
		res = n
		clamped = true
	}
	if res < 1 {
		res = 1
	}

	out := &Prepared{
		Samples: downsample(primary, res),
		Clamped: clamped,
	}
	if depth != nil {
		out.Depth = downsample(depth, res)
	}

	if opts.Normalize {
		normalize(out.Samples)
		normalize(out.Depth)
	}

	return out, nil
}

// reduce applies the channel-collapse policy and returns the primary
// channel plus the optional depth channel.
func reduce(buf *audio.Buffer, r Reduction) (primary, depth []float32) {
	if buf.NumChannels() == 1 {
		return buf.Channels[0], nil
	}

	switch r {
	case ReduceAverage:
		return mixdown(buf.Channels), nil
	case ReduceKeepPair:
		return buf.Channels[0], buf.Channels[1]
	default:
		return buf.Channels[0], nil
	}
}

// mixdown averages channels sample-wise into a fresh mono slice.
func mixdown(channels [][]float32) []float32 {
	n := len(channels[0])
	out := make([]float32, n)
	inv := float32(1.0) / float32(len(channels))

	switch len(channels) {
	case 2: // Stereo (most common)
		l, r := channels[0], channels[1]
		for i := range out {
			out[i] = (l[i] + r[i]) * 0.5
		}
	default: // Generic path
		for i := range out {
			sum := float32(0)
			for _, ch := range channels {
				sum += ch[i]
			}
			out[i] = sum * inv
		}
	}

	return out
}

// downsample picks every stride-th sample starting at index 0 and
// returns exactly res samples. res must be in [1, len(src)].
func downsample(src []float32, res int) []float32 {
	stride := len(src) / res
	if stride == 0 {
		stride = 1
	}

	out := make([]float32, res)
	for i := range out {
		out[i] = src[i*stride]
	}

	return out
}

// normalize rescales s in place so its peak absolute value maps to
// 1.0. A nil or all-zero slice is left as-is.
func normalize(s []float32) {
	var peak float32
	for _, v := range s {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return
	}

	inv := 1.0 / peak
	for i := range s {
		s[i] *= inv
	}
}
