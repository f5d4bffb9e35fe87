// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/soundwave3d/wavemesh/audio"
)

// NewBuffer builds a decoded buffer for testing. totalSamples is the
// number of samples per channel; waveform generates sample values
// given sample index and channel.
func NewBuffer(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *audio.Buffer {
	chans := make([][]float32, channels)
	for c := range chans {
		chans[c] = make([]float32, totalSamples)
		for i := 0; i < totalSamples; i++ {
			chans[c][i] = waveform(i, c)
		}
	}

	return &audio.Buffer{
		Channels:   chans,
		SampleRate: sampleRate,
	}
}

// NewSilentBuffer builds a buffer of silence (all zeros).
func NewSilentBuffer(sampleRate, channels, totalSamples int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineBuffer builds a buffer holding a sine wave.
func NewSineBuffer(sampleRate, channels, totalSamples int, frequency float64) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantBuffer builds a buffer with every sample set to value.
func NewConstantBuffer(sampleRate, channels, totalSamples int, value float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewRampBuffer builds a buffer whose sample value equals its sample
// index, which makes downsampling index selection observable.
func NewRampBuffer(sampleRate, channels, totalSamples int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample)
	})
}
