// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded-audio data model and the decoder
// registry shared by the format packages.
//
// # Buffer
//
// A Buffer is a whole clip held in memory, channel-major:
//
//	buf := &audio.Buffer{
//	    Channels:   [][]float32{left, right},
//	    SampleRate: 44100,
//	}
//
// Channel-major layout keeps per-channel operations (normalization,
// stride sampling) simple slices instead of interleaved index math.
// Samples are float32 in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without
// worrying about source bit depths.
//
// # Decoders
//
// Each format package provides a Decoder that reads an entire encoded
// file and returns a Buffer:
//
//	dec := wav.Decoder{}
//	file, _ := os.Open("clip.wav")
//	buf, err := dec.Decode(file)
//
// Decoding is whole-file on purpose: mesh generation is a one-shot
// batch transform over the full signal, so there is nothing to gain
// from streaming.
//
// # Format Registry
//
// The registry allows dynamic decoder registration keyed by format:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, err := registry.Lookup(audio.FormatFromPath(path))
//
// Lookup returns ErrNoDecoder when the format has no registered
// decoder, which callers surface as "decoding collaborator
// unavailable" rather than probing a global flag.
package audio
