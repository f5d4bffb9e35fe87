// SPDX-License-Identifier: EPL-2.0

// Package wavemesh turns a sampled audio signal into a 3-D mesh of
// its waveform.
//
// # Pipeline
//
// A generation request flows through three stages:
//
//  1. Signal preparation (signal package): channel reduction,
//     stride downsampling to the requested resolution, optional peak
//     normalization.
//  2. Geometry building (geometry package): one of three projections
//     of the prepared samples — a linear ribbon, a closed radial
//     ribbon, or a spiral polyline.
//  3. Mesh assembly (host package): the geometry is validated and
//     registered as a named object with a mesh-hosting collaborator.
//
// # Quick Start
//
// The simplest way to generate a mesh is from a decoded buffer:
//
//	buf, _ := wav.Decoder{}.Decode(file)
//	mesh, err := wavemesh.Generate(buf, wavemesh.DefaultConfig())
//
// To go from an audio file to a registered scene object in one call,
// supply a decoder registry and a host:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	scene := host.NewScene()
//	name, err := wavemesh.GenerateFromFile(scene, reg, "clip.wav", wavemesh.DefaultConfig())
//
// # Supported Formats
//
// The formats subpackages decode the following into audio.Buffer:
//   - WAV via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// # Configuration
//
// Config holds one request's parameters: resolution (10–100000),
// per-axis scale factors, visualization style, stereo handling,
// normalization and ribbon thickness. DefaultConfig matches the
// defaults of the original generator. Configs are plain values;
// validate once, never mutate mid-run.
//
// # Stereo Handling
//
// Stereo input is averaged to mono by default. With StereoDepth and
// the linear style, the left channel drives amplitude and the right
// channel drives ribbon thickness; with any other style StereoDepth
// degrades to using the first channel only.
//
// # Errors
//
// Every failure is reported once, wrapped with its cause, and local
// to the invocation: ErrNoInput, audio.ErrNoDecoder, decode errors,
// signal.ErrEmptySignal, ErrEmptyGeometry and host errors. No
// automatic retries happen anywhere, and a failed request never
// leaves a partially registered object behind.
package wavemesh
