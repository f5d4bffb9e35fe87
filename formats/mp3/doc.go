// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio buffers.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3
// files. The library always emits two-channel 16-bit PCM, so decoded
// buffers are stereo regardless of the source encoding.
package mp3
