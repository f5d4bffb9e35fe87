// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files into audio buffers.
//
// This package uses the github.com/go-audio/wav library for robust
// chunk parsing, so it accepts the 8/16/24/32-bit PCM layouts found
// in the wild, not just the canonical 44-byte header.
package wav
