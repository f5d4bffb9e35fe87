// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio buffers.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg
// Vorbis files. Vorbis already produces float samples, so no bit
// depth conversion is involved.
package vorbis
