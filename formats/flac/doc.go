// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams into audio buffers.
//
// This package uses github.com/mewkiz/flac to decode FLAC files.
package flac
