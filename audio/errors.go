// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrNoDecoder means no decoder is registered for the requested
	// format; the decoding collaborator is unavailable.
	ErrNoDecoder = errors.New("no decoder registered for format")

	// ErrInvalidSampleRate means a buffer carries a non-positive rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrRaggedChannels means a buffer's channels differ in length.
	ErrRaggedChannels = errors.New("channels must have equal length")
)
