// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// WAVBytes builds a canonical 16-bit PCM WAV file in memory.
// channels is channel-major; all channels must have equal length.
func WAVBytes(sampleRate int, channels [][]int16) []byte {
	numChannels := len(channels)
	frames := 0
	if numChannels > 0 {
		frames = len(channels[0])
	}

	dataSize := uint32(frames * numChannels * 2)
	riffSize := 36 + dataSize
	byteRate := uint32(sampleRate * numChannels * 2)
	blockAlign := uint16(numChannels * 2)

	out := make([]byte, 44+dataSize)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], riffSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(out[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], byteRate)
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], 16) // bits per sample

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)

	// Interleave frames.
	pos := 44
	for f := 0; f < frames; f++ {
		for c := 0; c < numChannels; c++ {
			binary.LittleEndian.PutUint16(out[pos:pos+2], uint16(channels[c][f]))
			pos += 2
		}
	}

	return out
}
