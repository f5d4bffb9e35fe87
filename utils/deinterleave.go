package utils

// Deinterleave splits interleaved float32 frames into channel-major
// slices. A trailing partial frame is dropped.
func Deinterleave(data []float32, channels int) [][]float32 {
	if channels < 1 {
		return nil
	}

	frames := len(data) / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			out[c][f] = data[base+c]
		}
	}

	return out
}

// DeinterleaveInts splits interleaved integer PCM frames into
// channel-major float32 slices normalized by bit depth. A trailing
// partial frame is dropped.
func DeinterleaveInts(data []int, channels, bitDepth int) [][]float32 {
	if channels < 1 {
		return nil
	}

	frames := len(data) / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			out[c][f] = IntToFloat32(data[base+c], bitDepth)
		}
	}

	return out
}
