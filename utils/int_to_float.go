package utils

// IntToFloat32 normalizes an integer PCM sample of the given bit
// depth to a float32 in [-1, 1]. Unknown bit depths are treated as
// 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var maxVal float32
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	return float32(v) / maxVal
}
