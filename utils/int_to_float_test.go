package utils

import (
	"math"
	"testing"
)

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v        int
		bitDepth int
		want     float32
	}{
		{0, 16, 0},
		{32768, 16, 1.0},
		{-32768, 16, -1.0},
		{16384, 16, 0.5},
		{128, 8, 1.0},
		{8388608, 24, 1.0},
		{-8388608, 24, -1.0},
		{2147483648, 32, 1.0},
		// Unknown depth falls back to 16-bit.
		{32768, 12, 1.0},
	}

	for _, tc := range cases {
		got := IntToFloat32(tc.v, tc.bitDepth)
		if math.Abs(float64(got-tc.want)) > 1e-6 {
			t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tc.v, tc.bitDepth, got, tc.want)
		}
	}
}
