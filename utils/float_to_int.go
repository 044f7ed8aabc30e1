// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1,1] and scales it by 32767, rounding to the
// nearest integer. -1 maps to -32767, so the scale is symmetric.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x) * math.MaxInt16))
}

// Int16ToFloat32 is the inverse of Float32ToInt16. -32768 clamps to -1.
func Int16ToFloat32(v int16) float32 {
	return IntToFloat32(int(v), 16)
}

// IntToFloat32 normalizes a signed PCM sample of the given bit depth by
// 2^(bits-1)-1 and clamps the result to [-1,1].
func IntToFloat32(v int, bits int) float32 {
	if bits <= 1 || bits > 32 {
		bits = 16
	}
	scale := float64(int64(1)<<(bits-1) - 1)

	f := float64(v) / scale
	if f < -1 {
		f = -1
	} else if f > 1 {
		f = 1
	}

	return float32(f)
}
