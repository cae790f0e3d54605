// SPDX-License-Identifier: EPL-2.0

// Package utils holds PCM sample conversions shared by the decoders and the
// buffer upload path.
package utils

import "encoding/binary"

// Float32ToInt16 clamps x to [-1,1] and scales it to int16.
// 32767 is used for both signs so that +1 does not overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat32 maps an int16 sample to [-1,1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}

// AppendFloat32AsInt16 converts src and appends the result to dst.
func AppendFloat32AsInt16(dst []int16, src []float32) []int16 {
	dst = grow(dst, len(src))
	for _, x := range src {
		dst = append(dst, Float32ToInt16(x))
	}
	return dst
}

// Int16ToBytes encodes samples in the host byte order, which is what native
// audio libraries expect for 16-bit buffers.
func Int16ToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.NativeEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func grow(s []int16, n int) []int16 {
	if cap(s)-len(s) >= n {
		return s
	}
	// double, or fit n when doubling is not enough
	c := max(2*cap(s), len(s)+n)
	out := make([]int16, len(s), c)
	copy(out, s)
	return out
}
