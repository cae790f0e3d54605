// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files through
// github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// Big-endian sound data is returned in host order. The source implements
// audio.PCM16Reader. Inputs that are not seekable are read fully into
// memory first.
package aiff
