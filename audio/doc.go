// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives the decoders are built on.
//
// Every decoder yields a Source: interleaved float32 samples in [-1, 1]
// read in chunks until io.EOF. Sources chain, so a stereo 48 kHz file can
// be turned into mono 22.05 kHz before it is uploaded:
//
//	src = audio.NewResampler(audio.NewMonoMixer(src), 22050)
//	pcm, err := audio.ReadAllInt16(src, audio.DefaultBufSize)
//
// Decoders that already hold integer PCM also implement PCM16Reader,
// which ReadAllInt16 prefers so 16-bit files reach the device unchanged.
// Decoders exposing embedded metadata implement Tagger.
//
// A Registry maps file extensions to Decoders. It is safe for concurrent
// use.
package audio
