// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III files with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved 16-bit stereo, even for mono files,
// so Channels is 2. Use audio.NewMonoMixer before uploading a buffer that
// must be spatialized. The source implements audio.PCM16Reader.
//
// ID3 tags are not read.
package mp3
