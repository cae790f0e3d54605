// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes 16-bit PCM WAV files.
//
// Decoding goes through github.com/go-audio/wav. The returned source
// implements audio.PCM16Reader, so samples reach an OpenAL buffer without a
// float round trip, and audio.Tagger for the RIFF INFO list (INAM, IART,
// ICMT, ICOP, ICRD, IGNR, IPRD, ISFT, ITRK).
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrOnlyPCM16bitSupported) {
//	    // 8, 24, 32-bit and float files are rejected
//	}
//
// WriteWAV16 produces canonical files, optionally multi-channel and tagged:
//
//	err := wav.WriteWAV16(out, 44100, pcm,
//	    wav.WithChannels(2),
//	    wav.WithTags(map[string]string{audio.TagTitle: "Rain"}))
//
// The INFO list is written after the sample data.
package wav
