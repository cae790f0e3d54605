// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/ears/audio"
)

// infoIDs maps tag keys to RIFF INFO chunk ids, in the order they are
// written.
var infoIDs = []struct {
	key string
	id  string
}{
	{audio.TagTitle, "INAM"},
	{audio.TagArtist, "IART"},
	{audio.TagAlbum, "IPRD"},
	{audio.TagGenre, "IGNR"},
	{audio.TagDate, "ICRD"},
	{audio.TagTrackNumber, "ITRK"},
	{audio.TagComment, "ICMT"},
	{audio.TagCopyright, "ICOP"},
	{audio.TagSoftware, "ISFT"},
}

type writeConfig struct {
	channels int
	tags     map[string]string
}

// WriteOption configures WriteWAV16.
type WriteOption func(*writeConfig)

// WithChannels sets the channel count of interleaved samples. Default 1.
func WithChannels(n int) WriteOption {
	return func(c *writeConfig) { c.channels = n }
}

// WithTags adds a LIST/INFO chunk after the sample data. Keys without an
// INFO id are skipped.
func WithTags(tags map[string]string) WriteOption {
	return func(c *writeConfig) { c.tags = tags }
}

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate. samples are
// interleaved int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16, opts ...WriteOption) error {
	cfg := writeConfig{channels: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.channels <= 0 {
		return ErrInvalidChannels
	}

	info := infoChunk(cfg.tags)

	numChannels := uint16(cfg.channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize + uint32(len(info))

	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192
	if len(samples) > 0 {
		buf := make([]byte, min(len(samples), chunkSize)*2)

		for i := 0; i < len(samples); i += chunkSize {
			chunk := samples[i:min(i+chunkSize, len(samples))]
			buf = buf[:len(chunk)*2]

			for j, s := range chunk {
				binary.LittleEndian.PutUint16(buf[j*2:], uint16(s))
			}

			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("%w", err)
			}
		}
	}

	if len(info) > 0 {
		if _, err := w.Write(info); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// infoChunk encodes tags as a LIST chunk of type INFO, nil when there is
// nothing to write. Values are NUL terminated and padded to even length.
func infoChunk(tags map[string]string) []byte {
	body := new(bytes.Buffer)
	body.WriteString("INFO")

	for _, e := range infoIDs {
		v, ok := tags[e.key]
		if !ok || v == "" {
			continue
		}

		size := len(v) + 1
		if size%2 != 0 {
			size++
		}

		body.WriteString(e.id)
		_ = binary.Write(body, binary.LittleEndian, uint32(size))
		body.WriteString(v)
		body.Write(make([]byte, size-len(v)))
	}

	if body.Len() == 4 {
		return nil
	}

	out := make([]byte, 8, 8+body.Len())
	copy(out[0:4], "LIST")
	binary.LittleEndian.PutUint32(out[4:8], uint32(body.Len()))
	return append(out, body.Bytes()...)
}
