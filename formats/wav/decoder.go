// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/ears/audio"
)

// pcmReader is the part of gowav.Decoder the source reads through.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	tags       map[string]string

	intBuf *goaudio.IntBuffer
}

func (s *source) SampleRate() int         { return s.sampleRate }
func (s *source) Channels() int           { return s.channels }
func (s *source) Close() error            { return nil }
func (s *source) Tags() map[string]string { return s.tags }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

// read fills the int buffer with up to size samples.
func (s *source) read(size int) (int, error) {
	if s.intBuf == nil || cap(s.intBuf.Data) < size {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, size),
			Format:         s.format,
			SourceBitDepth: 16,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:size]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.read(len(dst))
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / 32768.0
	}
	return n, err
}

// ReadInt16 reads samples without converting them to float.
func (s *source) ReadInt16(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.read(len(dst))
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = int16(v)
	}
	return n, err
}

type Decoder struct{}

// Decode parses a 16-bit PCM WAV stream. Inputs that are not seekable are
// buffered in memory, since the RIFF parser needs to seek.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if string(header[:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	// first pass walks every chunk for the INFO list
	meta, err := openAt(rs, start)
	if err != nil {
		return nil, err
	}
	if meta.WavAudioFormat != 1 || meta.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	meta.ReadMetadata()

	dec, err := openAt(rs, start)
	if err != nil {
		return nil, err
	}

	return &source{
		dec:        dec,
		format:     dec.Format(),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		tags:       infoTags(meta.Metadata),
	}, nil
}

func openAt(rs io.ReadSeeker, offset int64) (*gowav.Decoder, error) {
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrUnsupportedWavLayout
	}
	return dec, nil
}

func infoTags(m *gowav.Metadata) map[string]string {
	if m == nil {
		return nil
	}

	tags := make(map[string]string)
	for key, value := range map[string]string{
		audio.TagTitle:       m.Title,
		audio.TagArtist:      m.Artist,
		audio.TagComment:     m.Comments,
		audio.TagCopyright:   m.Copyright,
		audio.TagDate:        m.CreationDate,
		audio.TagGenre:       m.Genre,
		audio.TagAlbum:       m.Product,
		audio.TagSoftware:    m.Software,
		audio.TagTrackNumber: m.TrackNbr,
	} {
		if v := strings.TrimRight(value, "\x00 "); v != "" {
			tags[key] = v
		}
	}

	if len(tags) == 0 {
		return nil
	}
	return tags
}
