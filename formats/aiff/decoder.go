// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/ears/audio"
)

// aiffReader is the part of aiff.Decoder the source reads through; tests
// substitute it.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source.
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) read(size int) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < size {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, size),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:size]

	n, err := s.dec.PCMBuffer(s.intBuf)
	switch {
	case err == io.EOF:
		s.eof = true
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}

	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}
	// a short read means the sound chunk is exhausted
	if n < size {
		s.eof = true
	}
	if s.eof {
		return n, io.EOF
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

// ReadInt16 reads big-endian sound data as host int16 without a float
// round trip.
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

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}
