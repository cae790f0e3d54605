// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/ears/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always decodes to interleaved stereo
const channels = 2

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // samples, not bytes

// read decodes up to size little-endian samples into s.buf.
func (s *source) read(size int) (int, error) {
	need := size * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	if n%2 != 0 && err == nil {
		// complete the trailing sample
		var m int
		m, err = io.ReadFull(s.dec, s.buf[n:n+1])
		n += m
	}
	if err != nil && err != io.EOF {
		return n / 2, fmt.Errorf("%w", err)
	}
	if n == 0 && err == nil {
		return 0, nil
	}
	return n / 2, err
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	samples, err := s.read(len(dst))
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}
	return samples, err
}

// ReadInt16 returns decoded samples as is.
func (s *source) ReadInt16(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	samples, err := s.read(len(dst))
	for i := range samples {
		dst[i] = int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
