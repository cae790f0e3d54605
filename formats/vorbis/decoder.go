// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/ears/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	tags       map[string]string
}

func (s *source) SampleRate() int         { return s.sampleRate }
func (s *source) Channels() int           { return s.channels }
func (s *source) Close() error            { return nil }
func (s *source) BufSize() int            { return 4096 }
func (s *source) Tags() map[string]string { return s.tags }

// ReadSamples reads whole frames only; len(dst) is rounded down to a
// multiple of Channels.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 || s.channels <= 0 {
		return 0, nil
	}

	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, nil
	}

	// oggvorbis returns the number of interleaved values, not frames
	n, err := s.dec.Read(dst[:want])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		tags:       commentTags(dec.CommentHeader().Comments),
	}, nil
}

// commentTags parses KEY=value vorbis comments. Keys are lower cased; the
// first value of a repeated key wins.
func commentTags(comments []string) map[string]string {
	tags := make(map[string]string, len(comments))
	for _, c := range comments {
		key, value, ok := strings.Cut(c, "=")
		if !ok || key == "" {
			continue
		}

		key = strings.ToLower(key)
		if _, seen := tags[key]; !seen {
			tags[key] = value
		}
	}

	if len(tags) == 0 {
		return nil
	}
	return tags
}
