// SPDX-License-Identifier: EPL-2.0

// Package sndfile opens sound files of any bundled format and decodes them
// completely into signed 16-bit PCM, ready for a single buffer upload.
//
// The format is chosen from the file extension and, when that is missing or
// unknown, from the leading bytes of the file.
package sndfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/ears/audio"
)

// Info describes the decoded stream.
type Info struct {
	Channels   int
	Frames     int
	SampleRate int
	// Format is the registry key the file was decoded with, e.g. "wav".
	Format string
}

// Samples is Channels * Frames.
func (i Info) Samples() int { return i.Channels * i.Frames }

func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(i.Frames) * time.Second / time.Duration(i.SampleRate)
}

// File is a fully decoded sound file.
type File struct {
	info Info
	tags Tags
	pcm  []int16
	pos  int

	closed bool
}

// Open decodes the file at path.
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	file, err := OpenReader(f, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// OpenReader decodes r. format is a registry key; an empty or unregistered
// one falls back to sniffing.
func OpenReader(r io.Reader, format string, opts ...Option) (*File, error) {
	cfg := newConfig(opts)

	dec, ok := cfg.registry.Get(format)
	if !ok {
		head, rest, err := peek(r)
		if err != nil {
			return nil, err
		}
		r = rest

		format = sniff(head)
		if dec, ok = cfg.registry.Get(format); !ok {
			return nil, ErrUnsupportedFormat
		}
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	var tags Tags
	if t, ok := src.(audio.Tagger); ok {
		tags = tagsFromMap(t.Tags())
	}

	var stream audio.Source = src
	if cfg.mono && stream.Channels() > 1 {
		stream = audio.NewMonoMixer(stream)
	}
	if cfg.sampleRate > 0 && cfg.sampleRate != stream.SampleRate() {
		stream = audio.NewResampler(stream, cfg.sampleRate)
	}

	pcm, err := audio.ReadAllInt16(stream, stream.BufSize())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	channels := stream.Channels()
	frames := len(pcm) / channels
	if frames == 0 {
		return nil, ErrEmpty
	}

	return &File{
		info: Info{
			Channels:   channels,
			Frames:     frames,
			SampleRate: stream.SampleRate(),
			Format:     format,
		},
		tags: tags,
		pcm:  pcm[:frames*channels],
	}, nil
}

func (f *File) Info() Info { return f.info }
func (f *File) Tags() Tags { return f.tags }

// ReadInt16 copies the next samples into dst. It returns io.EOF once every
// sample has been read.
func (f *File) ReadInt16(dst []int16) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if f.pos >= len(f.pcm) {
		return 0, io.EOF
	}

	n := copy(dst, f.pcm[f.pos:])
	f.pos += n
	return n, nil
}

// Seek moves the read position to frame.
func (f *File) Seek(frame int) error {
	if f.closed {
		return ErrClosed
	}

	f.pos = min(max(frame, 0), f.info.Frames) * f.info.Channels
	return nil
}

// Close drops the decoded samples.
func (f *File) Close() error {
	if f.closed {
		return ErrClosed
	}

	f.closed = true
	f.pcm = nil
	return nil
}
