// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"github.com/ik5/ears/audio"
	"github.com/ik5/ears/formats/aiff"
	"github.com/ik5/ears/formats/mp3"
	"github.com/ik5/ears/formats/vorbis"
	"github.com/ik5/ears/formats/wav"
)

type config struct {
	registry   *audio.Registry
	mono       bool
	sampleRate int
}

// Option configures Open and OpenReader.
type Option func(*config)

// WithRegistry decodes through r instead of DefaultRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithMono averages all channels into one.
func WithMono() Option {
	return func(c *config) { c.mono = true }
}

// WithSampleRate resamples to hz. Zero keeps the file's rate.
func WithSampleRate(hz int) Option {
	return func(c *config) { c.sampleRate = hz }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	return c
}

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})

	return r
}
