// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests. The types
// satisfy audio.Source without importing it, to keep the package usable from
// audio's own tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by sources built with FailAfter.
var ErrInjected = errors.New("audiotest: injected read failure")

// Waveform returns the value of a sample for a frame index and channel.
type Waveform func(frame int, channel int) float32

// MockSource generates frames from a Waveform.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	generated  int // frames generated so far
	waveform   Waveform
	tags       map[string]string

	failAt int // frame index at which reads fail, -1 for never
}

// NewMockSource creates a source producing frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
		failAt:     -1,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource creates a mock source that generates a sine wave on every
// channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// WithTags attaches metadata returned by Tags.
func (m *MockSource) WithTags(tags map[string]string) *MockSource {
	m.tags = tags
	return m
}

// FailAfter makes reads fail with ErrInjected once frame is reached.
func (m *MockSource) FailAfter(frame int) *MockSource {
	m.failAt = frame
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Tags returns the attached metadata, nil if none.
func (m *MockSource) Tags() map[string]string { return m.tags }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	return m.read(len(dst), func(i int, v float32) { dst[i] = v })
}

func (m *MockSource) read(capacity int, put func(i int, v float32)) (int, error) {
	if m.failAt >= 0 && m.generated >= m.failAt {
		return 0, ErrInjected
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(capacity/m.channels, m.frames-m.generated)
	if m.failAt >= 0 {
		count = min(count, m.failAt-m.generated)
	}

	for f := range count {
		for ch := range m.channels {
			put(f*m.channels+ch, m.waveform(m.generated+f, ch))
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}
	return count * m.channels, nil
}

// PCM16Source is a MockSource that also reads natively as int16, the way
// the WAV and AIFF decoders do.
type PCM16Source struct {
	*MockSource
}

// NewPCM16Source wraps samples, interleaved, as a native int16 source.
func NewPCM16Source(sampleRate, channels int, samples []int16) *PCM16Source {
	frames := len(samples) / channels
	return &PCM16Source{
		MockSource: NewMockSource(sampleRate, channels, frames, func(frame, ch int) float32 {
			return float32(samples[frame*channels+ch]) / 32768.0
		}),
	}
}

func (p *PCM16Source) ReadInt16(dst []int16) (int, error) {
	return p.read(len(dst), func(i int, v float32) {
		dst[i] = int16(math.Round(float64(v) * 32768.0))
	})
}
