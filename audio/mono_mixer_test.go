// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/ears/internal/audiotest"
)

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSilentSource(48000, 2, 10))

	if m.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", m.Channels())
	}
	if m.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", m.SampleRate())
	}
}

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		values   []float32
		want     float32
	}{
		{"stereo", 2, []float32{0.2, 0.6}, 0.4},
		{"three channels", 3, []float32{0.3, 0.6, 0.9}, 0.6},
		{"quad", 4, []float32{1, -1, 0.5, -0.5}, 0},
		{"5.1", 6, []float32{0.6, 0.6, 0.6, 0.6, 0.6, 0.6}, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 50, func(_, ch int) float32 {
				return tt.values[ch]
			})
			out := drain(t, NewMonoMixer(src), 16)

			if len(out) != 50 {
				t.Fatalf("got %d frames, want 50", len(out))
			}
			for i, s := range out {
				if math.Abs(float64(s-tt.want)) > 1e-5 {
					t.Fatalf("out[%d] = %v, want %v", i, s, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_MonoPassThrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 10, func(f, _ int) float32 {
		return float32(f) / 10
	})
	out := drain(t, NewMonoMixer(src), 4)

	for i, s := range out {
		if s != float32(i)/10 {
			t.Errorf("out[%d] = %v, want %v", i, s, float32(i)/10)
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10)).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_NoChannels(t *testing.T) {
	t.Parallel()

	_, err := NewMonoMixer(audiotest.NewSilentSource(8000, 0, 10)).ReadSamples(make([]float32, 4))
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("error = %v, want ErrNoChannels", err)
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for range b.N {
		m := NewMonoMixer(audiotest.NewSineSource(44100, 2, 44100, 440))
		for {
			if _, err := m.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
