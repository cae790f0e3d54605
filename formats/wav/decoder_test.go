// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/ears/audio"
)

// createWAVFile builds a canonical 44-byte-header WAV by hand.
func createWAVFile(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 3)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
	}{
		{"mono 8k", 8000, 1},
		{"stereo 44.1k", 44100, 2},
		{"mono 96k", 96000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := createWAVFile(tt.rate, tt.channels, 16, make([]int16, 4*tt.channels))
			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if src.SampleRate() != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.rate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}
		})
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	eightBit := createWAVFile(8000, 1, 8, nil)
	float := createWAVFile(8000, 1, 16, nil)
	binary.LittleEndian.PutUint16(float[20:22], 3) // IEEE float

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not riff", []byte("NOT A WAV FILE DATA"), ErrNotWavFile},
		{"not wave", append([]byte("RIFF\x24\x00\x00\x00NOPE"), make([]byte, 32)...), ErrNotWavFile},
		{"truncated", []byte("RIFF\x00"), ErrNotWavFile},
		{"8-bit", eightBit, ErrOnlyPCM16bitSupported},
		{"ieee float", float, ErrOnlyPCM16bitSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, 16, []int16{1, 2, 3})
	src, err := Decoder{}.Decode(struct{ io.Reader }{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := readAll(t, src); len(got) != 3 {
		t.Errorf("read %d samples, want 3", len(got))
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 16, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src)
	want := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 0.01 {
			t.Errorf("sample[%d] = %v, want ≈%v", i, got[i], want[i])
		}
	}

	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_ReadInt16(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, math.MaxInt16, math.MinInt16, 4242}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 2, 16, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	pcm, ok := src.(audio.PCM16Reader)
	if !ok {
		t.Fatal("wav source does not implement audio.PCM16Reader")
	}

	got, err := audio.ReadAllInt16(src, 4)
	if err != nil {
		t.Fatalf("ReadAllInt16() error = %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], samples[i])
		}
	}

	if n, err := pcm.ReadInt16(nil); n != 0 || err != nil {
		t.Errorf("ReadInt16(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 16, []int16{1, 2})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Tags(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		audio.TagTitle:     "Night Train",
		audio.TagArtist:    "Ears",
		audio.TagComment:   "odd",
		audio.TagCopyright: "CC0",
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 22050, []int16{1, 2, 3, 4}, WithTags(want)); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	tagger, ok := src.(audio.Tagger)
	if !ok {
		t.Fatal("wav source does not implement audio.Tagger")
	}
	got := tagger.Tags()
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Tags()[%q] = %q, want %q", k, got[k], v)
		}
	}

	// metadata pass must not consume the samples
	if pcm := readAll(t, src); len(pcm) != 4 {
		t.Errorf("read %d samples after tags, want 4", len(pcm))
	}
}

func TestSource_NoTags(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 16, []int16{1})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if tags := src.(audio.Tagger).Tags(); len(tags) != 0 {
		t.Errorf("Tags() = %v, want none", tags)
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data := createWAVFile(44100, 2, 16, make([]int16, 44100*2))
	buf := make([]int16, 4096)

	b.ReportAllocs()
	for range b.N {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		pcm := src.(audio.PCM16Reader)
		for {
			if _, err := pcm.ReadInt16(buf); err != nil {
				break
			}
		}
	}
}
