// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/ears/audio"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, samples, WithChannels(2)); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+8 {
		t.Fatalf("size = %d, want %d", len(data), 44+8)
	}

	checks := []struct {
		name      string
		got, want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), 36 + 8},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 44100 * 4},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 8},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	for _, m := range []struct {
		off  int
		want string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(data[m.off : m.off+4]); got != m.want {
			t.Errorf("marker at %d = %q, want %q", m.off, got, m.want)
		}
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if buf.Len() != 44 {
		t.Errorf("size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_InvalidChannels(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(new(bytes.Buffer), 8000, nil, WithChannels(0))
	if !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("WriteWAV16() error = %v, want ErrInvalidChannels", err)
	}
}

func TestWriteWAV16_LargeFile(t *testing.T) {
	t.Parallel()

	// spans several write chunks
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()[44:]
	for _, i := range []int{0, 8191, 8192, 19999} {
		if got := int16(binary.LittleEndian.Uint16(data[2*i:])); got != samples[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got, samples[i])
		}
	}
}

func TestWriteWAV16_InfoChunk(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	tags := map[string]string{
		audio.TagTitle: "abc", // odd length + NUL is even
		audio.TagGenre: "ab",  // needs a pad byte
		"unknown":      "skipped",
	}
	if err := WriteWAV16(buf, 8000, []int16{1}, WithTags(tags)); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	list := data[44+2:]
	if string(list[0:4]) != "LIST" || string(list[8:12]) != "INFO" {
		t.Fatalf("missing LIST/INFO chunk, got %q", list[:12])
	}

	// INFO + INAM(8+4) + IGNR(8+4)
	if size := binary.LittleEndian.Uint32(list[4:8]); size != 4+12+12 {
		t.Errorf("LIST size = %d, want %d", size, 4+12+12)
	}
	if riff := binary.LittleEndian.Uint32(data[4:8]); int(riff) != len(data)-8 {
		t.Errorf("RIFF size = %d, want %d", riff, len(data)-8)
	}
	if bytes.Contains(data, []byte("skipped")) {
		t.Error("tag without INFO id was written")
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []int16{0, 100, -100, 32767, -32768, 12345, -6789, 1}
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 16000, original, WithChannels(2)); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 16000 || src.Channels() != 2 {
		t.Errorf("format = %d Hz %d ch, want 16000 Hz 2 ch", src.SampleRate(), src.Channels())
	}

	got, err := audio.ReadAllInt16(src, 0)
	if err != nil {
		t.Fatalf("ReadAllInt16() error = %v", err)
	}
	if len(got) != len(original) {
		t.Fatalf("read %d samples, want %d", len(got), len(original))
	}
	for i := range original {
		if got[i] != original[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], original[i])
		}
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(i % 32767)
	}

	b.ReportAllocs()
	for range b.N {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 8000, samples)
	}
}
