// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

// Source is a stream of interleaved PCM samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo, ...).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1] and
	// returns the number of values written (not frames). The stream is
	// finished when n == 0 and err == io.EOF.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// PCM16Reader is implemented by sources whose native sample format is
// signed 16-bit, so callers can skip the round trip through float32.
type PCM16Reader interface {
	// ReadInt16 has the same contract as Source.ReadSamples.
	ReadInt16(dst []int16) (n int, err error)
}

// Tagger is implemented by sources that expose embedded metadata.
// Keys are lower case vorbis-comment style names ("title", "artist", ...).
type Tagger interface {
	Tags() map[string]string
}

// Tag keys shared by all decoders.
const (
	TagTitle       = "title"
	TagCopyright   = "copyright"
	TagSoftware    = "software"
	TagArtist      = "artist"
	TagComment     = "comment"
	TagDate        = "date"
	TagAlbum       = "album"
	TagLicense     = "license"
	TagTrackNumber = "tracknumber"
	TagGenre       = "genre"
)

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Keys are case insensitive.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Formats returns the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	return formats
}
