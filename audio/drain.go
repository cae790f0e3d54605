// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/ears/utils"
)

// DefaultBufSize is the read size used when a caller passes none.
const DefaultBufSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads before giving up,
// as bufio does.
const maxEmptyReads = 100

// ReadAllInt16 drains src and returns every sample as signed 16-bit PCM.
//
// Sources implementing PCM16Reader are read natively; anything else is read
// as float32 and converted with utils.Float32ToInt16. bufSize is rounded up
// to a multiple of the channel count; zero or less means DefaultBufSize.
// Reaching the end of the stream is not an error.
func ReadAllInt16(src Source, bufSize int) ([]int16, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}
	if rem := bufSize % channels; rem != 0 {
		bufSize += channels - rem
	}

	if r, ok := src.(PCM16Reader); ok {
		return drainInt16(r, bufSize)
	}

	var pcm []int16
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pcm = utils.AppendFloat32AsInt16(pcm, buf[:n])
			empty = 0
		}
		if err == io.EOF {
			return pcm, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			if empty++; empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}
}

func drainInt16(r PCM16Reader, bufSize int) ([]int16, error) {
	var pcm []int16
	buf := make([]int16, bufSize)
	empty := 0

	for {
		n, err := r.ReadInt16(buf)
		if n > 0 {
			pcm = append(pcm, buf[:n]...)
			empty = 0
		}
		if err == io.EOF {
			return pcm, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			if empty++; empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}
}
