// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler streams from src at a new sample rate using Catmull-Rom cubic
// interpolation. It works on interleaved samples and keeps the channel
// count. When downsampling, a one-pole low-pass runs on the input first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// win[0..3] hold frames t-1, t, t+1, t+2; output is interpolated
	// between win[1] and win[2] at fraction pos.
	win    [4][]float32
	filled [4]bool
	primed bool
	pos    float64

	frame []float32
	eof   bool

	lowpass bool
	seeded  bool
	state   []float32
}

// lowpassAlpha is the smoothing factor of the anti-aliasing filter.
const lowpassAlpha float32 = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		frame:    make([]float32, max(channels, 1)),
		state:    make([]float32, max(channels, 1)),
	}
	if dstRate > 0 {
		r.step = float64(src.SampleRate()) / float64(dstRate)
		r.lowpass = r.step > 1.0
	}

	for i := range r.win {
		r.win[i] = make([]float32, max(channels, 1))
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from src into r.frame, filtered when
// downsampling. It reports false when no frame was available.
func (r *Resampler) readFrame() (bool, error) {
	if r.eof {
		return false, io.EOF
	}

	n, err := r.src.ReadSamples(r.frame[:r.channels])
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n < r.channels {
		return false, nil
	}

	if r.lowpass {
		if !r.seeded {
			// start the filter at the first frame to avoid a fade in
			copy(r.state, r.frame[:r.channels])
			r.seeded = true
		}
		for c := range r.channels {
			r.frame[c] = lowpassAlpha*r.frame[c] + (1-lowpassAlpha)*r.state[c]
			r.state[c] = r.frame[c]
		}
	}

	return true, nil
}

// prime fills the window with the first four frames, repeating the last one
// when the source is shorter.
func (r *Resampler) prime() error {
	r.primed = true

	for i := range r.win {
		ok, err := r.readFrame()
		if err != nil && err != io.EOF {
			return err
		}
		if ok {
			copy(r.win[i], r.frame)
			r.filled[i] = true
			continue
		}

		if i == 0 {
			return io.EOF
		}
		for j := i; j < len(r.win); j++ {
			copy(r.win[j], r.win[i-1])
			r.filled[j] = true
		}
		return nil
	}

	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	ok, err := r.readFrame()
	if err != nil && err != io.EOF {
		return err
	}
	if ok {
		copy(r.win[3], r.frame)
	}
	r.filled[3] = ok

	if r.eof && !ok {
		return io.EOF
	}
	return nil
}

// ReadSamples produces samples at the destination rate.
// len(dst) must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels <= 0 {
		return 0, ErrNoChannels
	}
	if r.dstRate <= 0 {
		return 0, ErrInvalidRate
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			return written * r.channels, io.EOF
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		r.interpolate(out, float32(r.pos))

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

func (r *Resampler) interpolate(out []float32, x float32) {
	for c := range out {
		y1 := r.win[1][c]
		y2 := r.win[2][c]

		y0 := y1
		if r.filled[0] {
			y0 = r.win[0][c]
		}
		y3 := y2
		if r.filled[3] {
			y3 = r.win[3][c]
		}

		out[c] = cubic(y0, y1, y2, y3, x)
	}
}

// cubic evaluates the Catmull-Rom spline through y0..y3 at x in [0,1]
// between y1 and y2.
func cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
