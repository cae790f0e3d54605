// SPDX-License-Identifier: EPL-2.0

// Package sound loads sound files into OpenAL buffers.
//
// A Data decodes the whole file once and uploads it into a single buffer
// that any number of sources can play. It is reference counted: NewData
// returns it with one reference, every additional owner calls Retain, and
// the buffer is deleted when the last owner calls Release.
//
// Only mono and stereo files can be uploaded. Only mono buffers are
// spatialized by OpenAL; load stereo files with sndfile.WithMono() when they
// are meant to be positioned.
package sound

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/ik5/ears/al"
	"github.com/ik5/ears/sndfile"
	"github.com/ik5/ears/utils"
	"github.com/sirupsen/logrus"
)

// Data is a sound file held in an OpenAL buffer.
type Data struct {
	ctx al.Context
	log logrus.FieldLogger

	buffer  uint32
	info    sndfile.Info
	tags    sndfile.Tags
	samples int

	refs atomic.Int32
}

// NewData decodes the file at path and uploads it into a new buffer.
func NewData(ctx al.Context, path string, opts ...Option) (*Data, error) {
	if ctx == nil || !ctx.Valid() {
		return nil, al.ErrNoContext
	}
	cfg := newConfig(opts)
	log := cfg.log.WithField("path", path)

	file, err := sndfile.Open(path, cfg.fileOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer file.Close()

	info := file.Info()
	format, ok := al.ChannelsFormat(info.Channels)
	if !ok {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidFormat, info.Channels)
	}

	pcm := make([]int16, info.Samples())
	if err := readFull(file, pcm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	d := &Data{
		ctx:     ctx,
		info:    info,
		tags:    file.Tags(),
		samples: len(pcm),
	}

	d.buffer = ctx.GenBuffer()
	ctx.BufferData(d.buffer, format, utils.Int16ToBytes(pcm), info.SampleRate)

	if err := al.CheckError(ctx); err != nil {
		if d.buffer != 0 {
			ctx.DeleteBuffer(d.buffer)
		}
		_ = ctx.GetError()
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	d.log = log.WithField("buffer", d.buffer)
	d.refs.Store(1)

	d.log.WithFields(logrus.Fields{
		"channels": info.Channels,
		"frames":   info.Frames,
		"rate":     info.SampleRate,
		"format":   format,
	}).Debug("sound data loaded")

	return d, nil
}

// readFull reads exactly len(dst) samples.
func readFull(file *sndfile.File, dst []int16) error {
	read := 0
	for read < len(dst) {
		n, err := file.ReadInt16(dst[read:])
		read += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if read != len(dst) {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (d *Data) Info() sndfile.Info { return d.info }
func (d *Data) Tags() sndfile.Tags { return d.tags }

// Buffer returns the OpenAL buffer handle, 0 once released.
func (d *Data) Buffer() uint32 {
	if d.refs.Load() <= 0 {
		return 0
	}
	return d.buffer
}

// SampleCount is channels * frames.
func (d *Data) SampleCount() int { return d.samples }

// Refs returns the number of owners.
func (d *Data) Refs() int { return int(d.refs.Load()) }

// Retain adds an owner. It reports false when the buffer is already
// released.
func (d *Data) Retain() bool {
	for {
		n := d.refs.Load()
		if n <= 0 {
			return false
		}
		if d.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Release drops an owner and deletes the buffer when it was the last one.
// Extra calls are ignored.
func (d *Data) Release() {
	for {
		n := d.refs.Load()
		if n <= 0 {
			return
		}
		if !d.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n == 1 {
			d.free()
		}
		return
	}
}

func (d *Data) free() {
	if !d.ctx.Valid() {
		d.log.Debug("sound data dropped without context")
		return
	}

	d.ctx.DeleteBuffer(d.buffer)
	if err := al.CheckError(d.ctx); err != nil {
		d.log.WithError(err).Warn("failed to delete sound buffer, a source is probably still playing it")
		return
	}
	d.log.Debug("sound data released")
}
