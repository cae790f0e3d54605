// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/ears/sndfile"
	"github.com/sirupsen/logrus"
)

type config struct {
	log      logrus.FieldLogger
	fileOpts []sndfile.Option
}

// Option configures NewData.
type Option func(*config)

// WithLogger sets the logger for load and release messages. The default is
// logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithFileOptions passes decode options to sndfile.Open, for instance
// sndfile.WithMono() to get a buffer that can be positioned in 3D.
func WithFileOptions(opts ...sndfile.Option) Option {
	return func(c *config) { c.fileOpts = append(c.fileOpts, opts...) }
}

func newConfig(opts []Option) config {
	c := config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
