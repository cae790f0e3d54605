// SPDX-License-Identifier: EPL-2.0

package effect

import "github.com/sirupsen/logrus"

type config struct {
	log logrus.FieldLogger
}

// Option configures a Reverb.
type Option func(*config)

// WithLogger sets the logger used for lifecycle and teardown messages.
// The default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

func newConfig(opts []Option) config {
	c := config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
