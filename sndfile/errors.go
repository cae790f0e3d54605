// SPDX-License-Identifier: EPL-2.0

package sndfile

import "errors"

var (
	// ErrUnsupportedFormat is returned when neither the extension nor the
	// leading bytes name a registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported sound file format")
	ErrClosed            = errors.New("sound file already closed")
	ErrEmpty             = errors.New("sound file has no frames")
)
