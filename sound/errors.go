// SPDX-License-Identifier: EPL-2.0

package sound

import "errors"

var (
	// ErrLoad wraps the decoder error when a file cannot be opened or read.
	ErrLoad = errors.New("failed to load sound file")
	// ErrInvalidFormat is returned for channel layouts OpenAL cannot play
	// from a 16-bit buffer.
	ErrInvalidFormat = errors.New("unsupported sound data format")
	// ErrInternal wraps the al.ErrorCode raised while uploading.
	ErrInternal = errors.New("failed to upload sound data")
)
