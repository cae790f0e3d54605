// SPDX-License-Identifier: EPL-2.0

package effect

import "errors"

var (
	// ErrInternal wraps the al.ErrorCode raised while creating or
	// configuring a reverb.
	ErrInternal = errors.New("failed to set up reverb effect")

	ErrClosed        = errors.New("reverb effect already closed")
	ErrUnknownPreset = errors.New("unknown reverb preset")
)
