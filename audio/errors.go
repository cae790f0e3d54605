// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned by the Resampler when dst does not hold
	// whole frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	// ErrInvalidRate is returned for a zero or negative target rate.
	ErrInvalidRate = errors.New("sample rate must be positive")
	// ErrNoChannels is returned by every stage reading a source that reports
	// no channels.
	ErrNoChannels = errors.New("source has no channels")
)
