// SPDX-License-Identifier: EPL-2.0

package al

import "fmt"

// Format is a buffer sample layout.
type Format int32

const (
	FormatMono8    Format = 0x1100
	FormatMono16   Format = 0x1101
	FormatStereo8  Format = 0x1102
	FormatStereo16 Format = 0x1103
)

// ChannelsFormat maps a channel count to the 16-bit buffer format.
// Only mono and stereo are supported.
func ChannelsFormat(channels int) (Format, bool) {
	switch channels {
	case 1:
		return FormatMono16, true
	case 2:
		return FormatStereo16, true
	default:
		return 0, false
	}
}

// Channels returns the channel count of the format, 0 if unknown.
func (f Format) Channels() int {
	switch f {
	case FormatMono8, FormatMono16:
		return 1
	case FormatStereo8, FormatStereo16:
		return 2
	default:
		return 0
	}
}

// BytesPerSample returns the size of a single channel sample, 0 if unknown.
func (f Format) BytesPerSample() int {
	switch f {
	case FormatMono8, FormatStereo8:
		return 1
	case FormatMono16, FormatStereo16:
		return 2
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatMono8:
		return "AL_FORMAT_MONO8"
	case FormatMono16:
		return "AL_FORMAT_MONO16"
	case FormatStereo8:
		return "AL_FORMAT_STEREO8"
	case FormatStereo16:
		return "AL_FORMAT_STEREO16"
	default:
		return fmt.Sprintf("Format(%#x)", int32(f))
	}
}
