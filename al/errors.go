// SPDX-License-Identifier: EPL-2.0

package al

import (
	"errors"
	"fmt"
)

// ErrNoContext is returned when an operation needs a current context and
// there is none.
var ErrNoContext = errors.New("invalid OpenAL context")

// ErrorCode is the value of the native error flag.
type ErrorCode int32

const (
	NoError          ErrorCode = 0
	InvalidName      ErrorCode = 0xA001
	InvalidEnum      ErrorCode = 0xA002
	InvalidValue     ErrorCode = 0xA003
	InvalidOperation ErrorCode = 0xA004
	OutOfMemory      ErrorCode = 0xA005
)

func (c ErrorCode) Error() string {
	switch c {
	case NoError:
		return "AL_NO_ERROR: no error"
	case InvalidName:
		return "AL_INVALID_NAME: a bad name (ID) was passed to an OpenAL function"
	case InvalidEnum:
		return "AL_INVALID_ENUM: an invalid enum value was passed to an OpenAL function"
	case InvalidValue:
		return "AL_INVALID_VALUE: an invalid value was passed to an OpenAL function"
	case InvalidOperation:
		return "AL_INVALID_OPERATION: the requested operation is not valid"
	case OutOfMemory:
		return "AL_OUT_OF_MEMORY: the requested operation resulted in OpenAL running out of memory"
	default:
		return fmt.Sprintf("unknown OpenAL error %#x", int32(c))
	}
}
