// SPDX-License-Identifier: EPL-2.0

package al

// Vec3 is a three dimensional vector [x, y, z].
type Vec3 [3]float32

// Context is the capability to issue calls against a native audio context.
//
// Methods mirror the OpenAL/EFX entry points ears needs. Implementations must
// not panic on invalid ids or parameters; they flag the failure so that a
// later GetError reports it, the way the native library does.
type Context interface {
	// Valid reports whether a usable context is current.
	Valid() bool

	Listenerf(param Param, value float32)
	GetListenerf(param Param) float32
	Listenerfv(param Param, values []float32)
	// GetListenerfv fills dst, which must be large enough for param.
	GetListenerfv(param Param, dst []float32)

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	// BufferData uploads native-endian PCM bytes into the buffer.
	BufferData(id uint32, format Format, data []byte, freq int)

	GenEffect() uint32
	DeleteEffect(id uint32)
	Effecti(id uint32, param Param, value int32)
	Effectf(id uint32, param Param, value float32)

	GenAuxiliaryEffectSlot() uint32
	DeleteAuxiliaryEffectSlot(id uint32)
	AuxiliaryEffectSloti(id uint32, param Param, value int32)

	// GetError returns the current error flag and resets it to NoError.
	GetError() ErrorCode
}

// CheckError performs the aggregate error check after a batch of calls.
// It returns nil when the flag is clear, the ErrorCode otherwise.
func CheckError(ctx Context) error {
	if code := ctx.GetError(); code != NoError {
		return code
	}

	return nil
}
