// SPDX-License-Identifier: EPL-2.0

//go:build openal && cgo

package openal

/*
#cgo pkg-config: openal
#define AL_ALEXT_PROTOTYPES
#include <AL/al.h>
#include <AL/alc.h>
#include <AL/efx.h>
*/
import "C"

import (
	"unsafe"

	"github.com/ik5/ears/al"
)

type context struct{}

var _ al.Context = context{}

// Current returns the context bound to the currently active ALC context.
func Current() al.Context {
	return context{}
}

func (context) Valid() bool {
	return C.alcGetCurrentContext() != nil
}

func (context) Listenerf(param al.Param, value float32) {
	C.alListenerf(C.ALenum(param), C.ALfloat(value))
}

func (context) GetListenerf(param al.Param) float32 {
	var v C.ALfloat
	C.alGetListenerf(C.ALenum(param), &v)
	return float32(v)
}

func (context) Listenerfv(param al.Param, values []float32) {
	if len(values) == 0 {
		return
	}
	C.alListenerfv(C.ALenum(param), (*C.ALfloat)(unsafe.Pointer(&values[0])))
}

func (context) GetListenerfv(param al.Param, dst []float32) {
	if len(dst) < param.Size() {
		return
	}
	C.alGetListenerfv(C.ALenum(param), (*C.ALfloat)(unsafe.Pointer(&dst[0])))
}

func (context) GenBuffer() uint32 {
	var id C.ALuint
	C.alGenBuffers(1, &id)
	return uint32(id)
}

func (context) DeleteBuffer(id uint32) {
	v := C.ALuint(id)
	C.alDeleteBuffers(1, &v)
}

func (context) BufferData(id uint32, format al.Format, data []byte, freq int) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	C.alBufferData(C.ALuint(id), C.ALenum(format), p, C.ALsizei(len(data)), C.ALsizei(freq))
}

func (context) GenEffect() uint32 {
	var id C.ALuint
	C.alGenEffects(1, &id)
	return uint32(id)
}

func (context) DeleteEffect(id uint32) {
	v := C.ALuint(id)
	C.alDeleteEffects(1, &v)
}

func (context) Effecti(id uint32, param al.Param, value int32) {
	C.alEffecti(C.ALuint(id), C.ALenum(param), C.ALint(value))
}

func (context) Effectf(id uint32, param al.Param, value float32) {
	C.alEffectf(C.ALuint(id), C.ALenum(param), C.ALfloat(value))
}

func (context) GenAuxiliaryEffectSlot() uint32 {
	var id C.ALuint
	C.alGenAuxiliaryEffectSlots(1, &id)
	return uint32(id)
}

func (context) DeleteAuxiliaryEffectSlot(id uint32) {
	v := C.ALuint(id)
	C.alDeleteAuxiliaryEffectSlots(1, &v)
}

func (context) AuxiliaryEffectSloti(id uint32, param al.Param, value int32) {
	C.alAuxiliaryEffectSloti(C.ALuint(id), C.ALenum(param), C.ALint(value))
}

func (context) GetError() al.ErrorCode {
	return al.ErrorCode(C.alGetError())
}
