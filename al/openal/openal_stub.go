// SPDX-License-Identifier: EPL-2.0

//go:build !openal || !cgo

package openal

import "github.com/ik5/ears/al"

// Stub used when the native library is not linked in. It is never valid.
type context struct{}

var _ al.Context = context{}

// Current returns a context that reports itself invalid.
func Current() al.Context {
	return context{}
}

func (context) Valid() bool { return false }
func (context) Listenerf(al.Param, float32) {}
func (context) GetListenerf(al.Param) float32 { return 0 }
func (context) Listenerfv(al.Param, []float32) {}
func (context) GetListenerfv(al.Param, []float32) {}
func (context) GenBuffer() uint32 { return 0 }
func (context) DeleteBuffer(uint32) {}
func (context) BufferData(uint32, al.Format, []byte, int) {}
func (context) GenEffect() uint32 { return 0 }
func (context) DeleteEffect(uint32) {}
func (context) Effecti(uint32, al.Param, int32) {}
func (context) Effectf(uint32, al.Param, float32) {}
func (context) GenAuxiliaryEffectSlot() uint32 { return 0 }
func (context) DeleteAuxiliaryEffectSlot(uint32) {}
func (context) AuxiliaryEffectSloti(uint32, al.Param, int32) {}
func (context) GetError() al.ErrorCode { return al.NoError }
