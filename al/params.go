// SPDX-License-Identifier: EPL-2.0

package al

// Param names a property of a listener, effect or effect slot.
// Values are the ones defined by al.h and efx.h.
type Param int32

// Listener properties.
const (
	Position    Param = 0x1004
	Velocity    Param = 0x1006
	Gain        Param = 0x100A
	Orientation Param = 0x100F
)

// Effect and auxiliary effect slot properties.
const (
	EffectType       Param = 0x8001
	EffectSlotEffect Param = 0x0001
)

// Standard reverb properties.
const (
	ReverbDensity             Param = 0x0001
	ReverbDiffusion           Param = 0x0002
	ReverbGain                Param = 0x0003
	ReverbGainHF              Param = 0x0004
	ReverbDecayTime           Param = 0x0005
	ReverbDecayHFRatio        Param = 0x0006
	ReverbReflectionsGain     Param = 0x0007
	ReverbReflectionsDelay    Param = 0x0008
	ReverbLateReverbGain      Param = 0x0009
	ReverbLateReverbDelay     Param = 0x000A
	ReverbAirAbsorptionGainHF Param = 0x000B
	ReverbRoomRolloffFactor   Param = 0x000C
	ReverbDecayHFLimit        Param = 0x000D
)

// Values accepted by EffectType and EffectSlotEffect.
const (
	EffectNull   int32 = 0x0000
	EffectReverb int32 = 0x0001
)

// Boolean values.
const (
	False int32 = 0
	True  int32 = 1
)

// Size returns how many floats a vector property holds, 1 for scalars.
func (p Param) Size() int {
	switch p {
	case Position, Velocity:
		return 3
	case Orientation:
		return 6
	default:
		return 1
	}
}
