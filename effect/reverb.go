// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ik5/ears/al"
	"github.com/sirupsen/logrus"
)

// ReverbProperties is a full set of standard reverb parameters. Ranges are
// the EFX ones; out of range values are rejected by the audio library with
// al.InvalidValue.
type ReverbProperties struct {
	Density             float32 // [0, 1]
	Diffusion           float32 // [0, 1]
	Gain                float32 // [0, 1]
	GainHF              float32 // [0, 1]
	DecayTime           float32 // [0.1, 20] seconds
	DecayHFRatio        float32 // [0.1, 2]
	ReflectionsGain     float32 // [0, 3.16]
	ReflectionsDelay    float32 // [0, 0.3] seconds
	LateReverbGain      float32 // [0, 10]
	LateReverbDelay     float32 // [0, 0.1] seconds
	AirAbsorptionGainHF float32 // [0.892, 1]
	RoomRolloffFactor   float32 // [0, 10]
	DecayHFLimit        bool
}

// Reverb owns a reverb effect object and the auxiliary slot it is bound to.
type Reverb struct {
	ctx al.Context
	log logrus.FieldLogger

	effect uint32
	slot   uint32

	alive *atomic.Bool
	once  sync.Once
}

// NewReverb allocates a slot and a reverb effect with default parameters.
// The effect is not bound to the slot until Bind or Apply.
//
// On failure every handle already allocated is deleted again and the
// error wraps both ErrInternal and the al.ErrorCode.
func NewReverb(ctx al.Context, opts ...Option) (*Reverb, error) {
	if ctx == nil || !ctx.Valid() {
		return nil, al.ErrNoContext
	}
	cfg := newConfig(opts)

	r := &Reverb{
		ctx:   ctx,
		log:   cfg.log,
		alive: new(atomic.Bool),
	}

	r.slot = ctx.GenAuxiliaryEffectSlot()
	r.effect = ctx.GenEffect()
	ctx.Effecti(r.effect, al.EffectType, al.EffectReverb)

	if err := al.CheckError(ctx); err != nil {
		r.rollback()
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	r.alive.Store(true)
	r.fields().Debug("reverb effect created")

	return r, nil
}

// NewReverbPreset creates a reverb, applies props and binds it to its slot.
func NewReverbPreset(ctx al.Context, props ReverbProperties, opts ...Option) (*Reverb, error) {
	r, err := NewReverb(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if err := r.Apply(props); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// rollback releases partially created handles and clears the error flag
// they left behind.
func (r *Reverb) rollback() {
	if r.effect != 0 {
		r.ctx.DeleteEffect(r.effect)
	}
	if r.slot != 0 {
		r.ctx.DeleteAuxiliaryEffectSlot(r.slot)
	}
	_ = r.ctx.GetError()

	r.fields().Debug("reverb effect creation rolled back")
}

func (r *Reverb) fields() logrus.FieldLogger {
	return r.log.WithFields(logrus.Fields{
		"effect": r.effect,
		"slot":   r.slot,
	})
}

func (r *Reverb) ready() bool {
	return r.alive.Load() && r.ctx.Valid()
}

// Apply writes every parameter of props, checks for errors once and binds
// the effect into the slot, so the new values are heard.
func (r *Reverb) Apply(props ReverbProperties) error {
	if !r.alive.Load() {
		return ErrClosed
	}
	if !r.ctx.Valid() {
		return al.ErrNoContext
	}

	r.SetDensity(props.Density)
	r.SetDiffusion(props.Diffusion)
	r.SetGain(props.Gain)
	r.SetGainHF(props.GainHF)
	r.SetDecayTime(props.DecayTime)
	r.SetDecayHFRatio(props.DecayHFRatio)
	r.SetReflectionsGain(props.ReflectionsGain)
	r.SetReflectionsDelay(props.ReflectionsDelay)
	r.SetLateReverbGain(props.LateReverbGain)
	r.SetLateReverbDelay(props.LateReverbDelay)
	r.SetAirAbsorptionGainHF(props.AirAbsorptionGainHF)
	r.SetRoomRolloffFactor(props.RoomRolloffFactor)
	r.SetDecayHFLimit(props.DecayHFLimit)

	if err := al.CheckError(r.ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	r.Bind()
	return nil
}

func (r *Reverb) setf(param al.Param, value float32) {
	if !r.ready() {
		return
	}
	r.ctx.Effectf(r.effect, param, value)
}

func (r *Reverb) SetDensity(v float32)             { r.setf(al.ReverbDensity, v) }
func (r *Reverb) SetDiffusion(v float32)           { r.setf(al.ReverbDiffusion, v) }
func (r *Reverb) SetGain(v float32)                { r.setf(al.ReverbGain, v) }
func (r *Reverb) SetGainHF(v float32)              { r.setf(al.ReverbGainHF, v) }
func (r *Reverb) SetDecayTime(v float32)           { r.setf(al.ReverbDecayTime, v) }
func (r *Reverb) SetDecayHFRatio(v float32)        { r.setf(al.ReverbDecayHFRatio, v) }
func (r *Reverb) SetReflectionsGain(v float32)     { r.setf(al.ReverbReflectionsGain, v) }
func (r *Reverb) SetReflectionsDelay(v float32)    { r.setf(al.ReverbReflectionsDelay, v) }
func (r *Reverb) SetLateReverbGain(v float32)      { r.setf(al.ReverbLateReverbGain, v) }
func (r *Reverb) SetLateReverbDelay(v float32)     { r.setf(al.ReverbLateReverbDelay, v) }
func (r *Reverb) SetAirAbsorptionGainHF(v float32) { r.setf(al.ReverbAirAbsorptionGainHF, v) }
func (r *Reverb) SetRoomRolloffFactor(v float32)   { r.setf(al.ReverbRoomRolloffFactor, v) }

// SetDecayHFLimit limits high frequency decay by air absorption.
func (r *Reverb) SetDecayHFLimit(limit bool) {
	if !r.ready() {
		return
	}

	v := al.False
	if limit {
		v = al.True
	}
	r.ctx.Effecti(r.effect, al.ReverbDecayHFLimit, v)
}

// Bind loads the effect into the slot. Parameter changes made after a bind
// are only heard once the effect is bound again.
func (r *Reverb) Bind() {
	if !r.ready() {
		return
	}
	r.ctx.AuxiliaryEffectSloti(r.slot, al.EffectSlotEffect, int32(r.effect))
}

// SlotID returns the auxiliary slot handle, also after Close.
func (r *Reverb) SlotID() uint32 { return r.slot }

// Slot returns a reference to the slot that tracks the reverb's lifetime.
func (r *Reverb) Slot() SlotRef {
	return SlotRef{id: r.slot, alive: r.alive}
}

// Close unbinds the effect and deletes both handles. Only the first call
// does anything. Without a context the handles are abandoned: they died
// with it.
func (r *Reverb) Close() {
	r.once.Do(func() {
		r.alive.Store(false)

		if !r.ctx.Valid() {
			r.fields().Debug("reverb effect dropped without context")
			return
		}

		r.ctx.AuxiliaryEffectSloti(r.slot, al.EffectSlotEffect, al.EffectNull)
		r.ctx.DeleteEffect(r.effect)
		r.ctx.DeleteAuxiliaryEffectSlot(r.slot)

		if err := al.CheckError(r.ctx); err != nil {
			r.fields().WithError(err).Warn("failed to release reverb effect completely, a source is probably still referencing it")
			return
		}

		r.fields().Debug("reverb effect released")
	})
}
