// SPDX-License-Identifier: EPL-2.0

// Package listener manages the listener of the scene: its gain, position,
// velocity and orientation.
//
// The listener is global state of the audio context. A Listener only holds
// the context capability; two Listeners over the same context observe the
// same values.
//
// Every call checks that the context is valid first. Without a context the
// setters do nothing and the getters return the zero value with ok set to
// false, so the calls never fail:
//
//	l := listener.New(ctx)
//	l.SetPosition(al.Vec3{45, 90, 35})
//	if pos, ok := l.Position(); ok {
//	    fmt.Println(pos)
//	}
package listener

import "github.com/ik5/ears/al"

// Listener is a façade over the listener state of a context.
type Listener struct {
	ctx al.Context
}

// New returns a Listener issuing its calls through ctx.
func New(ctx al.Context) *Listener {
	return &Listener{ctx: ctx}
}

// DefaultOrientation returns the orientation of a freshly created context:
// looking down -Z with +Y up.
func DefaultOrientation() (at, up al.Vec3) {
	return al.Vec3{0, 0, -1}, al.Vec3{0, 1, 0}
}

// Ready reports whether a valid context is current.
func (l *Listener) Ready() bool {
	return l.ctx != nil && l.ctx.Valid()
}

// SetVolume sets the global gain of the scene.
//
// 1.0 means unattenuated. Each division by 2 is an attenuation of about
// -6dB, each multiplication by 2 an amplification of about +6dB. The value
// is passed through as is.
func (l *Listener) SetVolume(volume float32) {
	if !l.Ready() {
		return
	}
	l.ctx.Listenerf(al.Gain, volume)
}

// Volume returns the global gain of the scene.
func (l *Listener) Volume() (float32, bool) {
	if !l.Ready() {
		return 0, false
	}
	return l.ctx.GetListenerf(al.Gain), true
}

// SetPosition sets the listener location. Default is the origin.
func (l *Listener) SetPosition(position al.Vec3) {
	l.setVec3(al.Position, position)
}

// Position returns the listener location.
func (l *Listener) Position() (al.Vec3, bool) {
	return l.vec3(al.Position)
}

// SetVelocity sets the velocity of the listener. Default is zero.
func (l *Listener) SetVelocity(velocity al.Vec3) {
	l.setVec3(al.Velocity, velocity)
}

// Velocity returns the velocity of the listener.
func (l *Listener) Velocity() (al.Vec3, bool) {
	return l.vec3(al.Velocity)
}

// SetOrientation sets the front (at) and top (up) directions of the
// listener in a single call.
func (l *Listener) SetOrientation(at, up al.Vec3) {
	if !l.Ready() {
		return
	}

	orientation := [6]float32{at[0], at[1], at[2], up[0], up[1], up[2]}
	l.ctx.Listenerfv(al.Orientation, orientation[:])
}

// Orientation returns the front (at) and top (up) directions.
func (l *Listener) Orientation() (at, up al.Vec3, ok bool) {
	if !l.Ready() {
		return at, up, false
	}

	var orientation [6]float32
	l.ctx.GetListenerfv(al.Orientation, orientation[:])

	copy(at[:], orientation[:3])
	copy(up[:], orientation[3:])
	return at, up, true
}

func (l *Listener) setVec3(param al.Param, v al.Vec3) {
	if !l.Ready() {
		return
	}
	l.ctx.Listenerfv(param, v[:])
}

func (l *Listener) vec3(param al.Param) (al.Vec3, bool) {
	var v al.Vec3
	if !l.Ready() {
		return v, false
	}
	l.ctx.GetListenerfv(param, v[:])
	return v, true
}
