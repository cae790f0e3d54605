// SPDX-License-Identifier: EPL-2.0

// Package ears is a small layer over OpenAL for positional sound.
//
// The module is split by concern:
//
//   - al holds the Context capability every other package talks to, the
//     parameter and format enums, and the sticky error check. al/openal
//     implements the Context with cgo against the current context of the
//     system OpenAL library.
//   - listener configures the single listener of a context: volume,
//     position, velocity and orientation.
//   - effect creates EFX reverb effects bound to auxiliary slots, with the
//     standard environment presets.
//   - sound loads a file into an OpenAL buffer.
//   - sndfile decodes WAV, AIFF, MP3 and Ogg Vorbis files fully into 16-bit
//     PCM, optionally mixed to mono and resampled.
//   - audio and formats/* provide the streaming decoders and DSP stages
//     sndfile is built on.
//
// # Quick Start
//
//	// the application has made an OpenAL context current
//	ctx := openal.Current()
//
//	l := listener.New(ctx)
//	l.SetPosition(al.Vec3{0, 1.7, 0})
//
//	hall, err := effect.NewReverbPreset(ctx, effect.ConcertHall.Properties())
//	if err != nil {
//	    return err
//	}
//	defer hall.Close()
//
//	steps, err := sound.NewData(ctx, "steps.ogg",
//	    sound.WithFileOptions(sndfile.WithMono()))
//	if err != nil {
//	    return err
//	}
//	defer steps.Release()
//
// Sources are not part of the module; attach steps.Buffer() to a source and
// route it to hall.SlotID() with the native API.
//
// Every value holds the Context it was created with. Operations on a value
// whose context is gone are no-ops, getters report ok == false.
package ears
