// SPDX-License-Identifier: EPL-2.0

// Package al describes the boundary between ears and the native audio
// subsystem (OpenAL with the EFX extension).
//
// Nothing in this package talks to a device. It defines the Context
// capability every other package calls through, the OpenAL/EFX enumeration
// values those calls are keyed by, and the error codes the subsystem raises.
//
// # Context
//
// A Context is the live audio session. Every public entry point of ears
// checks Context.Valid before touching native state:
//
//	ctx := openal.Current()
//	if !ctx.Valid() {
//	    // nothing can be played
//	}
//
// Passing the Context explicitly, rather than reaching for process-wide
// state, lets tests substitute a fake.
//
// # Errors
//
// The subsystem keeps a single sticky error flag. CheckError reads and clears
// it and reports the code as an error value:
//
//	id := ctx.GenBuffer()
//	ctx.BufferData(id, al.FormatMono16, data, 44100)
//	if err := al.CheckError(ctx); err != nil {
//	    var code al.ErrorCode
//	    errors.As(err, &code) // code == al.InvalidValue, ...
//	}
//
// # Coordinates
//
// Positions and velocities use a right handed coordinate system: X points
// right, Y points up and Z points towards the viewer. Flip the sign of Z to
// convert from a left handed system.
package al
