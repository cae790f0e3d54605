// SPDX-License-Identifier: EPL-2.0

// Package effect wraps EFX reverb: an effect object configured with reverb
// parameters and the auxiliary effect slot it is loaded into. Sources send
// to the slot to be reverberated.
//
//	rev, err := effect.NewReverbPreset(ctx, effect.Hangar.Properties())
//	if err != nil {
//	    return err
//	}
//	defer rev.Close()
//
//	slot, _ := rev.Slot().ID()
//
// A Reverb owns both handles and releases them together in Close. Close is
// safe to call more than once; teardown failures are logged, never
// returned, because a slot still referenced by a source cannot be deleted.
package effect
