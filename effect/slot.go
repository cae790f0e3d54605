// SPDX-License-Identifier: EPL-2.0

package effect

import "sync/atomic"

// SlotRef is a non-owning reference to the auxiliary effect slot of a
// Reverb. It stops reporting the id once the reverb is closed, so holders
// do not route sources to a deleted slot.
type SlotRef struct {
	id    uint32
	alive *atomic.Bool
}

// ID returns the slot handle and whether it is still alive.
func (s SlotRef) ID() (uint32, bool) {
	if !s.Valid() {
		return 0, false
	}
	return s.id, true
}

func (s SlotRef) Valid() bool {
	return s.alive != nil && s.alive.Load()
}
