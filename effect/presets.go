// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"fmt"
	"strings"
)

// Preset names an environment from the EFX preset collection.
type Preset int

const (
	Generic Preset = iota
	PaddedCell
	Room
	Bathroom
	LivingRoom
	StoneRoom
	Auditorium
	ConcertHall
	Cave
	Arena
	Hangar
	Hallway
	Underwater
)

var presetNames = [...]string{
	Generic:     "Generic",
	PaddedCell:  "PaddedCell",
	Room:        "Room",
	Bathroom:    "Bathroom",
	LivingRoom:  "LivingRoom",
	StoneRoom:   "StoneRoom",
	Auditorium:  "Auditorium",
	ConcertHall: "ConcertHall",
	Cave:        "Cave",
	Arena:       "Arena",
	Hangar:      "Hangar",
	Hallway:     "Hallway",
	Underwater:  "Underwater",
}

// preset fills the fields shared by all presets of the table.
func preset(density, gainHF, decay, decayHFRatio, reflGain, reflDelay, lateGain, lateDelay float32, limit bool) ReverbProperties {
	return ReverbProperties{
		Density:             density,
		Diffusion:           1,
		Gain:                0.3162,
		GainHF:              gainHF,
		DecayTime:           decay,
		DecayHFRatio:        decayHFRatio,
		ReflectionsGain:     reflGain,
		ReflectionsDelay:    reflDelay,
		LateReverbGain:      lateGain,
		LateReverbDelay:     lateDelay,
		AirAbsorptionGainHF: 0.9943,
		RoomRolloffFactor:   0,
		DecayHFLimit:        limit,
	}
}

var presetProperties = [...]ReverbProperties{
	Generic:     preset(1.0000, 0.8913, 1.49, 0.83, 0.0500, 0.007, 1.2589, 0.011, true),
	PaddedCell:  preset(0.1715, 0.0010, 0.17, 0.10, 0.2500, 0.001, 1.2691, 0.002, true),
	Room:        preset(0.4287, 0.5929, 0.40, 0.83, 0.1503, 0.002, 1.0629, 0.003, true),
	Bathroom:    preset(0.1715, 0.2512, 1.49, 0.54, 0.6531, 0.007, 3.2734, 0.011, true),
	LivingRoom:  preset(0.9766, 0.0011, 0.50, 0.10, 0.2051, 0.003, 0.2805, 0.004, true),
	StoneRoom:   preset(1.0000, 0.7079, 2.31, 0.64, 0.4411, 0.012, 1.1003, 0.017, true),
	Auditorium:  preset(1.0000, 0.5781, 4.32, 0.59, 0.4032, 0.020, 0.7170, 0.030, true),
	ConcertHall: preset(1.0000, 0.5623, 3.92, 0.70, 0.2427, 0.020, 0.9977, 0.029, true),
	Cave:        preset(1.0000, 1.0000, 2.91, 1.30, 0.5003, 0.015, 0.7063, 0.022, false),
	Arena:       preset(1.0000, 0.4477, 7.24, 0.33, 0.2612, 0.020, 1.0186, 0.030, true),
	Hangar:      preset(1.0000, 0.3162, 10.05, 0.23, 0.5000, 0.020, 1.2560, 0.030, true),
	Hallway:     preset(0.3645, 0.7079, 1.49, 0.59, 0.2458, 0.007, 1.6615, 0.011, true),
	Underwater:  preset(0.3645, 0.0100, 1.49, 0.10, 0.5963, 0.007, 7.0795, 0.011, true),
}

// Presets lists every known preset in declaration order.
func Presets() []Preset {
	out := make([]Preset, len(presetProperties))
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

func (p Preset) valid() bool { return p >= 0 && int(p) < len(presetProperties) }

func (p Preset) String() string {
	if !p.valid() {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// Properties returns the parameters of p. Unknown presets yield Generic,
// which holds the EFX defaults.
func (p Preset) Properties() ReverbProperties {
	if !p.valid() {
		return presetProperties[Generic]
	}
	return presetProperties[p]
}

// ParsePreset looks a preset up by name. Case, spaces, dashes and
// underscores are ignored, so "concert_hall" and "Concert Hall" both name
// ConcertHall.
func ParsePreset(name string) (Preset, error) {
	key := normalize(name)
	for i, n := range presetNames {
		if normalize(n) == key {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// UnmarshalText implements encoding.TextUnmarshaler so presets can be read
// from configuration files.
func (p *Preset) UnmarshalText(text []byte) error {
	v, err := ParsePreset(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Preset) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
	}
	return []byte(p.String()), nil
}
