package osr

import (
	"fmt"
	"strings"
)

// Mods is the bitmask of gameplay modifiers active on a score. The raw
// 32-bit value is kept as-is, so bits the package does not know about
// survive a decode round intact.
type Mods uint32

const (
	ModNoFail Mods = 1 << iota
	ModEasy
	ModTouchDevice
	ModHidden
	ModHardRock
	ModSuddenDeath
	ModDoubleTime
	ModRelax
	ModHalfTime
	ModNightcore // always set together with ModDoubleTime
	ModFlashlight
	ModAutoplay
	ModSpunOut
	ModAutopilot
	ModPerfect // always set together with ModSuddenDeath
	ModKey4
	ModKey5
	ModKey6
	ModKey7
	ModKey8
	ModFadeIn
	ModRandom
	ModCinema
	ModTarget
	ModKey9
	ModKeyCoop
	ModKey1
	ModKey3
	ModKey2
	ModScoreV2
	ModMirror

	ModNone Mods = 0
)

// Has reports whether every bit of flag is set.
func (m Mods) Has(flag Mods) bool { return m&flag == flag }

// Active returns the known mods set in m, lowest bit first.
func (m Mods) Active() []Mods {
	var out []Mods
	for _, n := range modNames {
		if m&n.bit != 0 {
			out = append(out, n.bit)
		}
	}
	return out
}

// String renders the usual osu! acronyms, comma separated. Unknown bits are
// kept as a trailing hex residue.
func (m Mods) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	rest := m
	for _, n := range modNames {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(parts, ",")
}

var modNames = []struct {
	bit  Mods
	name string
}{
	{ModNoFail, "NF"},
	{ModEasy, "EZ"},
	{ModTouchDevice, "TD"},
	{ModHidden, "HD"},
	{ModHardRock, "HR"},
	{ModSuddenDeath, "SD"},
	{ModDoubleTime, "DT"},
	{ModRelax, "RX"},
	{ModHalfTime, "HT"},
	{ModNightcore, "NC"},
	{ModFlashlight, "FL"},
	{ModAutoplay, "AT"},
	{ModSpunOut, "SO"},
	{ModAutopilot, "AP"},
	{ModPerfect, "PF"},
	{ModKey4, "4K"},
	{ModKey5, "5K"},
	{ModKey6, "6K"},
	{ModKey7, "7K"},
	{ModKey8, "8K"},
	{ModFadeIn, "FI"},
	{ModRandom, "RD"},
	{ModCinema, "CN"},
	{ModTarget, "TP"},
	{ModKey9, "9K"},
	{ModKeyCoop, "CO"},
	{ModKey1, "1K"},
	{ModKey3, "3K"},
	{ModKey2, "2K"},
	{ModScoreV2, "V2"},
	{ModMirror, "MR"},
}
