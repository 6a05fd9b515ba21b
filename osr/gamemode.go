package osr

import "fmt"

// GameMode identifies the ruleset a replay was recorded under.
type GameMode byte

const (
	ModeStandard GameMode = iota
	ModeTaiko
	ModeCatchTheBeat
	ModeMania
)

func (m GameMode) valid() bool { return m <= ModeMania }

func (m GameMode) String() string {
	switch m {
	case ModeStandard:
		return "osu!"
	case ModeTaiko:
		return "taiko"
	case ModeCatchTheBeat:
		return "catch the beat"
	case ModeMania:
		return "mania"
	}
	return fmt.Sprintf("GameMode(%d)", byte(m))
}
