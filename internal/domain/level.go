package domain

import (
	"fmt"
	"strings"
)

// EnvironmentKind - terrain family of a level. Drives decoration only.
type EnvironmentKind uint8

const (
	EnvironmentUnknown EnvironmentKind = iota
	EnvironmentJungle
	EnvironmentCave
	EnvironmentRiver
)

var environmentToString = map[EnvironmentKind]string{
	EnvironmentJungle: "jungle",
	EnvironmentCave:   "cave",
	EnvironmentRiver:  "river",
}

func (e EnvironmentKind) String() string {
	if val, ok := environmentToString[e]; ok {
		return val
	}
	return "unknown"
}

func ParseEnvironment(s string) EnvironmentKind {
	lower := strings.ToLower(s)
	for k, v := range environmentToString {
		if v == lower {
			return k
		}
	}
	return EnvironmentUnknown
}

func (e EnvironmentKind) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EnvironmentKind) UnmarshalText(b []byte) error {
	v := ParseEnvironment(string(b))
	if v == EnvironmentUnknown {
		return fmt.Errorf("unknown environment %q", string(b))
	}
	*e = v
	return nil
}

// Difficulty is informational; it does not change any rule.
type Difficulty uint8

const (
	DifficultyUnknown Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

var difficultyToString = map[Difficulty]string{
	DifficultyEasy:   "Easy",
	DifficultyMedium: "Medium",
	DifficultyHard:   "Hard",
}

func (d Difficulty) String() string {
	if val, ok := difficultyToString[d]; ok {
		return val
	}
	return "Unknown"
}

func ParseDifficulty(s string) Difficulty {
	for k, v := range difficultyToString {
		if strings.EqualFold(v, s) {
			return k
		}
	}
	return DifficultyUnknown
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v := ParseDifficulty(string(b))
	if v == DifficultyUnknown {
		return fmt.Errorf("unknown difficulty %q", string(b))
	}
	*d = v
	return nil
}

// LevelState - lifecycle position of a level.
//
//	Locked -> Unlocked -> Active -> Completed
//
// A completed level can become Active again (replay) but never Locked.
type LevelState uint8

const (
	LevelLocked LevelState = iota
	LevelUnlocked
	LevelActive
	LevelCompleted
)

var levelStateToString = map[LevelState]string{
	LevelLocked:    "LOCKED",
	LevelUnlocked:  "UNLOCKED",
	LevelActive:    "ACTIVE",
	LevelCompleted: "COMPLETED",
}

func (s LevelState) String() string {
	if val, ok := levelStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func (s LevelState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Level - one entry of the level catalog plus its progression flags.
type Level struct {
	ID            int             `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Description   string          `json:"description" yaml:"description"`
	Environment   EnvironmentKind `json:"environment" yaml:"environment"`
	Difficulty    Difficulty      `json:"difficulty" yaml:"difficulty"`
	ItemCount     int             `json:"itemCount" yaml:"-"`
	PredatorCount int             `json:"predatorCount" yaml:"predators"`
	Unlocked      bool            `json:"unlocked" yaml:"-"`
	Completed     bool            `json:"completed" yaml:"-"`
}
