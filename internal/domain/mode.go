package domain

import "strings"

// UIMode - which screen the presentation should show.
type UIMode uint8

const (
	ModeMenu UIMode = iota
	ModeLevelSelect
	ModePlaying
	ModeWon
	ModeGameOver
)

var modeToString = map[UIMode]string{
	ModeMenu:        "MENU",
	ModeLevelSelect: "LEVEL_SELECT",
	ModePlaying:     "PLAYING",
	ModeWon:         "WON",
	ModeGameOver:    "GAME_OVER",
}

func (m UIMode) String() string {
	if val, ok := modeToString[m]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseMode(s string) (UIMode, bool) {
	upper := strings.ToUpper(s)
	for k, v := range modeToString {
		if v == upper {
			return k, true
		}
	}
	return ModeMenu, false
}

func (m UIMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *UIMode) UnmarshalText(b []byte) error {
	v, _ := ParseMode(string(b))
	*m = v
	return nil
}

// IsPlaying reports whether the simulation should advance.
func (m UIMode) IsPlaying() bool {
	return m == ModePlaying
}
