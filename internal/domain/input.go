package domain

// Directions - the held movement keys at one instant.
type Directions struct {
	Forward  bool `json:"forward"`
	Backward bool `json:"backward"`
	Left     bool `json:"left"`
	Right    bool `json:"right"`
	Sprint   bool `json:"sprint"`
}

// Moving reports whether any movement key is held. Sprint alone is not movement.
func (d Directions) Moving() bool {
	return d.Forward || d.Backward || d.Left || d.Right
}

// Key - logical control a physical key maps to.
type Key uint8

const (
	KeyNone Key = iota
	KeyForward
	KeyBackward
	KeyLeft
	KeyRight
	KeySprint
	KeyInventory
)

// keyCodes maps browser KeyboardEvent.code values to controls.
var keyCodes = map[string]Key{
	"KeyW":       KeyForward,
	"ArrowUp":    KeyForward,
	"KeyS":       KeyBackward,
	"ArrowDown":  KeyBackward,
	"KeyA":       KeyLeft,
	"ArrowLeft":  KeyLeft,
	"KeyD":       KeyRight,
	"ArrowRight": KeyRight,
	"ShiftLeft":  KeySprint,
	"ShiftRight": KeySprint,
	"Tab":        KeyInventory,
}

// ParseKeyCode returns KeyNone for anything the game does not bind.
func ParseKeyCode(code string) Key {
	return keyCodes[code]
}
