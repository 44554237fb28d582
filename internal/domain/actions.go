package domain

import "strings"

// ActionType - internal id of a client command.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionShowLevels
	ActionStartLevel
	ActionCollectItem
	ActionDamage
	ActionToggleInventory
	ActionRestart
	ActionBackToMenu
	ActionKeyDown
	ActionKeyUp
	ActionLook
)

// JSON -> domain
var actionStringToCmd = map[string]ActionType{
	"INIT":             ActionInit,
	"SHOW_LEVELS":      ActionShowLevels,
	"START_LEVEL":      ActionStartLevel,
	"COLLECT_ITEM":     ActionCollectItem,
	"DAMAGE":           ActionDamage,
	"TOGGLE_INVENTORY": ActionToggleInventory,
	"RESTART":          ActionRestart,
	"BACK_TO_MENU":     ActionBackToMenu,
	"KEY_DOWN":         ActionKeyDown,
	"KEY_UP":           ActionKeyUp,
	"LOOK":             ActionLook,
}

// domain -> logs
var actionCmdToString = map[ActionType]string{
	ActionInit:            "INIT",
	ActionShowLevels:      "SHOW_LEVELS",
	ActionStartLevel:      "START_LEVEL",
	ActionCollectItem:     "COLLECT_ITEM",
	ActionDamage:          "DAMAGE",
	ActionToggleInventory: "TOGGLE_INVENTORY",
	ActionRestart:         "RESTART",
	ActionBackToMenu:      "BACK_TO_MENU",
	ActionKeyDown:         "KEY_DOWN",
	ActionKeyUp:           "KEY_UP",
	ActionLook:            "LOOK",
}

// ParseAction converts the wire name to an ActionType. Case-insensitive.
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsInput reports whether the action only feeds the input sampler / camera.
// Those are high frequency and are not logged individually.
func (a ActionType) IsInput() bool {
	return a == ActionKeyDown || a == ActionKeyUp || a == ActionLook
}
