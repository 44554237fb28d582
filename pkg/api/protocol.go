package api

import (
	"encoding/json"
)

// --- SERVER -> CLIENT ---

// ServerResponse is the root object the server pushes to a client.
// It is a full read-only snapshot of the session, sent every tick while a
// level is running and after every command otherwise.
type ServerResponse struct {
	// Type is "INIT" for the first frame of a connection, "UPDATE" after.
	Type string `json:"type"`

	// SessionID identifies the connection's session; echo it as token.
	SessionID string `json:"sessionId,omitempty"`

	Tick    int64   `json:"tick"`
	Elapsed float64 `json:"elapsed"` // seconds since the session started

	// Mode is one of MENU, LEVEL_SELECT, PLAYING, WON, GAME_OVER.
	Mode string `json:"mode"`

	// Level is the active level, nil on the menu screens.
	Level *LevelView `json:"level,omitempty"`

	// Levels is the catalog with progression flags, for the selector.
	Levels []LevelView `json:"levels"`

	// NextLevel is the lowest unlocked level not yet completed, or the
	// highest unlocked one once everything is done.
	NextLevel int `json:"nextLevel"`

	Player PlayerView `json:"player"`

	// Items holds the active level's items, collected ones included.
	Items []ItemView `json:"items,omitempty"`

	Predators []PredatorView `json:"predators,omitempty"`

	// Near lists uncollected items within highlight range.
	Near []string `json:"near,omitempty"`

	InventoryOpen bool `json:"inventoryOpen"`

	// Logs holds notices produced since the previous frame.
	Logs []LogEntry `json:"logs,omitempty"`

	// Events holds what happened since the previous frame, in order.
	Events []EventView `json:"events,omitempty"`
}

type Vec3View struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type LevelView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Environment   string `json:"environment"`
	Difficulty    string `json:"difficulty"`
	ItemCount     int    `json:"itemCount"`
	PredatorCount int    `json:"predatorCount"`
	Unlocked      bool   `json:"unlocked"`
	Completed     bool   `json:"completed"`
	State         string `json:"state"` // LOCKED, UNLOCKED, ACTIVE, COMPLETED
}

type PlayerView struct {
	Position   Vec3View   `json:"position"`
	Health     int        `json:"health"`
	MaxHealth  int        `json:"maxHealth"`
	Stamina    float64    `json:"stamina"`
	MaxStamina float64    `json:"maxStamina"`
	Inventory  []ItemView `json:"inventory"`
	Capacity   int        `json:"capacity"`
	Collected  int        `json:"collected"` // this level
	Total      int        `json:"total"`     // this level
	IsDead     bool       `json:"isDead"`
}

// ItemView - an item as the client renders it. Position already includes
// the bob offset for this frame.
type ItemView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Position    Vec3View `json:"position"`
	Collected   bool     `json:"collected"`
}

type PredatorView struct {
	Position Vec3View `json:"position"`
	Heading  float64  `json:"heading"`
}

// EventView is one simulation event. Fields not relevant to Type are zero.
type EventView struct {
	Type     string `json:"type"` // ITEM_COLLECTED, DAMAGE, LEVEL_COMPLETED, ...
	LevelID  int    `json:"levelId,omitempty"`
	ItemID   string `json:"itemId,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	Predator int    `json:"predator,omitempty"`
}

// LogEntry is one toast/notice line.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, NOTICE, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root object of every client message.
type ClientCommand struct {
	// Token is the session id from the INIT frame. Optional on one
	// connection, since a socket is bound to its session.
	Token string `json:"token,omitempty"`

	Action string `json:"action"`

	// Payload shape depends on Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// LevelPayload is used by START_LEVEL.
type LevelPayload struct {
	LevelID int `json:"levelId"`
}

// ItemPayload is used by COLLECT_ITEM.
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// DamagePayload is used by DAMAGE (debug sessions only).
type DamagePayload struct {
	Amount int `json:"amount"`
}

// KeyPayload is used by KEY_DOWN and KEY_UP. Code is a KeyboardEvent.code.
type KeyPayload struct {
	Code string `json:"code"`
}

// LookPayload is used by LOOK: the camera forward vector.
type LookPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
