package domain

// EventType - what happened during a tick or a command.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventDamage
	EventItemCollected
	EventInventoryFull
	EventLevelCompleted
	EventLevelWon
	EventGameOver
)

var eventCmdToString = map[EventType]string{
	EventDamage:         "DAMAGE",
	EventItemCollected:  "ITEM_COLLECTED",
	EventInventoryFull:  "INVENTORY_FULL",
	EventLevelCompleted: "LEVEL_COMPLETED",
	EventLevelWon:       "LEVEL_WON",
	EventGameOver:       "GAME_OVER",
}

// String implements fmt.Stringer.
func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Event is a value; fields not relevant to Type are zero.
type Event struct {
	Type     EventType `json:"type"`
	LevelID  int       `json:"levelId,omitempty"`
	ItemID   string    `json:"itemId,omitempty"`
	Amount   int       `json:"amount,omitempty"`
	Predator int       `json:"predator,omitempty"` // index into the active predator set
}
