package engine

import "github.com/nancyzera/jurassic-game/internal/domain"

// SessionSnapshot is a deep copy of the session state. Nothing in it
// aliases the live session.
type SessionSnapshot struct {
	ID      string
	Tick    int64
	Elapsed float64
	Mode    domain.UIMode

	// Level is the level being played (or just finished); nil on menus.
	Level      *domain.Level
	LevelState domain.LevelState
	Levels     []domain.Level
	NextLevel  int

	Player        domain.PlayerState
	Items         []domain.Item
	Predators     []domain.Predator
	Near          []string
	InventoryOpen bool
	Collected     int
	Total         int
	WinPending    bool

	// Scheduled lists the deferred transitions still waiting to fire.
	Scheduled []ScheduledTask
}

// Snapshot copies the current state for presentation.
func (s *Session) Snapshot() SessionSnapshot {
	snap := SessionSnapshot{
		ID:            s.ID,
		Tick:          s.tick,
		Elapsed:       s.elapsed,
		Mode:          s.mode,
		Levels:        s.progression.Levels(),
		NextLevel:     s.progression.NextPlayable(),
		Player:        s.player.Clone(),
		Items:         append([]domain.Item(nil), s.items...),
		Predators:     append([]domain.Predator(nil), s.predators...),
		Near:          append([]string(nil), s.near...),
		InventoryOpen: s.inventoryOpen,
		Collected:     s.collected,
		Total:         len(s.items),
		WinPending:    s.scheduler.Pending(winTaskKey),
		Scheduled:     s.scheduler.DebugDump(),
	}
	if id := s.progression.Active(); id != 0 {
		if lvl, ok := s.progression.Level(id); ok {
			snap.Level = &lvl
			snap.LevelState = s.progression.State(id)
		}
	}
	return snap
}

// LevelState returns the lifecycle state of a level in this session.
func (s *Session) LevelState(id int) domain.LevelState {
	return s.progression.State(id)
}
