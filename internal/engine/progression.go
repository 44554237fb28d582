package engine

import (
	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/pkg/levels"
)

// Progression tracks unlock/completion flags and the active level.
// Flags only ever go from false to true.
type Progression struct {
	levels []domain.Level
	active int // 0 = none
}

func NewProgression(catalog *levels.Catalog) *Progression {
	return &Progression{levels: catalog.Summaries()}
}

func (p *Progression) get(id int) *domain.Level {
	if id < 1 || id > len(p.levels) {
		return nil
	}
	return &p.levels[id-1]
}

// Start makes an unlocked level the active one.
func (p *Progression) Start(id int) error {
	lvl := p.get(id)
	if lvl == nil {
		return ErrUnknownLevel
	}
	if !lvl.Unlocked {
		return ErrLevelLocked
	}
	p.active = id
	return nil
}

// Complete marks the level completed and unlocks the next one.
// Returns the id of the newly unlocked level, or 0.
func (p *Progression) Complete(id int) int {
	lvl := p.get(id)
	if lvl == nil {
		return 0
	}
	lvl.Completed = true
	if next := p.get(id + 1); next != nil && !next.Unlocked {
		next.Unlocked = true
		return next.ID
	}
	return 0
}

// Leave clears the active level. Flags are untouched.
func (p *Progression) Leave() {
	p.active = 0
}

func (p *Progression) Active() int {
	return p.active
}

// State derives the lifecycle state of a level.
func (p *Progression) State(id int) domain.LevelState {
	lvl := p.get(id)
	switch {
	case lvl == nil || !lvl.Unlocked:
		return domain.LevelLocked
	case id == p.active:
		return domain.LevelActive
	case lvl.Completed:
		return domain.LevelCompleted
	default:
		return domain.LevelUnlocked
	}
}

// Level returns a copy of one level's metadata and flags.
func (p *Progression) Level(id int) (domain.Level, bool) {
	lvl := p.get(id)
	if lvl == nil {
		return domain.Level{}, false
	}
	return *lvl, true
}

// Levels returns a copy of all levels.
func (p *Progression) Levels() []domain.Level {
	out := make([]domain.Level, len(p.levels))
	copy(out, p.levels)
	return out
}

// NextPlayable returns the lowest unlocked, not yet completed level, or
// the highest unlocked one when everything is done.
func (p *Progression) NextPlayable() int {
	last := 0
	for _, lvl := range p.levels {
		if !lvl.Unlocked {
			continue
		}
		if !lvl.Completed {
			return lvl.ID
		}
		last = lvl.ID
	}
	return last
}
