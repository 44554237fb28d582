package engine

import (
	"errors"
	"testing"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

func TestProgression(t *testing.T) {
	p := NewProgression(mustCatalog(t, testCatalogYAML))

	if p.State(1) != domain.LevelUnlocked || p.State(2) != domain.LevelLocked {
		t.Fatalf("Initial states: %s %s", p.State(1), p.State(2))
	}
	if err := p.Start(2); !errors.Is(err, ErrLevelLocked) {
		t.Errorf("Expected ErrLevelLocked, got %v", err)
	}
	if err := p.Start(0); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}

	if err := p.Start(1); err != nil {
		t.Fatal(err)
	}
	if p.State(1) != domain.LevelActive {
		t.Errorf("Expected ACTIVE, got %s", p.State(1))
	}

	if next := p.Complete(1); next != 2 {
		t.Errorf("Complete(1) unlocked %d, want 2", next)
	}
	p.Leave()
	if p.State(1) != domain.LevelCompleted || p.State(2) != domain.LevelUnlocked || p.State(3) != domain.LevelLocked {
		t.Errorf("States after completion: %s %s %s", p.State(1), p.State(2), p.State(3))
	}

	// Replaying a completed level keeps the mark.
	p.Start(1)
	if lvl, _ := p.Level(1); !lvl.Completed {
		t.Error("Completion lost on replay")
	}
	if p.Complete(1) != 0 {
		t.Error("Completing again should not report a new unlock")
	}

	if p.NextPlayable() != 2 {
		t.Errorf("NextPlayable = %d, want 2", p.NextPlayable())
	}
	p.Complete(2)
	p.Complete(3)
	if p.NextPlayable() != 3 {
		t.Errorf("NextPlayable with everything done = %d, want 3", p.NextPlayable())
	}
}
