package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nancyzera/jurassic-game/pkg/api"
)

func newTestService(t *testing.T, debug bool) *GameService {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = 7
	cfg.TickHz = 120
	cfg.Debug = debug
	s := NewService(cfg, mustCatalog(t, testCatalogYAML))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.Shutdown(ctx)
	})
	return s
}

// waitFor reads frames until one matches or the deadline passes.
func waitFor(t *testing.T, updates <-chan api.ServerResponse, match func(api.ServerResponse) bool) api.ServerResponse {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg, ok := <-updates:
			if !ok {
				t.Fatal("Update channel closed")
			}
			if match(msg) {
				return msg
			}
		case <-deadline:
			t.Fatal("Timed out waiting for a matching frame")
		}
	}
}

func command(action string, payload any) api.ClientCommand {
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		cmd.Payload, _ = json.Marshal(payload)
	}
	return cmd
}

func hasLog(msg api.ServerResponse, text string) bool {
	for _, l := range msg.Logs {
		if l.Text == text {
			return true
		}
	}
	return false
}

func hasEvent(msg api.ServerResponse, typ, itemID string) bool {
	for _, ev := range msg.Events {
		if ev.Type == typ && ev.ItemID == itemID {
			return true
		}
	}
	return false
}

func TestService_SessionLifecycle(t *testing.T) {
	s := newTestService(t, false)

	id, updates, err := s.CreateSession()
	if err != nil {
		t.Fatal(err)
	}

	first := waitFor(t, updates, func(m api.ServerResponse) bool { return m.Type == "INIT" })
	if first.SessionID != id || first.Mode != "MENU" || len(first.Levels) != 3 {
		t.Errorf("INIT frame = %+v", first)
	}
	if first.Levels[0].State != "UNLOCKED" || first.Levels[1].State != "LOCKED" {
		t.Errorf("Level states: %s %s", first.Levels[0].State, first.Levels[1].State)
	}
	if first.NextLevel != 1 {
		t.Errorf("NextLevel = %d, want 1", first.NextLevel)
	}

	if err := s.ProcessCommand(id, command("START_LEVEL", api.LevelPayload{LevelID: 1})); err != nil {
		t.Fatal(err)
	}
	playing := waitFor(t, updates, func(m api.ServerResponse) bool { return m.Mode == "PLAYING" })
	if playing.Level == nil || playing.Level.ID != 1 || playing.Level.State != "ACTIVE" {
		t.Errorf("Level = %+v", playing.Level)
	}

	// Item a sits next to the spawn point and is picked up by the ticks.
	picked := waitFor(t, updates, func(m api.ServerResponse) bool { return m.Player.Collected == 1 })
	if !hasEvent(picked, "ITEM_COLLECTED", "a") {
		t.Errorf("Pickup frame events = %+v", picked.Events)
	}

	if st, ok := s.SessionStatus(id); !ok || st.LevelID != 1 {
		t.Errorf("Status = %+v, %v", st, ok)
	}
	if len(s.Sessions()) != 1 || s.SessionCount() != 1 {
		t.Errorf("Expected one session")
	}

	s.CloseSession(id)
	if s.SessionCount() != 0 {
		t.Error("Session still registered after close")
	}
	for range updates {
		// drain until closed
	}
	if err := s.ProcessCommand(id, command("INIT", nil)); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Expected ErrUnknownSession, got %v", err)
	}
}

func TestService_RejectsBadCommands(t *testing.T) {
	s := newTestService(t, false)
	id, updates, _ := s.CreateSession()
	waitFor(t, updates, func(m api.ServerResponse) bool { return m.Type == "INIT" })

	if err := s.ProcessCommand(id, command("FLY", nil)); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
	bad := command("INIT", nil)
	bad.Token = "someone-else"
	if err := s.ProcessCommand(id, bad); err == nil {
		t.Error("Expected token mismatch error")
	}

	// Locked level: accepted on the wire, rejected by the session.
	s.ProcessCommand(id, command("START_LEVEL", api.LevelPayload{LevelID: 3}))
	msg := waitFor(t, updates, func(m api.ServerResponse) bool { return len(m.Logs) > 0 })
	if msg.Mode != "MENU" || msg.Logs[0].Type != "ERROR" {
		t.Errorf("Locked start: mode %s logs %+v", msg.Mode, msg.Logs)
	}

	// Malformed payload surfaces as an error log too.
	s.ProcessCommand(id, command("START_LEVEL", api.LevelPayload{LevelID: 0}))
	msg = waitFor(t, updates, func(m api.ServerResponse) bool { return len(m.Logs) > 0 })
	if msg.Logs[0].Type != "ERROR" {
		t.Errorf("Invalid payload logs: %+v", msg.Logs)
	}
}

func TestService_FramesCarryEventsAndSchedule(t *testing.T) {
	s := newTestService(t, false)
	id, updates, _ := s.CreateSession()
	s.ProcessCommand(id, command("START_LEVEL", api.LevelPayload{LevelID: 1}))
	s.ProcessCommand(id, command("COLLECT_ITEM", api.ItemPayload{ItemID: "b"}))
	s.ProcessCommand(id, command("COLLECT_ITEM", api.ItemPayload{ItemID: "c"}))

	// Events from commands ride on the next frame, so gather across frames.
	var sawB, sawC bool
	done := waitFor(t, updates, func(m api.ServerResponse) bool {
		sawB = sawB || hasEvent(m, "ITEM_COLLECTED", "b")
		sawC = sawC || hasEvent(m, "ITEM_COLLECTED", "c")
		return hasEvent(m, "LEVEL_COMPLETED", "")
	})
	if !sawB || !sawC {
		t.Errorf("Collect events missing, b=%v c=%v", sawB, sawC)
	}
	if done.NextLevel != 2 {
		t.Errorf("NextLevel after completing 1 = %d, want 2", done.NextLevel)
	}

	// The win screen is deferred; the debug status shows it queued.
	st, _ := s.SessionStatus(id)
	if len(st.Scheduled) != 1 || st.Scheduled[0].Key != winTaskKey {
		t.Errorf("Scheduled = %+v, want the win task", st.Scheduled)
	}

	won := waitFor(t, updates, func(m api.ServerResponse) bool { return m.Mode == "WON" })
	if !hasEvent(won, "LEVEL_WON", "") {
		t.Errorf("WON frame events = %+v", won.Events)
	}
	if st, _ := s.SessionStatus(id); len(st.Scheduled) != 0 {
		t.Errorf("Scheduled after win = %+v", st.Scheduled)
	}
}

func TestService_DamageNeedsDebug(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		s := newTestService(t, false)
		id, updates, _ := s.CreateSession()
		s.ProcessCommand(id, command("START_LEVEL", api.LevelPayload{LevelID: 1}))
		s.ProcessCommand(id, command("DAMAGE", api.DamagePayload{Amount: 50}))

		msg := waitFor(t, updates, func(m api.ServerResponse) bool { return hasLog(m, "Debug commands are disabled.") })
		if msg.Player.Health != 100 {
			t.Errorf("Health = %d, want 100", msg.Player.Health)
		}
	})

	t.Run("Enabled", func(t *testing.T) {
		s := newTestService(t, true)
		id, updates, _ := s.CreateSession()
		s.ProcessCommand(id, command("START_LEVEL", api.LevelPayload{LevelID: 1}))
		s.ProcessCommand(id, command("DAMAGE", api.DamagePayload{Amount: 100}))

		msg := waitFor(t, updates, func(m api.ServerResponse) bool { return m.Mode == "GAME_OVER" })
		if msg.Player.Health != 0 || !msg.Player.IsDead {
			t.Errorf("Player = %+v", msg.Player)
		}
	})
}

func TestService_Shutdown(t *testing.T) {
	s := newTestService(t, false)
	_, updates, _ := s.CreateSession()
	s.CreateSession()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if s.SessionCount() != 0 {
		t.Error("Sessions left after shutdown")
	}
	for range updates {
		// closed by shutdown
	}
	if _, _, err := s.CreateSession(); !errors.Is(err, ErrShuttingDown) {
		t.Errorf("Expected ErrShuttingDown, got %v", err)
	}
}
