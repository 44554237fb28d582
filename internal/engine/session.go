package engine

import (
	"fmt"
	"math/rand"

	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/systems"
	"github.com/nancyzera/jurassic-game/pkg/api"
	"github.com/nancyzera/jurassic-game/pkg/levels"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/sirupsen/logrus"
)

const winTaskKey = "level_won"

// SessionOptions tunes a single session.
type SessionOptions struct {
	Seed         int64
	PredatorStep systems.StepMode
}

// Session is the authoritative state of one player's game. It is not safe
// for concurrent use: exactly one goroutine (the Instance) owns it.
type Session struct {
	ID string

	catalog *levels.Catalog
	opts    SessionOptions
	rng     *rand.Rand
	log     *logrus.Entry

	progression *Progression
	mode        domain.UIMode

	player    domain.PlayerState
	items     []domain.Item
	predators []domain.Predator
	collected int
	near      []string

	input         *systems.InputSampler
	camera        systems.Camera
	inventoryOpen bool

	tick    int64
	elapsed float64

	// generation changes on every start/restart/menu so that deferred
	// callbacks can tell they belong to a run that no longer exists.
	generation uint64
	scheduler  *Scheduler

	// fullNotified holds items in reach that already produced an
	// inventory-full notice during the current contact.
	fullNotified map[string]bool

	logs   []api.LogEntry
	logSeq uint64
}

func NewSession(id string, catalog *levels.Catalog, opts SessionOptions) *Session {
	return &Session{
		ID:           id,
		catalog:      catalog,
		opts:         opts,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		log:          logger.Component("session").WithField("session_id", id),
		progression:  NewProgression(catalog),
		mode:         domain.ModeMenu,
		player:       domain.NewPlayerState(),
		input:        systems.NewInputSampler(),
		camera:       systems.DefaultCamera(),
		scheduler:    NewScheduler(),
		fullNotified: make(map[string]bool),
	}
}

// Tick advances the simulation by one frame. elapsed is the session clock
// in seconds, delta the time since the previous tick.
//
// Order: deferred tasks, input, locomotion, predators, collection,
// resources/progression. Predators and collection both see the position
// the player moved to this tick.
func (s *Session) Tick(elapsed, delta float64) []domain.Event {
	s.tick++
	s.elapsed = elapsed

	var events []domain.Event
	before := s.mode
	s.scheduler.RunDue(elapsed)
	if s.mode == domain.ModeWon && before != domain.ModeWon {
		events = append(events, domain.Event{Type: domain.EventLevelWon, LevelID: s.progression.Active()})
	}

	// 1. Input
	for n := s.input.TakeToggles(); n > 0; n-- {
		s.ToggleInventory()
	}
	if !s.mode.IsPlaying() {
		return events
	}
	dirs := s.input.Sample()

	// 2. Locomotion
	move := systems.Move(s.player.Position, dirs, s.camera, s.player.Stamina, delta)
	s.player.Position = move.Position

	// 3. Predators
	for i := range s.predators {
		if !systems.UpdatePredator(&s.predators[i], s.player.Position, elapsed, delta, s.opts.PredatorStep, s.rng) {
			continue
		}
		events = append(events, s.damage(domain.PredatorDamage, i)...)
		// The bite that ends the run is the last thing that happens in it.
		if !s.mode.IsPlaying() {
			return events
		}
	}

	// 4. Collection
	scan := systems.ScanItems(s.items, s.player.Position, elapsed)
	s.near = scan.Near
	inReach := make(map[string]bool, len(scan.InReach))
	for _, id := range scan.InReach {
		inReach[id] = true
		if s.player.InventoryFull() {
			if !s.fullNotified[id] {
				s.fullNotified[id] = true
				events = append(events, s.inventoryFull(id))
			}
			continue
		}
		evs, _ := s.collect(id)
		events = append(events, evs...)
	}
	for id := range s.fullNotified {
		if !inReach[id] {
			delete(s.fullNotified, id)
		}
	}

	// 5. Resources
	systems.ApplyStamina(&s.player, move, delta)

	return events
}

// ShowLevelSelect switches to the level selector. Any running level is
// abandoned.
func (s *Session) ShowLevelSelect() {
	s.endRun()
	s.mode = domain.ModeLevelSelect
}

// StartLevel resets the player and loads the level's items and predators.
// Locked or unknown levels are rejected with no state change.
func (s *Session) StartLevel(id int) error {
	tpl, ok := s.catalog.Level(id)
	if !ok {
		return fmt.Errorf("start level %d: %w", id, ErrUnknownLevel)
	}
	if err := s.progression.Start(id); err != nil {
		return fmt.Errorf("start level %d: %w", id, err)
	}

	s.generation++
	s.scheduler.CancelAll()
	s.input.Reset()

	s.player = domain.NewPlayerState()
	s.items = tpl.SpawnItems()
	s.predators = s.predators[:0]
	for _, anchor := range tpl.Anchors() {
		s.predators = append(s.predators, systems.SpawnPredator(anchor, s.elapsed, s.rng))
	}
	s.collected = 0
	s.near = nil
	s.inventoryOpen = false
	s.fullNotified = make(map[string]bool)
	s.mode = domain.ModePlaying

	s.addLog(fmt.Sprintf("Welcome to %s! Find all %d items to complete this level!", tpl.Name, len(s.items)), "INFO")
	s.log.WithFields(logrus.Fields{
		"level_id":   id,
		"items":      len(s.items),
		"predators":  len(s.predators),
		"generation": s.generation,
	}).Info("Level started")
	return nil
}

// CollectItem collects an item of the running level regardless of
// distance. Collecting an already collected item is a no-op.
func (s *Session) CollectItem(itemID string) ([]domain.Event, error) {
	if !s.mode.IsPlaying() {
		return nil, ErrNotPlaying
	}
	if s.itemIndex(itemID) < 0 {
		return nil, fmt.Errorf("collect %q: %w", itemID, ErrItemNotFound)
	}
	evs, err := s.collect(itemID)
	if err != nil {
		return []domain.Event{s.inventoryFull(itemID)}, err
	}
	return evs, nil
}

// DamagePlayer applies external damage (test harness, debug tools).
func (s *Session) DamagePlayer(amount int) ([]domain.Event, error) {
	if !s.mode.IsPlaying() {
		return nil, ErrNotPlaying
	}
	return s.damage(amount, -1), nil
}

// ToggleInventory flips the inventory panel flag. No simulation effect.
func (s *Session) ToggleInventory() {
	s.inventoryOpen = !s.inventoryOpen
}

// RestartLevel replays the current level. From the win screen it goes
// back to the level selector instead.
func (s *Session) RestartLevel() error {
	id := s.progression.Active()
	if s.mode == domain.ModeWon {
		s.ShowLevelSelect()
		return nil
	}
	if id == 0 {
		return ErrNotPlaying
	}
	return s.StartLevel(id)
}

// BackToMenu abandons any running level and shows the main menu.
func (s *Session) BackToMenu() {
	s.endRun()
	s.mode = domain.ModeMenu
}

func (s *Session) KeyDown(code string) { s.input.KeyDown(code) }
func (s *Session) KeyUp(code string)   { s.input.KeyUp(code) }

// Look points the camera. Only the horizontal part matters for movement.
func (s *Session) Look(forward domain.Vec3) {
	s.camera = systems.Camera{Forward: forward.Normalize(), Up: domain.Up}
}

// Mode returns the current UI mode.
func (s *Session) Mode() domain.UIMode {
	return s.mode
}

// DrainLogs returns and clears the notices produced since the last call.
func (s *Session) DrainLogs() []api.LogEntry {
	logs := s.logs
	s.logs = nil
	return logs
}

// --- internals ---

func (s *Session) endRun() {
	s.generation++
	s.scheduler.CancelAll()
	s.input.Reset()
	s.progression.Leave()

	s.player = domain.NewPlayerState()
	s.items = nil
	s.predators = nil
	s.collected = 0
	s.near = nil
	s.inventoryOpen = false
	s.fullNotified = make(map[string]bool)
}

func (s *Session) itemIndex(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// collect moves one item into the inventory and evaluates completion.
func (s *Session) collect(itemID string) ([]domain.Event, error) {
	idx := s.itemIndex(itemID)
	if idx < 0 || s.items[idx].Collected {
		return nil, nil
	}
	if s.player.InventoryFull() {
		return nil, ErrInventoryFull
	}
	if !systems.TryCollect(&s.player, s.items, idx) {
		return nil, nil
	}
	s.collected++

	levelID := s.progression.Active()
	item := s.items[idx]
	s.addLog(fmt.Sprintf("Found: %s!", item.Name), "INFO")
	s.log.WithFields(logrus.Fields{
		"level_id":  levelID,
		"item_id":   item.ID,
		"collected": s.collected,
		"total":     len(s.items),
	}).Info("Item collected")

	events := []domain.Event{{Type: domain.EventItemCollected, LevelID: levelID, ItemID: item.ID}}
	if s.collected == len(s.items) {
		events = append(events, s.completeLevel(levelID))
	}
	return events, nil
}

// completeLevel flips the progression flags now and shows the win screen
// after WinDelay, unless the run changed in between.
func (s *Session) completeLevel(levelID int) domain.Event {
	unlocked := s.progression.Complete(levelID)
	gen := s.generation
	s.scheduler.After(s.elapsed+domain.WinDelay, winTaskKey, func() {
		if s.generation != gen || s.progression.Active() != levelID || !s.mode.IsPlaying() {
			return
		}
		s.mode = domain.ModeWon
		s.log.WithField("level_id", levelID).Info("Level won")
	})

	s.log.WithFields(logrus.Fields{
		"level_id": levelID,
		"unlocked": unlocked,
	}).Info("Level completed")
	return domain.Event{Type: domain.EventLevelCompleted, LevelID: levelID}
}

func (s *Session) damage(amount, predator int) []domain.Event {
	source := "external"
	if predator >= 0 {
		source = fmt.Sprintf("predator_%d", predator)
	}
	before := s.player.Health
	died := systems.ApplyDamage(&s.player, amount, source)

	events := []domain.Event{{
		Type:     domain.EventDamage,
		LevelID:  s.progression.Active(),
		Amount:   before - s.player.Health,
		Predator: predator,
	}}
	if predator >= 0 {
		s.addLog(fmt.Sprintf("A dinosaur bites you! -%d health", before-s.player.Health), "COMBAT")
	}
	if died {
		events = append(events, s.gameOver())
	}
	return events
}

// gameOver stops the run. Level flags are left as they are.
func (s *Session) gameOver() domain.Event {
	s.generation++
	s.scheduler.CancelAll()
	s.input.Reset()
	s.mode = domain.ModeGameOver

	s.addLog("Game Over! Dinosaur caught you!", "ERROR")
	s.log.WithField("level_id", s.progression.Active()).Info("Game over")
	return domain.Event{Type: domain.EventGameOver, LevelID: s.progression.Active()}
}

func (s *Session) inventoryFull(itemID string) domain.Event {
	s.addLog("Inventory full! Drop an item first.", "NOTICE")
	return domain.Event{Type: domain.EventInventoryFull, LevelID: s.progression.Active(), ItemID: itemID}
}
