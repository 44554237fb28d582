package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/engine/handlers"
	"github.com/nancyzera/jurassic-game/internal/engine/handlers/actions"
	"github.com/nancyzera/jurassic-game/internal/network"
	"github.com/nancyzera/jurassic-game/pkg/api"
	"github.com/nancyzera/jurassic-game/pkg/levels"
	"github.com/nancyzera/jurassic-game/pkg/logger"
	"github.com/nancyzera/jurassic-game/pkg/utils"

	"github.com/sirupsen/logrus"
)

var ErrShuttingDown = errors.New("service is shutting down")

type instanceHandle struct {
	inst   *Instance
	cancel context.CancelFunc
	done   chan struct{}
}

// GameService owns the running sessions: one Instance per connection.
type GameService struct {
	cfg     Config
	Catalog *levels.Catalog
	Hub     *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc

	mu        sync.RWMutex
	instances map[string]*instanceHandle

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewService(cfg Config, catalog *levels.Catalog) *GameService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &GameService{
		cfg:       cfg,
		Catalog:   catalog,
		Hub:       network.NewBroadcaster(),
		handlers:  make(map[domain.ActionType]handlers.HandlerFunc),
		instances: make(map[string]*instanceHandle),
		ctx:       ctx,
		cancel:    cancel,
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionShowLevels] = handlers.WithEmptyPayload(actions.HandleShowLevels)
	s.handlers[domain.ActionStartLevel] = handlers.WithPayload(actions.HandleStartLevel)
	s.handlers[domain.ActionCollectItem] = handlers.WithPayload(actions.HandleCollectItem)
	s.handlers[domain.ActionDamage] = handlers.WithPayload(actions.HandleDamage)
	s.handlers[domain.ActionToggleInventory] = handlers.WithEmptyPayload(actions.HandleToggleInventory)
	s.handlers[domain.ActionRestart] = handlers.WithEmptyPayload(actions.HandleRestart)
	s.handlers[domain.ActionBackToMenu] = handlers.WithEmptyPayload(actions.HandleBackToMenu)
	s.handlers[domain.ActionKeyDown] = handlers.WithPayload(actions.HandleKeyDown)
	s.handlers[domain.ActionKeyUp] = handlers.WithPayload(actions.HandleKeyUp)
	s.handlers[domain.ActionLook] = handlers.WithPayload(actions.HandleLook)
}

func (s *GameService) Config() Config {
	return s.cfg
}

// CreateSession starts a new isolated session and returns its id and the
// channel its snapshots are published on.
func (s *GameService) CreateSession() (string, <-chan api.ServerResponse, error) {
	if s.ctx.Err() != nil {
		return "", nil, ErrShuttingDown
	}

	id := utils.GenerateID()
	updates := s.Hub.Register(id)
	inst := NewInstance(id, s, s.cfg.Seed^utils.StringToSeed(id))

	ctx, cancel := context.WithCancel(s.ctx)
	h := &instanceHandle{inst: inst, cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.instances[id] = h
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(h.done)
		inst.Run(ctx)
	}()

	logger.Log.WithFields(logrus.Fields{
		"session_id": id,
		"sessions":   s.SessionCount(),
	}).Info("Session created")
	return id, updates, nil
}

// CloseSession stops a session's instance and closes its update channel.
func (s *GameService) CloseSession(id string) {
	s.mu.Lock()
	h, ok := s.instances[id]
	delete(s.instances, id)
	s.mu.Unlock()
	if !ok {
		return
	}

	h.cancel()
	<-h.done
	s.Hub.Unregister(id)

	logger.Log.WithField("session_id", id).Info("Session closed")
}

// ProcessCommand routes a client command to the session's instance.
func (s *GameService) ProcessCommand(sessionID string, cmd api.ClientCommand) error {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		return fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}
	if cmd.Token != "" && cmd.Token != sessionID {
		return fmt.Errorf("token does not match session")
	}

	s.mu.RLock()
	h, ok := s.instances[sessionID]
	s.mu.RUnlock()
	if !ok {
		return ErrUnknownSession
	}

	select {
	case h.inst.CommandChan <- Command{Action: action, Payload: cmd.Payload}:
		return nil
	case <-h.done:
		return ErrUnknownSession
	case <-s.ctx.Done():
		return ErrShuttingDown
	}
}

func (s *GameService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}

// Sessions returns the status of every running session, sorted by id.
func (s *GameService) Sessions() []InstanceStatus {
	s.mu.RLock()
	out := make([]InstanceStatus, 0, len(s.instances))
	for _, h := range s.instances {
		out = append(out, h.inst.Status())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// SessionStatus returns one session's status.
func (s *GameService) SessionStatus(id string) (InstanceStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.instances[id]
	if !ok {
		return InstanceStatus{}, false
	}
	return h.inst.Status(), true
}

// Shutdown stops every instance and waits for them, or for ctx.
func (s *GameService) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.Lock()
	ids := make([]string, 0, len(s.instances))
	for id := range s.instances {
		ids = append(ids, id)
	}
	s.instances = make(map[string]*instanceHandle)
	s.mu.Unlock()

	for _, id := range ids {
		s.Hub.Unregister(id)
	}
	logger.Log.WithField("sessions", len(ids)).Info("Game service stopped")
	return nil
}
