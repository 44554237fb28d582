package agent

import (
	"context"
	"encoding/json"
	"math"

	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/engine"
	"github.com/nancyzera/jurassic-game/pkg/api"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	// dangerRadius - a predator this close makes the bot sprint.
	dangerRadius = 8.0
	// sprintReserve - stamina kept back so a sprint never empties the bar.
	sprintReserve = 20.0
	// lookThreshold - minimum heading change (radians) worth a LOOK command.
	lookThreshold = 0.05
)

// Bot is a headless player. It plays through the same GameService API a
// websocket client does: frames in, commands out.
//
// Lifecycle:
//  1. NewBot opens a session and keeps its update channel as Inbox.
//  2. Run consumes frames until the session closes or ctx is done.
//  3. Each frame goes through the Brain, whose commands are sent back.
type Bot struct {
	SessionID string
	Service   *engine.GameService
	Inbox     <-chan api.ServerResponse

	brain *Brain
	log   *logrus.Entry
}

func NewBot(service *engine.GameService) (*Bot, error) {
	id, inbox, err := service.CreateSession()
	if err != nil {
		return nil, err
	}
	b := &Bot{
		SessionID: id,
		Service:   service,
		Inbox:     inbox,
		brain:     NewBrain(),
		log:       logger.Component("bot").WithField("session_id", id),
	}
	b.log.Info("Bot created")
	return b, nil
}

// Run plays until the session ends. Must be started in its own goroutine.
func (b *Bot) Run(ctx context.Context) {
	defer b.log.Info("Bot shut down")

	for {
		select {
		case <-ctx.Done():
			b.Service.CloseSession(b.SessionID)
			return
		case frame, ok := <-b.Inbox:
			if !ok {
				return
			}
			for _, cmd := range b.brain.Decide(frame) {
				cmd.Token = b.SessionID
				if err := b.Service.ProcessCommand(b.SessionID, cmd); err != nil {
					b.log.WithError(err).WithField("action", cmd.Action).Debug("Command not delivered")
					return
				}
			}
		}
	}
}

// Brain turns frames into commands. It remembers which keys it holds and
// where it looks so it only sends changes.
type Brain struct {
	held      map[string]bool
	heading   float64
	hasLook   bool
	requested domain.UIMode
	asked     bool
}

func NewBrain() *Brain {
	return &Brain{held: make(map[string]bool)}
}

func (b *Brain) Decide(frame api.ServerResponse) []api.ClientCommand {
	mode, ok := domain.ParseMode(frame.Mode)
	if !ok {
		return nil
	}
	if mode != b.requested {
		b.requested = mode
		b.asked = false
	}

	switch mode {
	case domain.ModeMenu, domain.ModeLevelSelect, domain.ModeWon:
		b.releaseAll()
		if b.asked {
			return nil
		}
		id := frame.NextLevel
		if id == 0 {
			return nil
		}
		b.asked = true
		return []api.ClientCommand{command(domain.ActionStartLevel, api.LevelPayload{LevelID: id})}

	case domain.ModeGameOver:
		b.releaseAll()
		if b.asked {
			return nil
		}
		b.asked = true
		return []api.ClientCommand{command(domain.ActionRestart, nil)}

	case domain.ModePlaying:
		return b.play(frame)
	}
	return nil
}

func (b *Brain) play(frame api.ServerResponse) []api.ClientCommand {
	var cmds []api.ClientCommand
	pos := toVec(frame.Player.Position)

	target, ok := nearestItem(frame.Items, pos)
	if !ok {
		return append(cmds, b.release("KeyW", "ShiftLeft")...)
	}

	dir := target.Sub(pos).Flatten()
	if dir.Length() > 0 {
		heading := math.Atan2(dir.X, dir.Z)
		if !b.hasLook || math.Abs(angleDiff(heading, b.heading)) > lookThreshold {
			b.heading, b.hasLook = heading, true
			n := dir.Normalize()
			cmds = append(cmds, command(domain.ActionLook, api.LookPayload{X: n.X, Y: 0, Z: n.Z}))
		}
	}
	cmds = append(cmds, b.press("KeyW")...)

	if predatorNear(frame.Predators, pos) && frame.Player.Stamina > sprintReserve {
		cmds = append(cmds, b.press("ShiftLeft")...)
	} else {
		cmds = append(cmds, b.release("ShiftLeft")...)
	}
	return cmds
}

func (b *Brain) press(code string) []api.ClientCommand {
	if b.held[code] {
		return nil
	}
	b.held[code] = true
	return []api.ClientCommand{command(domain.ActionKeyDown, api.KeyPayload{Code: code})}
}

func (b *Brain) release(codes ...string) []api.ClientCommand {
	var cmds []api.ClientCommand
	for _, code := range codes {
		if b.held[code] {
			delete(b.held, code)
			cmds = append(cmds, command(domain.ActionKeyUp, api.KeyPayload{Code: code}))
		}
	}
	return cmds
}

// releaseAll forgets held keys. The session clears its own input on every
// mode change, so no KEY_UP is needed.
func (b *Brain) releaseAll() {
	clear(b.held)
	b.hasLook = false
}
