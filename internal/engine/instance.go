package engine

import (
	"context"
	"encoding/json"
	"math"
	"sync/atomic"
	"time"

	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/engine/handlers"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/sirupsen/logrus"
)

// maxDelta caps the frame time fed to the simulation after a stall
// (GC pause, suspended laptop) so the player cannot teleport.
const maxDelta = 0.1

// Command is a decoded client command addressed to one instance.
type Command struct {
	Action  domain.ActionType
	Payload json.RawMessage
}

// InstanceStatus is a read-only summary for debug endpoints, refreshed
// after every tick and command.
type InstanceStatus struct {
	ID         string  `json:"id"`
	Mode       string  `json:"mode"`
	LevelID    int     `json:"levelId"`
	Tick       int64   `json:"tick"`
	Elapsed    float64 `json:"elapsed"`
	Health     int     `json:"health"`
	Stamina    float64 `json:"stamina"`
	Collected  int     `json:"collected"`
	Total      int     `json:"total"`
	Predators  int     `json:"predators"`
	WinPending bool    `json:"winPending"`
	Dropped    int     `json:"droppedFrames"`
	Subscribed bool    `json:"subscribed"` // a client is receiving frames

	Scheduled []ScheduledTask `json:"scheduled"`
}

// Instance runs one session: its goroutine is the only one that touches
// the Session. Commands arrive on CommandChan, ticks come from a ticker.
type Instance struct {
	ID      string
	Session *Session

	CommandChan chan Command

	Service *GameService

	tickHz int
	status atomic.Pointer[InstanceStatus]

	// pending holds events not yet sent in a frame.
	pending []domain.Event
	log     *logrus.Entry
}

func NewInstance(id string, service *GameService, seed int64) *Instance {
	i := &Instance{
		ID: id,
		Session: NewSession(id, service.Catalog, SessionOptions{
			Seed:         seed,
			PredatorStep: service.cfg.PredatorStep,
		}),
		CommandChan: make(chan Command, 100),
		Service:     service,
		tickHz:      service.cfg.TickHz,
		log:         logger.Component("instance").WithField("session_id", id),
	}
	if i.tickHz <= 0 {
		i.tickHz = NewConfig().TickHz
	}
	i.refreshStatus()
	return i
}

// Run drives the session until ctx is cancelled.
func (i *Instance) Run(ctx context.Context) {
	i.log.WithField("tick_hz", i.tickHz).Info("Instance loop started")
	defer i.log.Info("Instance loop stopped")

	ticker := time.NewTicker(time.Second / time.Duration(i.tickHz))
	defer ticker.Stop()

	start := time.Now()
	last := start
	i.publish("INIT")

	for {
		select {
		case <-ctx.Done():
			return

		case cmd := <-i.CommandChan:
			result := i.executeCommand(cmd)
			i.pending = append(i.pending, result.Events...)
			i.refreshStatus()
			// While playing the next tick publishes anyway.
			if cmd.Action == domain.ActionInit {
				i.publish("INIT")
			} else if !i.Session.Mode().IsPlaying() {
				i.publish("UPDATE")
			}

		case now := <-ticker.C:
			elapsed := now.Sub(start).Seconds()
			delta := math.Min(now.Sub(last).Seconds(), maxDelta)
			last = now

			i.pending = append(i.pending, i.Session.Tick(elapsed, delta)...)
			i.refreshStatus()
			if i.Session.Mode().IsPlaying() || len(i.pending) > 0 || len(i.Session.logs) > 0 {
				i.publish("UPDATE")
			}
		}
	}
}

// executeCommand runs the handler for cmd against this instance's session.
func (i *Instance) executeCommand(cmd Command) handlers.Result {
	handler, ok := i.Service.handlers[cmd.Action]
	if !ok {
		return handlers.EmptyResult()
	}

	ctx := handlers.Context{
		Session: i.Session,
		Debug:   i.Service.cfg.Debug,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		i.log.WithError(err).WithField("action", cmd.Action.String()).Warn("Command rejected")
		i.Session.addLog(err.Error(), "ERROR")
		return result
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		i.Session.addLog(result.Msg, msgType)
	}
	return result
}

func (i *Instance) publish(msgType string) {
	resp := BuildResponse(i.Session.Snapshot(), msgType, i.Session.DrainLogs(), i.pending)
	i.pending = nil
	i.Service.Hub.SendTo(i.ID, resp)
}

func (i *Instance) refreshStatus() {
	snap := i.Session.Snapshot()
	st := &InstanceStatus{
		ID:         i.ID,
		Mode:       snap.Mode.String(),
		Tick:       snap.Tick,
		Elapsed:    snap.Elapsed,
		Health:     snap.Player.Health,
		Stamina:    snap.Player.Stamina,
		Collected:  snap.Collected,
		Total:      snap.Total,
		Predators:  len(snap.Predators),
		WinPending: snap.WinPending,
		Dropped:    i.Service.Hub.Dropped(i.ID),
		Subscribed: i.Service.Hub.HasSubscriber(i.ID),
		Scheduled:  snap.Scheduled,
	}
	if snap.Level != nil {
		st.LevelID = snap.Level.ID
	}
	i.status.Store(st)
}

// Status returns the latest summary. Safe from any goroutine.
func (i *Instance) Status() InstanceStatus {
	return *i.status.Load()
}
