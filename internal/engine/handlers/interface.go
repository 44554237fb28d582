package handlers

import (
	"encoding/json"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

// SessionController is the command surface of a session. engine.Session
// implements it; handlers never touch session state any other way.
type SessionController interface {
	ShowLevelSelect()
	StartLevel(id int) error
	CollectItem(itemID string) ([]domain.Event, error)
	DamagePlayer(amount int) ([]domain.Event, error)
	ToggleInventory()
	RestartLevel() error
	BackToMenu()
	KeyDown(code string)
	KeyUp(code string)
	Look(forward domain.Vec3)
}

// Context passes the target session to a handler.
type Context struct {
	Session SessionController

	// Debug enables test-only commands.
	Debug bool
}

// Result is what a handler reports back. Handlers do not write to the
// player's log directly; the instance turns Msg into a log entry.
type Result struct {
	Msg     string         // player-facing text
	MsgType string         // INFO, NOTICE, COMBAT, ERROR
	Events  []domain.Event // produced by the command itself
}

// HandlerFunc is the contract for every client command.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult is a successful command with nothing to report.
func EmptyResult() Result {
	return Result{}
}

// Rejected reports a command the session refused. Rejections are not
// errors: state is unchanged and the player sees why.
func Rejected(err error) Result {
	return Result{Msg: err.Error(), MsgType: "ERROR"}
}
