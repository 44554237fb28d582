package actions

import (
	"fmt"

	"github.com/nancyzera/jurassic-game/internal/engine/handlers"
	"github.com/nancyzera/jurassic-game/pkg/api"
)

// HandleDamage hurts the player directly. Only available when the server
// runs with debug commands enabled.
func HandleDamage(ctx handlers.Context, p api.DamagePayload) (handlers.Result, error) {
	if !ctx.Debug {
		return handlers.Result{Msg: "Debug commands are disabled.", MsgType: "ERROR"}, nil
	}
	events, err := ctx.Session.DamagePlayer(p.Amount)
	if err != nil {
		return handlers.Rejected(err), nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("[DEBUG] %d damage applied.", p.Amount),
		MsgType: "COMBAT",
		Events:  events,
	}, nil
}
