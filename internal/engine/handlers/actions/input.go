package actions

import (
	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/engine/handlers"
	"github.com/nancyzera/jurassic-game/pkg/api"
)

// Input commands never produce messages; they only feed the sampler and
// the camera consumed by the next tick.

func HandleKeyDown(ctx handlers.Context, p api.KeyPayload) (handlers.Result, error) {
	ctx.Session.KeyDown(p.Code)
	return handlers.EmptyResult(), nil
}

func HandleKeyUp(ctx handlers.Context, p api.KeyPayload) (handlers.Result, error) {
	ctx.Session.KeyUp(p.Code)
	return handlers.EmptyResult(), nil
}

func HandleLook(ctx handlers.Context, p api.LookPayload) (handlers.Result, error) {
	ctx.Session.Look(domain.Vec3{X: p.X, Y: p.Y, Z: p.Z})
	return handlers.EmptyResult(), nil
}
