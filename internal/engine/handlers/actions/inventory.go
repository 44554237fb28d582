package actions

import "github.com/nancyzera/jurassic-game/internal/engine/handlers"

// HandleToggleInventory flips the inventory panel.
func HandleToggleInventory(ctx handlers.Context) (handlers.Result, error) {
	ctx.Session.ToggleInventory()
	return handlers.EmptyResult(), nil
}
