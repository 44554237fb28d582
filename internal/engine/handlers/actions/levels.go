package actions

import (
	"github.com/nancyzera/jurassic-game/internal/engine/handlers"
	"github.com/nancyzera/jurassic-game/pkg/api"
)

// HandleShowLevels opens the level selector.
func HandleShowLevels(ctx handlers.Context) (handlers.Result, error) {
	ctx.Session.ShowLevelSelect()
	return handlers.EmptyResult(), nil
}

// HandleStartLevel starts an unlocked level. The welcome notice comes
// from the session itself.
func HandleStartLevel(ctx handlers.Context, p api.LevelPayload) (handlers.Result, error) {
	if err := ctx.Session.StartLevel(p.LevelID); err != nil {
		return handlers.Rejected(err), nil
	}
	return handlers.EmptyResult(), nil
}

func HandleRestart(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Session.RestartLevel(); err != nil {
		return handlers.Rejected(err), nil
	}
	return handlers.EmptyResult(), nil
}

func HandleBackToMenu(ctx handlers.Context) (handlers.Result, error) {
	ctx.Session.BackToMenu()
	return handlers.EmptyResult(), nil
}
