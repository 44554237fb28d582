package actions

import "github.com/nancyzera/jurassic-game/internal/engine/handlers"

// HandleInit greets a fresh connection. The snapshot that follows carries
// the state.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome to Jurassic Quest. Pick a level to begin.",
		MsgType: "INFO",
	}, nil
}
