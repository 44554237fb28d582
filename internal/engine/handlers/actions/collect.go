package actions

import (
	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/engine/handlers"
	"github.com/nancyzera/jurassic-game/pkg/api"
)

// HandleCollectItem collects an item directly, without the proximity
// check. A full inventory already produced a notice in the session, so
// only other rejections are reported here.
func HandleCollectItem(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	events, err := ctx.Session.CollectItem(p.ItemID)
	if err != nil && !hasEvent(events, domain.EventInventoryFull) {
		return handlers.Rejected(err), nil
	}
	return handlers.Result{Events: events}, nil
}

func hasEvent(events []domain.Event, t domain.EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}
