package engine

import (
	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/pkg/api"
)

// BuildResponse converts a snapshot into the wire frame sent to clients.
// Item positions include this frame's bob offset.
func BuildResponse(snap SessionSnapshot, msgType string, logs []api.LogEntry, events []domain.Event) api.ServerResponse {
	resp := api.ServerResponse{
		Type:          msgType,
		SessionID:     snap.ID,
		Tick:          snap.Tick,
		Elapsed:       snap.Elapsed,
		Mode:          snap.Mode.String(),
		Levels:        make([]api.LevelView, 0, len(snap.Levels)),
		NextLevel:     snap.NextLevel,
		Player:        toPlayerView(snap),
		Near:          snap.Near,
		InventoryOpen: snap.InventoryOpen,
		Logs:          logs,
	}

	for _, lvl := range snap.Levels {
		resp.Levels = append(resp.Levels, toLevelView(lvl, levelStateOf(lvl, snap)))
	}
	if snap.Level != nil {
		v := toLevelView(*snap.Level, snap.LevelState)
		resp.Level = &v
	}
	for _, it := range snap.Items {
		resp.Items = append(resp.Items, toItemView(it, it.PositionAt(snap.Elapsed)))
	}
	for _, p := range snap.Predators {
		resp.Predators = append(resp.Predators, api.PredatorView{
			Position: toVec(p.Position),
			Heading:  p.Heading,
		})
	}
	for _, ev := range events {
		resp.Events = append(resp.Events, api.EventView{
			Type:     ev.Type.String(),
			LevelID:  ev.LevelID,
			ItemID:   ev.ItemID,
			Amount:   ev.Amount,
			Predator: ev.Predator,
		})
	}
	return resp
}

func levelStateOf(lvl domain.Level, snap SessionSnapshot) domain.LevelState {
	switch {
	case snap.Level != nil && snap.Level.ID == lvl.ID:
		return snap.LevelState
	case !lvl.Unlocked:
		return domain.LevelLocked
	case lvl.Completed:
		return domain.LevelCompleted
	default:
		return domain.LevelUnlocked
	}
}

func toPlayerView(snap SessionSnapshot) api.PlayerView {
	p := snap.Player
	view := api.PlayerView{
		Position:   toVec(p.Position),
		Health:     p.Health,
		MaxHealth:  domain.MaxHealth,
		Stamina:    p.Stamina,
		MaxStamina: domain.MaxStamina,
		Inventory:  make([]api.ItemView, 0, len(p.Inventory)),
		Capacity:   domain.InventorySize,
		Collected:  snap.Collected,
		Total:      snap.Total,
		IsDead:     p.IsDead(),
	}
	for _, it := range p.Inventory {
		view.Inventory = append(view.Inventory, toItemView(it, it.Position))
	}
	return view
}

func toLevelView(lvl domain.Level, state domain.LevelState) api.LevelView {
	return api.LevelView{
		ID:            lvl.ID,
		Name:          lvl.Name,
		Description:   lvl.Description,
		Environment:   lvl.Environment.String(),
		Difficulty:    lvl.Difficulty.String(),
		ItemCount:     lvl.ItemCount,
		PredatorCount: lvl.PredatorCount,
		Unlocked:      lvl.Unlocked,
		Completed:     lvl.Completed,
		State:         state.String(),
	}
}

func toItemView(it domain.Item, pos domain.Vec3) api.ItemView {
	return api.ItemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category.String(),
		Position:    toVec(pos),
		Collected:   it.Collected,
	}
}

func toVec(v domain.Vec3) api.Vec3View {
	return api.Vec3View{X: v.X, Y: v.Y, Z: v.Z}
}
