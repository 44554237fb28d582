package levels

import "github.com/nancyzera/jurassic-game/internal/domain"

// PredatorAnchors are the fixed spawn points; a level with N predators
// uses the first N.
var PredatorAnchors = []domain.Vec3{
	{X: 10, Y: 0, Z: 5},
	{X: -15, Y: 0, Z: -10},
	{X: 20, Y: 0, Z: -20},
	{X: -25, Y: 0, Z: 15},
	{X: 5, Y: 0, Z: 25},
}

// SpawnItem creates a fresh, uncollected item from the template.
func (t ItemTemplate) SpawnItem() domain.Item {
	y := domain.ItemSpawnHeight
	if t.Height != nil {
		y = *t.Height
	}
	return domain.Item{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Position:    domain.Vec3{X: t.X, Y: y, Z: t.Z},
	}
}

// SpawnItems returns canonical item copies for one run of the level.
// Every call returns new values, so a restart never sees stale flags.
func (t LevelTemplate) SpawnItems() []domain.Item {
	items := make([]domain.Item, len(t.Items))
	for i, it := range t.Items {
		items[i] = it.SpawnItem()
	}
	return items
}

// Anchors returns the spawn points for this level's predators.
func (t LevelTemplate) Anchors() []domain.Vec3 {
	n := t.PredatorCount
	if n > len(PredatorAnchors) {
		n = len(PredatorAnchors)
	}
	out := make([]domain.Vec3, n)
	copy(out, PredatorAnchors[:n])
	return out
}
