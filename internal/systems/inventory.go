package systems

import "github.com/nancyzera/jurassic-game/internal/domain"

// ItemScan is the result of one proximity pass over the active items.
type ItemScan struct {
	// Near holds ids within the highlight radius (presentation only).
	Near []string
	// InReach holds ids close enough to auto-collect, in item order.
	InReach []string
}

// ScanItems measures every uncollected item against the player position.
// Items are measured where they float at this instant, not at rest height.
func ScanItems(items []domain.Item, player domain.Vec3, elapsed float64) ItemScan {
	var scan ItemScan
	for _, it := range items {
		if it.Collected {
			continue
		}
		d := it.PositionAt(elapsed).DistanceTo(player)
		if d < domain.ItemNearRadius {
			scan.Near = append(scan.Near, it.ID)
		}
		if d < domain.ItemCollectRadius {
			scan.InReach = append(scan.InReach, it.ID)
		}
	}
	return scan
}

// TryCollect moves items[idx] into the player's inventory.
// Returns false without touching anything if it is already collected or
// the inventory is full.
func TryCollect(p *domain.PlayerState, items []domain.Item, idx int) bool {
	if idx < 0 || idx >= len(items) {
		return false
	}
	it := &items[idx]
	if it.Collected || p.HasItem(it.ID) {
		return false
	}
	if p.InventoryFull() {
		return false
	}

	it.Collected = true
	p.AddItem(*it)
	return true
}
