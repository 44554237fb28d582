package domain

// PlayerState - everything the simulation tracks about the player.
// Owned by the session; presentation only ever sees a Clone.
type PlayerState struct {
	Position  Vec3    `json:"position"`
	Health    int     `json:"health"`
	Stamina   float64 `json:"stamina"`
	Inventory []Item  `json:"inventory"`
}

// NewPlayerState returns a fresh player at the spawn point with full gauges.
func NewPlayerState() PlayerState {
	return PlayerState{
		Position:  SpawnPoint,
		Health:    MaxHealth,
		Stamina:   MaxStamina,
		Inventory: make([]Item, 0, InventorySize),
	}
}

// Clone returns a deep copy (the inventory slice is not shared).
func (p PlayerState) Clone() PlayerState {
	inv := make([]Item, len(p.Inventory))
	copy(inv, p.Inventory)
	p.Inventory = inv
	return p
}

// Predator - a roaming hostile agent.
type Predator struct {
	Position Vec3    `json:"position"`
	Heading  float64 `json:"heading"` // radians, also the facing angle
	Speed    float64 `json:"speed"`

	// LastAttack is the elapsed time of the last damage this predator dealt.
	LastAttack float64 `json:"lastAttack"`
}

// CanAttack reports whether the per-agent cooldown has run out.
func (p *Predator) CanAttack(elapsed float64) bool {
	return elapsed-p.LastAttack >= PredatorAttackCooldown
}
