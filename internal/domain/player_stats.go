package domain

// TakeDamage subtracts amount from health, clamping at 0.
// Returns true if this hit brought the player down.
func (p *PlayerState) TakeDamage(amount int) bool {
	if p.Health <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// IsDead reports whether health is exhausted.
func (p *PlayerState) IsDead() bool {
	return p.Health <= 0
}

// AdjustStamina applies a drain (negative) or regen (positive) and clamps to [0, MaxStamina].
func (p *PlayerState) AdjustStamina(delta float64) {
	p.Stamina += delta
	if p.Stamina < 0 {
		p.Stamina = 0
	}
	if p.Stamina > MaxStamina {
		p.Stamina = MaxStamina
	}
}

// InventoryFull reports whether another item would exceed capacity.
func (p *PlayerState) InventoryFull() bool {
	return len(p.Inventory) >= InventorySize
}

// AddItem appends to the inventory. Returns false if there is no room.
func (p *PlayerState) AddItem(item Item) bool {
	if p.InventoryFull() {
		return false
	}
	p.Inventory = append(p.Inventory, item)
	return true
}

// HasItem reports whether an item with this id is already carried.
func (p *PlayerState) HasItem(id string) bool {
	for _, it := range p.Inventory {
		if it.ID == id {
			return true
		}
	}
	return false
}
