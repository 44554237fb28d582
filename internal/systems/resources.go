package systems

import "github.com/nancyzera/jurassic-game/internal/domain"

// StaminaDelta returns the stamina change for one tick. Rules are
// exclusive and checked in order: sprinting drains, standing still
// regenerates fast, walking regenerates slowly.
func StaminaDelta(moving, sprinting bool, delta float64) float64 {
	switch {
	case sprinting && moving:
		return -domain.StaminaSprintDrain * delta
	case !moving:
		return domain.StaminaIdleRegen * delta
	default:
		return domain.StaminaWalkRegen * delta
	}
}

// ApplyStamina applies the stamina debit/credit matching a locomotion result.
func ApplyStamina(p *domain.PlayerState, res LocomotionResult, delta float64) {
	p.AdjustStamina(StaminaDelta(res.Moving, res.Sprinting, delta))
}
