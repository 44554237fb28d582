package systems

import (
	"math"
	"math/rand"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

// StepMode selects how predator roaming relates to frame time.
type StepMode uint8

const (
	// StepFixed advances a constant distance per tick regardless of delta,
	// so predator speed follows the tick rate.
	StepFixed StepMode = iota
	// StepDelta scales the same walk by delta so speed is frame-rate independent.
	StepDelta
)

func ParseStepMode(s string) StepMode {
	if s == "delta" {
		return StepDelta
	}
	return StepFixed
}

func (m StepMode) String() string {
	if m == StepDelta {
		return "delta"
	}
	return "fixed"
}

// UpdatePredator runs one tick of roaming and the attack gate for a single
// predator. Returns true if the predator hit the player this tick; the
// caller applies the damage.
//
// Attacking is not a mode: the predator keeps roaming while in range and
// the cooldown alone limits how often it can hit.
func UpdatePredator(p *domain.Predator, player domain.Vec3, elapsed, delta float64, mode StepMode, rng *rand.Rand) bool {
	// 1. Roam along the current heading
	step := domain.PredatorStep
	if mode == StepDelta {
		step *= delta * domain.PredatorReferenceHz
	}
	p.Position.X += math.Cos(p.Heading) * p.Speed * step
	p.Position.Z += math.Sin(p.Heading) * p.Speed * step

	// 2. Occasionally wander off in a new direction
	if rng.Float64() < domain.PredatorTurnChance {
		p.Heading = rng.Float64() * 2 * math.Pi
	}

	// 3. Turn back toward the centre when past the bounds
	if math.Abs(p.Position.X) > domain.PredatorBound || math.Abs(p.Position.Z) > domain.PredatorBound {
		p.Heading = normalizeAngle(p.Heading + math.Pi)
	}

	// 4. Proximity + per-agent cooldown
	if p.Position.Within(player, domain.PredatorAttackRadius) && p.CanAttack(elapsed) {
		p.LastAttack = elapsed
		return true
	}
	return false
}

// SpawnPredator places a predator at anchor with a random heading and speed.
// LastAttack starts at the spawn time, so a fresh predator waits one
// cooldown before its first bite.
func SpawnPredator(anchor domain.Vec3, elapsed float64, rng *rand.Rand) domain.Predator {
	return domain.Predator{
		Position:   anchor,
		Heading:    rng.Float64() * 2 * math.Pi,
		Speed:      domain.PredatorMinSpeed + rng.Float64()*(domain.PredatorMaxSpeed-domain.PredatorMinSpeed),
		LastAttack: elapsed,
	}
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
