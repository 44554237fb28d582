package domain

// Player resources
const (
	MaxHealth     = 100
	MaxStamina    = 100.0
	InventorySize = 5
)

// Locomotion
const (
	BaseSpeed        = 5.0  // units per second
	SprintMultiplier = 2.0  //
	EyeHeight        = 2.0  // vertical floor of the player position
	WorldBound       = 45.0 // |x|, |z| clamp for the player
)

// Stamina rates, units per second
const (
	StaminaSprintDrain = 20.0
	StaminaIdleRegen   = 30.0
	StaminaWalkRegen   = 10.0
)

// Predators
const (
	PredatorStep           = 0.01  // distance per tick per unit of speed
	PredatorTurnChance     = 0.002 // per tick
	PredatorBound          = 40.0
	PredatorAttackRadius   = 3.0
	PredatorAttackCooldown = 2.0 // seconds of elapsed time
	PredatorDamage         = 10
	PredatorMinSpeed       = 0.5
	PredatorMaxSpeed       = 1.0

	// PredatorReferenceHz converts the fixed per-tick step into a
	// per-second rate when predators run in delta-scaled mode.
	PredatorReferenceHz = 60.0
)

// Items
const (
	ItemNearRadius    = 2.0
	ItemCollectRadius = 1.5
	ItemSpawnHeight   = 0.5
	ItemBobAmplitude  = 0.2
	ItemBobFrequency  = 2.0 // radians per second
)

// WinDelay is the pause between the last pickup and the "level won" screen.
const WinDelay = 1.0

// SpawnPoint is where the player stands when a level starts.
var SpawnPoint = Vec3{X: 0, Y: EyeHeight, Z: 0}
