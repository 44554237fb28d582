package systems

import (
	"math"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

// Camera is the player's view orientation. Only the facing matters to the
// simulation; pitch is flattened away.
type Camera struct {
	Forward domain.Vec3 `json:"forward"`
	Up      domain.Vec3 `json:"up"`
}

// DefaultCamera looks down -Z, the initial three.js camera orientation.
func DefaultCamera() Camera {
	return Camera{Forward: domain.Vec3{Z: -1}, Up: domain.Up}
}

// CameraFromYaw builds a level camera rotated yaw radians (counter-clockwise
// seen from above) away from -Z.
func CameraFromYaw(yaw float64) Camera {
	return Camera{
		Forward: domain.Vec3{X: -math.Sin(yaw), Z: -math.Cos(yaw)},
		Up:      domain.Up,
	}
}

// LocomotionResult - outcome of one locomotion step.
type LocomotionResult struct {
	Position  domain.Vec3
	Moving    bool
	Sprinting bool
}

// Move computes the player's next position. It never fails: the result is
// always a valid position inside the world bounds and above eye height.
func Move(pos domain.Vec3, dirs domain.Directions, cam Camera, stamina, delta float64) LocomotionResult {
	res := LocomotionResult{}

	// 1. Intent in camera space. -Z is forward.
	intent := domain.Vec3{
		X: boolToFloat(dirs.Right) - boolToFloat(dirs.Left),
		Z: boolToFloat(dirs.Backward) - boolToFloat(dirs.Forward),
	}

	// 2. Normalize so diagonals are not faster.
	intent = intent.Normalize()

	// A camera looking straight up or down has no ground heading: no
	// movement, and so no sprint drain either.
	forward := cam.Forward.Flatten().Normalize()
	res.Moving = intent != (domain.Vec3{}) && forward != (domain.Vec3{})

	// 3. Sprint needs the key, stamina left and actual movement.
	res.Sprinting = dirs.Sprint && stamina > 0 && res.Moving

	speed := domain.BaseSpeed
	if res.Sprinting {
		speed *= domain.SprintMultiplier
	}

	// 4. Project onto the ground plane using the camera basis.
	if res.Moving {
		up := cam.Up
		if up == (domain.Vec3{}) {
			up = domain.Up
		}
		right := forward.Cross(up)

		move := forward.Scale(-intent.Z).Add(right.Scale(intent.X))
		move = move.Flatten().Normalize().Scale(speed * delta)
		pos = pos.Add(move)
	}

	// 5. Pin to the floor and world bounds. No momentum to carry over.
	res.Position = ClampToWorld(pos)
	return res
}

// ClampToWorld applies the eye-height floor and the horizontal bounds.
func ClampToWorld(p domain.Vec3) domain.Vec3 {
	p.Y = math.Max(p.Y, domain.EyeHeight)
	p.X = clamp(p.X, -domain.WorldBound, domain.WorldBound)
	p.Z = clamp(p.Z, -domain.WorldBound, domain.WorldBound)
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
