package systems

import (
	"math"
	"testing"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

const eps = 1e-9

func almost(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMove(t *testing.T) {
	cam := DefaultCamera()
	start := domain.SpawnPoint

	t.Run("Forward walks along -Z at base speed", func(t *testing.T) {
		res := Move(start, domain.Directions{Forward: true}, cam, 100, 0.1)
		if !res.Moving || res.Sprinting {
			t.Fatalf("moving=%t sprinting=%t", res.Moving, res.Sprinting)
		}
		if !almost(res.Position.Z, -0.5) || !almost(res.Position.X, 0) {
			t.Errorf("got %+v, want z=-0.5", res.Position)
		}
	})

	t.Run("Right strafes along +X", func(t *testing.T) {
		res := Move(start, domain.Directions{Right: true}, cam, 100, 0.1)
		if !almost(res.Position.X, 0.5) {
			t.Errorf("got %+v, want x=0.5", res.Position)
		}
	})

	t.Run("Diagonal is not faster", func(t *testing.T) {
		res := Move(start, domain.Directions{Forward: true, Right: true}, cam, 100, 0.1)
		dist := res.Position.Sub(start).Length()
		if !almost(dist, 0.5) {
			t.Errorf("diagonal step = %v, want 0.5", dist)
		}
	})

	t.Run("Opposite keys cancel", func(t *testing.T) {
		res := Move(start, domain.Directions{Forward: true, Backward: true}, cam, 100, 0.1)
		if res.Moving || res.Position != start {
			t.Errorf("expected no movement, got %+v", res)
		}
	})

	t.Run("Sprint doubles speed", func(t *testing.T) {
		res := Move(start, domain.Directions{Forward: true, Sprint: true}, cam, 50, 0.1)
		if !res.Sprinting || !almost(res.Position.Z, -1.0) {
			t.Errorf("got %+v", res)
		}
	})

	t.Run("Sprint with no stamina is a walk", func(t *testing.T) {
		res := Move(start, domain.Directions{Forward: true, Sprint: true}, cam, 0, 0.1)
		walk := Move(start, domain.Directions{Forward: true}, cam, 0, 0.1)
		if res.Sprinting || res.Position != walk.Position {
			t.Errorf("exhausted sprint %+v differs from walk %+v", res, walk)
		}
	})

	t.Run("Sprint alone does nothing", func(t *testing.T) {
		res := Move(start, domain.Directions{Sprint: true}, cam, 100, 0.1)
		if res.Moving || res.Sprinting {
			t.Errorf("stationary sprint: %+v", res)
		}
	})

	t.Run("Pitch is ignored", func(t *testing.T) {
		pitched := Camera{Forward: domain.Vec3{Y: -0.8, Z: -0.6}, Up: domain.Up}
		res := Move(start, domain.Directions{Forward: true}, pitched, 100, 0.1)
		if !almost(res.Position.Y, start.Y) || !almost(res.Position.Z, -0.5) {
			t.Errorf("got %+v, want flat step of 0.5", res.Position)
		}
	})

	t.Run("Turned camera", func(t *testing.T) {
		// Facing +X: forward key walks +X.
		east := Camera{Forward: domain.Vec3{X: 1}, Up: domain.Up}
		res := Move(start, domain.Directions{Forward: true}, east, 100, 0.2)
		if !almost(res.Position.X, 1.0) || !almost(res.Position.Z, 0) {
			t.Errorf("got %+v", res.Position)
		}
	})

	t.Run("Bounds pin the position", func(t *testing.T) {
		edge := domain.Vec3{X: 44.9, Y: 2, Z: -44.9}
		res := Move(edge, domain.Directions{Forward: true, Right: true}, cam, 100, 0.1)
		if res.Position.X != domain.WorldBound || res.Position.Z != -domain.WorldBound {
			t.Errorf("got %+v, want pinned to the corner", res.Position)
		}
	})

	t.Run("Eye height floor", func(t *testing.T) {
		res := Move(domain.Vec3{Y: -3}, domain.Directions{}, cam, 100, 0.1)
		if res.Position.Y != domain.EyeHeight {
			t.Errorf("y = %v, want %v", res.Position.Y, domain.EyeHeight)
		}
	})

	t.Run("Camera looking straight down does not move", func(t *testing.T) {
		down := Camera{Forward: domain.Vec3{Y: -1}, Up: domain.Up}
		res := Move(start, domain.Directions{Forward: true}, down, 100, 0.1)
		if res.Position != start || res.Moving {
			t.Errorf("got %+v", res)
		}
	})

	t.Run("Camera looking straight up neither moves nor sprints", func(t *testing.T) {
		up := Camera{Forward: domain.Vec3{Y: 1}, Up: domain.Up}
		res := Move(start, domain.Directions{Forward: true, Sprint: true}, up, 100, 0.1)
		if res.Moving || res.Sprinting || res.Position != start {
			t.Errorf("got %+v", res)
		}
	})
}

func TestCameraFromYaw(t *testing.T) {
	if c := CameraFromYaw(0); !almost(c.Forward.Z, -1) {
		t.Errorf("yaw 0 forward = %+v", c.Forward)
	}
	c := CameraFromYaw(math.Pi / 2)
	if !almost(c.Forward.X, -1) || !almost(c.Forward.Z, 0) {
		t.Errorf("yaw pi/2 forward = %+v", c.Forward)
	}
}
