package systems

import (
	"testing"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

func TestStaminaDelta(t *testing.T) {
	tests := []struct {
		name      string
		moving    bool
		sprinting bool
		want      float64
	}{
		{"sprinting drains", true, true, -2.0},
		{"idle regenerates fast", false, false, 3.0},
		{"walking regenerates slowly", true, false, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StaminaDelta(tt.moving, tt.sprinting, 0.1); !almost(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyStamina_ClampsStamina(t *testing.T) {
	p := domain.NewPlayerState()
	p.Stamina = 1

	// Sprint a long frame: drain larger than what is left.
	res := Move(p.Position, domain.Directions{Forward: true, Sprint: true}, DefaultCamera(), p.Stamina, 0.1)
	ApplyStamina(&p, res, 0.1)
	if p.Stamina != 0 {
		t.Fatalf("stamina = %v, want 0", p.Stamina)
	}

	// Next tick: still holding sprint, but exhausted -> walking regen, never negative.
	res = Move(p.Position, domain.Directions{Forward: true, Sprint: true}, DefaultCamera(), p.Stamina, 0.1)
	if res.Sprinting {
		t.Fatal("sprint must not engage at 0 stamina")
	}
	ApplyStamina(&p, res, 0.1)
	if !almost(p.Stamina, 1.0) {
		t.Errorf("stamina = %v, want walking regen 1.0", p.Stamina)
	}

	// Idle regen never passes the max.
	p.Stamina = 99.5
	ApplyStamina(&p, Move(p.Position, domain.Directions{}, DefaultCamera(), p.Stamina, 0.1), 0.1)
	if p.Stamina != domain.MaxStamina {
		t.Errorf("stamina = %v, want %v", p.Stamina, domain.MaxStamina)
	}
}

func TestApplyDamage(t *testing.T) {
	p := domain.NewPlayerState()
	p.Health = 10
	if died := ApplyDamage(&p, domain.PredatorDamage, "test"); !died {
		t.Error("expected lethal damage")
	}
	if p.Health != 0 {
		t.Errorf("health = %d, want 0", p.Health)
	}
}
