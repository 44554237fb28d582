package levels

import (
	"math"
	"math/rand"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

// Decoration is presentation-only. Nothing here collides with the player,
// predators or items.

type PropKind string

const (
	PropTree       PropKind = "tree"
	PropRock       PropKind = "rock"
	PropGrass      PropKind = "grass"
	PropStalagmite PropKind = "stalagmite"
)

type Prop struct {
	Kind     PropKind    `json:"kind"`
	Position domain.Vec3 `json:"position"`
	Size     float64     `json:"size"`     // height for trees/stalagmites/grass, edge for rocks
	Rotation float64     `json:"rotation"` // yaw, radians
	Color    string      `json:"color"`
}

// Strip is a flat rectangle centred on the origin, long along Z.
type Strip struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Color  string  `json:"color"`
}

type Layout struct {
	Environment domain.EnvironmentKind `json:"environment"`
	Ground      Strip                  `json:"ground"`
	Water       *Strip                 `json:"water,omitempty"`
	Props       []Prop                 `json:"props"`
}

const groundSize = 100

// Decorate builds the static scenery for an environment.
// The same rng seed always yields the same layout.
func Decorate(kind domain.EnvironmentKind, rng *rand.Rand) Layout {
	switch kind {
	case domain.EnvironmentCave:
		return decorateCave(rng)
	case domain.EnvironmentRiver:
		return decorateRiver(rng)
	default:
		return decorateJungle(rng)
	}
}

func decorateJungle(rng *rand.Rand) Layout {
	l := Layout{
		Environment: domain.EnvironmentJungle,
		Ground:      Strip{Width: groundSize, Length: groundSize, Color: "#2d5016"},
	}
	for i := 0; i < 50; i++ {
		l.Props = append(l.Props, Prop{
			Kind:     PropTree,
			Position: scatter(rng, 40),
			Size:     3 + rng.Float64()*4,
			Color:    "#1a5c1a",
		})
	}
	for i := 0; i < 30; i++ {
		l.Props = append(l.Props, rock(rng, 35, 0.5, 1, "#666666"))
	}
	for i := 0; i < 100; i++ {
		l.Props = append(l.Props, Prop{
			Kind:     PropGrass,
			Position: scatter(rng, 45),
			Size:     0.5,
			Color:    "#2d7016",
		})
	}
	return l
}

func decorateCave(rng *rand.Rand) Layout {
	l := Layout{
		Environment: domain.EnvironmentCave,
		Ground:      Strip{Width: groundSize, Length: groundSize, Color: "#2a1f1a"},
	}
	for i := 0; i < 40; i++ {
		l.Props = append(l.Props, Prop{
			Kind:     PropStalagmite,
			Position: scatter(rng, 40),
			Size:     2 + rng.Float64()*6,
			Color:    "#4a4037",
		})
	}
	return l
}

func decorateRiver(rng *rand.Rand) Layout {
	l := Layout{
		Environment: domain.EnvironmentRiver,
		Ground:      Strip{Width: groundSize, Length: groundSize, Color: "#2d4a2a"},
		Water:       &Strip{Width: 20, Length: groundSize, Color: "#4a7c99"},
	}
	for i := 0; i < 35; i++ {
		l.Props = append(l.Props, rock(rng, 45, 0.8, 1.5, "#5a5a5a"))
	}
	return l
}

func rock(rng *rand.Rand, half, minSize, spread float64, color string) Prop {
	return Prop{
		Kind:     PropRock,
		Position: scatter(rng, half),
		Size:     minSize + rng.Float64()*spread,
		Rotation: rng.Float64() * math.Pi,
		Color:    color,
	}
}

// scatter picks a ground point uniformly in [-half, half) on X and Z.
func scatter(rng *rand.Rand, half float64) domain.Vec3 {
	return domain.Vec3{
		X: (rng.Float64() - 0.5) * 2 * half,
		Z: (rng.Float64() - 0.5) * 2 * half,
	}
}
