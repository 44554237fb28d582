package levels

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nancyzera/jurassic-game/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if len(c.Levels) != 3 {
		t.Fatalf("Expected 3 levels, got %d", len(c.Levels))
	}

	tests := []struct {
		id        int
		name      string
		env       domain.EnvironmentKind
		items     int
		predators int
		unlocked  bool
	}{
		{1, "Jungle Outskirts", domain.EnvironmentJungle, 3, 2, true},
		{2, "Deep Caverns", domain.EnvironmentCave, 4, 3, false},
		{3, "Primordial Rivers", domain.EnvironmentRiver, 5, 4, false},
	}

	summaries := c.Summaries()
	for _, tt := range tests {
		lvl, ok := c.Level(tt.id)
		if !ok {
			t.Fatalf("Level %d missing", tt.id)
		}
		if lvl.Name != tt.name || lvl.Environment != tt.env {
			t.Errorf("Level %d = %q/%v, want %q/%v", tt.id, lvl.Name, lvl.Environment, tt.name, tt.env)
		}
		if lvl.ItemCount != tt.items || len(lvl.Items) != tt.items {
			t.Errorf("Level %d item count = %d (%d), want %d", tt.id, lvl.ItemCount, len(lvl.Items), tt.items)
		}
		if lvl.PredatorCount != tt.predators {
			t.Errorf("Level %d predators = %d, want %d", tt.id, lvl.PredatorCount, tt.predators)
		}
		if summaries[tt.id-1].Unlocked != tt.unlocked {
			t.Errorf("Level %d unlocked = %v, want %v", tt.id, summaries[tt.id-1].Unlocked, tt.unlocked)
		}
	}
}

func TestSpawnItems(t *testing.T) {
	lvl, _ := Default().Level(1)
	items := lvl.SpawnItems()

	if items[0].Name != "Ancient Compass" || items[0].Category != domain.ItemCategoryTool {
		t.Errorf("First item = %+v", items[0])
	}
	if items[0].Position != (domain.Vec3{X: 15, Y: domain.ItemSpawnHeight, Z: 8}) {
		t.Errorf("Spawn position = %+v", items[0].Position)
	}

	// Fresh copies each time
	items[0].Collected = true
	if again := lvl.SpawnItems(); again[0].Collected {
		t.Error("SpawnItems returned a shared slice")
	}

	lvl2, _ := Default().Level(2)
	for _, it := range lvl2.SpawnItems() {
		if it.Description == "" {
			t.Errorf("Item %s has no description", it.ID)
		}
	}
	if got := lvl2.SpawnItems()[2].Description; got != DefaultItemDescription {
		t.Errorf("Cave Torch description = %q", got)
	}
}

func TestAnchors(t *testing.T) {
	lvl, _ := Default().Level(3)
	anchors := lvl.Anchors()
	if len(anchors) != 4 {
		t.Fatalf("Expected 4 anchors, got %d", len(anchors))
	}
	if anchors[0] != (domain.Vec3{X: 10, Z: 5}) || anchors[3] != (domain.Vec3{X: -25, Z: 15}) {
		t.Errorf("Unexpected anchors: %v", anchors)
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	tests := []struct {
		query string
		want  int
	}{
		{"2", 2},
		{"Deep Caverns", 2},
		{"deep caverns", 2},
		{"river", 3},
		{"jungle", 1},
		{"Prim", 3},
		{"Jungel Outskirts", 1},
		{"Primordal Rivers", 3},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			lvl, ok := c.Lookup(tt.query)
			if !ok || lvl.ID != tt.want {
				t.Errorf("Lookup(%q) = %d,%v; want %d", tt.query, lvl.ID, ok, tt.want)
			}
		})
	}

	for _, q := range []string{"", "volcano", "9", "xx"} {
		if _, ok := c.Lookup(q); ok {
			t.Errorf("Lookup(%q) should fail", q)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"no levels": "levels: []",
		"gap in ids": `
levels:
  - {id: 1, name: A, environment: jungle, difficulty: Easy, unlocked: true, items: [{id: a, name: A, category: tool}]}
  - {id: 3, name: C, environment: cave, difficulty: Hard, items: [{id: c, name: C, category: tool}]}`,
		"first locked": `
levels:
  - {id: 1, name: A, environment: jungle, difficulty: Easy, items: [{id: a, name: A, category: tool}]}`,
		"duplicate item": `
levels:
  - {id: 1, name: A, environment: jungle, difficulty: Easy, unlocked: true, items: [{id: a, name: A, category: tool}]}
  - {id: 2, name: B, environment: cave, difficulty: Hard, items: [{id: a, name: B, category: gear}]}`,
		"bad category": `
levels:
  - {id: 1, name: A, environment: jungle, difficulty: Easy, unlocked: true, items: [{id: a, name: A, category: weapon}]}`,
		"more items than the inventory holds": `
levels:
  - id: 1
    name: A
    environment: jungle
    difficulty: Easy
    unlocked: true
    items:
      - {id: a1, name: A1, category: tool}
      - {id: a2, name: A2, category: tool}
      - {id: a3, name: A3, category: tool}
      - {id: a4, name: A4, category: tool}
      - {id: a5, name: A5, category: tool}
      - {id: a6, name: A6, category: tool}`,
		"too many predators": `
levels:
  - {id: 1, name: A, environment: jungle, difficulty: Easy, unlocked: true, predators: 9, items: [{id: a, name: A, category: tool}]}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(raw)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestParse_Height(t *testing.T) {
	raw := `
levels:
  - id: 1
    name: Test Range
    environment: river
    difficulty: Medium
    unlocked: true
    items:
      - {id: t1, name: Float, category: artifact, x: 1, z: 2, height: 2}`
	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	it := c.Levels[0].Items[0].SpawnItem()
	if it.Position != (domain.Vec3{X: 1, Y: 2, Z: 2}) {
		t.Errorf("Position = %+v", it.Position)
	}
	if it.Description != DefaultItemDescription {
		t.Errorf("Description = %q", it.Description)
	}
}

func TestDecorate(t *testing.T) {
	counts := func(l Layout) map[PropKind]int {
		m := map[PropKind]int{}
		for _, p := range l.Props {
			m[p.Kind]++
		}
		return m
	}

	jungle := Decorate(domain.EnvironmentJungle, rand.New(rand.NewSource(1)))
	if c := counts(jungle); c[PropTree] != 50 || c[PropRock] != 30 || c[PropGrass] != 100 {
		t.Errorf("Jungle props = %v", c)
	}
	if jungle.Water != nil {
		t.Error("Jungle should have no water")
	}

	cave := Decorate(domain.EnvironmentCave, rand.New(rand.NewSource(1)))
	if c := counts(cave); c[PropStalagmite] != 40 || len(cave.Props) != 40 {
		t.Errorf("Cave props = %v", c)
	}

	river := Decorate(domain.EnvironmentRiver, rand.New(rand.NewSource(1)))
	if river.Water == nil || river.Water.Width != 20 {
		t.Errorf("River water = %+v", river.Water)
	}
	if c := counts(river); c[PropRock] != 35 {
		t.Errorf("River props = %v", c)
	}
	for _, p := range river.Props {
		if math.Abs(p.Position.X) > 45 || math.Abs(p.Position.Z) > 45 {
			t.Errorf("Prop out of bounds: %+v", p.Position)
		}
	}

	again := Decorate(domain.EnvironmentRiver, rand.New(rand.NewSource(1)))
	if again.Props[7] != river.Props[7] {
		t.Error("Same seed should give the same layout")
	}
}
