package levels

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/nancyzera/jurassic-game/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// DefaultItemDescription is shown for items the catalog does not describe.
const DefaultItemDescription = "A valuable item found in the wilderness"

// ItemTemplate - one collectible as written in the catalog.
type ItemTemplate struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Category    domain.ItemCategory `yaml:"category"`
	X           float64             `yaml:"x"`
	Z           float64             `yaml:"z"`
	Height      *float64            `yaml:"height"`
}

// LevelTemplate - catalog entry: level metadata plus its item table.
type LevelTemplate struct {
	domain.Level  `yaml:",inline"`
	StartUnlocked bool           `yaml:"unlocked"`
	Items         []ItemTemplate `yaml:"items"`
}

// Catalog is immutable after Parse; sessions copy what they need out of it.
type Catalog struct {
	Levels []LevelTemplate `yaml:"levels"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path means the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("catalog yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	for i := range c.Levels {
		lvl := &c.Levels[i]
		lvl.ItemCount = len(lvl.Items)
		for j := range lvl.Items {
			if lvl.Items[j].Description == "" {
				lvl.Items[j].Description = DefaultItemDescription
			}
		}
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("catalog has no levels")
	}
	sort.SliceStable(c.Levels, func(i, j int) bool { return c.Levels[i].ID < c.Levels[j].ID })

	seenItems := make(map[string]int)
	for i, lvl := range c.Levels {
		// Progression unlocks id+1, so ids have to be contiguous from 1.
		if lvl.ID != i+1 {
			return fmt.Errorf("level ids must run 1..%d, got %d at position %d", len(c.Levels), lvl.ID, i)
		}
		if lvl.Name == "" {
			return fmt.Errorf("level %d: missing name", lvl.ID)
		}
		if len(lvl.Items) == 0 {
			return fmt.Errorf("level %d: no items", lvl.ID)
		}
		// A level is only completable if every item fits in the bag.
		if len(lvl.Items) > domain.InventorySize {
			return fmt.Errorf("level %d: %d items do not fit an inventory of %d", lvl.ID, len(lvl.Items), domain.InventorySize)
		}
		if lvl.PredatorCount < 0 || lvl.PredatorCount > len(PredatorAnchors) {
			return fmt.Errorf("level %d: predators must be 0..%d, got %d", lvl.ID, len(PredatorAnchors), lvl.PredatorCount)
		}
		for _, it := range lvl.Items {
			if it.ID == "" || it.Name == "" {
				return fmt.Errorf("level %d: item without id or name", lvl.ID)
			}
			if prev, dup := seenItems[it.ID]; dup {
				return fmt.Errorf("item %q appears in levels %d and %d", it.ID, prev, lvl.ID)
			}
			seenItems[it.ID] = lvl.ID
		}
	}
	if !c.Levels[0].StartUnlocked {
		return fmt.Errorf("level 1 must start unlocked")
	}
	return nil
}

// Level returns the template with the given id.
func (c *Catalog) Level(id int) (LevelTemplate, bool) {
	if id < 1 || id > len(c.Levels) {
		return LevelTemplate{}, false
	}
	return c.Levels[id-1], true
}

// Summaries returns the level metadata with initial unlock flags applied.
func (c *Catalog) Summaries() []domain.Level {
	out := make([]domain.Level, len(c.Levels))
	for i, lvl := range c.Levels {
		out[i] = lvl.Level
		out[i].Unlocked = lvl.StartUnlocked
		out[i].Completed = false
	}
	return out
}

// Lookup resolves free text to a level: an id, an exact or prefix name,
// an environment name, or a name within a small edit distance.
func (c *Catalog) Lookup(query string) (LevelTemplate, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return LevelTemplate{}, false
	}
	if id, err := strconv.Atoi(q); err == nil {
		return c.Level(id)
	}

	for _, lvl := range c.Levels {
		if strings.ToLower(lvl.Name) == q {
			return lvl, true
		}
	}
	for _, lvl := range c.Levels {
		if lvl.Environment.String() == q {
			return lvl, true
		}
	}
	if len(q) >= 3 {
		for _, lvl := range c.Levels {
			if strings.HasPrefix(strings.ToLower(lvl.Name), q) {
				return lvl, true
			}
		}
	}

	best, bestDist := -1, 0
	for i, lvl := range c.Levels {
		name := strings.ToLower(lvl.Name)
		dist := levenshtein.ComputeDistance(q, name)
		if dist > distanceLimit(len(name)) {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return LevelTemplate{}, false
	}
	return c.Levels[best], true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
