package domain

import (
	"fmt"
	"math"
	"strings"
)

// ItemCategory - what kind of collectible an item is.
type ItemCategory uint8

const (
	ItemCategoryUnknown ItemCategory = iota
	ItemCategoryArtifact
	ItemCategoryTool
	ItemCategoryGear
)

var itemCategoryToString = map[ItemCategory]string{
	ItemCategoryArtifact: "artifact",
	ItemCategoryTool:     "tool",
	ItemCategoryGear:     "gear",
}

var itemCategoryStringToType = map[string]ItemCategory{
	"artifact": ItemCategoryArtifact,
	"tool":     ItemCategoryTool,
	"gear":     ItemCategoryGear,
}

func (c ItemCategory) String() string {
	if val, ok := itemCategoryToString[c]; ok {
		return val
	}
	return "unknown"
}

// ParseItemCategory is case-insensitive.
func ParseItemCategory(s string) ItemCategory {
	if val, ok := itemCategoryStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return ItemCategoryUnknown
}

func (c ItemCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ItemCategory) UnmarshalText(b []byte) error {
	v := ParseItemCategory(string(b))
	if v == ItemCategoryUnknown {
		return fmt.Errorf("unknown item category %q", string(b))
	}
	*c = v
	return nil
}

// Item - a collectible placed in a level.
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    ItemCategory `json:"category"`
	Position    Vec3         `json:"position"` // spawn position, Y is the rest height
	Collected   bool         `json:"collected"`
}

// PositionAt returns where the item floats at the given elapsed time.
// Items bob around their rest height; proximity is measured against this.
func (it Item) PositionAt(elapsed float64) Vec3 {
	p := it.Position
	p.Y += math.Sin(elapsed*ItemBobFrequency) * ItemBobAmplitude
	return p
}
