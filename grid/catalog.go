package grid

import (
	"fmt"
	"strings"
)

// Category controls how pathfinding treats a tile.
type Category int

const (
	Active Category = iota
	BlocksMovement
	Inactive
)

func (c Category) String() string {
	switch c {
	case Active:
		return "active"
	case BlocksMovement:
		return "blocks_movement"
	case Inactive:
		return "inactive"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "active":
		return Active, nil
	case "blocks_movement", "blocksmovement", "blocking":
		return BlocksMovement, nil
	case "inactive":
		return Inactive, nil
	default:
		return 0, fmt.Errorf("%w: tile category %q", ErrInvalidConfig, s)
	}
}

// SubLayer is the half of a cell a single-layer tile sits in.
type SubLayer int

const (
	Top SubLayer = iota
	Bottom
)

func (l SubLayer) String() string {
	if l == Bottom {
		return "bottom"
	}
	return "top"
}

func ParseSubLayer(s string) (SubLayer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	default:
		return 0, fmt.Errorf("%w: placement layer %q", ErrInvalidConfig, s)
	}
}

// TileDef is a catalog entry. Placement only matters when Layers is 1.
type TileDef struct {
	Name      string
	Sprite    string
	Category  Category
	Layers    int
	Placement SubLayer
}

// Catalog is the ordered list of tile types a stage can place.
type Catalog []TileDef

func (c Catalog) Lookup(i int) (TileDef, error) {
	if i < 0 || i >= len(c) {
		return TileDef{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c))
	}
	def := c[i]
	if def.Sprite == "" {
		return TileDef{}, fmt.Errorf("%w: entry %d", ErrInvalidTileDefinition, i)
	}
	return def, nil
}

// verticalOffset is the Y shift a tile contributes to its cell.
func (d TileDef) verticalOffset(scaledHeight float64) float64 {
	if d.Layers != 1 {
		return 0
	}
	if d.Placement == Top {
		return scaledHeight * .25
	}
	return -scaledHeight * .25
}

// heightIncrement is the pathfinding height a tile adds to its cell.
func (d TileDef) heightIncrement(perLayer int) int {
	if d.Layers == 1 && d.Placement == Bottom {
		return perLayer
	}
	return perLayer * 2
}
