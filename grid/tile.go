package grid

import (
	"strconv"

	"github.com/milk9111/isogrid/common"
)

// TileID is a generational handle into an Index. The zero value refers to
// no tile. A handle outlives its tile but stops resolving once the tile is
// removed.
type TileID uint64

type tileSlot uint32
type generation uint32

const tileSlotBits = 32

func makeTileID(slot tileSlot, gen generation) TileID {
	return TileID(uint64(gen)<<tileSlotBits | uint64(slot))
}

func (id TileID) slot() tileSlot {
	return tileSlot(uint32(id))
}

func (id TileID) generation() generation {
	return generation(uint32(uint64(id) >> tileSlotBits))
}

func (id TileID) Valid() bool {
	return id.slot() > 0
}

func (id TileID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// PathScratch is working storage for an external pathfinder. Nothing in this
// package reads or writes it.
type PathScratch struct {
	G        int
	H        int
	F        int
	Distance int
	Parent   TileID
}

// Tile is a placed tile.
type Tile struct {
	ID           TileID
	Coord        Coord
	CatalogIndex int
	Sprite       string
	Category     Category
	Layers       int
	Placement    SubLayer

	// Baseline is the owning cell's world position when the tile was placed.
	Baseline common.Vec3
	World    common.Vec3

	MoveGridX  float64
	MoveGridY  float64
	MoveWorldX float64
	MoveWorldY float64
	ScaleX     float64
	ScaleY     float64

	WorldHeight int

	Path PathScratch
}

// Moved reports whether any preview move delta is non-zero.
func (t *Tile) Moved() bool {
	return t.MoveGridX != 0 || t.MoveGridY != 0 || t.MoveWorldX != 0 || t.MoveWorldY != 0
}
