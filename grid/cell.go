package grid

import "github.com/milk9111/isogrid/common"

// Cell is a placeable slot on the frontier. Two cells are the same slot when
// their coordinates match.
type Cell struct {
	Coord          Coord
	World          common.Vec3
	SavedWorld     common.Vec3
	VerticalOffset common.Vec3

	Height      int
	SavedHeight int
	BaseHeight  int

	occupant TileID
}

func newCell(c Coord, world common.Vec3, height int) *Cell {
	return &Cell{
		Coord:       c,
		World:       world,
		SavedWorld:  world,
		Height:      height,
		SavedHeight: height,
		BaseHeight:  height,
	}
}

// Occupant is the handle of the tile on this cell, zero when empty. Resolve
// it through the owning Stage.
func (c *Cell) Occupant() TileID {
	return c.occupant
}

func (c *Cell) Occupied() bool {
	return c.occupant.Valid()
}
