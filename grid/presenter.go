package grid

import "github.com/milk9111/isogrid/common"

// Duplicate is a decorative copy of a tile left behind by Extrude. It is not
// indexed and does not occupy a cell.
type Duplicate struct {
	Source TileID
	Coord  Coord
	Sprite string
	World  common.Vec3
}

// Presenter is notified when the visible state of tiles changes. Hosts use
// it to create, move and destroy whatever draws a tile.
type Presenter interface {
	TileCreated(t *Tile)
	TileMoved(t *Tile)
	TileScaled(t *Tile)
	TileDestroyed(t *Tile)
	DuplicateCreated(d Duplicate)
	DuplicatesCleared()
}

type NopPresenter struct{}

func (NopPresenter) TileCreated(*Tile)          {}
func (NopPresenter) TileMoved(*Tile)            {}
func (NopPresenter) TileScaled(*Tile)           {}
func (NopPresenter) TileDestroyed(*Tile)        {}
func (NopPresenter) DuplicateCreated(Duplicate) {}
func (NopPresenter) DuplicatesCleared()         {}
