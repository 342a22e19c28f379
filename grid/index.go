package grid

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Index owns placed tiles. Tiles live in a sparse set keyed by handle slot;
// byCoord maps a packed coordinate to the handle and enforces one tile per
// coordinate.
type Index struct {
	gens []generation
	free []tileSlot

	dense  []*Tile
	sparse []int

	byCoord *intmap.Map[int64, TileID]
}

func NewIndex() *Index {
	return &Index{byCoord: intmap.New[int64, TileID](64)}
}

func (x *Index) allocate() TileID {
	var slot tileSlot
	if n := len(x.free); n > 0 {
		slot = x.free[n-1]
		x.free = x.free[:n-1]
	} else {
		x.gens = append(x.gens, 0)
		x.sparse = append(x.sparse, -1)
		slot = tileSlot(len(x.gens))
	}
	return makeTileID(slot, x.gens[slot-1])
}

// Insert stores t at t.Coord, assigning its ID.
func (x *Index) Insert(t *Tile) (TileID, error) {
	if t == nil {
		return 0, fmt.Errorf("grid: insert nil tile")
	}
	if x.byCoord.Has(t.Coord.key()) {
		return 0, fmt.Errorf("%w: %s", ErrCoordinateOccupied, t.Coord)
	}
	id := x.allocate()
	t.ID = id
	x.sparse[id.slot()-1] = len(x.dense)
	x.dense = append(x.dense, t)
	x.byCoord.Put(t.Coord.key(), id)
	return id, nil
}

// Resolve returns the tile for a live handle.
func (x *Index) Resolve(id TileID) (*Tile, bool) {
	if !id.Valid() || int(id.slot()) > len(x.gens) {
		return nil, false
	}
	s := id.slot() - 1
	if x.gens[s] != id.generation() {
		return nil, false
	}
	i := x.sparse[s]
	if i < 0 || i >= len(x.dense) {
		return nil, false
	}
	return x.dense[i], true
}

func (x *Index) At(c Coord) (*Tile, bool) {
	id, ok := x.byCoord.Get(c.key())
	if !ok {
		return nil, false
	}
	return x.Resolve(id)
}

func (x *Index) Has(c Coord) bool {
	return x.byCoord.Has(c.key())
}

// Delete removes the tile at c and invalidates its handle.
func (x *Index) Delete(c Coord) (*Tile, bool) {
	id, ok := x.byCoord.Get(c.key())
	if !ok {
		return nil, false
	}
	t, ok := x.Resolve(id)
	if !ok {
		x.byCoord.Del(c.key())
		return nil, false
	}
	s := id.slot() - 1
	i := x.sparse[s]
	last := len(x.dense) - 1
	moved := x.dense[last]
	x.dense[i] = moved
	x.sparse[moved.ID.slot()-1] = i
	x.dense[last] = nil
	x.dense = x.dense[:last]
	x.sparse[s] = -1

	x.gens[s]++
	x.free = append(x.free, id.slot())
	x.byCoord.Del(c.key())
	return t, true
}

func (x *Index) Len() int {
	return len(x.dense)
}

// Tiles returns the live tiles in storage order. The slice is reused by the
// index; copy it before mutating the index.
func (x *Index) Tiles() []*Tile {
	return x.dense
}

// Clear drops every tile. Handles issued before the call stop resolving.
func (x *Index) Clear() {
	x.free = x.free[:0]
	for s := range x.gens {
		x.gens[s]++
		x.sparse[s] = -1
		x.free = append(x.free, tileSlot(s+1))
	}
	for i := range x.dense {
		x.dense[i] = nil
	}
	x.dense = x.dense[:0]
	x.byCoord.Clear()
}
