package grid

import (
	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
	"github.com/milk9111/isogrid/common"
)

// neighborOffsets covers the 3x3 block around a cell, the cell included.
var neighborOffsets = [9]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Frontier is the set of cells available for placement, kept in insertion
// order and keyed by coordinate.
type Frontier struct {
	proj  Projection
	cells []*Cell
	slots *intmap.Map[int64, int]
}

func NewFrontier(p Projection) *Frontier {
	return &Frontier{proj: p, slots: intmap.New[int64, int](64)}
}

func (f *Frontier) Projection() Projection {
	return f.proj
}

func (f *Frontier) reset() {
	for i := range f.cells {
		f.cells[i] = nil
	}
	f.cells = f.cells[:0]
	f.slots.Clear()
}

// Initialize replaces the frontier with a width x length block of empty
// cells laid out from origin, or from the centered origin when centered.
func (f *Frontier) Initialize(width, length int, origin common.Vec3, centered bool) {
	f.reset()
	if centered {
		origin = f.proj.CenteredOrigin(width)
	}
	for i := 0; i < width; i++ {
		for j := 0; j < length; j++ {
			world := origin.Add(f.proj.Offset(float64(i), float64(j)))
			f.Insert(newCell(Coord{X: i, Y: j}, world, 0))
		}
	}
}

// ExpandAround adds the missing neighbors of cell. New cells inherit the
// cell's base height. Returns how many cells were added.
func (f *Frontier) ExpandAround(cell *Cell) int {
	if cell == nil {
		return 0
	}
	added := 0
	for _, off := range neighborOffsets {
		c := cell.Coord.Add(off)
		if !c.keyable() || f.slots.Has(c.key()) {
			continue
		}
		world := cell.World.Add(f.proj.Offset(float64(off.X), float64(off.Y)))
		if f.Insert(newCell(c, world, cell.BaseHeight)) {
			added++
		}
	}
	return added
}

// Insert appends cell unless its coordinate is already present or outside
// the 32-bit range.
func (f *Frontier) Insert(cell *Cell) bool {
	if cell == nil || !cell.Coord.keyable() || f.slots.Has(cell.Coord.key()) {
		return false
	}
	f.slots.Put(cell.Coord.key(), len(f.cells))
	f.cells = append(f.cells, cell)
	return true
}

func (f *Frontier) Lookup(c Coord) (*Cell, bool) {
	if !c.keyable() {
		return nil, false
	}
	i, ok := f.slots.Get(c.key())
	if !ok {
		return nil, false
	}
	return f.cells[i], true
}

// Contains reports whether cell is the frontier's own cell for its
// coordinate.
func (f *Frontier) Contains(cell *Cell) bool {
	if cell == nil {
		return false
	}
	own, ok := f.Lookup(cell.Coord)
	return ok && own == cell
}

// Cells returns the cells in insertion order. Do not modify the slice.
func (f *Frontier) Cells() []*Cell {
	return f.cells
}

func (f *Frontier) Len() int {
	return len(f.cells)
}

// HitTest returns the first cell, in insertion order, whose planar world
// position lies within radius of p. It is not necessarily the closest one.
func (f *Frontier) HitTest(p cp.Vector, radius float64) (*Cell, bool) {
	for _, c := range f.cells {
		if c.World.XY().Distance(p) < radius {
			return c, true
		}
	}
	return nil, false
}
