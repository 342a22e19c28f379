package grid

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/isogrid/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeProducesUniqueCells(t *testing.T) {
	cases := []struct {
		name          string
		width, length int
	}{
		{"empty", 0, 0},
		{"row", 4, 1},
		{"square", 5, 5},
		{"wide", 7, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewFrontier(DefaultConfig().Projection)
			f.Initialize(c.width, c.length, common.Vec3{}, true)
			require.Equal(t, c.width*c.length, f.Len())

			seen := map[Coord]bool{}
			for _, cell := range f.Cells() {
				assert.False(t, seen[cell.Coord], "duplicate %s", cell.Coord)
				seen[cell.Coord] = true
				assert.GreaterOrEqual(t, cell.Coord.X, 0)
				assert.Less(t, cell.Coord.X, c.width)
				assert.GreaterOrEqual(t, cell.Coord.Y, 0)
				assert.Less(t, cell.Coord.Y, c.length)
				assert.Zero(t, cell.Height)
				assert.Zero(t, cell.BaseHeight)
				assert.False(t, cell.Occupied())
			}
		})
	}
}

func TestInitializeCenteredWorldPositions(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	f.Initialize(2, 2, common.Vec3{X: 100}, true)

	want := map[Coord]common.Vec3{
		{0, 0}: {X: -1.6, Y: 0, Z: 0},
		{0, 1}: {X: 0, Y: 0.8, Z: 1},
		{1, 0}: {X: 0, Y: -0.8, Z: -1},
		{1, 1}: {X: 1.6, Y: 0, Z: 0},
	}
	for coord, pos := range want {
		cell, ok := f.Lookup(coord)
		require.True(t, ok)
		assertVec(t, pos, cell.World)
		assertVec(t, pos, cell.SavedWorld)
	}
}

func TestInitializeUsesOriginWhenNotCentered(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	origin := common.Vec3{X: 10, Y: 5, Z: 0}
	f.Initialize(3, 3, origin, false)
	cell, ok := f.Lookup(Coord{X: 2, Y: 1})
	require.True(t, ok)
	assertVec(t, origin.Add(f.Projection().Offset(2, 1)), cell.World)
}

func TestInitializeReplacesPreviousCells(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	f.Initialize(4, 4, common.Vec3{}, true)
	f.Initialize(1, 2, common.Vec3{}, true)
	assert.Equal(t, 2, f.Len())
	_, ok := f.Lookup(Coord{X: 3, Y: 3})
	assert.False(t, ok)
}

func TestExpandAround(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	f.Initialize(1, 1, common.Vec3{}, false)
	center, _ := f.Lookup(Coord{})
	center.BaseHeight = 4
	center.Height = 10

	added := f.ExpandAround(center)
	assert.Equal(t, 8, added)
	assert.Equal(t, 9, f.Len())

	for _, off := range neighborOffsets {
		cell, ok := f.Lookup(off)
		require.Truef(t, ok, "neighbor %s missing", off)
		if off == (Coord{}) {
			continue
		}
		assertVec(t, f.Projection().Offset(float64(off.X), float64(off.Y)), cell.World)
		assert.Equal(t, 4, cell.BaseHeight, "inherits base height, not current height")
		assert.Equal(t, 4, cell.Height)
		assert.Equal(t, 4, cell.SavedHeight)
	}
}

func TestExpandAroundIsMonotonic(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	f.Initialize(3, 3, common.Vec3{}, true)
	before := map[Coord]*Cell{}
	for _, c := range f.Cells() {
		before[c.Coord] = c
	}

	corner, _ := f.Lookup(Coord{X: 2, Y: 2})
	assert.Equal(t, 5, f.ExpandAround(corner))
	assert.Equal(t, 0, f.ExpandAround(corner), "second expansion adds nothing")

	edge, _ := f.Lookup(Coord{X: 2, Y: 1})
	assert.Equal(t, 1, f.ExpandAround(edge), "only (3,0) is new")
	assert.Equal(t, 15, f.Len())

	for coord, cell := range before {
		got, ok := f.Lookup(coord)
		require.True(t, ok)
		assert.Same(t, cell, got)
	}
}

func TestFrontierContains(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	f.Initialize(2, 2, common.Vec3{}, true)
	own, _ := f.Lookup(Coord{X: 1, Y: 1})
	assert.True(t, f.Contains(own))
	assert.False(t, f.Contains(&Cell{Coord: Coord{X: 1, Y: 1}}))
	assert.False(t, f.Contains(nil))
	assert.False(t, f.Insert(&Cell{Coord: Coord{X: 1, Y: 1}}))
}

func TestHitTest(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	f.Initialize(2, 2, common.Vec3{}, true)

	cell, ok := f.HitTest(cp.Vector{X: 1.5, Y: 0.1}, 0.75)
	require.True(t, ok)
	assert.Equal(t, Coord{X: 1, Y: 1}, cell.Coord)

	_, ok = f.HitTest(cp.Vector{X: 10, Y: 10}, 0.75)
	assert.False(t, ok)
}

func TestCoordArithmetic(t *testing.T) {
	a := Coord{X: 3, Y: -2}
	b := Coord{X: -1, Y: 4}
	assert.Equal(t, Coord{X: 2, Y: 2}, a.Add(b))
	assert.Equal(t, Coord{X: 4, Y: -6}, a.Sub(b))
	assert.Equal(t, 10, a.Distance(b))
	assert.NotEqual(t, Coord{X: 1, Y: 2}.key(), Coord{X: 2, Y: 1}.key())
	assert.NotEqual(t, Coord{X: -1, Y: 0}.key(), Coord{X: 0, Y: -1}.key())
}

func TestFrontierRejectsWideCoords(t *testing.T) {
	f := NewFrontier(DefaultConfig().Projection)
	f.Initialize(1, 1, common.Vec3{}, false)
	origin, ok := f.Lookup(Coord{})
	require.True(t, ok)

	// 1<<32 truncates to 0 when packed and would alias the origin
	wide := Coord{X: math.MaxInt32 + 1}
	assert.False(t, f.Insert(&Cell{Coord: wide}))
	assert.False(t, f.Insert(&Cell{Coord: Coord{X: 1 << 32}}))
	_, ok = f.Lookup(Coord{X: 1 << 32})
	assert.False(t, ok)
	got, ok := f.Lookup(Coord{})
	require.True(t, ok)
	assert.Same(t, origin, got)
	assert.Equal(t, 1, f.Len())

	edge := &Cell{Coord: Coord{X: math.MaxInt32, Y: math.MinInt32}}
	assert.True(t, f.Insert(edge))
	// only the neighbors that stay within 32 bits are added
	assert.Equal(t, 3, f.ExpandAround(edge))
	assert.Equal(t, 5, f.Len())
}
