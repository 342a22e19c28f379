package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexInsertAndLookup(t *testing.T) {
	x := NewIndex()
	a := &Tile{Coord: Coord{X: 1, Y: 2}}
	b := &Tile{Coord: Coord{X: -3, Y: 0}}

	idA, err := x.Insert(a)
	require.NoError(t, err)
	idB, err := x.Insert(b)
	require.NoError(t, err)

	assert.True(t, idA.Valid())
	assert.NotEqual(t, idA, idB)
	assert.Equal(t, 2, x.Len())

	got, ok := x.At(Coord{X: 1, Y: 2})
	require.True(t, ok)
	assert.Same(t, a, got)

	got, ok = x.Resolve(idB)
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestIndexRejectsSecondTileOnCoordinate(t *testing.T) {
	x := NewIndex()
	first := &Tile{Coord: Coord{X: 4, Y: 4}}
	_, err := x.Insert(first)
	require.NoError(t, err)

	_, err = x.Insert(&Tile{Coord: Coord{X: 4, Y: 4}})
	assert.ErrorIs(t, err, ErrCoordinateOccupied)
	assert.Equal(t, 1, x.Len())

	got, _ := x.At(Coord{X: 4, Y: 4})
	assert.Same(t, first, got)
}

func TestIndexDeleteInvalidatesHandle(t *testing.T) {
	x := NewIndex()
	tiles := []*Tile{
		{Coord: Coord{X: 0, Y: 0}},
		{Coord: Coord{X: 1, Y: 0}},
		{Coord: Coord{X: 2, Y: 0}},
	}
	for _, tl := range tiles {
		_, err := x.Insert(tl)
		require.NoError(t, err)
	}
	stale := tiles[0].ID

	removed, ok := x.Delete(Coord{X: 0, Y: 0})
	require.True(t, ok)
	assert.Same(t, tiles[0], removed)
	assert.False(t, x.Has(Coord{X: 0, Y: 0}))

	_, ok = x.Resolve(stale)
	assert.False(t, ok, "stale handle must not resolve")

	// The moved tail element is still reachable.
	got, ok := x.Resolve(tiles[2].ID)
	require.True(t, ok)
	assert.Same(t, tiles[2], got)

	// Slot reuse issues a new generation.
	fresh := &Tile{Coord: Coord{X: 9, Y: 9}}
	id, err := x.Insert(fresh)
	require.NoError(t, err)
	assert.Equal(t, stale.slot(), id.slot())
	assert.NotEqual(t, stale, id)
	_, ok = x.Resolve(stale)
	assert.False(t, ok)

	_, ok = x.Delete(Coord{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestIndexClear(t *testing.T) {
	x := NewIndex()
	tl := &Tile{Coord: Coord{X: 1, Y: 1}}
	_, err := x.Insert(tl)
	require.NoError(t, err)
	old := tl.ID

	x.Clear()
	assert.Zero(t, x.Len())
	assert.False(t, x.Has(Coord{X: 1, Y: 1}))

	next := &Tile{Coord: Coord{X: 1, Y: 1}}
	_, err = x.Insert(next)
	require.NoError(t, err)
	_, ok := x.Resolve(old)
	assert.False(t, ok)
}

func TestZeroTileIDNeverResolves(t *testing.T) {
	x := NewIndex()
	_, ok := x.Resolve(0)
	assert.False(t, ok)
	assert.False(t, TileID(0).Valid())
}
