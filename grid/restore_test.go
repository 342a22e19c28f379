package grid

import (
	"testing"

	"github.com/milk9111/isogrid/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreCell(t *testing.T) {
	s := newTestStage(t, 2, 2)

	existing := mustCell(t, s, 0, 0)
	got := s.RestoreCell(Cell{Coord: Coord{X: 0, Y: 0}, World: common.Vec3{X: 9}, Height: 3, SavedHeight: 3, BaseHeight: 1})
	assert.Same(t, existing, got)
	assert.Equal(t, 3, existing.Height)
	assertVec(t, common.Vec3{X: 9}, existing.World)

	added := s.RestoreCell(Cell{Coord: Coord{X: 7, Y: 7}, World: common.Vec3{Y: 2}})
	assert.False(t, added.Occupied())
	assert.True(t, s.Frontier().Contains(added))
	assert.Equal(t, 5, s.Frontier().Len())
}

func TestRestoreTile(t *testing.T) {
	s := newTestStage(t, 2, 2)
	rec := &recordingPresenter{}
	s.SetPresenter(rec)
	cell := mustCell(t, s, 1, 1)
	cell.Height, cell.SavedHeight = 4, 4

	saved := Tile{
		ID:           TileID(99),
		Coord:        Coord{X: 1, Y: 1},
		CatalogIndex: tileDouble,
		Sprite:       "grass.png",
		World:        common.Vec3{X: 1, Y: 2},
		ScaleX:       2,
		ScaleY:       2,
		WorldHeight:  4,
		Path:         PathScratch{G: 5},
	}
	restored, err := s.RestoreTile(saved)
	require.NoError(t, err)

	assert.NotEqual(t, TileID(99), restored.ID)
	assert.Zero(t, restored.Path.G)
	assert.Equal(t, restored.ID, cell.Occupant())
	assert.Equal(t, 4, cell.Height)
	assert.Equal(t, 4, s.Frontier().Len(), "restore does not grow the frontier")
	assert.Len(t, rec.created, 1)

	_, err = s.RestoreTile(saved)
	assert.ErrorIs(t, err, ErrCoordinateOccupied)

	saved.Coord = Coord{X: 30, Y: 30}
	_, err = s.RestoreTile(saved)
	assert.ErrorIs(t, err, ErrUnknownCell)

	saved.Coord = Coord{X: 0, Y: 0}
	saved.CatalogIndex = tileUnset
	_, err = s.RestoreTile(saved)
	assert.ErrorIs(t, err, ErrInvalidTileDefinition)
}

func TestRestoreDuplicate(t *testing.T) {
	s := newTestStage(t, 2, 2)
	placed := mustPlace(t, s, 0, 0, tileDouble)

	s.RestoreDuplicate(Duplicate{Source: TileID(77), Coord: Coord{X: 0, Y: 0}, Sprite: "grass.png"})
	s.RestoreDuplicate(Duplicate{Source: TileID(77), Coord: Coord{X: 5, Y: 5}, Sprite: "rock.png"})

	dups := s.Duplicates()
	require.Len(t, dups, 2)
	assert.Equal(t, placed.ID, dups[0].Source)
	assert.Zero(t, dups[1].Source)
}
