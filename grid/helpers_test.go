package grid

import (
	"testing"

	"github.com/milk9111/isogrid/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got common.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func testCatalog() Catalog {
	return Catalog{
		{Name: "grass", Sprite: "grass.png", Category: Active, Layers: 2},
		{Name: "slab_top", Sprite: "slab.png", Category: Active, Layers: 1, Placement: Top},
		{Name: "slab_bottom", Sprite: "slab.png", Category: Active, Layers: 1, Placement: Bottom},
		{Name: "unset", Sprite: "", Layers: 2},
		{Name: "rock", Sprite: "rock.png", Category: BlocksMovement, Layers: 2},
	}
}

const (
	tileDouble = iota
	tileTop
	tileBottom
	tileUnset
	tileRock
)

func newTestStage(t *testing.T, width, length int) *Stage {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Length = width, length
	s, err := NewStage(cfg, testCatalog())
	require.NoError(t, err)
	return s
}

func mustCell(t *testing.T, s *Stage, x, y int) *Cell {
	t.Helper()
	c, ok := s.CellAt(Coord{X: x, Y: y})
	require.Truef(t, ok, "cell %d,%d missing", x, y)
	return c
}

func mustPlace(t *testing.T, s *Stage, x, y, tile int) *Tile {
	t.Helper()
	placed, err := s.Place(mustCell(t, s, x, y), tile)
	require.NoError(t, err)
	return placed
}

// recordingPresenter counts presenter calls.
type recordingPresenter struct {
	created    []TileID
	moved      []TileID
	scaled     []TileID
	destroyed  []TileID
	duplicates []Duplicate
	cleared    int
}

func (r *recordingPresenter) TileCreated(t *Tile)   { r.created = append(r.created, t.ID) }
func (r *recordingPresenter) TileMoved(t *Tile)     { r.moved = append(r.moved, t.ID) }
func (r *recordingPresenter) TileScaled(t *Tile)    { r.scaled = append(r.scaled, t.ID) }
func (r *recordingPresenter) TileDestroyed(t *Tile) { r.destroyed = append(r.destroyed, t.ID) }
func (r *recordingPresenter) DuplicateCreated(d Duplicate) {
	r.duplicates = append(r.duplicates, d)
}
func (r *recordingPresenter) DuplicatesCleared() { r.cleared++ }
