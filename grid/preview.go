package grid

import (
	"math"

	"github.com/milk9111/isogrid/common"
)

// heightBucket quantizes a vertical world move into whole layers. The checks
// overlap at 0.5 and run first match wins.
func heightBucket(y float64) int {
	switch {
	case y >= .75:
		return 2
	case y >= .5:
		return 1
	case y <= -.75:
		return -2
	case y <= .5:
		return -1
	default:
		return 0
	}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// previewDelta is the world offset of a tile's move deltas, depth excluded.
func (s *Stage) previewDelta(t *Tile) common.Vec3 {
	p := s.cfg.Projection
	iso := p.Offset(t.MoveGridX, t.MoveGridY)
	return common.Vec3{
		X: iso.X + t.MoveWorldX*p.ScaledWidth(),
		Y: iso.Y + t.MoveWorldY*p.ScaledHeight(),
	}
}

// SetMove writes preview deltas onto the lead tile and applies them to the
// whole selection.
func (s *Stage) SetMove(gridX, gridY, worldX, worldY float64) error {
	lead, err := s.Lead()
	if err != nil {
		return err
	}
	lead.MoveGridX, lead.MoveGridY = gridX, gridY
	lead.MoveWorldX, lead.MoveWorldY = worldX, worldY
	return s.AdjustPositions()
}

// AdjustPositions copies the lead's move deltas to every selected tile and
// moves each tile and its cell relative to their saved baselines.
func (s *Stage) AdjustPositions() error {
	tiles, err := s.selected()
	if err != nil {
		return err
	}
	lead := tiles[0]
	gx, gy := clampUnit(lead.MoveGridX), clampUnit(lead.MoveGridY)
	wx, wy := clampUnit(lead.MoveWorldX), clampUnit(lead.MoveWorldY)
	for _, t := range tiles {
		t.MoveGridX, t.MoveGridY = gx, gy
		t.MoveWorldX, t.MoveWorldY = wx, wy
		cell, ok := s.frontier.Lookup(t.Coord)
		if !ok {
			continue
		}
		delta := s.previewDelta(t)
		t.World = t.Baseline.Add(delta).Add(cell.VerticalOffset)
		cell.World = cell.SavedWorld.Add(delta)
		s.applyHeight(t, cell)
		s.presenter.TileMoved(t)
	}
	return nil
}

func (s *Stage) applyHeight(t *Tile, cell *Cell) {
	layers := heightBucket(t.MoveWorldY)
	height := int(math.Floor(float64(layers) * float64(s.cfg.TileHeightPerLayer)))
	cell.Height = cell.SavedHeight + height
	t.WorldHeight = cell.Height
}

// ResetPositions drops the preview move of every selected tile.
func (s *Stage) ResetPositions() error {
	tiles, err := s.selected()
	if err != nil {
		return err
	}
	for _, t := range tiles {
		t.MoveGridX, t.MoveGridY = 0, 0
		t.MoveWorldX, t.MoveWorldY = 0, 0
		cell, ok := s.frontier.Lookup(t.Coord)
		if !ok {
			continue
		}
		t.World = t.Baseline.Add(cell.VerticalOffset)
		cell.World = cell.SavedWorld
		cell.Height = cell.SavedHeight
		t.WorldHeight = cell.SavedHeight
		s.presenter.TileMoved(t)
	}
	return nil
}

// CommitPositions applies the lead's preview move to the selection and makes
// it the new baseline, so a later reset returns here.
func (s *Stage) CommitPositions() error {
	if err := s.AdjustPositions(); err != nil {
		return err
	}
	for _, t := range s.Selection() {
		cell, ok := s.frontier.Lookup(t.Coord)
		if !ok {
			continue
		}
		t.Baseline = t.Baseline.Add(s.previewDelta(t))
		t.MoveGridX, t.MoveGridY = 0, 0
		t.MoveWorldX, t.MoveWorldY = 0, 0
		cell.SavedWorld = cell.World
		cell.SavedHeight = cell.Height
		t.WorldHeight = cell.Height
	}
	return nil
}

// Scale sets the display scale of every selected tile.
func (s *Stage) Scale(sx, sy float64) error {
	tiles, err := s.selected()
	if err != nil {
		return err
	}
	for _, t := range tiles {
		t.ScaleX, t.ScaleY = sx, sy
		s.presenter.TileScaled(t)
	}
	return nil
}

func (s *Stage) ResetScale() error {
	return s.Scale(1, 1)
}

// Extrude turns every selected tile into an obstacle and leaves a decorative
// duplicate offset by direction, in cell units. Duplicates are not indexed.
func (s *Stage) Extrude(direction common.Vec3) error {
	tiles, err := s.selected()
	if err != nil {
		return err
	}
	p := s.cfg.Projection
	step := common.Vec3{X: p.ScaledWidth(), Y: p.ScaledHeight(), Z: 1}
	for _, t := range tiles {
		cell, ok := s.frontier.Lookup(t.Coord)
		if !ok {
			continue
		}
		t.Category = Inactive
		d := Duplicate{
			Source: t.ID,
			Coord:  t.Coord,
			Sprite: t.Sprite,
			World:  cell.World.Add(direction.Mul(step)),
		}
		s.duplicates = append(s.duplicates, d)
		s.presenter.DuplicateCreated(d)
	}
	return nil
}
