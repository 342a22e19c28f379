package grid

import "fmt"

// RestoreCell writes a saved cell state onto the frontier. An existing cell
// at the same coordinate is updated in place and keeps its occupant.
func (s *Stage) RestoreCell(saved Cell) *Cell {
	if c, ok := s.frontier.Lookup(saved.Coord); ok {
		c.World, c.SavedWorld, c.VerticalOffset = saved.World, saved.SavedWorld, saved.VerticalOffset
		c.Height, c.SavedHeight, c.BaseHeight = saved.Height, saved.SavedHeight, saved.BaseHeight
		return c
	}
	c := saved
	c.occupant = 0
	s.frontier.Insert(&c)
	return &c
}

// RestoreTile indexes a saved tile as is. Unlike Place it neither stacks
// offsets nor heights and does not grow the frontier; the cell must already
// hold its saved state.
func (s *Stage) RestoreTile(saved Tile) (*Tile, error) {
	cell, ok := s.frontier.Lookup(saved.Coord)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCell, saved.Coord)
	}
	if _, err := s.catalog.Lookup(saved.CatalogIndex); err != nil {
		return nil, err
	}
	if _, ok := s.Occupant(cell); ok || s.index.Has(cell.Coord) {
		return nil, fmt.Errorf("%w: %s", ErrCoordinateOccupied, cell.Coord)
	}

	t := saved
	t.ID = 0
	t.Path = PathScratch{}
	if _, err := s.index.Insert(&t); err != nil {
		return nil, err
	}
	cell.occupant = t.ID
	s.presenter.TileCreated(&t)
	return &t, nil
}

// RestoreDuplicate records a saved extrusion copy. The source is looked up
// by coordinate and left zero when no tile is there.
func (s *Stage) RestoreDuplicate(d Duplicate) {
	d.Source = 0
	if t, ok := s.index.At(d.Coord); ok {
		d.Source = t.ID
	}
	s.duplicates = append(s.duplicates, d)
	s.presenter.DuplicateCreated(d)
}
