package grid

import "fmt"

// Select appends the tile on cell to the selection. The first selected tile
// leads preview edits.
func (s *Stage) Select(cell *Cell) (*Tile, error) {
	t, ok := s.Occupant(cell)
	if !ok {
		if cell == nil {
			return nil, ErrNoTileAtPosition
		}
		return nil, fmt.Errorf("%w: %s", ErrNoTileAtPosition, cell.Coord)
	}
	for _, id := range s.selection {
		if id == t.ID {
			return t, nil
		}
	}
	s.selection = append(s.selection, t.ID)
	return t, nil
}

// Deselect clears the selection.
func (s *Stage) Deselect() {
	s.selection = s.selection[:0]
}

func (s *Stage) unselect(id TileID) {
	out := s.selection[:0]
	for _, sel := range s.selection {
		if sel != id {
			out = append(out, sel)
		}
	}
	s.selection = out
}

// Selection returns the selected tiles, lead first.
func (s *Stage) Selection() []*Tile {
	tiles := make([]*Tile, 0, len(s.selection))
	for _, id := range s.selection {
		if t, ok := s.index.Resolve(id); ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

func (s *Stage) IsSelected(id TileID) bool {
	for _, sel := range s.selection {
		if sel == id {
			return true
		}
	}
	return false
}

// Lead returns the tile whose preview deltas drive the selection.
func (s *Stage) Lead() (*Tile, error) {
	tiles, err := s.selected()
	if err != nil {
		return nil, err
	}
	return tiles[0], nil
}

func (s *Stage) selected() ([]*Tile, error) {
	tiles := s.Selection()
	if len(tiles) == 0 {
		return nil, ErrNoSelection
	}
	return tiles, nil
}
