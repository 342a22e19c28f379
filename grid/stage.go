package grid

import (
	"fmt"

	"github.com/milk9111/isogrid/common"
)

// Config is the geometry and stacking setup of a stage.
type Config struct {
	Name     string
	Width    int
	Length   int
	Origin   common.Vec3
	Centered bool

	Projection         Projection
	TileHeightPerLayer int

	// UseHeightForPathfinding is carried for the pathfinding collaborator.
	UseHeightForPathfinding bool
}

func DefaultConfig() Config {
	return Config{
		Name:                    "New Stage",
		Width:                   5,
		Length:                  5,
		Centered:                true,
		Projection:              Projection{PixelWidth: 64, UnitsPerPixel: 20, Aspect: Ratio2x1},
		TileHeightPerLayer:      2,
		UseHeightForPathfinding: true,
	}
}

func (c Config) Validate() error {
	if c.Width < 0 || c.Length < 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Width, c.Length)
	}
	if c.TileHeightPerLayer < 0 {
		return fmt.Errorf("%w: tile height per layer %d", ErrInvalidConfig, c.TileHeightPerLayer)
	}
	return c.Projection.Validate()
}

// Stage is one editing session: the frontier, the placed tiles and the
// current selection. It is not safe for concurrent use.
type Stage struct {
	cfg       Config
	catalog   Catalog
	frontier  *Frontier
	index     *Index
	presenter Presenter

	selection  []TileID
	duplicates []Duplicate
}

// NewStage builds a stage and lays out its initial grid.
func NewStage(cfg Config, catalog Catalog) (*Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Stage{
		cfg:       cfg,
		catalog:   catalog,
		frontier:  NewFrontier(cfg.Projection),
		index:     NewIndex(),
		presenter: NopPresenter{},
	}
	s.frontier.Initialize(cfg.Width, cfg.Length, cfg.Origin, cfg.Centered)
	return s, nil
}

func (s *Stage) Config() Config {
	return s.cfg
}

func (s *Stage) Projection() Projection {
	return s.cfg.Projection
}

func (s *Stage) Catalog() Catalog {
	return s.catalog
}

// SetCatalog swaps the tile catalog. Tiles already placed keep the
// attributes they were placed with.
func (s *Stage) SetCatalog(c Catalog) {
	s.catalog = c
}

func (s *Stage) Frontier() *Frontier {
	return s.frontier
}

func (s *Stage) Index() *Index {
	return s.index
}

// SetPresenter installs p; nil restores the no-op presenter.
func (s *Stage) SetPresenter(p Presenter) {
	if p == nil {
		p = NopPresenter{}
	}
	s.presenter = p
}

// InitializeGrid discards all cells, tiles, selection and duplicates and
// lays out a fresh width x length grid.
func (s *Stage) InitializeGrid(width, length int, origin common.Vec3, centered bool) error {
	if width < 0 || length < 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, width, length)
	}
	for _, t := range s.index.Tiles() {
		s.presenter.TileDestroyed(t)
	}
	s.index.Clear()
	s.selection = s.selection[:0]
	if len(s.duplicates) > 0 {
		s.duplicates = s.duplicates[:0]
		s.presenter.DuplicatesCleared()
	}
	s.frontier.Initialize(width, length, origin, centered)
	s.cfg.Width, s.cfg.Length = width, length
	s.cfg.Origin, s.cfg.Centered = origin, centered
	return nil
}

// ExpandAround grows the frontier around cell.
func (s *Stage) ExpandAround(cell *Cell) int {
	return s.frontier.ExpandAround(cell)
}

func (s *Stage) CellAt(c Coord) (*Cell, bool) {
	return s.frontier.Lookup(c)
}

func (s *Stage) TileAt(c Coord) (*Tile, bool) {
	return s.index.At(c)
}

// Occupant resolves the tile on cell. A handle that no longer resolves is
// cleared so the cell reads as empty.
func (s *Stage) Occupant(cell *Cell) (*Tile, bool) {
	if cell == nil || !cell.occupant.Valid() {
		return nil, false
	}
	t, ok := s.index.Resolve(cell.occupant)
	if !ok || t.Coord != cell.Coord {
		cell.occupant = 0
		return nil, false
	}
	return t, true
}

// Place puts catalog entry catalogIndex on cell and grows the frontier
// around it. Nothing is mutated when an error is returned.
func (s *Stage) Place(cell *Cell, catalogIndex int) (*Tile, error) {
	if !s.frontier.Contains(cell) {
		return nil, ErrUnknownCell
	}
	def, err := s.catalog.Lookup(catalogIndex)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Occupant(cell); ok || s.index.Has(cell.Coord) {
		return nil, fmt.Errorf("%w: %s", ErrCoordinateOccupied, cell.Coord)
	}

	t := &Tile{
		Coord:        cell.Coord,
		CatalogIndex: catalogIndex,
		Sprite:       def.Sprite,
		Category:     def.Category,
		Layers:       def.Layers,
		Placement:    def.Placement,
		Baseline:     cell.World,
		ScaleX:       1,
		ScaleY:       1,
	}
	if _, err := s.index.Insert(t); err != nil {
		return nil, err
	}

	cell.VerticalOffset.Y += def.verticalOffset(s.cfg.Projection.ScaledHeight())
	t.World = cell.World.Add(cell.VerticalOffset)

	cell.Height += def.heightIncrement(s.cfg.TileHeightPerLayer)
	cell.SavedHeight = cell.Height
	t.WorldHeight = cell.Height

	cell.occupant = t.ID
	s.frontier.ExpandAround(cell)
	s.presenter.TileCreated(t)
	return t, nil
}

// Remove deletes the tile on cell. The cell stays on the frontier with its
// height back at the base height.
func (s *Stage) Remove(cell *Cell) error {
	if cell == nil {
		return ErrNoTileAtPosition
	}
	if _, ok := s.Occupant(cell); !ok {
		return fmt.Errorf("%w: %s", ErrNoTileAtPosition, cell.Coord)
	}
	t, ok := s.index.Delete(cell.Coord)
	if !ok {
		cell.occupant = 0
		return fmt.Errorf("%w: %s", ErrNoTileAtPosition, cell.Coord)
	}
	cell.Height = cell.BaseHeight
	cell.SavedHeight = cell.BaseHeight
	cell.occupant = 0
	s.unselect(t.ID)
	s.presenter.TileDestroyed(t)
	return nil
}

// Duplicates lists the decorative copies made by Extrude.
func (s *Stage) Duplicates() []Duplicate {
	return s.duplicates
}
