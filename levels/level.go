package levels

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/milk9111/isogrid/common"
	"github.com/milk9111/isogrid/grid"
)

var ErrVersion = errors.New("levels: unsupported document version")

const Version = 1

// Level is a saved stage: its configuration, catalog and every frontier
// cell and tile with their baselines and preview state.
type Level struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Name    string `json:"name"`

	Width    int         `json:"width"`
	Length   int         `json:"length"`
	Origin   common.Vec3 `json:"origin"`
	Centered bool        `json:"centered"`

	PixelWidth    float64 `json:"pixel_width"`
	UnitsPerPixel float64 `json:"units_per_pixel"`
	AspectRatio   string  `json:"aspect_ratio"`

	TileHeightPerLayer      int  `json:"tile_height_per_layer"`
	UseHeightForPathfinding bool `json:"use_height_for_pathfinding"`

	Catalog    []TileInfo        `json:"catalog"`
	Cells      []CellRecord      `json:"cells"`
	Tiles      []TileRecord      `json:"tiles,omitempty"`
	Duplicates []DuplicateRecord `json:"duplicates,omitempty"`
}

type TileInfo struct {
	Name      string `json:"name"`
	Sprite    string `json:"sprite"`
	Category  string `json:"category"`
	Layers    int    `json:"layers"`
	Placement string `json:"placement"`
}

type CellRecord struct {
	Coord          grid.Coord  `json:"coord"`
	World          common.Vec3 `json:"world"`
	SavedWorld     common.Vec3 `json:"saved_world"`
	VerticalOffset common.Vec3 `json:"vertical_offset"`
	Height         int         `json:"height"`
	SavedHeight    int         `json:"saved_height"`
	BaseHeight     int         `json:"base_height"`
}

type TileRecord struct {
	Coord        grid.Coord  `json:"coord"`
	CatalogIndex int         `json:"catalog_index"`
	Category     string      `json:"category"`
	Baseline     common.Vec3 `json:"baseline"`
	World        common.Vec3 `json:"world"`
	WorldHeight  int         `json:"world_height"`
	MoveGridX    float64     `json:"move_grid_x,omitempty"`
	MoveGridY    float64     `json:"move_grid_y,omitempty"`
	MoveWorldX   float64     `json:"move_world_x,omitempty"`
	MoveWorldY   float64     `json:"move_world_y,omitempty"`
	ScaleX       float64     `json:"scale_x"`
	ScaleY       float64     `json:"scale_y"`
}

type DuplicateRecord struct {
	Coord  grid.Coord  `json:"coord"`
	Sprite string      `json:"sprite"`
	World  common.Vec3 `json:"world"`
}

// Capture snapshots stage into a new level document with a fresh ID.
func Capture(stage *grid.Stage) *Level {
	cfg := stage.Config()
	lvl := &Level{
		Version:                 Version,
		ID:                      uuid.NewString(),
		Name:                    cfg.Name,
		Width:                   cfg.Width,
		Length:                  cfg.Length,
		Origin:                  cfg.Origin,
		Centered:                cfg.Centered,
		PixelWidth:              cfg.Projection.PixelWidth,
		UnitsPerPixel:           cfg.Projection.UnitsPerPixel,
		AspectRatio:             cfg.Projection.Aspect.String(),
		TileHeightPerLayer:      cfg.TileHeightPerLayer,
		UseHeightForPathfinding: cfg.UseHeightForPathfinding,
	}

	for _, def := range stage.Catalog() {
		lvl.Catalog = append(lvl.Catalog, TileInfo{
			Name:      def.Name,
			Sprite:    def.Sprite,
			Category:  def.Category.String(),
			Layers:    def.Layers,
			Placement: def.Placement.String(),
		})
	}

	for _, c := range stage.Frontier().Cells() {
		lvl.Cells = append(lvl.Cells, CellRecord{
			Coord:          c.Coord,
			World:          c.World,
			SavedWorld:     c.SavedWorld,
			VerticalOffset: c.VerticalOffset,
			Height:         c.Height,
			SavedHeight:    c.SavedHeight,
			BaseHeight:     c.BaseHeight,
		})
	}

	for _, t := range stage.Index().Tiles() {
		lvl.Tiles = append(lvl.Tiles, TileRecord{
			Coord:        t.Coord,
			CatalogIndex: t.CatalogIndex,
			Category:     t.Category.String(),
			Baseline:     t.Baseline,
			World:        t.World,
			WorldHeight:  t.WorldHeight,
			MoveGridX:    t.MoveGridX,
			MoveGridY:    t.MoveGridY,
			MoveWorldX:   t.MoveWorldX,
			MoveWorldY:   t.MoveWorldY,
			ScaleX:       t.ScaleX,
			ScaleY:       t.ScaleY,
		})
	}

	for _, d := range stage.Duplicates() {
		lvl.Duplicates = append(lvl.Duplicates, DuplicateRecord{Coord: d.Coord, Sprite: d.Sprite, World: d.World})
	}
	return lvl
}

func (l *Level) Config() (grid.Config, error) {
	aspect, err := grid.ParseAspectRatio(l.AspectRatio)
	if err != nil {
		return grid.Config{}, err
	}
	cfg := grid.Config{
		Name:     l.Name,
		Width:    l.Width,
		Length:   l.Length,
		Origin:   l.Origin,
		Centered: l.Centered,
		Projection: grid.Projection{
			PixelWidth:    l.PixelWidth,
			UnitsPerPixel: l.UnitsPerPixel,
			Aspect:        aspect,
		},
		TileHeightPerLayer:      l.TileHeightPerLayer,
		UseHeightForPathfinding: l.UseHeightForPathfinding,
	}
	return cfg, cfg.Validate()
}

func (l *Level) TileCatalog() (grid.Catalog, error) {
	catalog := make(grid.Catalog, 0, len(l.Catalog))
	for i, info := range l.Catalog {
		category, err := grid.ParseCategory(info.Category)
		if err != nil {
			return nil, fmt.Errorf("levels: catalog %d: %w", i, err)
		}
		placement, err := grid.ParseSubLayer(info.Placement)
		if err != nil {
			return nil, fmt.Errorf("levels: catalog %d: %w", i, err)
		}
		catalog = append(catalog, grid.TileDef{
			Name:      info.Name,
			Sprite:    info.Sprite,
			Category:  category,
			Layers:    info.Layers,
			Placement: placement,
		})
	}
	return catalog, nil
}

// Restore builds a new stage holding exactly the captured state. Tile
// handles are reissued.
func (l *Level) Restore(presenter grid.Presenter) (*grid.Stage, error) {
	if l.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, l.Version)
	}
	cfg, err := l.Config()
	if err != nil {
		return nil, err
	}
	catalog, err := l.TileCatalog()
	if err != nil {
		return nil, err
	}
	stage, err := grid.NewStage(cfg, catalog)
	if err != nil {
		return nil, err
	}
	stage.SetPresenter(presenter)

	for _, rec := range l.Cells {
		stage.RestoreCell(grid.Cell{
			Coord:          rec.Coord,
			World:          rec.World,
			SavedWorld:     rec.SavedWorld,
			VerticalOffset: rec.VerticalOffset,
			Height:         rec.Height,
			SavedHeight:    rec.SavedHeight,
			BaseHeight:     rec.BaseHeight,
		})
	}

	for _, rec := range l.Tiles {
		def, err := catalog.Lookup(rec.CatalogIndex)
		if err != nil {
			return nil, fmt.Errorf("levels: tile %s: %w", rec.Coord, err)
		}
		category := def.Category
		if rec.Category != "" {
			if category, err = grid.ParseCategory(rec.Category); err != nil {
				return nil, fmt.Errorf("levels: tile %s: %w", rec.Coord, err)
			}
		}
		if _, err := stage.RestoreTile(grid.Tile{
			Coord:        rec.Coord,
			CatalogIndex: rec.CatalogIndex,
			Sprite:       def.Sprite,
			Category:     category,
			Layers:       def.Layers,
			Placement:    def.Placement,
			Baseline:     rec.Baseline,
			World:        rec.World,
			MoveGridX:    rec.MoveGridX,
			MoveGridY:    rec.MoveGridY,
			MoveWorldX:   rec.MoveWorldX,
			MoveWorldY:   rec.MoveWorldY,
			ScaleX:       rec.ScaleX,
			ScaleY:       rec.ScaleY,
			WorldHeight:  rec.WorldHeight,
		}); err != nil {
			return nil, fmt.Errorf("levels: tile %s: %w", rec.Coord, err)
		}
	}

	for _, rec := range l.Duplicates {
		stage.RestoreDuplicate(grid.Duplicate{Coord: rec.Coord, Sprite: rec.Sprite, World: rec.World})
	}
	return stage, nil
}
