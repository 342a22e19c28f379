package stages

import (
	"errors"
	"fmt"

	"github.com/milk9111/isogrid/common"
	"github.com/milk9111/isogrid/grid"
	"gopkg.in/yaml.v3"
)

var ErrUnknownTile = errors.New("stages: unknown tile")

// Spec is the on-disk description of a stage: grid geometry, the tile
// catalog and the editor presentation settings.
type Spec struct {
	Name          string      `yaml:"name"`
	StartWidth    int         `yaml:"start_width"`
	StartLength   int         `yaml:"start_length"`
	CenterStart   bool        `yaml:"center_start"`
	StartPosition common.Vec3 `yaml:"start_position"`

	PixelWidth    float64 `yaml:"pixel_width"`
	UnitsPerPixel float64 `yaml:"units_per_pixel"`
	AspectRatio   string  `yaml:"aspect_ratio"`

	UseHeightForPathfinding bool `yaml:"use_height_for_pathfinding"`
	TileHeightPerLayer      int  `yaml:"tile_height_per_layer"`

	Tiles  []TileSpec `yaml:"tiles"`
	Editor EditorSpec `yaml:"editor"`
}

type TileSpec struct {
	Name      string `yaml:"name"`
	Sprite    string `yaml:"sprite"`
	Category  string `yaml:"category"`
	Layers    int    `yaml:"layers"`
	Placement string `yaml:"placement"`
}

// EditorSpec only affects how the host draws the stage.
type EditorSpec struct {
	HandleSize         float64   `yaml:"handle_size"`
	HandleColliderSize float64   `yaml:"handle_collider_size"`
	OutlineViewMode    string    `yaml:"outline_view_mode"`
	Zoom               float64   `yaml:"zoom"`
	Colors             ColorSpec `yaml:"colors"`
}

type ColorSpec struct {
	GridDefault        string `yaml:"grid_default"`
	GridMouseOver      string `yaml:"grid_mouse_over"`
	GridSelected       string `yaml:"grid_selected"`
	HandleDefault      string `yaml:"handle_default"`
	HandleActive       string `yaml:"handle_active"`
	HandleMouseOver    string `yaml:"handle_mouse_over"`
	HandleSelected     string `yaml:"handle_selected"`
	TileGroupSelection string `yaml:"tile_group_selection"`
}

// NewSpec returns a spec holding the defaults that a stage file overrides.
func NewSpec() Spec {
	cfg := grid.DefaultConfig()
	return Spec{
		Name:                    cfg.Name,
		StartWidth:              cfg.Width,
		StartLength:             cfg.Length,
		CenterStart:             cfg.Centered,
		PixelWidth:              cfg.Projection.PixelWidth,
		UnitsPerPixel:           cfg.Projection.UnitsPerPixel,
		AspectRatio:             cfg.Projection.Aspect.String(),
		UseHeightForPathfinding: cfg.UseHeightForPathfinding,
		TileHeightPerLayer:      cfg.TileHeightPerLayer,
		Editor: EditorSpec{
			HandleSize:         .15,
			HandleColliderSize: .75,
			OutlineViewMode:    "split_layers",
			Zoom:               24,
		},
	}
}

func ParseSpec(data []byte) (Spec, error) {
	spec := NewSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func LoadSpec(filename string) (Spec, error) {
	data, err := Load(filename)
	if err != nil {
		return Spec{}, fmt.Errorf("stages: load %s: %w", filename, err)
	}
	spec, err := ParseSpec(data)
	if err != nil {
		return Spec{}, fmt.Errorf("stages: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func (s Spec) Config() (grid.Config, error) {
	aspect, err := grid.ParseAspectRatio(s.AspectRatio)
	if err != nil {
		return grid.Config{}, err
	}
	cfg := grid.Config{
		Name:     s.Name,
		Width:    s.StartWidth,
		Length:   s.StartLength,
		Origin:   s.StartPosition,
		Centered: s.CenterStart,
		Projection: grid.Projection{
			PixelWidth:    s.PixelWidth,
			UnitsPerPixel: s.UnitsPerPixel,
			Aspect:        aspect,
		},
		TileHeightPerLayer:      s.TileHeightPerLayer,
		UseHeightForPathfinding: s.UseHeightForPathfinding,
	}
	return cfg, cfg.Validate()
}

// Catalog converts the tile list. Entries without a sprite are kept so
// catalog indices stay stable; placing one fails.
func (s Spec) Catalog() (grid.Catalog, error) {
	catalog := make(grid.Catalog, 0, len(s.Tiles))
	for i, t := range s.Tiles {
		category, err := grid.ParseCategory(t.Category)
		if err != nil {
			return nil, fmt.Errorf("stages: tile %d: %w", i, err)
		}
		placement, err := grid.ParseSubLayer(t.Placement)
		if err != nil {
			return nil, fmt.Errorf("stages: tile %d: %w", i, err)
		}
		layers := t.Layers
		if layers == 0 {
			layers = 2
		}
		if layers != 1 && layers != 2 {
			return nil, fmt.Errorf("stages: tile %d: %w: layers %d", i, grid.ErrInvalidConfig, t.Layers)
		}
		catalog = append(catalog, grid.TileDef{
			Name:      t.Name,
			Sprite:    t.Sprite,
			Category:  category,
			Layers:    layers,
			Placement: placement,
		})
	}
	return catalog, nil
}

// TileIndex finds a catalog entry by name.
func (s Spec) TileIndex(name string) (int, error) {
	for i, t := range s.Tiles {
		if t.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownTile, name)
}

// NewStage builds a stage from the spec.
func (s Spec) NewStage() (*grid.Stage, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	catalog, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return grid.NewStage(cfg, catalog)
}
