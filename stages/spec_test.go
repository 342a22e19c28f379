package stages

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/isogrid/grid"
)

func TestLoadDefaultSpec(t *testing.T) {
	spec, err := LoadSpec(DefaultSpec)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Name == "" {
		t.Fatalf("expected stage name")
	}
	if len(spec.Tiles) == 0 {
		t.Fatalf("expected tiles in default spec")
	}

	cfg, err := spec.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Projection.Aspect != grid.Ratio2x1 {
		t.Fatalf("expected 2:1 aspect, got %v", cfg.Projection.Aspect)
	}

	catalog, err := spec.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(catalog) != len(spec.Tiles) {
		t.Fatalf("expected %d catalog entries, got %d", len(spec.Tiles), len(catalog))
	}

	stage, err := spec.NewStage()
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	want := cfg.Width * cfg.Length
	if got := stage.Frontier().Len(); got != want {
		t.Fatalf("expected %d frontier cells, got %d", want, got)
	}
}

func TestParseSpecDefaults(t *testing.T) {
	spec, err := ParseSpec([]byte("name: Tiny\nstart_width: 2\n"))
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	def := grid.DefaultConfig()
	if spec.Name != "Tiny" || spec.StartWidth != 2 {
		t.Fatalf("overrides not applied: %+v", spec)
	}
	if spec.StartLength != def.Length {
		t.Fatalf("expected default length %d, got %d", def.Length, spec.StartLength)
	}
	if spec.TileHeightPerLayer != def.TileHeightPerLayer {
		t.Fatalf("expected default height per layer %d, got %d", def.TileHeightPerLayer, spec.TileHeightPerLayer)
	}
	if spec.Editor.HandleColliderSize != .75 {
		t.Fatalf("expected default collider size, got %v", spec.Editor.HandleColliderSize)
	}
}

func TestSpecCatalog(t *testing.T) {
	cases := []struct {
		name    string
		tile    TileSpec
		wantErr bool
		check   func(t *testing.T, d grid.TileDef)
	}{
		{
			name: "layers_default_to_two",
			tile: TileSpec{Name: "a", Sprite: "a.png"},
			check: func(t *testing.T, d grid.TileDef) {
				if d.Layers != 2 {
					t.Fatalf("expected 2 layers, got %d", d.Layers)
				}
			},
		},
		{
			name: "bottom_placement",
			tile: TileSpec{Name: "b", Sprite: "b.png", Layers: 1, Placement: "bottom", Category: "blocks_movement"},
			check: func(t *testing.T, d grid.TileDef) {
				if d.Placement != grid.Bottom {
					t.Fatalf("expected bottom placement, got %v", d.Placement)
				}
				if d.Category != grid.BlocksMovement {
					t.Fatalf("expected blocks_movement, got %v", d.Category)
				}
			},
		},
		{
			name: "empty_sprite_kept",
			tile: TileSpec{Name: "c"},
			check: func(t *testing.T, d grid.TileDef) {
				if d.Sprite != "" {
					t.Fatalf("expected empty sprite")
				}
			},
		},
		{name: "bad_layers", tile: TileSpec{Name: "d", Sprite: "d.png", Layers: 3}, wantErr: true},
		{name: "bad_category", tile: TileSpec{Name: "e", Sprite: "e.png", Category: "lava"}, wantErr: true},
		{name: "bad_placement", tile: TileSpec{Name: "f", Sprite: "f.png", Placement: "middle"}, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := NewSpec()
			spec.Tiles = []TileSpec{c.tile}
			catalog, err := spec.Catalog()
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Catalog: %v", err)
			}
			c.check(t, catalog[0])
		})
	}
}

func TestSpecConfigRejectsBadAspect(t *testing.T) {
	spec := NewSpec()
	spec.AspectRatio = "4:1"
	if _, err := spec.Config(); err == nil {
		t.Fatalf("expected aspect ratio error")
	}
}

func TestTileIndex(t *testing.T) {
	spec := NewSpec()
	spec.Tiles = []TileSpec{{Name: "grass"}, {Name: "rock"}}
	i, err := spec.TileIndex("rock")
	if err != nil || i != 1 {
		t.Fatalf("expected rock at 1, got %d (%v)", i, err)
	}
	if _, err := spec.TileIndex("lava"); !errors.Is(err, ErrUnknownTile) {
		t.Fatalf("expected ErrUnknownTile, got %v", err)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("name: Disk\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Name != "Disk" {
		t.Fatalf("expected disk spec, got %q", spec.Name)
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	for _, name := range []string{"plateau.tengo", "scripts/plateau.tengo", "stages/scripts/plateau.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("LoadScript: %v", err)
			}
			if len(data) == 0 {
				t.Fatalf("expected script contents")
			}
		})
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "stage.yaml")
	if err := os.WriteFile(target, []byte("name: Watched\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}
