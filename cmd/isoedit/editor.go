package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isogrid/assets"
	"github.com/milk9111/isogrid/common"
	"github.com/milk9111/isogrid/grid"
	"github.com/milk9111/isogrid/levels"
	"github.com/milk9111/isogrid/script"
	"github.com/milk9111/isogrid/stages"
	"golang.design/x/clipboard"
)

const (
	gridMoveStep  = 0.25
	worldMoveStep = 0.1
	scaleStep     = 0.1
)

var tileHotkeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9, ebiten.KeyDigit0,
}

type editorOptions struct {
	StagePath  string
	LevelPath  string
	ScriptPath string
	OutPath    string
	AssetsDir  string
	Seed       int64
	Verbose    bool
}

// Editor is the ebiten game hosting a stage.
type Editor struct {
	opts    editorOptions
	spec    stages.Spec
	stage   *grid.Stage
	scene   *scenePresenter
	sprites *spriteCache
	cam     *camera
	colors  palette
	outline OutlineViewMode

	ui        *ebitenui.UI
	inspector *inspector
	watcher   *stages.Watcher
	clipboard bool

	currentTile int
	hover       *grid.Cell
	status      string

	panning            bool
	lastPanX, lastPanY int
}

func newEditor(opts editorOptions) (*Editor, error) {
	lib, err := assets.Open(opts.AssetsDir)
	if err != nil {
		log.Printf("Failed to list assets in %s: %v", opts.AssetsDir, err)
		lib = nil
	} else {
		log.Printf("Loaded %d sprites from %s", len(lib.Names()), opts.AssetsDir)
	}

	e := &Editor{
		opts:    opts,
		sprites: newSpriteCache(lib),
	}
	if err := e.rebuild(); err != nil {
		return nil, err
	}
	e.cam = newCamera(e.spec.Editor.Zoom)

	e.ui, e.inspector = buildInspectorUI(inspectorActions{
		ResetPosition:  func() { e.report(e.stage.ResetPositions()) },
		CommitPosition: func() { e.report(e.stage.CommitPositions()) },
		ResetScale:     func() { e.report(e.stage.ResetScale()) },
		ScaleUp:        func() { e.scaleBy(scaleStep) },
		ScaleDown:      func() { e.scaleBy(-scaleStep) },
		ExtrudeUp:      func() { e.report(e.stage.Extrude(common.Vec3{Y: 1})) },
		ExtrudeDown:    func() { e.report(e.stage.Extrude(common.Vec3{Y: -1})) },
		Remove:         e.removeSelection,
		CycleOutline:   func() { e.outline = e.outline.Next() },
		Save:           e.save,
	})

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		e.clipboard = true
	}
	return e, nil
}

// rebuild reloads the stage spec and recreates the stage from the saved
// level, the build script, or an empty grid, in that order.
func (e *Editor) rebuild() error {
	spec, err := stages.LoadSpec(e.opts.StagePath)
	if err != nil {
		return err
	}
	mode, err := ParseOutlineViewMode(spec.Editor.OutlineViewMode)
	if err != nil {
		log.Printf("%v, using %s", err, mode)
	}

	// the current stage and scene stay live until the new ones are built
	scene := newScenePresenter(e.opts.Verbose)
	stage, err := e.loadStage(spec, scene)
	if err != nil {
		return err
	}

	e.spec = spec
	e.stage = stage
	e.scene = scene
	e.colors = newPalette(spec.Editor.Colors)
	e.outline = mode
	e.hover = nil
	if e.currentTile >= len(stage.Catalog()) {
		e.currentTile = 0
	}
	log.Printf("Stage %q ready: %d cells, %d tiles", stage.Config().Name, stage.Frontier().Len(), stage.Index().Len())
	return nil
}

func (e *Editor) loadStage(spec stages.Spec, scene *scenePresenter) (*grid.Stage, error) {
	if e.opts.LevelPath != "" {
		if _, err := os.Stat(e.opts.LevelPath); err == nil {
			lvl, err := levels.Load(e.opts.LevelPath)
			if err != nil {
				return nil, err
			}
			return lvl.Restore(scene)
		}
		log.Printf("Level %s not found, starting from %s", e.opts.LevelPath, e.opts.StagePath)
	}

	stage, err := spec.NewStage()
	if err != nil {
		return nil, err
	}
	stage.SetPresenter(scene)
	if e.opts.ScriptPath != "" {
		if err := script.NewRunner(stage, e.opts.Seed).RunFile(e.opts.ScriptPath); err != nil {
			return nil, err
		}
	}
	return stage, nil
}

func (e *Editor) watch() error {
	var dirs []string
	for _, p := range []string{e.opts.StagePath, e.opts.ScriptPath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			dirs = append(dirs, filepath.Dir(p))
		}
	}
	for _, d := range []string{"stages", filepath.Join("stages", "scripts")} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) == 0 {
		return errors.New("no stage directories on disk to watch")
	}
	w, err := stages.NewWatcher(uniqueStrings(dirs)...)
	if err != nil {
		return err
	}
	e.watcher = w
	return nil
}

func (e *Editor) pollWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			log.Printf("Reloading after change to %s", name)
			if err := e.rebuild(); err != nil {
				log.Printf("Reload failed: %v", err)
				e.status = "reload failed"
			} else {
				e.status = "reloaded " + filepath.Base(name)
			}
		case err, ok := <-e.watcher.Errors:
			if ok {
				log.Printf("Watcher error: %v", err)
			}
		default:
			return
		}
	}
}

func (e *Editor) Update() error {
	e.pollWatcher()
	e.ui.Update()
	e.cam.step()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}

	for i, key := range tileHotkeys {
		if inpututil.IsKeyJustPressed(key) && i < len(e.stage.Catalog()) {
			e.currentTile = i
		}
	}

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.save()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.copySelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		if err := e.rebuild(); err != nil {
			log.Printf("Reload failed: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		e.outline = e.outline.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		e.report(e.stage.ResetPositions())
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		e.report(e.stage.CommitPositions())
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		e.stage.Deselect()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		e.removeSelection()
	}

	e.handleMoveKeys(shift)
	e.handleMouse(shift)
	return nil
}

// handleMoveKeys nudges the lead tile's preview deltas. Shift moves along
// the grid axes, plain arrows move in world space.
func (e *Editor) handleMoveKeys(shift bool) {
	var dx, dy float64
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy--
	}
	if dx == 0 && dy == 0 {
		return
	}
	lead, err := e.stage.Lead()
	if err != nil {
		return
	}
	gx, gy, wx, wy := lead.MoveGridX, lead.MoveGridY, lead.MoveWorldX, lead.MoveWorldY
	if shift {
		gx += dx * gridMoveStep
		gy += dy * gridMoveStep
	} else {
		wx += dx * worldMoveStep
		wy += dy * worldMoveStep
	}
	e.report(e.stage.SetMove(gx, gy, wx, wy))
}

func (e *Editor) handleMouse(shift bool) {
	mx, my := ebiten.CursorPosition()
	e.hover, _ = e.stage.Frontier().HitTest(e.cam.ToWorld(mx, my), e.spec.Editor.HandleColliderSize)

	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			e.cam.ZoomBy(1.1)
		} else {
			e.cam.ZoomBy(1 / 1.1)
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if e.panning {
			e.cam.Pan(float64(e.lastPanX-mx), float64(my-e.lastPanY))
		}
		e.panning = true
		e.lastPanX, e.lastPanY = mx, my
	} else {
		e.panning = false
	}

	if mx >= e.cam.width-panelWidth {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		e.stage.Deselect()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || e.hover == nil {
		return
	}

	if _, occupied := e.stage.Occupant(e.hover); occupied {
		if !shift {
			e.stage.Deselect()
		}
		_, err := e.stage.Select(e.hover)
		e.report(err)
		return
	}
	if _, err := e.stage.Place(e.hover, e.currentTile); err != nil {
		e.report(err)
	}
}

func (e *Editor) scaleBy(delta float64) {
	lead, err := e.stage.Lead()
	if err != nil {
		e.report(err)
		return
	}
	e.report(e.stage.Scale(max(scaleStep, lead.ScaleX+delta), max(scaleStep, lead.ScaleY+delta)))
}

func (e *Editor) removeSelection() {
	tiles := e.stage.Selection()
	if len(tiles) == 0 {
		e.report(grid.ErrNoSelection)
		return
	}
	for _, t := range tiles {
		cell, ok := e.stage.CellAt(t.Coord)
		if !ok {
			continue
		}
		e.report(e.stage.Remove(cell))
	}
}

func (e *Editor) savePath() string {
	switch {
	case e.opts.OutPath != "":
		return e.opts.OutPath
	case e.opts.LevelPath != "":
		return e.opts.LevelPath
	}
	return defaultLevelPath(e.stage.Config().Name)
}

func (e *Editor) save() {
	path := e.savePath()
	if err := levels.Save(path, levels.Capture(e.stage)); err != nil {
		log.Printf("Failed to save level: %v", err)
		e.status = "save failed"
		return
	}
	log.Printf("Saved level to %s", path)
	e.status = "saved " + filepath.Base(path)
}

func (e *Editor) copySelection() {
	report := selectionReport(e.stage)
	if report == "" {
		e.report(grid.ErrNoSelection)
		return
	}
	if !e.clipboard {
		log.Print(report)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(report))
	e.status = "selection copied"
}

func (e *Editor) report(err error) {
	if err == nil {
		return
	}
	e.status = err.Error()
	if e.opts.Verbose {
		log.Printf("editor: %v", err)
	}
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.cam.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// selectionReport lists the selected tiles one per line, lead first.
func selectionReport(stage *grid.Stage) string {
	var b strings.Builder
	for _, t := range stage.Selection() {
		fmt.Fprintf(&b, "%s %s world=(%.3f, %.3f, %.3f) height=%d scale=(%.2f, %.2f)\n",
			t.Coord, t.Sprite, t.World.X, t.World.Y, t.World.Z, t.WorldHeight, t.ScaleX, t.ScaleY)
	}
	return b.String()
}

func defaultLevelPath(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ':
			return '_'
		}
		return -1
	}, name)
	if slug == "" {
		slug = "stage"
	}
	return filepath.Join("levels", slug+".json")
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
