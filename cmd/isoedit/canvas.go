package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/isogrid/common"
	"github.com/milk9111/isogrid/grid"
	"golang.org/x/image/colornames"
)

var backgroundColor = color.RGBA{R: 24, G: 24, B: 30, A: 255}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	lead, _ := e.stage.Lead()
	group := make(map[grid.Coord]bool)
	for _, t := range e.stage.Selection() {
		group[t.Coord] = true
	}

	for _, cell := range e.stage.Frontier().Cells() {
		e.drawOutline(screen, cell, e.gridColor(cell, lead, group))
	}
	for _, n := range e.scene.drawOrder() {
		e.drawNode(screen, n)
	}
	for _, cell := range e.stage.Frontier().Cells() {
		e.drawHandle(screen, cell, lead, group)
	}

	e.ui.Draw(screen)
	e.drawStatus(screen)
}

// gridColor follows the handle priority: the lead cell, then other group
// members, then hover.
func (e *Editor) gridColor(cell *grid.Cell, lead *grid.Tile, group map[grid.Coord]bool) color.RGBA {
	switch {
	case lead != nil && lead.Coord == cell.Coord:
		return e.colors.GridSelected
	case group[cell.Coord]:
		return e.colors.TileGroupSelection
	case cell == e.hover:
		return e.colors.GridMouseOver
	}
	return e.colors.GridDefault
}

func (e *Editor) drawOutline(screen *ebiten.Image, cell *grid.Cell, clr color.RGBA) {
	outline := e.stage.Projection().Outline(cell.World)
	for _, seg := range outlineSegments(outline, e.outline) {
		e.line(screen, seg[0], seg[1], 1, clr)
	}
}

func (e *Editor) drawHandle(screen *ebiten.Image, cell *grid.Cell, lead *grid.Tile, group map[grid.Coord]bool) {
	selected := lead != nil && lead.Coord == cell.Coord
	clr := e.colors.HandleDefault
	switch {
	case cell == e.hover:
		clr = e.colors.HandleMouseOver
	case selected:
		clr = e.colors.HandleSelected
	case group[cell.Coord]:
		clr = e.colors.TileGroupSelection
	case cell.Occupied():
		clr = e.colors.HandleActive
	}

	x, y := e.cam.ToScreen(cell.World)
	r := float32(e.spec.Editor.HandleSize * e.cam.Zoom)
	vector.FillCircle(screen, x, y, r, clr, true)
	if cell == e.hover || selected {
		vector.StrokeCircle(screen, x, y, r*2.5, 1, clr, true)
	}
}

func (e *Editor) drawNode(screen *ebiten.Image, n *spriteNode) {
	p := e.stage.Projection()
	if img := e.sprites.Get(n.Sprite); img != nil {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		s := p.ScaledWidth() * e.cam.Zoom / float64(w)
		x, y := e.cam.ToScreen(n.World)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(s*n.ScaleX, s*n.ScaleY)
		op.GeoM.Translate(float64(x), float64(y))
		if n.Category == grid.Inactive {
			op.ColorScale.ScaleAlpha(0.6)
		}
		screen.DrawImage(img, op)
		return
	}

	// no sprite: draw the tile's top diamond scaled around its centre
	outline := p.Outline(n.World)
	top := outline.Top
	for i := range top {
		d := top[i].Sub(n.World)
		top[i] = n.World.Add(common.Vec3{X: d.X * n.ScaleX, Y: d.Y * n.ScaleY})
	}
	clr := categoryColor(n.Category)
	for i := range top {
		e.line(screen, top[i], top[(i+1)%len(top)], 2, clr)
	}
}

func (e *Editor) line(screen *ebiten.Image, a, b common.Vec3, width float32, clr color.Color) {
	x0, y0 := e.cam.ToScreen(a)
	x1, y1 := e.cam.ToScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

func (e *Editor) drawStatus(screen *ebiten.Image) {
	cfg := e.stage.Config()
	tileName := "-"
	if def, err := e.stage.Catalog().Lookup(e.currentTile); err == nil {
		tileName = def.Name
	}
	hover := "-"
	if e.hover != nil {
		hover = fmt.Sprintf("%s h=%d", e.hover.Coord, e.hover.Height)
	}

	if e.inspector != nil {
		e.inspector.stage.Label = fmt.Sprintf("%s (%d cells, %d tiles)", cfg.Name, e.stage.Frontier().Len(), e.stage.Index().Len())
		e.inspector.tile.Label = fmt.Sprintf("Tile [%d] %s", e.currentTile+1, tileName)
		e.inspector.selection.Label = fmt.Sprintf("Selected: %d", len(e.stage.Selection()))
		e.inspector.outline.Label = "Outline: " + e.outline.String()
		e.inspector.status.Label = e.status
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("hover %s  zoom %.1f  %s", hover, e.cam.Zoom, e.outline), 8, 8)
}

func categoryColor(c grid.Category) color.RGBA {
	switch c {
	case grid.BlocksMovement:
		return colornames.Firebrick
	case grid.Inactive:
		return colornames.Dimgray
	}
	return colornames.Mediumseagreen
}
