package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const panelWidth = 220

// inspectorActions are the panel's callbacks into the editor.
type inspectorActions struct {
	ResetPosition  func()
	CommitPosition func()
	ResetScale     func()
	ScaleUp        func()
	ScaleDown      func()
	ExtrudeUp      func()
	ExtrudeDown    func()
	Remove         func()
	CycleOutline   func()
	Save           func()
}

// inspector is the right-hand panel; status labels are refreshed each frame.
type inspector struct {
	stage     *widget.Text
	tile      *widget.Text
	selection *widget.Text
	outline   *widget.Text
	status    *widget.Text
}

func buildInspectorUI(actions inspectorActions) (*ebitenui.UI, *inspector) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{30, 30, 38, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)

	label := func(s string) *widget.Text {
		t := widget.NewText(
			widget.TextOpts.Text(s, &fontFace, color.White),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
		)
		panel.AddChild(t)
		return t
	}
	button := func(name string, fn func()) {
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(panelButtonImage()),
			widget.ButtonOpts.Text(name, &fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(panelWidth-20, 28),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		))
	}

	ins := &inspector{}
	ins.stage = label("")
	ins.tile = label("")
	ins.selection = label("")
	button("Reset Position", actions.ResetPosition)
	button("Commit Position", actions.CommitPosition)
	button("Reset Scale", actions.ResetScale)
	button("Scale +", actions.ScaleUp)
	button("Scale -", actions.ScaleDown)
	button("Extrude Up", actions.ExtrudeUp)
	button("Extrude Down", actions.ExtrudeDown)
	button("Remove Tile", actions.Remove)
	button("Outline View", actions.CycleOutline)
	ins.outline = label("")
	button("Save Level", actions.Save)
	ins.status = label("")

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}, ins
}
