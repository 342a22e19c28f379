package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func panelButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(color.RGBA{70, 70, 86, 255}),
		Hover:   solidNineSlice(color.RGBA{90, 90, 110, 255}),
		Pressed: solidNineSlice(color.RGBA{50, 50, 64, 255}),
	}
}

var buttonTextColor = &widget.ButtonTextColor{
	Idle:     color.White,
	Hover:    color.White,
	Pressed:  color.RGBA{180, 220, 255, 255},
	Disabled: color.Gray{Y: 128},
}
