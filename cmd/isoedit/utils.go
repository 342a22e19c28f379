package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/isogrid/stages"
	"golang.org/x/image/colornames"
)

// parseHexColor parses a color in the form #rrggbb. Returns fallback if parse fails.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			return color.RGBA{R: uint8(ri), G: uint8(gi), B: uint8(bi), A: 0xff}
		}
	}
	return fallback
}

type palette struct {
	GridDefault        color.RGBA
	GridMouseOver      color.RGBA
	GridSelected       color.RGBA
	HandleDefault      color.RGBA
	HandleActive       color.RGBA
	HandleMouseOver    color.RGBA
	HandleSelected     color.RGBA
	TileGroupSelection color.RGBA
}

func newPalette(c stages.ColorSpec) palette {
	return palette{
		GridDefault:        parseHexColor(c.GridDefault, colornames.Slategray),
		GridMouseOver:      parseHexColor(c.GridMouseOver, colornames.Gold),
		GridSelected:       parseHexColor(c.GridSelected, colornames.Deepskyblue),
		HandleDefault:      parseHexColor(c.HandleDefault, colornames.Lightgray),
		HandleActive:       parseHexColor(c.HandleActive, colornames.Limegreen),
		HandleMouseOver:    parseHexColor(c.HandleMouseOver, colornames.Gold),
		HandleSelected:     parseHexColor(c.HandleSelected, colornames.Deepskyblue),
		TileGroupSelection: parseHexColor(c.TileGroupSelection, colornames.Orangered),
	}
}
