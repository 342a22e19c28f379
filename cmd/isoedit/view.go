package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/isogrid/common"
	"github.com/milk9111/isogrid/grid"
)

// OutlineViewMode picks which diamond rings are drawn around each cell.
type OutlineViewMode int

const (
	OutlineSplitLayers OutlineViewMode = iota
	OutlineSingleLayer
	OutlineDoubleLayer
	OutlineNone
)

func (m OutlineViewMode) String() string {
	switch m {
	case OutlineSplitLayers:
		return "Split Layers"
	case OutlineSingleLayer:
		return "Single Layer"
	case OutlineDoubleLayer:
		return "Double Layer"
	case OutlineNone:
		return "None"
	default:
		return "Unknown"
	}
}

func (m OutlineViewMode) Next() OutlineViewMode {
	return (m + 1) % (OutlineNone + 1)
}

func ParseOutlineViewMode(s string) (OutlineViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "split_layers", "split":
		return OutlineSplitLayers, nil
	case "single_layer", "single":
		return OutlineSingleLayer, nil
	case "double_layer", "double":
		return OutlineDoubleLayer, nil
	case "none":
		return OutlineNone, nil
	}
	return OutlineSplitLayers, fmt.Errorf("unknown outline view mode %q", s)
}

type segment [2]common.Vec3

func ring(points [4]common.Vec3) []segment {
	return []segment{
		{points[0], points[1]},
		{points[1], points[2]},
		{points[2], points[3]},
		{points[3], points[0]},
	}
}

func pillars(from, to [4]common.Vec3) []segment {
	out := make([]segment, 0, 4)
	for i := range from {
		out = append(out, segment{from[i], to[i]})
	}
	return out
}

// outlineSegments lists the lines drawn for one cell in mode m.
func outlineSegments(o grid.Outline, m OutlineViewMode) []segment {
	if m == OutlineNone {
		return nil
	}
	segs := ring(o.Bottom)
	if m == OutlineSplitLayers || m == OutlineSingleLayer {
		if m == OutlineSingleLayer {
			segs = append(segs, pillars(o.Bottom, o.Middle)...)
		}
		segs = append(segs, ring(o.Middle)...)
	}
	if m == OutlineDoubleLayer || m == OutlineSplitLayers {
		segs = append(segs, pillars(o.Top, o.Bottom)...)
		segs = append(segs, ring(o.Top)...)
	}
	return segs
}
