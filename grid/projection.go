package grid

import (
	"fmt"
	"strings"

	"github.com/milk9111/isogrid/common"
)

// AspectRatio selects the width:height ratio of a grid cell.
type AspectRatio int

const (
	Ratio2x1 AspectRatio = 2
	Ratio3x1 AspectRatio = 3
)

func (a AspectRatio) String() string {
	switch a {
	case Ratio2x1:
		return "2:1"
	case Ratio3x1:
		return "3:1"
	default:
		return fmt.Sprintf("AspectRatio(%d)", int(a))
	}
}

func (a AspectRatio) Valid() bool {
	return a == Ratio2x1 || a == Ratio3x1
}

// ParseAspectRatio accepts "2:1" or "3:1". An empty string means 2:1.
func ParseAspectRatio(s string) (AspectRatio, error) {
	switch strings.TrimSpace(s) {
	case "", "2:1", "2":
		return Ratio2x1, nil
	case "3:1", "3":
		return Ratio3x1, nil
	default:
		return 0, fmt.Errorf("%w: aspect ratio %q", ErrInvalidConfig, s)
	}
}

// Projection maps grid-space deltas into world space.
type Projection struct {
	PixelWidth    float64
	UnitsPerPixel float64
	Aspect        AspectRatio
}

func (p Projection) Validate() error {
	if p.PixelWidth <= 0 {
		return fmt.Errorf("%w: pixel width %v", ErrInvalidConfig, p.PixelWidth)
	}
	if p.UnitsPerPixel <= 0 {
		return fmt.Errorf("%w: units per pixel %v", ErrInvalidConfig, p.UnitsPerPixel)
	}
	if !p.Aspect.Valid() {
		return fmt.Errorf("%w: aspect ratio %s", ErrInvalidConfig, p.Aspect)
	}
	return nil
}

func (p Projection) ScaledWidth() float64 {
	return p.PixelWidth / p.UnitsPerPixel
}

func (p Projection) ScaledHeight() float64 {
	return p.ScaledWidth() / float64(p.Aspect)
}

// Depth orders cells for drawing. World Z is the negated depth.
func (p Projection) Depth(dx, dy float64) float64 {
	return dx - dy
}

// Offset converts a grid-space delta to a world-space offset. It is linear
// in (dx, dy); every placement path goes through it.
func (p Projection) Offset(dx, dy float64) common.Vec3 {
	sw := p.ScaledWidth()
	sh := p.ScaledHeight()
	return common.Vec3{
		X: dx*sw*.5 + dy*sw*.5,
		Y: dy*sh*.5 - dx*sh*.5,
		Z: -p.Depth(dx, dy),
	}
}

// CenteredOrigin shifts a grid of the given width so it straddles X=0.
func (p Projection) CenteredOrigin(width int) common.Vec3 {
	sw := p.ScaledWidth()
	return common.Vec3{X: -(float64(width)*sw)*.5 + sw*.5}
}

// Outline holds the diamond rings drawn around a cell handle: the floor, the
// single-layer midline and the double-layer top.
type Outline struct {
	Bottom [4]common.Vec3
	Middle [4]common.Vec3
	Top    [4]common.Vec3
}

func (p Projection) Outline(center common.Vec3) Outline {
	hw := p.ScaledWidth() * .5
	hh := p.ScaledHeight() * .5
	ring := func(lift float64) [4]common.Vec3 {
		c := center.Add(common.Vec3{Y: lift})
		return [4]common.Vec3{
			{X: c.X, Y: c.Y + hh, Z: c.Z},
			{X: c.X + hw, Y: c.Y, Z: c.Z},
			{X: c.X, Y: c.Y - hh, Z: c.Z},
			{X: c.X - hw, Y: c.Y, Z: c.Z},
		}
	}
	return Outline{
		Bottom: ring(-hh),
		Middle: ring(0),
		Top:    ring(hh),
	}
}
