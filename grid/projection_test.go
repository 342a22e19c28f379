package grid

import (
	"fmt"
	"testing"

	"github.com/milk9111/isogrid/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledDimensions(t *testing.T) {
	cases := []struct {
		name   string
		proj   Projection
		width  float64
		height float64
	}{
		{"64px_2to1", Projection{PixelWidth: 64, UnitsPerPixel: 20, Aspect: Ratio2x1}, 3.2, 1.6},
		{"64px_3to1", Projection{PixelWidth: 64, UnitsPerPixel: 20, Aspect: Ratio3x1}, 3.2, 3.2 / 3},
		{"128px_unit", Projection{PixelWidth: 128, UnitsPerPixel: 1, Aspect: Ratio2x1}, 128, 64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.width, c.proj.ScaledWidth(), eps)
			assert.InDelta(t, c.height, c.proj.ScaledHeight(), eps)
		})
	}
}

func TestOffsetIsLinear(t *testing.T) {
	p := DefaultConfig().Projection
	for dx := -3; dx <= 3; dx++ {
		for dy := -3; dy <= 3; dy++ {
			t.Run(fmt.Sprintf("%d_%d", dx, dy), func(t *testing.T) {
				got := p.Offset(float64(dx), float64(dy))
				sum := p.Offset(float64(dx), 0).Add(p.Offset(0, float64(dy)))
				assertVec(t, sum, got)
				assert.InDelta(t, -float64(dx-dy), got.Z, eps)
			})
		}
	}
}

func TestOffsetUnitSteps(t *testing.T) {
	p := DefaultConfig().Projection
	assertVec(t, common.Vec3{X: 1.6, Y: -0.8, Z: -1}, p.Offset(1, 0))
	assertVec(t, common.Vec3{X: 1.6, Y: 0.8, Z: 1}, p.Offset(0, 1))
	assertVec(t, common.Vec3{X: 3.2, Y: 0, Z: 0}, p.Offset(1, 1))
	assertVec(t, common.Vec3{}, p.Offset(0, 0))
}

func TestCenteredOrigin(t *testing.T) {
	p := DefaultConfig().Projection
	assertVec(t, common.Vec3{X: -1.6}, p.CenteredOrigin(2))
	assertVec(t, common.Vec3{X: -6.4}, p.CenteredOrigin(5))
}

func TestProjectionValidate(t *testing.T) {
	cases := []struct {
		name string
		proj Projection
		ok   bool
	}{
		{"default", DefaultConfig().Projection, true},
		{"zero_width", Projection{PixelWidth: 0, UnitsPerPixel: 20, Aspect: Ratio2x1}, false},
		{"zero_units", Projection{PixelWidth: 64, UnitsPerPixel: 0, Aspect: Ratio2x1}, false},
		{"bad_aspect", Projection{PixelWidth: 64, UnitsPerPixel: 20, Aspect: 4}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.proj.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestParseAspectRatio(t *testing.T) {
	r, err := ParseAspectRatio("3:1")
	require.NoError(t, err)
	assert.Equal(t, Ratio3x1, r)

	r, err = ParseAspectRatio("")
	require.NoError(t, err)
	assert.Equal(t, Ratio2x1, r)

	_, err = ParseAspectRatio("16:9")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOutlineRings(t *testing.T) {
	p := DefaultConfig().Projection
	o := p.Outline(common.Vec3{X: 1, Y: 1, Z: 2})
	assertVec(t, common.Vec3{X: 1, Y: 1.8, Z: 2}, o.Middle[0])
	assertVec(t, common.Vec3{X: 2.6, Y: 1, Z: 2}, o.Middle[1])
	assertVec(t, common.Vec3{X: 1, Y: 1, Z: 2}, o.Bottom[0])
	assertVec(t, common.Vec3{X: 1, Y: 2.6, Z: 2}, o.Top[0])
}
