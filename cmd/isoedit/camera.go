package main

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/isogrid/common"
)

const (
	minZoom = 4.0
	maxZoom = 120.0
)

// camera maps world units to screen pixels. World Y grows upwards.
type camera struct {
	X, Y       float64
	Zoom       float64
	targetZoom float64
	width      int
	height     int
}

func newCamera(zoom float64) *camera {
	if zoom <= 0 {
		zoom = 24
	}
	return &camera{Zoom: zoom, targetZoom: zoom}
}

func (c *camera) resize(w, h int) {
	c.width, c.height = w, h
}

func (c *camera) ToScreen(v common.Vec3) (float32, float32) {
	sx := (v.X-c.X)*c.Zoom + float64(c.width)/2
	sy := float64(c.height)/2 - (v.Y-c.Y)*c.Zoom
	return float32(sx), float32(sy)
}

func (c *camera) ToWorld(sx, sy int) cp.Vector {
	return cp.Vector{
		X: (float64(sx)-float64(c.width)/2)/c.Zoom + c.X,
		Y: (float64(c.height)/2-float64(sy))/c.Zoom + c.Y,
	}
}

func (c *camera) ZoomBy(factor float64) {
	c.targetZoom = max(minZoom, min(maxZoom, c.targetZoom*factor))
}

func (c *camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// step eases the zoom towards its target.
func (c *camera) step() {
	c.Zoom = common.Lerp(c.Zoom, c.targetZoom, 0.25)
}
