package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isogrid/assets"
)

// spriteCache turns library sprites into ebiten images on first use. Names
// that fail to load are remembered and drawn as outlines instead.
type spriteCache struct {
	lib     *assets.Library
	images  map[string]*ebiten.Image
	missing map[string]bool
}

func newSpriteCache(lib *assets.Library) *spriteCache {
	return &spriteCache{
		lib:     lib,
		images:  map[string]*ebiten.Image{},
		missing: map[string]bool{},
	}
}

func (c *spriteCache) Get(name string) *ebiten.Image {
	if c.lib == nil || name == "" || c.missing[name] {
		return nil
	}
	if img, ok := c.images[name]; ok {
		return img
	}
	im, err := c.lib.LoadImage(name)
	if err != nil {
		c.missing[name] = true
		return nil
	}
	img := ebiten.NewImageFromImage(im)
	c.images[name] = img
	return img
}
