package main

import (
	"log"
	"sort"

	"github.com/milk9111/isogrid/common"
	"github.com/milk9111/isogrid/grid"
)

// spriteNode is the drawable state of one placed tile or duplicate.
type spriteNode struct {
	Sprite   string
	Category grid.Category
	World    common.Vec3
	ScaleX   float64
	ScaleY   float64
}

// scenePresenter mirrors stage changes into drawable nodes.
type scenePresenter struct {
	nodes      map[grid.TileID]*spriteNode
	duplicates []*spriteNode
	verbose    bool
}

func newScenePresenter(verbose bool) *scenePresenter {
	return &scenePresenter{nodes: map[grid.TileID]*spriteNode{}, verbose: verbose}
}

func (p *scenePresenter) TileCreated(t *grid.Tile) {
	p.nodes[t.ID] = &spriteNode{
		Sprite:   t.Sprite,
		Category: t.Category,
		World:    t.World,
		ScaleX:   t.ScaleX,
		ScaleY:   t.ScaleY,
	}
	if p.verbose {
		log.Printf("tile %s created at %s", t.ID, t.Coord)
	}
}

func (p *scenePresenter) TileMoved(t *grid.Tile) {
	if n, ok := p.nodes[t.ID]; ok {
		n.World = t.World
	}
}

func (p *scenePresenter) TileScaled(t *grid.Tile) {
	if n, ok := p.nodes[t.ID]; ok {
		n.ScaleX, n.ScaleY = t.ScaleX, t.ScaleY
	}
}

func (p *scenePresenter) TileDestroyed(t *grid.Tile) {
	delete(p.nodes, t.ID)
	if p.verbose {
		log.Printf("tile %s destroyed at %s", t.ID, t.Coord)
	}
}

func (p *scenePresenter) DuplicateCreated(d grid.Duplicate) {
	p.duplicates = append(p.duplicates, &spriteNode{
		Sprite:   d.Sprite,
		Category: grid.Inactive,
		World:    d.World,
		ScaleX:   1,
		ScaleY:   1,
	})
	// the source tile turns inactive when extruded
	if n, ok := p.nodes[d.Source]; ok {
		n.Category = grid.Inactive
	}
}

func (p *scenePresenter) DuplicatesCleared() {
	p.duplicates = p.duplicates[:0]
}

// drawOrder returns all nodes back to front: larger depth first, then
// higher on screen first.
func (p *scenePresenter) drawOrder() []*spriteNode {
	out := make([]*spriteNode, 0, len(p.nodes)+len(p.duplicates))
	for _, n := range p.nodes {
		out = append(out, n)
	}
	out = append(out, p.duplicates...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].World.Z != out[j].World.Z {
			return out[i].World.Z > out[j].World.Z
		}
		return out[i].World.Y > out[j].World.Y
	})
	return out
}
