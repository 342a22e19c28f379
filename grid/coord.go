package grid

import (
	"fmt"
	"math"
)

// Coord is a logical cell address on the isometric grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Distance is the Manhattan distance between two coordinates.
func (c Coord) Distance(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c.X, c.Y)
}

// keyable reports whether both components fit in 32 bits. Only such
// coordinates have a unique key.
func (c Coord) keyable() bool {
	return c.X >= math.MinInt32 && c.X <= math.MaxInt32 &&
		c.Y >= math.MinInt32 && c.Y <= math.MaxInt32
}

// key packs the coordinate into a single integer for intmap lookups. It is
// only unique for keyable coordinates.
func (c Coord) key() int64 {
	return int64(uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y))))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
