package twinblade

import (
	"math"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/level"
)

// Grid is the mutable tile map of the running level, copied from a template.
type Grid struct {
	w, h     int
	tileSize float64
	tiles    []level.Tile
}

// NewGrid deep-copies the template so runtime changes never reach it.
func NewGrid(t level.Template, tileSize float64) *Grid {
	return &Grid{
		w:        t.Width(),
		h:        t.Height(),
		tileSize: tileSize,
		tiles:    t.Tiles(),
	}
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.h }

// TileSize returns the edge of one tile in pixels.
func (g *Grid) TileSize() float64 { return g.tileSize }

// PixelSize returns the map extent in pixels.
func (g *Grid) PixelSize() core.Vec2 {
	return core.V(float64(g.w)*g.tileSize, float64(g.h)*g.tileSize)
}

// InBounds reports whether (tx, ty) is on the grid.
func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < g.w && ty < g.h
}

// At returns the tile at (tx, ty); off-grid cells read as wall.
func (g *Grid) At(tx, ty int) level.Tile {
	if !g.InBounds(tx, ty) {
		return level.TileWall
	}
	return g.tiles[ty*g.w+tx]
}

// Set replaces the tile at (tx, ty). Off-grid writes are ignored.
func (g *Grid) Set(tx, ty int, t level.Tile) {
	if g.InBounds(tx, ty) {
		g.tiles[ty*g.w+tx] = t
	}
}

// TileOf converts a pixel position to tile coordinates.
func (g *Grid) TileOf(p core.Vec2) (int, int) {
	return int(math.Floor(p.X / g.tileSize)), int(math.Floor(p.Y / g.tileSize))
}

// IsBlocking decides whether a tile stops a body. Walls always block; pits
// block unless the body can fly; off-grid always blocks.
func IsBlocking(t level.Tile, inBounds, canFly bool) bool {
	if !inBounds {
		return true
	}
	switch t {
	case level.TileWall:
		return true
	case level.TileEmpty:
		return !canFly
	}
	return false
}

// PointBlocked tests a single pixel.
func (g *Grid) PointBlocked(x, y float64, canFly bool) bool {
	tx, ty := g.TileOf(core.V(x, y))
	return IsBlocking(g.At(tx, ty), g.InBounds(tx, ty), canFly)
}

// RectCollides samples the four corners of a size×size box at (x, y).
// Walls thinner than the box can slip between corners; entity sizes are
// tuned against this sampling.
func (g *Grid) RectCollides(x, y, size float64, canFly bool) bool {
	return g.PointBlocked(x, y, canFly) ||
		g.PointBlocked(x+size, y, canFly) ||
		g.PointBlocked(x, y+size, canFly) ||
		g.PointBlocked(x+size, y+size, canFly)
}
