// Package level describes immutable level data: the tile grid template,
// the enemy allow-list and spawn parameters. The simulation deep-copies the
// template on load and never writes back to it.
package level

import (
	"errors"
	"fmt"
	"strings"
)

// Map dimensions shared by every level, in tiles.
const (
	Width  = 30
	Height = 20
)

// ErrInvalidLevel is returned for level data that fails validation.
var ErrInvalidLevel = errors.New("invalid level")

// Tile is a grid cell code.
type Tile uint8

// Tile codes. The numeric values match the layout digits accepted by ParseRows.
const (
	TileEmpty  Tile = 0 // pit / void
	TileFloor  Tile = 1
	TileWall   Tile = 2
	TileDoor   Tile = 3
	TileSwitch Tile = 4
	TileHeart  Tile = 5 // heart container, becomes floor once taken
	TileGoal   Tile = 9
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileSwitch:
		return "switch"
	case TileHeart:
		return "heart"
	case TileGoal:
		return "goal"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Point is a tile coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Template is an immutable tile grid. The zero value is an empty grid.
type Template struct {
	w, h  int
	tiles []Tile
}

// NewTemplate builds a template from rows of tile codes. Rows are copied.
func NewTemplate(rows [][]Tile) (Template, error) {
	if len(rows) == 0 {
		return Template{}, fmt.Errorf("%w: no rows", ErrInvalidLevel)
	}
	w := len(rows[0])
	tiles := make([]Tile, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Template{}, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidLevel, y, len(row), w)
		}
		tiles = append(tiles, row...)
	}
	return Template{w: w, h: len(rows), tiles: tiles}, nil
}

// Width returns the grid width in tiles.
func (t Template) Width() int { return t.w }

// Height returns the grid height in tiles.
func (t Template) Height() int { return t.h }

// At returns the tile at (x, y). ok is false outside the grid.
func (t Template) At(x, y int) (tile Tile, ok bool) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return TileEmpty, false
	}
	return t.tiles[y*t.w+x], true
}

// Tiles returns a fresh row-major copy of the grid.
func (t Template) Tiles() []Tile {
	out := make([]Tile, len(t.tiles))
	copy(out, t.tiles)
	return out
}

// Count returns how many cells hold the given tile.
func (t Template) Count(tile Tile) int {
	n := 0
	for _, c := range t.tiles {
		if c == tile {
			n++
		}
	}
	return n
}

// Layout characters accepted by ParseRows in addition to the digit codes.
const (
	CharPit    = ' '
	CharFloor  = '.'
	CharWall   = '#'
	CharDoor   = 'D'
	CharSwitch = 'S'
	CharHeart  = 'H'
	CharGoal   = 'G'
	CharSpawn  = 'P' // floor tile that also marks the player spawn
)

// ParseRows parses a text layout. Each rune is one tile; the digits 0-5 and 9
// are read as raw codes. spawn is set when a 'P' marker is present.
func ParseRows(rows []string) (tpl Template, spawn *Point, err error) {
	grid := make([][]Tile, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		grid[y] = make([]Tile, len(runes))
		for x, r := range runes {
			tile, ok := tileForRune(r)
			if !ok {
				return Template{}, nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrInvalidLevel, r, x, y)
			}
			if r == CharSpawn {
				if spawn != nil {
					return Template{}, nil, fmt.Errorf("%w: duplicate spawn marker at (%d,%d)", ErrInvalidLevel, x, y)
				}
				spawn = &Point{X: x, Y: y}
			}
			grid[y][x] = tile
		}
	}
	tpl, err = NewTemplate(grid)
	if err != nil {
		return Template{}, nil, err
	}
	return tpl, spawn, nil
}

func tileForRune(r rune) (Tile, bool) {
	switch r {
	case CharPit, '0':
		return TileEmpty, true
	case CharFloor, CharSpawn, '1':
		return TileFloor, true
	case CharWall, '2':
		return TileWall, true
	case CharDoor, '3':
		return TileDoor, true
	case CharSwitch, '4':
		return TileSwitch, true
	case CharHeart, '5':
		return TileHeart, true
	case CharGoal, '9':
		return TileGoal, true
	}
	return TileEmpty, false
}

// Definition is an immutable per-level configuration.
type Definition struct {
	ID        string
	Name      string
	Theme     string   // cosmetic, ignored by the simulation
	Enemies   []string // allowed enemy kinds, by name
	SpawnRate float64  // scales enemy health and aggro range
	Spawn     Point    // player spawn tile
	Template  Template
	Source    string // "builtin" or the file it was loaded from
}

// Validate checks the definition against the fixed map size and spawn rules.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if d.Template.Width() != Width || d.Template.Height() != Height {
		return fmt.Errorf("%w: %s is %dx%d, expected %dx%d", ErrInvalidLevel,
			d.ID, d.Template.Width(), d.Template.Height(), Width, Height)
	}
	if d.SpawnRate <= 0 {
		return fmt.Errorf("%w: %s spawn rate must be positive", ErrInvalidLevel, d.ID)
	}
	tile, ok := d.Template.At(d.Spawn.X, d.Spawn.Y)
	if !ok || tile != TileFloor {
		return fmt.Errorf("%w: %s spawn (%d,%d) is not a floor tile", ErrInvalidLevel, d.ID, d.Spawn.X, d.Spawn.Y)
	}
	if d.Template.Count(TileGoal) == 0 {
		return fmt.Errorf("%w: %s has no goal tile", ErrInvalidLevel, d.ID)
	}
	return nil
}
