package level

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRows(t *testing.T) {
	tpl, spawn, err := ParseRows([]string{
		"#####",
		"#P.H#",
		"# 9G#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	if tpl.Width() != 5 || tpl.Height() != 4 {
		t.Errorf("size = %dx%d, expected 5x4", tpl.Width(), tpl.Height())
	}
	if spawn == nil || *spawn != (Point{X: 1, Y: 1}) {
		t.Errorf("spawn = %v, expected (1,1)", spawn)
	}

	tests := []struct {
		x, y int
		want Tile
	}{
		{0, 0, TileWall},
		{1, 1, TileFloor},
		{3, 1, TileHeart},
		{1, 2, TileEmpty},
		{2, 2, TileGoal},
		{3, 2, TileGoal},
	}
	for _, tc := range tests {
		got, ok := tpl.At(tc.x, tc.y)
		if !ok || got != tc.want {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}

	if _, ok := tpl.At(-1, 0); ok {
		t.Error("At(-1, 0) should be out of bounds")
	}
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "##"}},
		{"unknown rune", []string{"#x#"}},
		{"two spawns", []string{"PP"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseRows(tc.rows)
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("ParseRows() error = %v, expected ErrInvalidLevel", err)
			}
		})
	}
}

func TestTemplateTilesIsCopy(t *testing.T) {
	tpl, _, err := ParseRows([]string{"H."})
	if err != nil {
		t.Fatal(err)
	}
	tiles := tpl.Tiles()
	tiles[0] = TileFloor

	if got, _ := tpl.At(0, 0); got != TileHeart {
		t.Errorf("template mutated through Tiles(): At(0,0) = %v", got)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader("testdata")
	defs, skipped, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	if len(defs) != 1 {
		t.Fatalf("len(defs) = %d, expected 1", len(defs))
	}
	def := defs[0]
	if def.ID != "arena" || def.Name != "Test Arena" {
		t.Errorf("def = %s/%s, expected arena/Test Arena", def.ID, def.Name)
	}
	if def.SpawnRate != 1.5 {
		t.Errorf("SpawnRate = %v, expected 1.5", def.SpawnRate)
	}
	if def.Spawn != (Point{X: 2, Y: 2}) {
		t.Errorf("Spawn = %v, expected (2,2)", def.Spawn)
	}
	if strings.Join(def.Enemies, ",") != "chaser,turret" {
		t.Errorf("Enemies = %v", def.Enemies)
	}
	if def.Source != filepath.Join("testdata", "arena.yaml") {
		t.Errorf("Source = %q", def.Source)
	}

	broken := filepath.Join("testdata", "broken.yml")
	if err, ok := skipped[broken]; !ok || !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("skipped[%s] = %v, expected ErrInvalidLevel", broken, err)
	}
	if len(skipped) != 1 {
		t.Errorf("len(skipped) = %d, expected 1 (non-yaml files are ignored)", len(skipped))
	}
}

func TestValidate(t *testing.T) {
	def, err := NewLoader("testdata").LoadFile(filepath.Join("testdata", "arena.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	bad := def
	bad.Spawn = Point{X: 0, Y: 0}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("spawn on wall: Validate() = %v, expected ErrInvalidLevel", err)
	}

	bad = def
	bad.SpawnRate = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("zero spawn rate: Validate() = %v, expected ErrInvalidLevel", err)
	}
}
