package twinblade

import (
	"github.com/vovakirdan/tui-twinblade/internal/level"
	"github.com/vovakirdan/tui-twinblade/internal/registry"
)

// Built-in campaign. Layouts use the level package's text format:
// ' ' pit, '.' floor, '#' wall, 'H' heart container, 'G' goal, 'P' spawn.
var builtinLevels = []struct {
	id, name, theme string
	rate            float64
	enemies         []string
	rows            []string
}{
	{
		id:      "keep",
		name:    "The Outer Keep",
		theme:   "stone",
		rate:    1.0,
		enemies: []string{"chaser", "dasher", "slimer", "turret"},
		rows: []string{
			"                              ",
			" ############################ ",
			" #P.....#...............#...# ",
			" #......#...............#...# ",
			" #......#...............#...# ",
			" ###.####.############.###.## ",
			" #.............    .........# ",
			" #.............    .........# ",
			" #.............    .........# ",
			" ###.##########....#######.## ",
			" #......#...................# ",
			" #......#.############......# ",
			" #......#.#          #......# ",
			" #........#          #......# ",
			" #######..#          ######## ",
			" #.............H............# ",
			" #........................G.# ",
			" #..........................# ",
			" ############################ ",
			"                              ",
		},
	},
	{
		id:      "gardens",
		name:    "Sunken Gardens",
		theme:   "moss",
		rate:    1.25,
		enemies: []string{"slimer", "chaser", "turret"},
		rows: []string{
			"##############################",
			"#P.......#      #............#",
			"#........#      #............#",
			"#........#      #.....H......#",
			"#...................##.......#",
			"#........#      #..##........#",
			"####.#####      #####.########",
			"#.........      .............#",
			"#.........      .............#",
			"#...###...      ....#####....#",
			"#...# #...      ....#   #....#",
			"#...###...      ....#####....#",
			"#............................#",
			"#.........      .............#",
			"######.###      ####.#########",
			"#.........      .............#",
			"#..####...      ....####.....#",
			"#.........      ...........G.#",
			"#.........      .............#",
			"##############################",
		},
	},
	{
		id:      "vault",
		name:    "The Iron Vault",
		theme:   "iron",
		rate:    1.5,
		enemies: []string{"tank", "dasher", "turret", "chaser"},
		rows: []string{
			"##############################",
			"#............##............###",
			"#.P..........##.............G#",
			"#............##............###",
			"#...####.....##.....####.....#",
			"#...#..#...................#.#",
			"#...#..#...................#.#",
			"#...####.....##.....####...#.#",
			"#............##............#.#",
			"######.#############.#######.#",
			"#............#   #...........#",
			"#....H.......#   #...........#",
			"#............#   #....####...#",
			"#..######....     ....#  #...#",
			"#..#    #....     ....####...#",
			"#..######....#   #...........#",
			"#............#   #...........#",
			"#............#####...........#",
			"#............................#",
			"##############################",
		},
	},
}

func init() {
	for _, b := range builtinLevels {
		tpl, spawn, err := level.ParseRows(b.rows)
		if err != nil {
			panic(err)
		}
		def := level.Definition{
			ID:        b.id,
			Name:      b.name,
			Theme:     b.theme,
			Enemies:   b.enemies,
			SpawnRate: b.rate,
			Template:  tpl,
			Source:    "builtin",
		}
		if spawn != nil {
			def.Spawn = *spawn
		}
		registry.Register(def)
	}
}
