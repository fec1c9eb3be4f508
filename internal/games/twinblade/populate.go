package twinblade

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-twinblade/internal/config"
	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/level"
)

// PopulationRequest describes one level's enemy placement.
type PopulationRequest struct {
	Allowed    []EnemyKind
	SpawnRate  float64 // scales health and aggro radius
	LevelIndex int     // the target count grows with it
	Spawn      level.Point
}

// Target returns how many enemies the placement aims for.
func (r PopulationRequest) Target(pc config.PopulationConfig) int {
	return max(0, pc.BaseCount+pc.PerLevel*r.LevelIndex)
}

// Populate places enemies on random floor tiles away from the spawn point.
// Placement is best-effort: it stops at the target count or after the
// attempt budget, whichever comes first, and may return fewer enemies.
// IDs are assigned 1..n in placement order.
func Populate(grid *Grid, req PopulationRequest, cfg config.Config, rng *rand.Rand) []Enemy {
	pc := cfg.Population
	target := req.Target(pc)
	if len(req.Allowed) == 0 || target == 0 || grid.Width() == 0 || grid.Height() == 0 {
		return nil
	}
	rate := req.SpawnRate
	if rate <= 0 {
		rate = 1
	}

	ts := grid.TileSize()
	occupied := make(map[level.Point]bool)
	enemies := make([]Enemy, 0, target)

	for attempt := 0; attempt < pc.AttemptBudget && len(enemies) < target; attempt++ {
		tx, ty := rng.Intn(grid.Width()), rng.Intn(grid.Height())
		kind := req.Allowed[rng.Intn(len(req.Allowed))]

		pt := level.Point{X: tx, Y: ty}
		if grid.At(tx, ty) != level.TileFloor || occupied[pt] {
			continue
		}
		dx, dy := float64(tx-req.Spawn.X), float64(ty-req.Spawn.Y)
		if math.Hypot(dx, dy) < pc.MinDistance {
			continue
		}
		stats, ok := cfg.Profile(kind.String())
		if !ok {
			continue
		}
		pos := core.V(
			float64(tx)*ts+(ts-stats.Size)/2,
			float64(ty)*ts+(ts-stats.Size)/2,
		)
		if grid.RectCollides(pos.X, pos.Y, stats.Size, false) {
			continue
		}

		hp := max(1, int(math.Round(float64(stats.Health)*rate)))
		occupied[pt] = true
		enemies = append(enemies, Enemy{
			ID:             len(enemies) + 1,
			Kind:           kind,
			Pos:            pos,
			Size:           stats.Size,
			Active:         true,
			Health:         hp,
			MaxHealth:      hp,
			Aggro:          stats.Aggro * rate,
			Facing:         FacingDown,
			AttackCooldown: stats.InitialCooldown,
		})
	}
	return enemies
}
