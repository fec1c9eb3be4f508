package main

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/games/twinblade"
)

// Bot tuning in world pixels and ticks.
const (
	botSight      = 360.0
	botMeleeRange = 70.0
	botShotRange  = 300.0
	botWanderTime = 90
	botSwapEvery  = 600
)

// bot is a scripted player for headless runs. It reads only the snapshot
// and its own random source, so a seed reproduces the whole run.
type bot struct {
	rng    *rand.Rand
	wander core.Vec2
}

func newBot(seed int64) *bot {
	return &bot{rng: rand.New(rand.NewSource(seed))}
}

// nearestEnemy returns the closest active enemy center within sight.
func nearestEnemy(snap *twinblade.Snapshot) (core.Vec2, float64, bool) {
	best, bestDist := core.Vec2{}, math.Inf(1)
	for _, e := range snap.Enemies {
		if !e.Active {
			continue
		}
		c := core.Square(e.Pos, e.Size).Center()
		if d := c.Dist(snap.Player.Center); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist, bestDist <= botSight
}

// Next chooses the input for the coming tick.
func (b *bot) Next(snap *twinblade.Snapshot) core.InputFrame {
	f := core.NewInputFrame()
	p := snap.Player

	target, dist, seen := nearestEnemy(snap)
	switch {
	case seen:
		f.Move = p.Center.Direction(target)
	default:
		if snap.Tick%botWanderTime == 0 || b.wander == (core.Vec2{}) {
			b.wander = core.FromAngle(b.rng.Float64()*2*math.Pi, 1)
		}
		f.Move = b.wander
	}

	if seen {
		switch {
		case p.Character.Ranged() && dist < botShotRange && snap.Tick%15 == 0:
			f.Set(core.ActionAttack)
		case !p.Character.Ranged() && dist < botMeleeRange && snap.Tick%12 == 0:
			f.Set(core.ActionAttack)
		}
		if p.Health*3 <= p.MaxHealth && dist < botMeleeRange && snap.Tick%30 == 0 {
			f.Set(core.ActionDodge)
		}
	}

	if snap.Tick%botSwapEvery == botSwapEvery-1 {
		f.Set(core.ActionSwap)
	}
	return f
}
