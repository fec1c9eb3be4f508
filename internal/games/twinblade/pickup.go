package twinblade

import (
	"fmt"

	"github.com/vovakirdan/tui-twinblade/internal/core"
)

// stepPickups ages gems, pulls nearby ones toward the player and collects
// those inside the contact radius.
func (g *Game) stepPickups() {
	gc := g.cfg.World.Gem
	target := g.playerCenter()
	for i := range g.pickups {
		p := &g.pickups[i]
		if !p.Active {
			continue
		}
		p.Life--
		if p.Life <= 0 {
			p.Active = false
			continue
		}

		c := p.Center()
		dist := c.Dist(target)
		if dist < gc.MagnetRadius {
			p.Pos = p.Pos.Add(c.Direction(target).Scale(gc.MagnetSpeed))
		} else {
			p.Pos = p.Pos.Add(p.Vel)
			p.Vel = p.Vel.Scale(gc.Friction)
		}

		if p.Center().Dist(target) < gc.CollectRadius {
			g.collect(p)
		}
	}
}

func (g *Game) collect(p *Pickup) {
	if p.Collected || g.terminal() {
		return
	}
	p.Collected = true
	p.Active = false
	g.addScore(p.Value)
	c := p.Center()
	g.spawnSparks(c, core.ColorCyan, 5)
	g.emit(core.EventGemCollected, core.CueGemCollect, "gem", p.Value, c)
	g.text(fmt.Sprintf("+%d", p.Value), c)
}
