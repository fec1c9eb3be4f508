package twinblade

import (
	"github.com/vovakirdan/tui-twinblade/internal/config"
	"github.com/vovakirdan/tui-twinblade/internal/core"
)

func (g *Game) spawnProjectile(pos, vel core.Vec2, pc config.ProjectileConfig, owner Owner, dmg int) {
	g.projectiles = append(g.projectiles, Projectile{
		ID:     g.newID(),
		Pos:    pos,
		Vel:    vel,
		Size:   pc.Size,
		Owner:  owner,
		Damage: dmg,
		Life:   pc.Life,
		Trail:  Trail{limit: g.cfg.Combat.TrailLength},
		Active: true,
	})
}

// spawnPlayerShot fires one bolt from the player center along the facing.
func (g *Game) spawnPlayerShot(dmg int) {
	shot := g.cfg.Combat.PlayerShot
	c := g.playerCenter()
	g.spawnProjectile(
		core.V(c.X-shot.Size/2, c.Y-shot.Size/2),
		g.player.Facing.Vec().Scale(shot.Speed),
		shot, OwnerPlayer, dmg,
	)
}

// stepProjectiles moves every projectile and resolves its hits. Projectiles
// fly over pits; only walls and the map edge stop them.
func (g *Game) stepProjectiles() {
	for i := range g.projectiles {
		pr := &g.projectiles[i]
		if !pr.Active {
			continue
		}
		pr.Trail.Push(pr.Pos)
		pr.Pos = pr.Pos.Add(pr.Vel)
		pr.Life--
		if pr.Life <= 0 {
			pr.Active = false
			continue
		}
		if g.grid.RectCollides(pr.Pos.X, pr.Pos.Y, pr.Size, true) {
			pr.Active = false
			g.spawnSparks(pr.Rect().Center(), core.ColorGray, 3)
			continue
		}

		if pr.Owner == OwnerPlayer {
			g.projectileVsEnemies(pr)
		} else {
			g.projectileVsPlayer(pr)
		}
	}
}

// projectileVsEnemies lets the first overlapping active enemy absorb the shot.
func (g *Game) projectileVsEnemies(pr *Projectile) {
	r := pr.Rect()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active || !r.Intersects(e.Rect()) {
			continue
		}
		pr.Active = false
		g.damageEnemy(e, pr.Damage)
		g.knockEnemy(e, pr.Pos, g.cfg.Combat.ProjectileKnockback)
		g.spawnSparks(r.Center(), core.ColorCyan, 4)
		return
	}
}

// projectileVsPlayer hits the hurtbox. Shots pass through a dodging or
// invulnerable player.
func (g *Game) projectileVsPlayer(pr *Projectile) {
	if !pr.Rect().Intersects(g.hurtbox()) {
		return
	}
	c := g.cfg.Combat
	if g.damagePlayer(pr.Damage, pr.Rect().Center(), c.ShotKnockback, c.HitStopShot) {
		pr.Active = false
	}
}
