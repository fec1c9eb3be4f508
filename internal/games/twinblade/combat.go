package twinblade

import (
	"math"

	"github.com/vovakirdan/tui-twinblade/internal/core"
)

// MeleeHitbox is the area a melee attack covers on one tick.
// Charged attacks use a circle, normal swings a rectangle.
type MeleeHitbox struct {
	Charged bool
	Center  core.Vec2
	Radius  float64
	Rect    core.Rect
}

// Hits reports whether the hitbox overlaps r.
func (h MeleeHitbox) Hits(r core.Rect) bool {
	if h.Charged {
		return core.CircleIntersectsRect(h.Center, h.Radius, r)
	}
	return h.Rect.Intersects(r)
}

// meleeHitbox builds the hitbox for the player's current attack.
func (g *Game) meleeHitbox() MeleeHitbox {
	c := g.cfg.Combat
	center := g.playerCenter()
	if g.player.AttackKind == AttackCharged {
		return MeleeHitbox{Charged: true, Center: center, Radius: c.ChargedRadius}
	}
	at := center.Add(g.player.Facing.Vec().Scale(c.MeleeReach))
	return MeleeHitbox{
		Center: at,
		Rect:   core.NewRect(at.X-c.MeleeSize/2, at.Y-c.MeleeSize/2, c.MeleeSize, c.MeleeSize),
	}
}

// stepAttack counts down the active attack and runs the melee hit test
// while the swing is inside its active window.
func (g *Game) stepAttack() {
	p := &g.player
	if p.AttackFrame <= 0 {
		return
	}
	p.AttackFrame--
	if p.AttackFrame <= 0 {
		p.Attacking = false
	}
	if !p.Character.Ranged() && p.AttackFrame > g.cfg.Combat.ActiveAfter {
		g.resolveMelee()
	}
}

// resolveMelee damages every active enemy inside the hitbox. Enemies still
// flashing from an earlier hit are skipped, so one swing lands once.
func (g *Game) resolveMelee() {
	c := g.cfg.Combat
	hb := g.meleeHitbox()
	dmg := g.profile().Damage
	force := c.NormalKnockback
	shake := 8.0
	if hb.Charged {
		dmg *= c.ChargedMultiplier
		force = c.ChargedKnockback
		shake = 15
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active || e.HitFlash > 0 || !hb.Hits(e.Rect()) {
			continue
		}
		g.damageEnemy(e, dmg)
		g.knockEnemy(e, g.player.Pos, force)
		g.spawnSlash(e.Center())
		g.shake = shake
	}
}

// damageEnemy applies damage, the hit flash and hit-stop. A kill
// deactivates the enemy and drops one gem.
func (g *Game) damageEnemy(e *Enemy, dmg int) {
	if !e.Active || dmg <= 0 || g.terminal() {
		return
	}
	c := g.cfg.Combat
	e.Health = max(0, e.Health-dmg)
	e.HitFlash = c.HitFlash
	g.hitStop = max(g.hitStop, c.HitStopHit)
	g.emit(core.EventEnemyHit, core.CueEnemyHit, e.Kind.String(), dmg, e.Center())

	if e.Health > 0 {
		return
	}
	e.Active = false
	e.Vel = core.Vec2{}
	g.hitStop = max(g.hitStop, c.HitStopKill)
	g.spawnSparks(e.Center(), kindColor(e.Kind), 12)
	g.spawnGem(e.Center())
	g.emit(core.EventEnemyKilled, core.CueClash, e.Kind.String(), e.MaxHealth, e.Center())
}

// knockEnemy pushes a living enemy away from a point, scaled by its
// knockback factor.
func (g *Game) knockEnemy(e *Enemy, from core.Vec2, force float64) {
	if !e.Active {
		return
	}
	factor := 1.0
	if stats, ok := g.cfg.Profile(e.Kind.String()); ok {
		factor = stats.KnockbackFactor
	}
	e.Vel = e.Vel.Add(from.Direction(e.Pos).Scale(force * factor))
}

// damagePlayer applies damage unless the player is dodging, invulnerable
// or the session is over. It reports whether the hit landed.
func (g *Game) damagePlayer(amount int, from core.Vec2, knockback float64, stop int) bool {
	p := &g.player
	if amount <= 0 || p.Dodging || p.Invulnerable > 0 || g.terminal() {
		return false
	}
	c := g.cfg.Combat
	p.Health = max(0, p.Health-amount)
	p.Invulnerable = c.Invulnerability
	g.hitStop = max(g.hitStop, stop)
	g.shake = c.ShakeHurt
	p.Vel = from.Direction(g.playerCenter()).Scale(knockback)

	center := g.playerCenter()
	g.spawnSparks(center, core.ColorRed, 8)
	g.emit(core.EventPlayerHurt, core.CueHit, "", amount, center)
	if p.Health == 0 {
		g.defeat()
	}
	return true
}

// spawnGem drops a reward at the given center, drifting in a random direction.
func (g *Game) spawnGem(center core.Vec2) {
	gc := g.cfg.World.Gem
	angle := g.rng.Float64() * 2 * math.Pi
	g.pickups = append(g.pickups, Pickup{
		ID:     g.newID(),
		Pos:    core.V(center.X-gc.Size/2, center.Y-gc.Size/2),
		Vel:    core.FromAngle(angle, gc.Speed),
		Size:   gc.Size,
		Value:  gc.Value,
		Life:   gc.Life,
		Active: true,
	})
}
