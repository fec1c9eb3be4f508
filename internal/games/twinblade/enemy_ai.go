package twinblade

import (
	"math"

	"github.com/vovakirdan/tui-twinblade/internal/config"
	"github.com/vovakirdan/tui-twinblade/internal/core"
)

// Dasher phase boundaries on the attack cooldown clock. The clock is armed
// at dasherCycle, telegraphs until dasherLaunch, glides, then recovers
// below dasherRecover.
const (
	dasherCycle   = 100
	dasherLaunch  = 60
	dasherRecover = 20
)

// stepEnemies runs AI, movement and contact damage for every active enemy.
func (g *Game) stepEnemies() {
	target := g.playerCenter()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		stats, _ := g.cfg.Profile(e.Kind.String())

		if e.HitFlash > 0 {
			e.HitFlash--
		}
		if e.AttackCooldown > 0 {
			e.AttackCooldown--
		}

		center := e.Center()
		dist := center.Dist(target)
		angle := math.Atan2(target.Y-center.Y, target.X-center.X)
		inRange := dist < e.Aggro

		switch e.Kind {
		case Turret:
			g.runTurret(e, stats, angle, inRange)
		case Slimer:
			g.runSlimer(e, stats, angle, inRange)
		case Dasher:
			g.runDasher(e, stats, angle, inRange)
		default:
			runChaser(e, stats, angle, inRange)
		}

		g.moveEnemy(e)
		if e.Kind != Dasher || e.AttackCooldown <= 0 {
			e.Facing = enemyFacing(e.Vel, e.Facing)
		}
		g.enemyContact(e, stats)
	}
}

// runChaser accelerates straight at the player. Tanks share it with a lower
// acceleration and a speed cap.
func runChaser(e *Enemy, s config.EnemyStats, angle float64, inRange bool) {
	e.Vel = e.Vel.Scale(s.Friction)
	if !inRange {
		return
	}
	e.Vel = e.Vel.Add(core.FromAngle(angle, s.Accel))
	capSpeed(e, s.MaxSpeed)
}

// runSlimer approaches along a heading that wobbles with the tick counter.
func (g *Game) runSlimer(e *Enemy, s config.EnemyStats, angle float64, inRange bool) {
	e.Vel = e.Vel.Scale(s.Friction)
	if !inRange {
		return
	}
	wobble := math.Sin(float64(g.tick)/6+float64(e.ID)) * 1.5
	e.Vel = e.Vel.Add(core.FromAngle(angle+wobble*0.5, s.Accel))
	capSpeed(e, s.MaxSpeed)
}

// runTurret stands still and fires at the player whenever its cooldown lapses.
func (g *Game) runTurret(e *Enemy, s config.EnemyStats, angle float64, inRange bool) {
	e.Vel = e.Vel.Scale(s.Friction)
	if !inRange || e.AttackCooldown > 0 {
		return
	}
	shot := g.cfg.Combat.EnemyShot
	c := e.Center()
	g.spawnProjectile(
		core.V(c.X-shot.Size/2, c.Y-shot.Size/2),
		core.FromAngle(angle, shot.Speed),
		shot, OwnerEnemy, shot.Damage,
	)
	e.AttackCooldown = g.cfg.Combat.TurretCooldown
	e.Facing = facingFor(core.FromAngle(angle, 1), e.Facing)
	g.spawnSparks(c.Add(core.FromAngle(angle, 16)), kindColor(Turret), 5)
	g.emit(core.EventCue, core.CueShoot, Turret.String(), 0, c)
}

// runDasher uses the attack cooldown as a phase clock: idle until the player
// is in range, telegraph in place, dash at the player's current position,
// glide, then recover.
func (g *Game) runDasher(e *Enemy, s config.EnemyStats, angle float64, inRange bool) {
	cd := e.AttackCooldown
	switch {
	case cd <= 0:
		e.Vel = e.Vel.Scale(s.Friction)
		if inRange {
			e.AttackCooldown = dasherCycle
			e.Facing = facingFor(core.FromAngle(angle, 1), e.Facing)
		}
	case cd > dasherLaunch:
		e.Vel = e.Vel.Scale(0.5)
	case cd == dasherLaunch:
		e.Vel = core.FromAngle(angle, s.DashSpeed)
		g.spawnShockwave(e.Center(), kindColor(Dasher))
		g.emit(core.EventCue, core.CueDodge, Dasher.String(), 0, e.Center())
	case cd > dasherRecover:
		// gliding at dash speed
	default:
		e.Vel = e.Vel.Scale(s.Friction)
	}
}

// capSpeed clamps the velocity magnitude; a zero limit means uncapped.
func capSpeed(e *Enemy, limit float64) {
	if limit <= 0 {
		return
	}
	if s := e.Vel.Len(); s > limit {
		e.Vel = e.Vel.Scale(limit / s)
	}
}

// moveEnemy applies velocity one axis at a time against grounded traversal.
func (g *Game) moveEnemy(e *Enemy) {
	if !g.grid.RectCollides(e.Pos.X+e.Vel.X, e.Pos.Y, e.Size, false) {
		e.Pos.X += e.Vel.X
	} else {
		e.Vel.X = 0
	}
	if !g.grid.RectCollides(e.Pos.X, e.Pos.Y+e.Vel.Y, e.Size, false) {
		e.Pos.Y += e.Vel.Y
	} else {
		e.Vel.Y = 0
	}
}

// enemyFacing prefers the horizontal axis once it moves noticeably.
func enemyFacing(v core.Vec2, cur Facing) Facing {
	switch {
	case math.Abs(v.X) > 0.1:
		if v.X > 0 {
			return FacingRight
		}
		return FacingLeft
	case math.Abs(v.Y) > 0.1:
		if v.Y > 0 {
			return FacingDown
		}
		return FacingUp
	}
	return cur
}

// enemyContact applies the slimer slow and contact damage when the enemy
// overlaps the player's hurtbox.
func (g *Game) enemyContact(e *Enemy, s config.EnemyStats) {
	if !e.Rect().Intersects(g.hurtbox()) {
		return
	}
	p := &g.player
	if e.Kind == Slimer && p.SlowTimer <= 0 && !p.Dodging && !g.terminal() {
		pc := g.cfg.Player
		p.SlowTimer = pc.SlowTicks
		p.SpeedMult = pc.SlowFactor
		g.spawnSparks(g.playerCenter(), kindColor(Slimer), 8)
		g.text("SLOWED!", g.playerCenter())
	}
	if p.ContactCooldown > 0 {
		return
	}
	if g.damagePlayer(s.ContactDamage, e.Center(), s.ContactKnockback, g.cfg.Combat.HitStopHurt) {
		p.ContactCooldown = g.cfg.Combat.ContactCooldown
	}
}
