package twinblade

import (
	"math"

	"github.com/vovakirdan/tui-twinblade/internal/config"
	"github.com/vovakirdan/tui-twinblade/internal/core"
)

// profile returns the physics profile of the active character.
func (g *Game) profile() config.CharacterProfile {
	return g.profileOf(g.player.Character)
}

func (g *Game) profileOf(c Character) config.CharacterProfile {
	if c == Zainab {
		return g.cfg.Characters.Zainab
	}
	return g.cfg.Characters.Onyx
}

// bodyOrigin is the top-left corner of the player's collision box.
func (g *Game) bodyOrigin(pos core.Vec2) core.Vec2 {
	pad := g.cfg.Player.Padding
	return core.V(pos.X+pad, pos.Y+pad)
}

// playerCenter is the middle of the collision box.
func (g *Game) playerCenter() core.Vec2 {
	size := g.cfg.Player.Size
	return g.bodyOrigin(g.player.Pos).Add(core.V(size/2, size/2))
}

// hurtbox is the box enemies and enemy shots must overlap to deal damage.
func (g *Game) hurtbox() core.Rect {
	c := g.playerCenter()
	s := g.cfg.Player.HurtboxSize
	return core.NewRect(c.X-s/2, c.Y-s/2, s, s)
}

func (g *Game) playerTile() (int, int) {
	return g.grid.TileOf(g.playerCenter())
}

// bodyBlocked tests the collision box at pos for character c.
func (g *Game) bodyBlocked(pos core.Vec2, c Character) bool {
	o := g.bodyOrigin(pos)
	return g.grid.RectCollides(o.X, o.Y, g.cfg.Player.Size, g.profileOf(c).CanFly)
}

// State derives the controller state from the player record.
func (p *Player) State() PlayerState {
	switch {
	case p.Dodging:
		return StateDodging
	case p.Attacking && p.AttackKind == AttackCharged:
		return StateAttackingCharged
	case p.Attacking:
		return StateAttackingNormal
	case p.ChargeTimer > 0:
		return StateCharging
	case p.Vel.X != 0 || p.Vel.Y != 0:
		return StateMoving
	}
	return StateIdle
}

// handleActions applies the swap and dodge edges of this tick.
func (g *Game) handleActions(in core.InputFrame) {
	if in.Has(core.ActionSwap) {
		g.trySwap()
	}
	if in.Has(core.ActionDodge) {
		g.tryDodge()
	}
}

// stepCharge turns the attack button into attacks. The melee character
// charges while the button is held and strikes on release; the ranged
// character fires on press.
func (g *Game) stepCharge(in core.InputFrame) {
	p := &g.player
	held := in.Holding(core.ActionAttack)
	tapped := in.Has(core.ActionAttack) && !held
	pressed := tapped || (held && !g.attackHeld)
	released := tapped || (g.attackHeld && !held)
	g.attackHeld = held

	if p.Character.Ranged() {
		p.ChargeTimer = 0
		if pressed {
			g.tryAttack(false)
		}
		return
	}

	threshold := g.cfg.Player.ChargeThreshold
	if held && !p.Attacking && !p.Dodging {
		p.ChargeTimer++
		if p.ChargeTimer == threshold {
			g.emit(core.EventCue, core.CueChargeReady, "", 0, g.playerCenter())
			g.spawnRing(g.playerCenter(), core.ColorOrange)
		}
	}

	switch {
	case released:
		g.tryAttack(p.ChargeTimer >= threshold)
		p.ChargeTimer = 0
	case !held && !p.Attacking:
		p.ChargeTimer = 0
	}
}

// tryAttack starts an attack unless on cooldown or dodging.
func (g *Game) tryAttack(charged bool) bool {
	p := &g.player
	if p.AttackCooldown > 0 || p.Dodging {
		return false
	}

	prof := g.profile()
	scale := 1.0
	kind := AttackNormal
	if charged {
		scale = g.cfg.Combat.ChargedScale
		kind = AttackCharged
	}
	p.Attacking = true
	p.AttackKind = kind
	p.AttackFrame = int(math.Floor(float64(prof.AttackDuration) * scale))
	p.AttackCooldown = int(math.Floor(float64(prof.AttackCooldown) * scale))

	center := g.playerCenter()
	switch {
	case p.Character.Ranged():
		g.spawnPlayerShot(prof.Damage)
		g.emit(core.EventAttack, core.CueShoot, "shot", 0, center)
	case charged:
		g.shake = 15
		g.spawnShockwave(center, core.ColorOrange)
		g.spawnSparks(center, core.ColorOrange, 20)
		g.emit(core.EventAttack, core.CueChargeRelease, kind.String(), 0, center)
	default:
		g.spawnSlash(center.Add(p.Facing.Vec().Scale(g.cfg.Combat.MeleeReach)))
		g.emit(core.EventAttack, core.CueSwing, kind.String(), 0, center)
	}
	return true
}

// tryDodge starts a dodge roll in the facing direction.
func (g *Game) tryDodge() bool {
	p := &g.player
	if p.DodgeCooldown > 0 || p.Dodging {
		return false
	}
	pc := g.cfg.Player
	p.Dodging = true
	p.DodgeTimer = pc.DodgeTicks
	p.DodgeCooldown = pc.DodgeCooldown
	p.ChargeTimer = 0
	p.Vel = p.Facing.Vec().Scale(pc.DodgeSpeed)
	g.emit(core.EventDodge, core.CueDodge, "", 0, g.playerCenter())
	return true
}

// trySwap toggles the character. Swapping to a grounded character while
// over a pit is refused so the body never ends up inside a blocking tile.
func (g *Game) trySwap() bool {
	p := &g.player
	if p.Dodging {
		return false
	}
	next := p.Character.Other()
	if g.bodyBlocked(p.Pos, next) {
		return false
	}
	p.Character = next
	p.ChargeTimer = 0
	g.shake = g.cfg.Combat.ShakeSwap
	g.spawnRing(g.playerCenter(), characterColor(next))
	g.emit(core.EventSwap, core.CuePowerup, next.String(), 0, g.playerCenter())
	return true
}

// stepTimers counts down status effects and cooldowns.
func (g *Game) stepTimers() {
	p := &g.player
	if p.SlowTimer > 0 {
		p.SlowTimer--
		if p.SlowTimer == 0 {
			p.SpeedMult = 1
		}
	}
	if p.DodgeCooldown > 0 {
		p.DodgeCooldown--
	}
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	if p.ContactCooldown > 0 {
		p.ContactCooldown--
	}
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
}

// moveIntent resolves the movement direction. An analog vector outside the
// dead zone overrides the directional buttons.
func (g *Game) moveIntent(in core.InputFrame) core.Vec2 {
	if in.Move.Len() > g.cfg.Player.Deadzone {
		m := core.V(core.ClampF(in.Move.X, -1, 1), core.ClampF(in.Move.Y, -1, 1))
		if m.Len() > 1 {
			m = m.Normalize()
		}
		return m
	}
	return in.Direction()
}

// stepMovement eases velocity toward the input target, or runs the dodge.
func (g *Game) stepMovement(in core.InputFrame) {
	p := &g.player
	pc := g.cfg.Player

	if p.Dodging {
		p.DodgeTimer--
		if pc.GhostEvery > 0 && p.DodgeTimer%pc.GhostEvery == 0 {
			g.ghosts = append(g.ghosts, Ghost{Pos: p.Pos, Character: p.Character, Life: pc.GhostLife})
		}
		if p.DodgeTimer <= 0 {
			p.Dodging = false
			p.DodgeTimer = 0
			p.Vel = p.Vel.Scale(0.5)
		}
		return
	}

	dir := g.moveIntent(in)
	p.Facing = facingFor(dir, p.Facing)

	prof := g.profile()
	maxSpd := prof.MaxSpeed * p.SpeedMult * pc.SpeedSetting
	if !p.Character.Ranged() {
		if p.Attacking {
			maxSpd *= pc.AttackSlow
		}
		if p.ChargeTimer > 0 {
			maxSpd *= pc.ChargeSlow
		}
	}

	p.Vel.X = applyForce(p.Vel.X, dir.X*maxSpd, prof)
	p.Vel.Y = applyForce(p.Vel.Y, dir.Y*maxSpd, prof)
}

// applyForce eases one velocity axis toward target, or applies friction
// when there is no input on that axis.
func applyForce(cur, target float64, prof config.CharacterProfile) float64 {
	if math.Abs(target) > 0.01 {
		accel := prof.MoveSpeed
		if core.Sign(target) != core.Sign(cur) && math.Abs(cur) > 0.5 {
			accel *= prof.TurnAccel
		}
		return cur + (target-cur)*accel
	}
	if math.Abs(cur) < 0.1 {
		return 0
	}
	return cur * prof.Friction
}

// integratePlayer moves the player one axis at a time. A blocked axis is
// zeroed and cancels an active dodge.
func (g *Game) integratePlayer() {
	p := &g.player
	next := core.V(p.Pos.X+p.Vel.X, p.Pos.Y)
	if !g.bodyBlocked(next, p.Character) {
		p.Pos.X = next.X
	} else {
		p.Dodging = false
		p.DodgeTimer = 0
		p.Vel.X = 0
	}

	next = core.V(p.Pos.X, p.Pos.Y+p.Vel.Y)
	if !g.bodyBlocked(next, p.Character) {
		p.Pos.Y = next.Y
	} else {
		p.Dodging = false
		p.DodgeTimer = 0
		p.Vel.Y = 0
	}
}
