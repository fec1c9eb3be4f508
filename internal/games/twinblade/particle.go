package twinblade

import (
	"math"

	"github.com/vovakirdan/tui-twinblade/internal/core"
)

// ParticleKind selects how a particle evolves and is drawn.
type ParticleKind int

const (
	ParticleSpark ParticleKind = iota
	ParticleRing
	ParticleShockwave
	ParticleSlash
)

func (k ParticleKind) String() string {
	return [...]string{"spark", "ring", "shockwave", "slash"}[k]
}

// Particle is purely cosmetic. Gameplay never reads particles, and they
// draw from the cosmetic random source only.
type Particle struct {
	Kind     ParticleKind
	Pos, Vel core.Vec2
	Size     float64
	Life     int
	MaxLife  int
	Color    core.Color
}

// Fade returns the remaining life as a ratio in [0, 1].
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

func (g *Game) addParticle(p Particle) {
	if limit := g.cfg.World.ParticleLimit; limit > 0 && len(g.particles) >= limit {
		return
	}
	g.particles = append(g.particles, p)
}

// spawnSparks scatters n short-lived sparks around pos.
func (g *Game) spawnSparks(pos core.Vec2, c core.Color, n int) {
	for range n {
		g.addParticle(Particle{
			Kind:    ParticleSpark,
			Pos:     pos,
			Vel:     core.V((g.fx.Float64()-0.5)*8, (g.fx.Float64()-0.5)*8),
			Size:    2,
			Life:    10 + g.fx.Intn(5),
			MaxLife: 15,
			Color:   c,
		})
	}
}

// spawnRing adds a slowly expanding ring, used for swaps and charge-ready.
func (g *Game) spawnRing(pos core.Vec2, c core.Color) {
	g.addParticle(Particle{Kind: ParticleRing, Pos: pos, Size: 10, Life: 20, MaxLife: 20, Color: c})
}

// spawnShockwave adds a fast expanding ring.
func (g *Game) spawnShockwave(pos core.Vec2, c core.Color) {
	g.addParticle(Particle{Kind: ParticleShockwave, Pos: pos, Size: 10, Life: 10, MaxLife: 10, Color: c})
}

// spawnSlash marks a melee impact.
func (g *Game) spawnSlash(pos core.Vec2) {
	g.addParticle(Particle{Kind: ParticleSlash, Pos: pos, Size: 40, Life: 12, MaxLife: 12, Color: core.ColorBrightWhite})
}

// stepParticles advances particles and dodge ghosts.
func (g *Game) stepParticles() {
	for i := range g.particles {
		p := &g.particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		switch p.Kind {
		case ParticleShockwave:
			p.Size += 4
		case ParticleRing:
			p.Size += 2
		}
		p.Life--
	}
	for i := range g.ghosts {
		g.ghosts[i].Life--
	}
}

// Radius returns the drawn radius of ring-like particles.
func (p *Particle) Radius() float64 {
	return math.Max(p.Size/2, 1)
}

func characterColor(c Character) core.Color {
	if c == Zainab {
		return core.ColorCyan
	}
	return core.ColorOrange
}

func kindColor(k EnemyKind) core.Color {
	switch k {
	case Turret:
		return core.ColorMagenta
	case Dasher:
		return core.ColorBrightMagenta
	case Tank:
		return core.ColorBrightRed
	case Slimer:
		return core.ColorBrightGreen
	}
	return core.ColorRed
}
