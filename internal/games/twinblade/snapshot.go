package twinblade

import (
	"math"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/level"
)

// PlayerView is the read-only player state handed to renderers and the HUD.
type PlayerView struct {
	Pos         core.Vec2
	Center      core.Vec2
	Facing      Facing
	Character   Character
	State       PlayerState
	Health      int
	MaxHealth   int
	ChargeTimer int
	ChargeReady bool
	Slowed      bool
	Blinking    bool // invulnerable and not dodging
}

// EnemyView is one enemy as seen by renderers and the minimap.
type EnemyView struct {
	ID       int
	Kind     EnemyKind
	Pos      core.Vec2
	Size     float64
	Facing   Facing
	Health   float64 // fraction of max health in [0, 1]
	Active   bool
	Flashing bool
	Charging bool // dasher telegraph
}

// Snapshot is a deep copy of everything outside collaborators may read
// between ticks. Mutating it has no effect on the game.
type Snapshot struct {
	Tick       uint64
	Status     Status
	Paused     bool
	Score      int
	LevelIndex int
	LevelID    string
	LevelName  string

	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []Projectile
	Pickups     []Pickup
	Particles   []Particle
	Ghosts      []Ghost

	Tiles    [][]level.Tile
	Fog      [][]bool
	Camera   core.Vec2
	Shake    float64
	TileSize float64
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	p := &g.player
	s := Snapshot{
		Tick:       g.tick,
		Status:     g.status,
		Paused:     g.paused,
		Score:      g.score,
		LevelIndex: g.levelIndex,
		LevelID:    g.def.ID,
		LevelName:  g.def.Name,
		Player: PlayerView{
			Pos:         p.Pos,
			Center:      g.playerCenter(),
			Facing:      p.Facing,
			Character:   p.Character,
			State:       p.State(),
			Health:      p.Health,
			MaxHealth:   p.MaxHealth,
			ChargeTimer: p.ChargeTimer,
			ChargeReady: !p.Character.Ranged() && p.ChargeTimer >= g.cfg.Player.ChargeThreshold,
			Slowed:      p.SlowTimer > 0,
			Blinking:    p.Invulnerable > 0 && !p.Dodging,
		},
		Enemies:     make([]EnemyView, len(g.enemies)),
		Projectiles: make([]Projectile, len(g.projectiles)),
		Pickups:     append([]Pickup(nil), g.pickups...),
		Particles:   append([]Particle(nil), g.particles...),
		Ghosts:      append([]Ghost(nil), g.ghosts...),
		Camera:      g.camera,
		Shake:       g.shake,
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		frac := 0.0
		if e.MaxHealth > 0 {
			frac = float64(e.Health) / float64(e.MaxHealth)
		}
		s.Enemies[i] = EnemyView{
			ID:       e.ID,
			Kind:     e.Kind,
			Pos:      e.Pos,
			Size:     e.Size,
			Facing:   e.Facing,
			Health:   frac,
			Active:   e.Active,
			Flashing: e.HitFlash > 0,
			Charging: e.Kind == Dasher && e.AttackCooldown > dasherLaunch,
		}
	}
	for i, pr := range g.projectiles {
		pr.Trail.points = append([]core.Vec2(nil), pr.Trail.points...)
		s.Projectiles[i] = pr
	}

	if g.grid != nil {
		s.TileSize = g.grid.TileSize()
		s.Tiles = make([][]level.Tile, g.grid.Height())
		for y := range s.Tiles {
			s.Tiles[y] = make([]level.Tile, g.grid.Width())
			for x := range s.Tiles[y] {
				s.Tiles[y][x] = g.grid.At(x, y)
			}
		}
	}
	if g.fog != nil {
		s.Fog = g.fog.Rows()
	}
	return s
}

// Player returns a copy of the player record.
func (g *Game) Player() Player { return g.player }

// Enemies returns a copy of the enemy records, including inactive ones.
func (g *Game) Enemies() []Enemy { return append([]Enemy(nil), g.enemies...) }

// Tick returns the number of unpaused ticks since the level started.
func (g *Game) Tick() uint64 { return g.tick }

// Hash folds the gameplay-relevant parts of the snapshot into one value for
// determinism checks. Particles are cosmetic and left out.
func (snap *Snapshot) Hash() uint64 {
	f := math.Float64bits
	h := snap.Tick
	h = h*31 + uint64(snap.Status)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + f(snap.Player.Pos.X)
	h = h*31 + f(snap.Player.Pos.Y)
	h = h*31 + uint64(snap.Player.Health)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Character) //#nosec G115 -- hash computation

	for _, e := range snap.Enemies {
		h = h*31 + uint64(e.ID) //#nosec G115 -- hash computation
		h = h*31 + f(e.Pos.X)
		h = h*31 + f(e.Pos.Y)
		h = h*31 + f(e.Health)
	}
	for _, p := range snap.Projectiles {
		h = h*31 + f(p.Pos.X)
		h = h*31 + f(p.Pos.Y)
		h = h*31 + uint64(p.Owner) //#nosec G115 -- hash computation
	}
	for _, p := range snap.Pickups {
		h = h*31 + f(p.Pos.X)
		h = h*31 + f(p.Pos.Y)
	}
	for y, row := range snap.Fog {
		for x, seen := range row {
			if seen {
				h = h*31 + uint64(y*len(row)+x) //#nosec G115 -- hash computation
			}
		}
	}
	return h
}
