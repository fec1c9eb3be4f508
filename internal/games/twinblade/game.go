// Package twinblade is the deterministic simulation core of a top-down
// action game: two swappable characters, five enemy behaviours, tile
// collision, fog of war and procedural enemy placement.
//
// The package holds no terminal or audio code. A Game advances one fixed tick
// per Step call, reads only the InputFrame it is given, and reports what
// happened through the returned events and an optional AudioSink.
package twinblade

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-twinblade/internal/config"
	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/level"
	"github.com/vovakirdan/tui-twinblade/internal/registry"
)

// Status is the session outcome.
type Status int

const (
	StatusPlaying Status = iota
	StatusVictory
	StatusDefeat
)

func (s Status) String() string {
	switch s {
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	}
	return "playing"
}

// Game is one play session over the registered campaign.
type Game struct {
	cfg     config.Config
	audio   AudioSink
	rng     *rand.Rand // gameplay randomness
	fx      *rand.Rand // cosmetic randomness, never read by gameplay

	firstLevel int
	levelIndex int
	def        level.Definition
	allowed    []EnemyKind
	grid       *Grid
	fog        *FogGrid

	tick        uint64
	player      Player
	enemies     []Enemy
	projectiles []Projectile
	pickups     []Pickup
	particles   []Particle
	ghosts      []Ghost
	camera      core.Vec2
	shake       float64
	hitStop     int
	score       int
	status      Status
	paused      bool
	attackHeld  bool
	nextID      int

	// edges pressed during hit-stop, replayed on the first free tick
	pending core.InputFrame

	events []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithAudio routes cues to the given sink.
func WithAudio(sink AudioSink) Option {
	return func(g *Game) {
		if sink != nil {
			g.audio = sink
		}
	}
}

// WithConfig replaces the default tuning.
func WithConfig(cfg config.Config) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithStartLevel makes Reset begin at the given campaign index.
func WithStartLevel(index int) Option {
	return func(g *Game) {
		g.firstLevel = max(0, index)
	}
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:   config.DefaultConfig(),
		audio: silentSink{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "twinblade" }

// Title returns the display name.
func (g *Game) Title() string { return "Twinblade" }

// Config returns the tuning in use.
func (g *Game) Config() config.Config { return g.cfg }

// Reset seeds the random sources and starts the campaign at the start level.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.fx = rand.New(rand.NewSource(rc.Seed + 1))
	return g.LoadLevel(g.firstLevel)
}

// LoadLevel starts a fresh session on the level at the given campaign index.
func (g *Game) LoadLevel(index int) error {
	return g.startLevel(index, false)
}

// ResetSession restarts the current level from scratch. Score is cleared.
func (g *Game) ResetSession() error {
	return g.startLevel(g.levelIndex, false)
}

// NextLevel advances the campaign after a victory, keeping the score.
func (g *Game) NextLevel() error {
	if g.levelIndex+1 >= registry.Count() {
		return fmt.Errorf("twinblade: no level after %q", g.def.ID)
	}
	return g.startLevel(g.levelIndex+1, true)
}

func (g *Game) startLevel(index int, keepScore bool) error {
	if g.rng == nil {
		return fmt.Errorf("twinblade: Reset must be called before loading a level")
	}
	def, err := registry.Get(index)
	if err != nil {
		return fmt.Errorf("twinblade: load level: %w", err)
	}
	allowed := make([]EnemyKind, 0, len(def.Enemies))
	for _, name := range def.Enemies {
		kind, err := ParseEnemyKind(name)
		if err != nil {
			return fmt.Errorf("twinblade: level %s: %w", def.ID, err)
		}
		if _, ok := g.cfg.Profile(name); !ok {
			return fmt.Errorf("twinblade: level %s: %w: no stats for %q", def.ID, ErrUnknownEnemyKind, name)
		}
		allowed = append(allowed, kind)
	}

	g.levelIndex = index
	g.def = def
	g.allowed = allowed
	g.grid = NewGrid(def.Template, g.cfg.World.TileSize)
	g.fog = NewFog(g.grid.Width(), g.grid.Height())

	g.tick = 0
	g.projectiles = nil
	g.pickups = nil
	g.particles = nil
	g.ghosts = nil
	g.shake = 0
	g.hitStop = 0
	g.status = StatusPlaying
	g.paused = false
	g.attackHeld = false
	g.pending = core.NewInputFrame()
	g.nextID = 0
	g.events = nil
	if !keepScore {
		g.score = 0
	}

	g.player = g.newPlayer(def.Spawn)
	g.enemies = Populate(g.grid, PopulationRequest{
		Allowed:    allowed,
		SpawnRate:  g.cfg.SpawnRate(def.SpawnRate),
		LevelIndex: index,
		Spawn:      def.Spawn,
	}, g.cfg, g.rng)
	g.nextID = len(g.enemies)

	g.revealFog()
	g.camera = g.cameraTarget()
	g.clampCamera()
	return nil
}

func (g *Game) newPlayer(spawn level.Point) Player {
	ts := g.cfg.World.TileSize
	return Player{
		Pos:       core.V(float64(spawn.X)*ts, float64(spawn.Y)*ts),
		Facing:    FacingDown,
		Character: Onyx,
		Health:    g.cfg.PlayerMaxHealth(),
		MaxHealth: g.cfg.PlayerMaxHealth(),
		SpeedMult: 1,
	}
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch {
	case g.status != StatusPlaying:
		g.stepTerminal(in)
	case in.Has(core.ActionPause):
		g.paused = !g.paused
	case !g.paused:
		g.tick++
		g.update(in)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// stepTerminal handles restart and continue requests after the session ended.
func (g *Game) stepTerminal(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		//nolint:errcheck // the current level already loaded once
		g.ResetSession()
	case g.status == StatusVictory && in.Has(core.ActionConfirm):
		if g.levelIndex+1 < registry.Count() {
			//nolint:errcheck // index checked above
			g.NextLevel()
		}
	}
}

// update runs one unpaused tick in the fixed order the combat rules depend on:
// the player moves first so enemies and projectiles react to this tick's position.
func (g *Game) update(in core.InputFrame) {
	if g.hitStop > 0 {
		g.hitStop--
		g.pending.Latch(in)
		return
	}
	if len(g.pending.Actions) > 0 {
		merged := in.Clone()
		merged.Latch(g.pending)
		g.pending.Clear()
		in = merged
	}

	g.shake *= 0.9
	if g.shake < 0.5 {
		g.shake = 0
	}

	g.handleActions(in)
	g.stepCharge(in)
	g.stepTimers()
	g.stepMovement(in)
	g.integratePlayer()
	g.stepAttack()
	g.stepProjectiles()
	g.stepEnemies()
	g.stepPickups()
	g.stepParticles()
	g.revealFog()
	g.stepCamera()
	g.checkTile()

	g.compact()
}

// compact drops spent projectiles, pickups and particles. Enemies are kept.
func (g *Game) compact() {
	g.projectiles = filter(g.projectiles, func(p *Projectile) bool { return p.Active })
	g.pickups = filter(g.pickups, func(p *Pickup) bool { return p.Active })
	g.particles = filter(g.particles, func(p *Particle) bool { return p.Life > 0 })
	g.ghosts = filter(g.ghosts, func(gh *Ghost) bool { return gh.Life > 0 })
}

func filter[T any](s []T, keep func(*T) bool) []T {
	out := s[:0]
	for i := range s {
		if keep(&s[i]) {
			out = append(out, s[i])
		}
	}
	clear(s[len(out):])
	return out
}

// State returns the session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusDefeat,
		Won:      g.status == StatusVictory,
		Paused:   g.paused,
	}
}

// Status returns the session outcome.
func (g *Game) Status() Status { return g.status }

// Level returns the active level definition and its campaign index.
func (g *Game) Level() (level.Definition, int) { return g.def, g.levelIndex }

func (g *Game) terminal() bool {
	return g.status != StatusPlaying
}

func (g *Game) addScore(n int) {
	if g.terminal() {
		return
	}
	g.score = max(0, g.score+n)
}

func (g *Game) victory() {
	if g.terminal() {
		return
	}
	g.status = StatusVictory
	g.emit(core.EventVictory, core.CueGemCollect, g.def.ID, g.score, g.player.Pos)
}

func (g *Game) defeat() {
	if g.terminal() {
		return
	}
	g.status = StatusDefeat
	g.emit(core.EventDefeat, core.CueGameOver, g.def.ID, g.score, g.player.Pos)
}

func (g *Game) newID() int {
	g.nextID++
	return g.nextID
}

// revealFog uncovers the tiles around the player.
func (g *Game) revealFog() {
	tx, ty := g.playerTile()
	g.fog.Reveal(tx, ty, g.cfg.World.FogRadius)
}

// checkTile applies goal and heart-container tiles under the player.
func (g *Game) checkTile() {
	tx, ty := g.playerTile()
	switch g.grid.At(tx, ty) {
	case level.TileGoal:
		g.victory()
	case level.TileHeart:
		if g.terminal() {
			return
		}
		g.grid.Set(tx, ty, level.TileFloor)
		p := &g.player
		p.MaxHealth += g.cfg.World.HeartBonus
		p.Health = p.MaxHealth
		center := g.playerCenter()
		g.emit(core.EventHeartCollected, core.CuePowerup, "", p.MaxHealth, center)
		g.text("MAX HP UP!", center)
	}
}
