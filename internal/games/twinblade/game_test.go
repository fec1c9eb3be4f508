package twinblade

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/level"
)

// roomRows is a walled 30x20 room with the spawn at (5,5).
func roomRows() []string {
	rows := make([]string, level.Height)
	for y := range rows {
		switch y {
		case 0, level.Height - 1:
			rows[y] = strings.Repeat("#", level.Width)
		default:
			rows[y] = "#" + strings.Repeat(".", level.Width-2) + "#"
		}
	}
	rows[5] = rows[5][:5] + "P" + rows[5][6:]
	rows[17] = rows[17][:27] + "G" + rows[17][28:]
	return rows
}

// newTestGame builds a game on the given layout with no enemies.
func newTestGame(t *testing.T, rows []string) *Game {
	t.Helper()
	tpl, spawn, err := level.ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	if spawn == nil {
		t.Fatal("layout has no spawn marker")
	}
	g := New()
	g.rng = rand.New(rand.NewSource(1))
	g.fx = rand.New(rand.NewSource(2))
	g.def = level.Definition{ID: "test", Name: "Test", SpawnRate: 1, Spawn: *spawn, Template: tpl}
	g.grid = NewGrid(tpl, g.cfg.World.TileSize)
	g.fog = NewFog(g.grid.Width(), g.grid.Height())
	g.player = g.newPlayer(*spawn)
	g.revealFog()
	return g
}

// addEnemy places an idle enemy of the given kind. Aggro is zero so it
// does not chase unless the test raises it.
func addEnemy(g *Game, kind EnemyKind, pos core.Vec2) int {
	stats, _ := g.cfg.Profile(kind.String())
	g.enemies = append(g.enemies, Enemy{
		ID:             len(g.enemies) + 1,
		Kind:           kind,
		Pos:            pos,
		Size:           stats.Size,
		Active:         true,
		Health:         stats.Health,
		MaxHealth:      stats.Health,
		AttackCooldown: stats.InitialCooldown,
	})
	return len(g.enemies) - 1
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a, true)
	}
	return in
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%90 < 40:
			inputs[i] = held(core.ActionRight, core.ActionDown)
		case i%90 < 60:
			inputs[i] = held(core.ActionAttack)
		default:
			inputs[i] = held(core.ActionDown)
		}
		if i%120 == 0 {
			inputs[i].Set(core.ActionDodge)
		}
		if i%200 == 100 {
			inputs[i].Set(core.ActionSwap)
		}
	}

	run := func() Snapshot {
		g := New()
		if err := g.Reset(cfg); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}
		for _, in := range inputs {
			if g.Step(in).State.Terminal() {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Player.Pos != snap2.Player.Pos {
		t.Errorf("Determinism failed: player positions differ. Run1=%v, Run2=%v", snap1.Player.Pos, snap2.Player.Pos)
	}
	if len(snap1.Enemies) != len(snap2.Enemies) {
		t.Fatalf("Determinism failed: enemy counts differ. Run1=%d, Run2=%d", len(snap1.Enemies), len(snap2.Enemies))
	}
	for i := range snap1.Enemies {
		if snap1.Enemies[i] != snap2.Enemies[i] {
			t.Errorf("Determinism failed: enemy %d differs: %+v vs %+v", i, snap1.Enemies[i], snap2.Enemies[i])
		}
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 42}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	def, idx := g.Level()
	if idx != 0 || def.ID != "keep" {
		t.Errorf("Level() = (%s, %d), expected (keep, 0)", def.ID, idx)
	}
	ts := g.cfg.World.TileSize
	want := core.V(float64(def.Spawn.X)*ts, float64(def.Spawn.Y)*ts)
	if g.player.Pos != want {
		t.Errorf("player pos = %v, expected %v", g.player.Pos, want)
	}
	if g.player.Health != 10 || g.player.MaxHealth != 10 {
		t.Errorf("player health = %d/%d, expected 10/10", g.player.Health, g.player.MaxHealth)
	}
	if g.player.Character != Onyx {
		t.Errorf("character = %s, expected onyx", g.player.Character)
	}
	if n := len(g.enemies); n == 0 || n > g.cfg.Population.BaseCount {
		t.Errorf("enemy count = %d, expected 1..%d", n, g.cfg.Population.BaseCount)
	}
	if !g.fog.Revealed(def.Spawn.X, def.Spawn.Y) {
		t.Error("spawn tile should be revealed after reset")
	}

	for range 50 {
		g.Step(held(core.ActionRight))
	}
	g.score = 40
	if err := g.ResetSession(); err != nil {
		t.Fatalf("ResetSession() error = %v", err)
	}
	if g.score != 0 {
		t.Errorf("ResetSession should clear score, got %d", g.score)
	}
	if g.tick != 0 {
		t.Errorf("ResetSession should clear tick, got %d", g.tick)
	}
	if g.player.Pos != want {
		t.Errorf("ResetSession player pos = %v, expected %v", g.player.Pos, want)
	}
}

func TestStartLevelOption(t *testing.T) {
	g := New(WithStartLevel(1))
	if err := g.Reset(core.RuntimeConfig{Seed: 3}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if def, idx := g.Level(); idx != 1 || def.ID != "gardens" {
		t.Errorf("Level() = (%s, %d), expected (gardens, 1)", def.ID, idx)
	}

	g = New(WithStartLevel(99))
	if err := g.Reset(core.RuntimeConfig{Seed: 3}); err == nil {
		t.Error("Reset() past the last level should fail")
	}
}

func TestPauseFreezesState(t *testing.T) {
	g := newTestGame(t, roomRows())
	g.player.AttackCooldown = 10
	start := g.player.Pos

	res := g.Step(pressed(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state after pause edge")
	}
	for range 5 {
		g.Step(held(core.ActionRight))
	}
	if g.player.Pos != start {
		t.Errorf("paused player moved from %v to %v", start, g.player.Pos)
	}
	if g.tick != 0 {
		t.Errorf("tick = %d while paused, expected 0", g.tick)
	}
	if g.player.AttackCooldown != 10 {
		t.Errorf("AttackCooldown = %d while paused, expected 10", g.player.AttackCooldown)
	}

	if g.Step(pressed(core.ActionPause)).State.Paused {
		t.Fatal("second pause edge should resume")
	}
	g.Step(held(core.ActionRight))
	if g.player.Pos.X <= start.X {
		t.Errorf("player should move right after resume, x = %v", g.player.Pos.X)
	}
}

func TestHitStopFreezesSimulation(t *testing.T) {
	g := newTestGame(t, roomRows())
	g.hitStop = 3
	g.player.Vel = core.V(3, 0)
	g.player.AttackCooldown = 5
	start := g.player.Pos

	g.Step(held(core.ActionRight))

	if g.player.Pos != start {
		t.Errorf("player moved during hit-stop: %v -> %v", start, g.player.Pos)
	}
	if g.player.AttackCooldown != 5 {
		t.Errorf("AttackCooldown = %d during hit-stop, expected 5", g.player.AttackCooldown)
	}
	if g.hitStop != 2 {
		t.Errorf("hitStop = %d, expected 2", g.hitStop)
	}
	if g.tick != 1 {
		t.Errorf("tick = %d, expected 1", g.tick)
	}
}

func TestPressDuringHitStopIsReplayed(t *testing.T) {
	g := newTestGame(t, roomRows())
	g.player.Facing = FacingRight
	g.hitStop = 8

	g.Step(pressed(core.ActionDodge, core.ActionSwap))
	if g.player.Dodging || g.player.Character != Onyx {
		t.Fatal("actions should wait for the hit-stop to end")
	}
	for range 7 {
		g.Step(core.NewInputFrame())
	}
	if g.hitStop != 0 || g.player.Dodging {
		t.Fatalf("hitStop = %d, Dodging = %v, expected 0 and false", g.hitStop, g.player.Dodging)
	}

	g.Step(core.NewInputFrame())
	if !g.player.Dodging {
		t.Error("dodge pressed during hit-stop was dropped")
	}
	if g.player.Character != Zainab {
		t.Errorf("Character = %s, expected Zainab after latched swap", g.player.Character)
	}

	// Replayed once only.
	g.player.Dodging = false
	g.player.DodgeCooldown = 0
	g.Step(core.NewInputFrame())
	if g.player.Dodging {
		t.Error("latched dodge fired twice")
	}
}

func TestHeartContainer(t *testing.T) {
	g := newTestGame(t, roomRows())
	tx, ty := g.playerTile()
	g.grid.Set(tx, ty, level.TileHeart)
	g.player.Health = 3

	res := g.Step(core.NewInputFrame())

	if g.player.MaxHealth != 12 {
		t.Errorf("MaxHealth = %d, expected 12", g.player.MaxHealth)
	}
	if g.player.Health != 12 {
		t.Errorf("Health = %d, expected 12", g.player.Health)
	}
	if g.grid.At(tx, ty) != level.TileFloor {
		t.Errorf("heart tile = %s, expected floor", g.grid.At(tx, ty))
	}
	if n := countEvents(res.Events, core.EventHeartCollected); n != 1 {
		t.Errorf("heart events = %d, expected 1", n)
	}
}

func TestGoalVictoryAndNextLevel(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 7}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	tx, ty := g.playerTile()
	g.grid.Set(tx, ty, level.TileGoal)
	g.score = 30

	res := g.Step(core.NewInputFrame())
	if !res.State.Won {
		t.Fatal("expected victory on the goal tile")
	}
	if n := countEvents(res.Events, core.EventVictory); n != 1 {
		t.Errorf("victory events = %d, expected 1", n)
	}

	res = g.Step(core.NewInputFrame())
	if n := countEvents(res.Events, core.EventVictory); n != 0 {
		t.Errorf("victory re-triggered: %d events", n)
	}

	g.Step(pressed(core.ActionConfirm))
	if _, idx := g.Level(); idx != 1 {
		t.Errorf("level index = %d, expected 1", idx)
	}
	if g.Status() != StatusPlaying {
		t.Errorf("status = %s, expected playing", g.Status())
	}
	if g.score != 30 {
		t.Errorf("score = %d, expected 30 carried over", g.score)
	}
}

func TestRestartAfterDefeat(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 3}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	g.player.Health = 1
	g.damagePlayer(1, core.V(0, 0), 0, 0)
	if g.Status() != StatusDefeat {
		t.Fatalf("status = %s, expected defeat", g.Status())
	}

	g.Step(held(core.ActionRight))
	if g.player.Health != 0 {
		t.Errorf("terminal session changed health to %d", g.player.Health)
	}

	g.Step(pressed(core.ActionRestart))
	if g.Status() != StatusPlaying {
		t.Errorf("status after restart = %s, expected playing", g.Status())
	}
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("health after restart = %d, expected %d", g.player.Health, g.player.MaxHealth)
	}
}

func TestSwapRefusedOverPit(t *testing.T) {
	rows := roomRows()
	rows[8] = rows[8][:6] + "   " + rows[8][9:]
	g := newTestGame(t, rows)
	ts := g.cfg.World.TileSize
	pad := g.cfg.Player.Padding

	g.player.Character = Zainab
	g.player.Pos = core.V(7*ts-pad, 8*ts-pad)
	g.Step(pressed(core.ActionSwap))
	if g.player.Character != Zainab {
		t.Errorf("swap over a pit should be refused, character = %s", g.player.Character)
	}

	g.player.Pos = core.V(12*ts-pad, 8*ts-pad)
	res := g.Step(pressed(core.ActionSwap))
	if g.player.Character != Onyx {
		t.Errorf("swap on floor should succeed, character = %s", g.player.Character)
	}
	if n := countEvents(res.Events, core.EventSwap); n != 1 {
		t.Errorf("swap events = %d, expected 1", n)
	}
}

func TestAudioSinkReceivesCues(t *testing.T) {
	var cues []core.Cue
	g := New(WithAudio(AudioFunc(func(c core.Cue) { cues = append(cues, c) })))
	if err := g.Reset(core.RuntimeConfig{Seed: 1}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	g.Step(pressed(core.ActionDodge))

	found := false
	for _, c := range cues {
		if c == core.CueDodge {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, expected %s", cues, core.CueDodge)
	}
}

// TestRandomPlayInvariants drives the game with random input and checks the
// invariants that must hold on every tick.
func TestRandomPlayInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g := New()
		if err := g.Reset(core.RuntimeConfig{Seed: seed}); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}
		r := rand.New(rand.NewSource(seed * 100))
		dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
		var hold []core.Action

		prevFog := g.fog.Rows()
		prev := g.player
		for i := range 3000 {
			if i%12 == 0 {
				hold = hold[:0]
				for _, d := range dirs {
					if r.Intn(3) == 0 {
						hold = append(hold, d)
					}
				}
				if r.Intn(2) == 0 {
					hold = append(hold, core.ActionAttack)
				}
			}
			in := held(hold...)
			switch r.Intn(40) {
			case 0:
				in.Set(core.ActionDodge)
			case 1:
				in.Set(core.ActionSwap)
			}

			if g.Step(in).State.Terminal() {
				break
			}
			p := g.player

			if p.Health < 0 || p.Health > p.MaxHealth {
				t.Fatalf("seed %d tick %d: health %d outside [0, %d]", seed, i, p.Health, p.MaxHealth)
			}
			if g.bodyBlocked(p.Pos, p.Character) {
				t.Fatalf("seed %d tick %d: %s body at %v overlaps a blocking tile", seed, i, p.Character, p.Pos)
			}
			checkTimer(t, "AttackCooldown", prev.AttackCooldown, p.AttackCooldown)
			checkTimer(t, "DodgeCooldown", prev.DodgeCooldown, p.DodgeCooldown)
			checkTimer(t, "Invulnerable", prev.Invulnerable, p.Invulnerable)
			checkTimer(t, "ContactCooldown", prev.ContactCooldown, p.ContactCooldown)

			fog := g.fog.Rows()
			for y := range fog {
				for x := range fog[y] {
					if prevFog[y][x] && !fog[y][x] {
						t.Fatalf("seed %d tick %d: fog cell (%d,%d) was hidden again", seed, i, x, y)
					}
				}
			}
			prevFog = fog
			prev = p
		}
	}
}

// checkTimer accepts a countdown that stayed, dropped by exactly one, or
// was re-armed by its action.
func checkTimer(t *testing.T, name string, before, after int) {
	t.Helper()
	if after < 0 {
		t.Fatalf("%s went negative: %d", name, after)
	}
	if after < before && before-after != 1 {
		t.Fatalf("%s dropped from %d to %d in one tick", name, before, after)
	}
}
