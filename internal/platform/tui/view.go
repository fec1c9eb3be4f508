package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-twinblade/internal/config"
	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/games/twinblade"
	"github.com/vovakirdan/tui-twinblade/internal/level"
	"github.com/vovakirdan/tui-twinblade/internal/registry"
)

// hudRows is the number of screen rows above the map.
const hudRows = 1

// Floater is a piece of floating text ("+10", "SLOWED!") drifting up from
// where it was emitted.
type Floater struct {
	Text string
	Pos  core.Vec2
	Life int
}

const floaterLife = 40

// Renderer draws game snapshots into a Screen. A tile is two cells wide and
// one cell tall so the map keeps roughly square proportions.
type Renderer struct {
	cfg config.Config
}

// NewRenderer creates a renderer for the given tuning.
func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

type viewport struct {
	ox, oy     float64 // world pixel under the top-left map cell
	cw, ch     float64 // world pixels per cell
	cols, rows int
}

// cell maps a world position to screen coordinates.
func (v viewport) cell(p core.Vec2) (x, y int, ok bool) {
	x = int(math.Floor((p.X - v.ox) / v.cw))
	y = int(math.Floor((p.Y - v.oy) / v.ch))
	if x < 0 || y < 0 || x >= v.cols || y >= v.rows {
		return 0, 0, false
	}
	return x, y + hudRows, true
}

// viewportFor centers the map view on the snapshot camera and keeps it
// inside the level. A level narrower than the screen is centered.
func (r *Renderer) viewportFor(s *core.Screen, snap *twinblade.Snapshot) viewport {
	ts := snap.TileSize
	v := viewport{
		cw:   ts / 2,
		ch:   ts,
		cols: s.Width(),
		rows: max(0, s.Height()-hudRows),
	}
	mapW := float64(len(snap.Tiles[0])) * ts
	mapH := float64(len(snap.Tiles)) * ts
	viewW := float64(v.cols) * v.cw
	viewH := float64(v.rows) * v.ch

	focus := snap.Camera.Add(core.V(r.cfg.World.ViewportW/2, r.cfg.World.ViewportH/2))
	v.ox = fitAxis(focus.X-viewW/2, viewW, mapW)
	v.oy = fitAxis(focus.Y-viewH/2, viewH, mapH)

	// Heavy shake nudges the view by one cell.
	if snap.Shake > 6 {
		if snap.Tick%2 == 0 {
			v.ox += v.cw
		} else {
			v.ox -= v.cw
		}
	}
	return v
}

func fitAxis(origin, view, size float64) float64 {
	if view >= size {
		return (size - view) / 2
	}
	return core.ClampF(origin, 0, size-view)
}

// Draw renders the whole frame: map, entities, HUD, minimap and overlays.
func (r *Renderer) Draw(s *core.Screen, snap *twinblade.Snapshot, floaters []Floater) {
	s.Clear()
	if snap.TileSize <= 0 || len(snap.Tiles) == 0 || len(snap.Tiles[0]) == 0 {
		return
	}

	v := r.viewportFor(s, snap)
	r.drawTiles(s, snap, v)
	r.drawGhosts(s, snap, v)
	r.drawPickups(s, snap, v)
	r.drawProjectiles(s, snap, v)
	r.drawEnemies(s, snap, v)
	r.drawParticles(s, snap, v)
	r.drawPlayer(s, snap, v)
	r.drawFloaters(s, snap, v, floaters)
	r.drawHUD(s, snap)
	r.drawMinimap(s, snap)
	r.drawOverlay(s, snap)
}

func revealed(snap *twinblade.Snapshot, tx, ty int) bool {
	if ty < 0 || ty >= len(snap.Fog) || tx < 0 || tx >= len(snap.Fog[ty]) {
		return false
	}
	return snap.Fog[ty][tx]
}

// visible reports whether a world position lies on a revealed tile.
func visible(snap *twinblade.Snapshot, p core.Vec2) bool {
	tx := int(math.Floor(p.X / snap.TileSize))
	ty := int(math.Floor(p.Y / snap.TileSize))
	return revealed(snap, tx, ty)
}

// tileGlyph returns the rune for one half of a tile.
func tileGlyph(t level.Tile, left bool) (rune, core.Color) {
	switch t {
	case level.TileWall:
		return '█', core.ColorGray
	case level.TileEmpty:
		return '░', core.ColorBlue
	case level.TileDoor:
		return '▒', core.ColorYellow
	case level.TileSwitch:
		if left {
			return '▪', core.ColorMagenta
		}
	case level.TileHeart:
		if left {
			return '♥', core.ColorBrightRed
		}
	case level.TileGoal:
		return '◎', core.ColorGold
	default:
		if left {
			return '·', core.ColorDarkGray
		}
	}
	return ' ', core.ColorDefault
}

func (r *Renderer) drawTiles(s *core.Screen, snap *twinblade.Snapshot, v viewport) {
	ts := snap.TileSize
	for y := range v.rows {
		wy := v.oy + (float64(y)+0.5)*v.ch
		ty := int(math.Floor(wy / ts))
		for x := range v.cols {
			wx := v.ox + (float64(x)+0.5)*v.cw
			tx := int(math.Floor(wx / ts))
			if ty < 0 || ty >= len(snap.Tiles) || tx < 0 || tx >= len(snap.Tiles[ty]) {
				continue
			}
			if !revealed(snap, tx, ty) {
				continue
			}
			left := wx-float64(tx)*ts < ts/2
			ch, c := tileGlyph(snap.Tiles[ty][tx], left)
			s.Set(x, y+hudRows, ch, c)
		}
	}
}

// characterColor mirrors the in-game palette.
func characterColor(c twinblade.Character) core.Color {
	if c == twinblade.Zainab {
		return core.ColorCyan
	}
	return core.ColorOrange
}

func (r *Renderer) drawGhosts(s *core.Screen, snap *twinblade.Snapshot, v viewport) {
	off := snap.Player.Center.Sub(snap.Player.Pos)
	for _, g := range snap.Ghosts {
		if x, y, ok := v.cell(g.Pos.Add(off)); ok {
			s.Set(x, y, '░', characterColor(g.Character))
		}
	}
}

func (r *Renderer) drawPickups(s *core.Screen, snap *twinblade.Snapshot, v viewport) {
	for i := range snap.Pickups {
		p := &snap.Pickups[i]
		c := p.Center()
		if !p.Active || !visible(snap, c) {
			continue
		}
		if x, y, ok := v.cell(c); ok {
			s.Set(x, y, '◆', core.ColorBrightCyan)
		}
	}
}

func (r *Renderer) drawProjectiles(s *core.Screen, snap *twinblade.Snapshot, v viewport) {
	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		if !p.Active {
			continue
		}
		color := core.ColorCyan
		if p.Owner == twinblade.OwnerEnemy {
			color = core.ColorBrightRed
		}
		half := core.V(p.Size/2, p.Size/2)
		for _, pt := range p.Trail.Points() {
			if x, y, ok := v.cell(pt.Add(half)); ok {
				s.Set(x, y, '·', color)
			}
		}
		if x, y, ok := v.cell(p.Rect().Center()); ok {
			s.Set(x, y, '•', color)
		}
	}
}

func enemyGlyph(e twinblade.EnemyView) (rune, core.Color) {
	ch, c := 'c', core.ColorRed
	switch e.Kind {
	case twinblade.Turret:
		ch, c = 'T', core.ColorMagenta
	case twinblade.Dasher:
		ch, c = 'd', core.ColorYellow
		if e.Charging {
			ch, c = 'D', core.ColorBrightYellow
		}
	case twinblade.Tank:
		ch, c = 'H', core.ColorBrightRed
	case twinblade.Slimer:
		ch, c = 's', core.ColorBrightGreen
	}
	if e.Flashing {
		c = core.ColorBrightWhite
	}
	return ch, c
}

func (r *Renderer) drawEnemies(s *core.Screen, snap *twinblade.Snapshot, v viewport) {
	for _, e := range snap.Enemies {
		c := core.Square(e.Pos, e.Size).Center()
		if !e.Active || !visible(snap, c) {
			continue
		}
		ch, color := enemyGlyph(e)
		x, y, ok := v.cell(c)
		if !ok {
			continue
		}
		s.Set(x, y, ch, color)
		// Bodies wider than a cell get a second glyph.
		if e.Size > v.cw*1.5 {
			s.Set(x+1, y, ch, color)
		}
	}
}

func particleRune(p *twinblade.Particle) rune {
	switch p.Kind {
	case twinblade.ParticleRing:
		return 'o'
	case twinblade.ParticleShockwave:
		return 'O'
	case twinblade.ParticleSlash:
		return '/'
	}
	if p.Fade() > 0.5 {
		return '*'
	}
	return '.'
}

func (r *Renderer) drawParticles(s *core.Screen, snap *twinblade.Snapshot, v viewport) {
	for i := range snap.Particles {
		p := &snap.Particles[i]
		if !visible(snap, p.Pos) {
			continue
		}
		ch := particleRune(p)
		if p.Kind == twinblade.ParticleRing || p.Kind == twinblade.ParticleShockwave {
			r.drawCircle(s, v, p.Pos, p.Radius(), ch, p.Color)
			continue
		}
		if x, y, ok := v.cell(p.Pos); ok {
			s.Set(x, y, ch, p.Color)
		}
	}
}

// drawCircle plots eight points of a circle.
func (r *Renderer) drawCircle(s *core.Screen, v viewport, c core.Vec2, radius float64, ch rune, color core.Color) {
	for i := range 8 {
		pt := c.Add(core.FromAngle(float64(i)*math.Pi/4, radius))
		if x, y, ok := v.cell(pt); ok {
			s.Set(x, y, ch, color)
		}
	}
}

func (r *Renderer) drawPlayer(s *core.Screen, snap *twinblade.Snapshot, v viewport) {
	p := snap.Player
	if p.Blinking && (snap.Tick/4)%2 == 1 {
		return
	}

	color := characterColor(p.Character)
	switch {
	case p.State == twinblade.StateDodging:
		color = core.ColorBrightWhite
	case p.ChargeReady:
		color = core.ColorGold
	}

	switch p.State {
	case twinblade.StateAttackingNormal:
		tip := p.Center.Add(p.Facing.Vec().Scale(r.cfg.Combat.MeleeReach))
		if x, y, ok := v.cell(tip); ok {
			s.Set(x, y, '*', core.ColorBrightWhite)
		}
	case twinblade.StateAttackingCharged:
		r.drawCircle(s, v, p.Center, r.cfg.Combat.ChargedRadius, '*', core.ColorOrange)
	}

	if x, y, ok := v.cell(p.Center); ok {
		s.Set(x, y, '@', color)
	}
}

func (r *Renderer) drawFloaters(s *core.Screen, snap *twinblade.Snapshot, v viewport, floaters []Floater) {
	for _, f := range floaters {
		x, y, ok := v.cell(f.Pos)
		if !ok {
			continue
		}
		color := core.ColorBrightYellow
		if strings.HasSuffix(f.Text, "!") {
			color = core.ColorBrightMagenta
		}
		s.DrawText(x-len([]rune(f.Text))/2, y, f.Text, color)
	}
}

// drawHUD writes the status line: level, health, score, character, charge.
func (r *Renderer) drawHUD(s *core.Screen, snap *twinblade.Snapshot) {
	x := 0
	put := func(text string, c core.Color) {
		s.DrawText(x, 0, text, c)
		x += len([]rune(text))
	}

	put(" "+snap.LevelName+" ", core.ColorBrightWhite)
	put("│ ", core.ColorDarkGray)

	p := snap.Player
	if p.MaxHealth <= 12 {
		put(strings.Repeat("♥", max(0, p.Health)), core.ColorBrightRed)
		put(strings.Repeat("♡", max(0, p.MaxHealth-p.Health)), core.ColorDarkGray)
	} else {
		put(fmt.Sprintf("♥ %d/%d", p.Health, p.MaxHealth), core.ColorBrightRed)
	}
	put(" │ ", core.ColorDarkGray)

	put(fmt.Sprintf("%06d", snap.Score), core.ColorGold)
	put(" │ ", core.ColorDarkGray)

	put(strings.ToUpper(p.Character.String()), characterColor(p.Character))
	if p.Slowed {
		put(" SLOW", core.ColorBrightGreen)
	}

	if !p.Character.Ranged() && p.ChargeTimer > 0 {
		put(" ", core.ColorDefault)
		put(chargeBar(p.ChargeTimer, r.cfg.Player.ChargeThreshold, 8), chargeColor(p.ChargeReady))
	}
}

func chargeColor(ready bool) core.Color {
	if ready {
		return core.ColorGold
	}
	return core.ColorOrange
}

// chargeBar draws a fixed-width meter for a charge in progress.
func chargeBar(timer, threshold, width int) string {
	if threshold <= 0 || width <= 0 {
		return ""
	}
	filled := core.Clamp(timer*width/threshold, 0, width)
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}

// drawMinimap shows the revealed map in the top-right corner, one cell per
// tile column and per two tile rows. Skipped on small terminals.
func (r *Renderer) drawMinimap(s *core.Screen, snap *twinblade.Snapshot) {
	tw, th := len(snap.Tiles[0]), len(snap.Tiles)
	mw, mh := tw, (th+1)/2
	if s.Width() < (mw+2)*3 || s.Height() < mh+hudRows+8 {
		return
	}

	left := s.Width() - mw - 2
	top := hudRows
	s.DrawBox(left, top, mw+2, mh+2, core.ColorDarkGray)

	for my := range mh {
		for mx := range mw {
			ch, c := ' ', core.ColorDefault
			for _, ty := range []int{my * 2, my*2 + 1} {
				if ty >= th || !revealed(snap, mx, ty) {
					continue
				}
				switch snap.Tiles[ty][mx] {
				case level.TileWall:
					ch, c = '▪', core.ColorGray
				case level.TileGoal:
					ch, c = '◎', core.ColorGold
				case level.TileEmpty:
					if ch == ' ' {
						ch, c = '░', core.ColorBlue
					}
				default:
					if ch == ' ' || ch == '░' {
						ch, c = '·', core.ColorDarkGray
					}
				}
			}
			s.Set(left+1+mx, top+1+my, ch, c)
		}
	}

	ts := snap.TileSize
	mark := func(p core.Vec2, ch rune, c core.Color) {
		tx := int(math.Floor(p.X / ts))
		ty := int(math.Floor(p.Y / ts))
		if tx < 0 || tx >= tw || ty < 0 || ty >= th {
			return
		}
		s.Set(left+1+tx, top+1+ty/2, ch, c)
	}
	for _, e := range snap.Enemies {
		c := core.Square(e.Pos, e.Size).Center()
		if e.Active && visible(snap, c) {
			mark(c, '•', core.ColorRed)
		}
	}
	mark(snap.Player.Center, '@', core.ColorBrightWhite)
}

// drawOverlay boxes the pause and end-of-session messages.
func (r *Renderer) drawOverlay(s *core.Screen, snap *twinblade.Snapshot) {
	var lines []string
	color := core.ColorBrightWhite
	switch {
	case snap.Status == twinblade.StatusVictory:
		color = core.ColorGold
		lines = []string{"VICTORY", fmt.Sprintf("Score %d", snap.Score)}
		if snap.LevelIndex+1 < registry.Count() {
			lines = append(lines, "enter: next level   r: replay")
		} else {
			lines = append(lines, "Campaign complete   r: replay")
		}
	case snap.Status == twinblade.StatusDefeat:
		color = core.ColorBrightRed
		lines = []string{"DEFEATED", fmt.Sprintf("Score %d", snap.Score), "r: try again   q: quit"}
	case snap.Paused:
		lines = []string{"PAUSED", "p: resume"}
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 6
	h := len(lines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	for j := range h {
		for i := range w {
			s.Set(x+i, y+j, ' ', core.ColorDefault)
		}
	}
	s.DrawBox(x, y, w, h, color)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		s.DrawTextCentered(y+1+i, l, c)
	}
}
