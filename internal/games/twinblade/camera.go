package twinblade

import "github.com/vovakirdan/tui-twinblade/internal/core"

// cameraTarget is the offset that centers the viewport on the player.
func (g *Game) cameraTarget() core.Vec2 {
	w := g.cfg.World
	c := g.playerCenter()
	return core.V(c.X-w.ViewportW/2, c.Y-w.ViewportH/2)
}

// clampCamera keeps the viewport inside the map. A map smaller than the
// viewport pins the camera to the origin.
func (g *Game) clampCamera() {
	w := g.cfg.World
	size := g.grid.PixelSize()
	g.camera.X = core.ClampF(g.camera.X, 0, max(0, size.X-w.ViewportW))
	g.camera.Y = core.ClampF(g.camera.Y, 0, max(0, size.Y-w.ViewportH))
}

// stepCamera eases the camera toward the player.
func (g *Game) stepCamera() {
	t := g.cameraTarget()
	lerp := g.cfg.World.CameraLerp
	g.camera = g.camera.Add(t.Sub(g.camera).Scale(lerp))
	g.clampCamera()
}
