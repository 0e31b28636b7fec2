package skirmish

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skirmish/internal/config"
	"github.com/vovakirdan/skirmish/internal/core"
	"github.com/vovakirdan/skirmish/internal/sim"
)

// Visual characters for rendering
const (
	ProjectileChar = '•'
	WreckChar      = '✕'
)

// unitGlyphs are indexed by facing in 45 degree steps, counterclockwise
// from up (angle 0 is up, 90 is left).
var unitGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// unitGlyph returns the arrow for a facing angle in degrees.
func unitGlyph(angle float64) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return unitGlyphs[int(math.Round(a/45))%8]
}

// viewport lays the field out below the one-line HUD, inside a border.
func viewport(cfg config.SkirmishConfig, screenW, screenH int) core.Viewport {
	return core.Viewport{
		WorldW: cfg.World.Width,
		WorldH: cfg.World.Height,
		Area:   fieldBox(screenW, screenH).Inset(1),
	}
}

func fieldBox(screenW, screenH int) core.Rect {
	return core.NewRect(0, 1, screenW, core.Max(screenH-1, 0))
}

// spriteColors resolves the configured sprite colors once. Unknown color
// names fall back to the default color.
func spriteColors(cfg config.SkirmishConfig, logger *log.Logger) map[string]core.Color {
	colors := make(map[string]core.Color, len(cfg.Sprites))
	for sprite, name := range cfg.Sprites {
		c, ok := core.ParseColor(name)
		if !ok {
			logger.Warn("unknown sprite color", "sprite", sprite, "color", name)
		}
		colors[sprite] = c
	}
	return colors
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.match == nil {
		g.drawCenteredMessage(dst, "ERROR", errText(g.err))
		return
	}

	// The screen may have been resized since Reset.
	g.view = viewport(g.cfg, dst.Width(), dst.Height())
	dst.DrawBox(fieldBox(dst.Width(), dst.Height()), core.ColorGray)

	frame := g.match.World().Snapshot()
	// Player last so it is never hidden under a projectile.
	for i := len(frame.Poses) - 1; i >= 0; i-- {
		g.drawPose(dst, frame.Poses[i])
	}

	g.drawHUD(dst)

	switch {
	case g.err != nil:
		g.drawCenteredMessage(dst, "SIMULATION FAULT", errText(g.err))
	case g.match.Won():
		g.drawCenteredMessage(dst, "VICTORY", fmt.Sprintf("Score: %d  |  Press R to restart", g.match.Score()))
	case g.match.Over():
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.match.Score()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawPose(dst *core.Screen, p sim.Pose) {
	x, y, ok := g.view.ToCell(p.Position)
	if !ok {
		return
	}

	var r rune
	switch {
	case !p.Alive:
		r = WreckChar
	case p.Kind == sim.KindProjectile:
		r = ProjectileChar
	default:
		r = unitGlyph(p.Angle)
	}
	dst.SetColored(x, y, r, g.colors[p.Sprite])
}

func (g *Game) drawHUD(dst *core.Screen) {
	hp := 0
	if p, ok := g.match.World().Player(); ok {
		hp = core.Max(p.Health, 0)
	}
	id := g.match.ID.String()
	hud := fmt.Sprintf(" Wave: %d  Score: %d  HP: %d  Enemies: %d  Match: %s ",
		g.match.Wave(), g.match.Score(), hp, g.match.World().CountAlive(sim.KindAI), id[:8])
	dst.DrawText(1, 0, hud)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
