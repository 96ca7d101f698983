package garden

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/entity"
	"github.com/vovakirdan/space-garden/internal/garden/sim"
)

// Screen layout: HUD, sky, ship, footer.
const (
	hudRows    = 1
	SkyRows    = 2
	footerRows = 1
	oxygenBar  = 20
	litFrames  = 12
)

// RequiredSize is the smallest screen that fits the ship.
func RequiredSize(l sim.Layout) (w, h int) {
	return l.Cols * 2, hudRows + SkyRows + l.Rows + footerRows
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall(dst.Width(), dst.Height()) {
		// Hold the simulation until the player can see it again.
		if !g.paused && !g.world.GameOver {
			g.togglePause()
		}
		w, h := RequiredSize(g.engine.Layout())
		drawOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", w, h))
		return
	}

	r := &renderer{
		dst: dst,
		gl:  g.glyphs,
		cfg: g.engine.Config(),
		w:   g.world,
	}
	r.draw(g.Title())

	switch {
	case g.world.GameOver:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Cause: %s. Press R to restart", g.world.Cause()))
	case g.paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderer draws one world snapshot.
type renderer struct {
	dst    *core.Screen
	gl     *Glyphs
	cfg    config.GardenConfig
	w      *sim.World
	ox, oy int // Screen cell of ship tile (0,0)
}

func (r *renderer) draw(title string) {
	dx, dy := r.w.Shake.Offset(r.w.Frame)
	r.ox, r.oy = dx, hudRows+SkyRows+dy

	r.drawHUD(title)
	r.drawSky()
	r.drawMap()
	r.drawPlants()
	r.drawActors()
	r.drawDebug()
	r.drawFooter()
}

// put draws a glyph at ship tile (cx, cy).
func (r *renderer) put(cx, cy int, g Glyph) {
	r.putAt(r.ox+cx*2, r.oy+cy, g)
}

func (r *renderer) putAt(x, y int, g Glyph) {
	if g.Wide() {
		r.dst.SetWide(x, y, g.Rune, g.Color)
		return
	}
	r.dst.SetColored(x, y, g.Rune, g.Color)
	r.dst.SetColored(x+1, y, g.Fill, g.Color)
}

// tileOf maps a pixel position to its tile.
func (r *renderer) tileOf(p core.Coord) (int, int) {
	t := r.w.TileSize
	return int(math.Floor(p.X / t)), int(math.Floor(p.Y / t))
}

func (r *renderer) drawHUD(title string) {
	w := r.w
	secs := w.Elapsed() / uint64(r.cfg.World.FPS)
	hud := fmt.Sprintf(" %s  Score: %d  Fruit: %d  Crew: %d  Time: %02d:%02d",
		title, w.Status.Score, w.Status.Harvested, w.LivingCrew(), secs/60, secs%60)
	r.dst.DrawText(0, 0, hud, core.ColorBrightGreen)
}

// skyRow maps a sky y (negative) to a screen row.
func (r *renderer) skyRow(y float64) (int, bool) {
	sky := r.w.SkyHeight()
	if y < -sky || y >= 0 {
		return 0, false
	}
	return hudRows + int((y+sky)/(sky/SkyRows)), true
}

func (r *renderer) drawSky() {
	w := r.w
	for _, d := range w.Drifters {
		row, ok := r.skyRow(d.Pos.Y)
		if !ok {
			continue
		}
		cx, _ := r.tileOf(d.Pos)
		g := r.gl.Planet
		switch d.Kind {
		case entity.DrifterMoon:
			g = r.gl.Moon
		case entity.DrifterStar:
			g = r.gl.Star
		}
		r.putAt(cx*2, row, g)
	}

	b := w.BlackHole
	if !b.Present {
		return
	}
	row, ok := r.skyRow(b.Pos.Y)
	if !ok {
		return
	}
	cx, _ := r.tileOf(b.Pos)
	span := int(b.Radius / w.TileSize)
	for i := -span; i <= span; i++ {
		r.putAt((cx+i)*2, row, r.gl.BlackHole)
	}
}

func (r *renderer) drawMap() {
	w := r.w
	for cy, row := range r.cfg.Layout {
		for cx, ch := range []rune(row) {
			r.put(cx, cy, r.staticGlyph(ch, cx, cy))
		}
	}
	if !w.Can.Held {
		cx, cy := r.tileOf(w.Can.Rect().Center())
		r.put(cx, cy, r.gl.Can)
	}
}

// staticGlyph picks the glyph of a map tile, reflecting doors and buttons.
func (r *renderer) staticGlyph(ch rune, cx, cy int) Glyph {
	w := r.w
	switch ch {
	case '#':
		return r.gl.Wall
	case '1', '2', '3':
		return r.windowGlyph(int(ch-'1'), cx)
	case '=':
		return r.gl.Railing
	case 'H':
		return r.gl.Ladder
	case 'G', 'p':
		return r.gl.Bed
	case 'A':
		if w.Airlock.DoorOffset(w.Frame, r.cfg.Airlock) < r.cfg.Airlock.MaxDoorOffset/2 {
			return r.gl.Door
		}
		return r.gl.DoorOpen
	case 'K':
		return r.gl.Vacuum
	case 'B':
		if w.AirlockPanel.Lit(w.Frame, litFrames) {
			return r.gl.ButtonLit
		}
		return r.gl.Button
	case 'S':
		if w.ShieldPanel.Flashing(w.Frame) {
			return r.gl.ShieldAlarm
		}
		return r.gl.Shield
	case 'P':
		if w.Portal.Open {
			return r.gl.Portal
		}
		return r.gl.Floor
	default:
		return r.gl.Floor
	}
}

// windowGlyph shows the slat covering window tile cx.
func (r *renderer) windowGlyph(i, cx int) Glyph {
	d := r.w.Shields[i]
	start, _ := r.tileOf(d.Window.A)
	slat := min(max(cx-start, 0), r.cfg.Shield.Slats-1)
	if d.SlatCover(slat, r.w.Frame, r.cfg.Shield) >= 0.5 {
		return r.gl.WindowShut
	}
	return r.gl.Window
}

func (r *renderer) drawPlants() {
	for _, p := range r.w.Plants {
		cx, cy := r.tileOf(p.Pos)
		r.put(cx, cy, r.plantGlyph(p))
	}
}

func (r *renderer) plantGlyph(p entity.Plant) Glyph {
	switch {
	case !p.Alive:
		return r.gl.Withered
	case p.RipeFruit(r.cfg.Plant) > 0:
		return r.gl.Fruiting
	case p.Size >= 0.5:
		return r.gl.Plant
	default:
		return r.gl.Seedling
	}
}

func (r *renderer) drawActors() {
	w := r.w
	for _, c := range w.Cats {
		cx, cy := r.tileOf(c.CollisionRect().Center())
		r.put(cx, cy, r.gl.Cat)
	}
	for _, n := range w.NPCs {
		if n.Ejected {
			continue
		}
		cx, cy := r.tileOf(n.Center())
		r.put(cx, cy, r.crewGlyph(n))
	}

	g := r.gl.Gardener
	if w.Gardener.Dead() {
		g = r.gl.GardenerDead
	}
	cx, cy := r.tileOf(w.Gardener.CollisionRect().Center())
	r.put(cx, cy, g)
}

func (r *renderer) crewGlyph(n entity.NPC) Glyph {
	if n.Death != nil {
		return r.gl.CrewDead
	}
	switch n.Mental {
	case entity.MentalScared:
		return r.gl.CrewScared
	case entity.MentalFrazzled:
		return r.gl.CrewFrazzled
	default:
		return r.gl.Crew
	}
}

// drawDebug marks collision and interaction rectangles when enabled.
func (r *renderer) drawDebug() {
	w := r.w
	dbg := r.cfg.Debug
	if dbg.ShowCollisionRects {
		r.mark(w.Gardener.CollisionRect())
		for _, n := range w.NPCs {
			if n.Active() {
				r.mark(n.CollisionRect())
			}
		}
		for _, c := range w.Cats {
			r.mark(c.CollisionRect())
		}
	}
	if dbg.ShowInteractionRects {
		r.mark(w.Gardener.InteractionRect(r.cfg.Gardener.Reach))
	}
}

// mark flags the second column of every tile rect touches.
func (r *renderer) mark(rect core.Rect) {
	x0, y0 := r.tileOf(rect.A)
	x1, y1 := r.tileOf(rect.B.Sub(core.C(0.001, 0.001)))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			r.dst.SetColored(r.ox+cx*2+1, r.oy+cy, r.gl.Debug.Rune, r.gl.Debug.Color)
		}
	}
}

func (r *renderer) drawFooter() {
	w := r.w
	y := r.dst.Height() - 1
	capacity := r.cfg.Oxygen.Capacity
	filled := 0
	if capacity > 0 {
		filled = core.Clamp(int(w.Oxygen/capacity*oxygenBar), 0, oxygenBar)
	}
	color := core.ColorCyan
	if w.Oxygen < capacity*0.2 {
		color = core.ColorBrightRed
	}
	bar := fmt.Sprintf(" O2 [%s%s] %5.0f", strings.Repeat("#", filled), strings.Repeat(".", oxygenBar-filled), w.Oxygen)
	r.dst.DrawText(0, y, bar, color)

	if msg := w.Status.Visible(w.Frame, sim.MessageFrames); msg != "" {
		r.dst.DrawText(len(bar)+2, y, msg, core.ColorWhite)
	}
}

// drawOverlay draws a centred two-line box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 6
	boxH := 5
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	for j := y; j < y+boxH; j++ {
		for i := x; i < x+boxW; i++ {
			dst.Set(i, j, ' ')
		}
	}
	dst.DrawBox(x, y, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(y+3, line2, core.ColorWhite)
}
