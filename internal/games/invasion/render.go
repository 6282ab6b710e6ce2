package invasion

import (
	"fmt"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Visual characters for rendering
const (
	ShipChar   = '█'
	AlienChar  = '▓'
	BulletChar = '┃'
)

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Viewport maps world units onto a grid of terminal cells.
type Viewport struct {
	world      core.Rect
	cols, rows int
}

// NewViewport creates a viewport showing world on a cols x rows grid.
func NewViewport(world core.Rect, cols, rows int) Viewport {
	return Viewport{world: world, cols: cols, rows: rows}
}

// ToCells converts a world rectangle to cells. Anything with a positive size
// covers at least one cell.
func (v Viewport) ToCells(r core.Rect) core.Rect {
	if v.world.W <= 0 || v.world.H <= 0 {
		return core.Rect{}
	}
	x0 := floorDiv((r.X-v.world.X)*v.cols, v.world.W)
	y0 := floorDiv((r.Y-v.world.Y)*v.rows, v.world.H)
	x1 := ceilDiv((r.Right()-v.world.X)*v.cols, v.world.W)
	y1 := ceilDiv((r.Bottom()-v.world.Y)*v.rows, v.world.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ToWorld converts a cell to the world point at its center. Cells outside
// the grid map to the nearest world edge.
func (v Viewport) ToWorld(cx, cy int) (int, int) {
	if v.cols <= 0 || v.rows <= 0 || v.world.W <= 0 || v.world.H <= 0 {
		return v.world.X, v.world.Y
	}
	x := v.world.X + (2*cx+1)*v.world.W/(2*v.cols)
	y := v.world.Y + (2*cy+1)*v.world.H/(2*v.rows)
	return core.Clamp(x, v.world.X, v.world.Right()-1), core.Clamp(y, v.world.Y, v.world.Bottom()-1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Render draws the current game state onto dst.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.Frame())
}

// RenderFrame draws a frame scaled to the size of dst.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if f.ScreenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Playfield cannot hold a fleet")
		return
	}

	vp := NewViewport(f.World, dst.Width(), dst.Height())

	for _, r := range f.Aliens {
		dst.DrawRect(vp.ToCells(r), AlienChar, core.ColorAlien)
	}
	// Bullets start inside the ship's cells, so they go on top
	dst.DrawRect(vp.ToCells(f.Ship), ShipChar, core.ColorShip)
	for _, r := range f.Bullets {
		dst.DrawRect(vp.ToCells(r), BulletChar, core.ColorBullet)
	}

	renderHUD(dst, f)

	if !f.Active {
		renderButton(dst, vp, f)
	}
	renderOverlay(dst, f)
}

// renderHUD draws ships left, high score, score and level.
func renderHUD(dst *core.Screen, f Frame) {
	ships := fmt.Sprintf("Ships: %d", f.ShipsLeft)
	dst.DrawText(1, 0, ships)

	high := fmt.Sprintf("High: %d", f.HighScore)
	dst.DrawTextCentered(0, high)

	score := fmt.Sprintf("Score: %d", f.Score)
	dst.DrawText(dst.Width()-len(score)-1, 0, score)

	level := fmt.Sprintf("Level: %d", f.Level)
	dst.DrawText(dst.Width()-len(level)-1, 1, level)
}

// renderButton draws the Play button with its label centered.
func renderButton(dst *core.Screen, vp Viewport, f Frame) {
	r := vp.ToCells(f.Button)
	dst.DrawRect(r, ' ', core.ColorButton)

	label := []rune(f.ButtonLabel)
	x := r.X + (r.W-len(label))/2
	y := r.Y + (r.H-1)/2
	dst.DrawTextColored(x, y, f.ButtonLabel, core.ColorButton)
}

// renderOverlay draws status messages over the playfield.
func renderOverlay(dst *core.Screen, f Frame) {
	mid := dst.Height() / 2
	switch {
	case !f.Active && f.Tick > 0 && f.ShipsLeft == 0:
		drawNotice(dst, mid-3, "GAME OVER")
	case f.Active && f.Paused:
		hint := "Press ESC to resume"
		w := core.Min(len(hint)+4, dst.Width())
		panel := core.NewRect((dst.Width()-w)/2, mid-1, w, 5)
		dst.DrawRect(panel, ' ', core.ColorNotice)
		dst.DrawBox(panel, core.ColorNotice)
		drawNotice(dst, mid, "PAUSED")
		drawNotice(dst, mid+2, hint)
	case f.Active && f.PauseRemaining > 0:
		drawNotice(dst, mid, "Ship lost!")
	}
}

func drawNotice(dst *core.Screen, y int, text string) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, core.ColorNotice)
}
