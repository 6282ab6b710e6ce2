package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Alien is a single member of the fleet.
type Alien struct {
	x    float64
	rect core.Rect
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(s *Settings, x, y int) *Alien {
	cfg := s.Config().Alien
	return &Alien{
		x:    float64(x),
		rect: core.NewRect(x, y, cfg.Width, cfg.Height),
	}
}

// Update moves the alien horizontally by speed in the given direction.
func (a *Alien) Update(speed float64, direction int) {
	a.x += speed * float64(direction)
	a.rect.X = core.Round(a.x)
}

// CheckEdges reports whether the alien touches either side of the world.
func (a *Alien) CheckEdges(worldW int) bool {
	return a.rect.Right() >= worldW || a.rect.X <= 0
}

// Drop moves the alien down by dy.
func (a *Alien) Drop(dy int) {
	a.rect.Y += dy
}

// Rect returns the alien's bounding box.
func (a *Alien) Rect() core.Rect { return a.rect }
