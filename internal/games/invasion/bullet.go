package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Bullet is a projectile fired straight up from the ship.
type Bullet struct {
	y    float64
	rect core.Rect
}

// NewBullet creates a bullet centered on the top edge of the ship.
func NewBullet(s *Settings, ship *Ship) *Bullet {
	cfg := s.Config().Bullet
	sr := ship.Rect()
	b := &Bullet{
		rect: core.NewRect(sr.CenterX()-cfg.Width/2, sr.Y, cfg.Width, cfg.Height),
	}
	b.y = float64(b.rect.Y)
	return b
}

// Update moves the bullet up by speed.
func (b *Bullet) Update(speed float64) {
	b.y -= speed
	b.rect.Y = core.Round(b.y)
}

// Gone reports whether the bullet has left the top of the world.
func (b *Bullet) Gone() bool {
	return b.rect.Bottom() <= 0
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() core.Rect { return b.rect }
