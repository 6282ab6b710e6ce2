package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player's ship. It sits on the bottom edge of the world and
// only moves horizontally.
type Ship struct {
	x      float64
	rect   core.Rect
	worldW int

	// Movement intents, refreshed from input every tick
	MovingLeft  bool
	MovingRight bool
}

// NewShip creates a ship centered on the bottom edge of the world.
func NewShip(s *Settings) *Ship {
	cfg := s.Config()
	world := s.World()
	sh := &Ship{
		rect:   core.NewRect(0, world.Bottom()-cfg.Ship.Height, cfg.Ship.Width, cfg.Ship.Height),
		worldW: world.W,
	}
	sh.Center()
	return sh
}

// Center moves the ship back to the horizontal middle of the world.
func (sh *Ship) Center() {
	sh.x = float64(sh.worldW-sh.rect.W) / 2
	sh.rect.X = core.Round(sh.x)
}

// Update moves the ship by speed in the direction of its intents, keeping it
// inside [0, worldW].
func (sh *Ship) Update(speed float64) {
	if sh.MovingRight {
		sh.x += speed
	}
	if sh.MovingLeft {
		sh.x -= speed
	}
	sh.x = core.ClampF(sh.x, 0, float64(sh.worldW-sh.rect.W))
	sh.rect.X = core.Round(sh.x)
}

// X returns the precise horizontal position.
func (sh *Ship) X() float64 { return sh.x }

// Rect returns the ship's bounding box.
func (sh *Ship) Rect() core.Rect { return sh.rect }
