package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Settings holds the static configuration of a game plus the dynamic values
// that are reset every new game and scaled on every cleared wave.
type Settings struct {
	cfg config.InvasionConfig

	// Dynamic settings
	shipSpeed      float64
	bulletSpeed    float64
	alienSpeed     float64
	fleetDirection int // +1 right, -1 left
	alienPoints    int
}

// NewSettings creates settings from a configuration with dynamic values reset.
func NewSettings(cfg config.InvasionConfig) *Settings {
	s := &Settings{cfg: cfg}
	s.ResetDynamic()
	return s
}

// ResetDynamic restores the dynamic settings to their configured initial values.
func (s *Settings) ResetDynamic() {
	s.shipSpeed = s.cfg.Ship.Speed
	s.bulletSpeed = s.cfg.Bullet.Speed
	s.alienSpeed = s.cfg.Alien.Speed
	s.fleetDirection = 1
	s.alienPoints = s.cfg.Alien.Points
}

// IncreaseSpeed scales the speeds and the alien point value for the next wave.
func (s *Settings) IncreaseSpeed() {
	scale := s.cfg.Scaling.Speedup
	s.shipSpeed *= scale
	s.bulletSpeed *= scale
	s.alienSpeed *= scale

	s.alienPoints = int(float64(s.alienPoints) * s.cfg.Scaling.Score)
}

// reverseFleet flips the horizontal direction of the fleet.
func (s *Settings) reverseFleet() {
	s.fleetDirection = -s.fleetDirection
}

// Config returns the static configuration.
func (s *Settings) Config() config.InvasionConfig { return s.cfg }

func (s *Settings) ShipSpeed() float64   { return s.shipSpeed }
func (s *Settings) BulletSpeed() float64 { return s.bulletSpeed }
func (s *Settings) AlienSpeed() float64  { return s.alienSpeed }
func (s *Settings) FleetDirection() int  { return s.fleetDirection }
func (s *Settings) AlienPoints() int     { return s.alienPoints }

// World returns the playfield rectangle in world units.
func (s *Settings) World() core.Rect {
	return core.NewRect(0, 0, s.cfg.Screen.Width, s.cfg.Screen.Height)
}

// BulletsAllowed returns the maximum number of live bullets.
func (s *Settings) BulletsAllowed() int { return s.cfg.Bullet.Allowed }

// ShipLimit returns the number of ships per game.
func (s *Settings) ShipLimit() int { return s.cfg.Ship.Limit }

// ScalingFixed reports whether waves keep the starting speeds and points.
func (s *Settings) ScalingFixed() bool { return s.cfg.Scaling.Fixed }

// FleetDropSpeed returns how far the fleet drops on each edge hit.
func (s *Settings) FleetDropSpeed() int { return s.cfg.Alien.FleetDropSpeed }
