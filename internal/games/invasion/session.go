package invasion

import "github.com/vovakirdan/alien-invasion/internal/config"

// Session is everything that changes while playing: settings, stats and the
// entity collections. The Game controller owns exactly one.
type Session struct {
	Settings *Settings
	Stats    Stats
	Ship     *Ship
	Bullets  []*Bullet
	Aliens   []*Alien
}

// NewSession creates an idle session with a fleet already in place.
func NewSession(cfg config.InvasionConfig) *Session {
	settings := NewSettings(cfg)
	s := &Session{
		Settings: settings,
		Stats:    NewStats(settings.ShipLimit()),
		Ship:     NewShip(settings),
	}
	s.Aliens = BuildFleet(settings)
	return s
}

// StartGame resets settings and stats and lays out a fresh wave.
func (s *Session) StartGame() {
	s.Settings.ResetDynamic()
	s.Stats.Reset(s.Settings.ShipLimit())
	s.Stats.Active = true
	s.Stats.PointerVisible = false
	s.resetField()
}

// resetField clears bullets, rebuilds the fleet and recenters the ship.
func (s *Session) resetField() {
	s.Bullets = s.Bullets[:0]
	s.Aliens = BuildFleet(s.Settings)
	s.Ship.Center()
}

// FireBullet adds a bullet if fewer than the allowed number are alive.
func (s *Session) FireBullet() bool {
	if len(s.Bullets) >= s.Settings.BulletsAllowed() {
		return false
	}
	s.Bullets = append(s.Bullets, NewBullet(s.Settings, s.Ship))
	return true
}

// UpdateBullets moves bullets up and drops those that left the world.
func (s *Session) UpdateBullets() {
	speed := s.Settings.BulletSpeed()
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Update(speed)
		if !b.Gone() {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

// CheckBulletAlienCollisions removes every alien hit by a bullet and every
// bullet that hit something, and returns the number of aliens destroyed.
// An alien destroyed by an earlier bullet is not credited again.
func (s *Session) CheckBulletAlienCollisions() int {
	points := s.Settings.AlienPoints()
	destroyed := 0

	keptBullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		hits := 0
		keptAliens := s.Aliens[:0]
		for _, a := range s.Aliens {
			if b.Rect().Intersects(a.Rect()) {
				hits++
				continue
			}
			keptAliens = append(keptAliens, a)
		}
		s.Aliens = keptAliens

		if hits == 0 {
			keptBullets = append(keptBullets, b)
			continue
		}
		destroyed += hits
		s.Stats.AddScore(points * hits)
	}
	s.Bullets = keptBullets
	return destroyed
}

// ClearWave starts the next wave once the fleet is gone. Speeds and points
// only grow when scaling is not fixed.
func (s *Session) ClearWave() {
	s.Bullets = s.Bullets[:0]
	s.Aliens = BuildFleet(s.Settings)
	if !s.Settings.ScalingFixed() {
		s.Settings.IncreaseSpeed()
	}
	s.Stats.Level++
}

// UpdateAliens handles the fleet edge check and moves every alien.
func (s *Session) UpdateAliens() {
	checkFleetEdges(s.Settings, s.Aliens)
	speed, dir := s.Settings.AlienSpeed(), s.Settings.FleetDirection()
	for _, a := range s.Aliens {
		a.Update(speed, dir)
	}
}

// ShipHit reports whether any alien touches the ship or reached the bottom.
func (s *Session) ShipHit() bool {
	ship := s.Ship.Rect()
	bottom := s.Settings.World().Bottom()
	for _, a := range s.Aliens {
		r := a.Rect()
		if r.Intersects(ship) || r.Bottom() >= bottom {
			return true
		}
	}
	return false
}

// LoseShip takes one ship away. When none are left the game ends and the
// pointer comes back; otherwise the field is reset for the next ship.
// It returns true if the game is over.
func (s *Session) LoseShip() bool {
	if s.Stats.ShipsLeft > 0 {
		s.Stats.ShipsLeft--
	}
	if s.Stats.ShipsLeft == 0 {
		s.Stats.Active = false
		s.Stats.PointerVisible = true
		return true
	}
	s.resetField()
	return false
}
