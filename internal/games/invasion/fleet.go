package invasion

// FleetLayout returns how many alien columns and rows fit in the world.
// Aliens are spaced one alien width apart with a one-alien margin at the
// sides and top; the bottom keeps room for the ship and eight alien heights.
// Non-positive space yields zero.
func FleetLayout(s *Settings) (cols, rows int) {
	cfg := s.Config()
	aw, ah := cfg.Alien.Width, cfg.Alien.Height
	if aw <= 0 || ah <= 0 {
		return 0, 0
	}

	spaceX := cfg.Screen.Width - 2*aw
	spaceY := cfg.Screen.Height - 8*ah - cfg.Ship.Height
	if spaceX > 0 {
		cols = spaceX / (2 * aw)
	}
	if spaceY > 0 {
		rows = spaceY / (2 * ah)
	}
	if cols == 0 || rows == 0 {
		return 0, 0
	}
	return cols, rows
}

// BuildFleet creates a full grid of aliens in row-major order.
func BuildFleet(s *Settings) []*Alien {
	cols, rows := FleetLayout(s)
	cfg := s.Config().Alien
	aw, ah := cfg.Width, cfg.Height

	aliens := make([]*Alien, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			aliens = append(aliens, NewAlien(s, aw+2*aw*col, ah+2*ah*row))
		}
	}
	return aliens
}

// checkFleetEdges drops the whole fleet and reverses its direction if any
// alien touches a side. It acts at most once per call.
func checkFleetEdges(s *Settings, aliens []*Alien) bool {
	worldW := s.World().W
	for _, a := range aliens {
		if a.CheckEdges(worldW) {
			for _, other := range aliens {
				other.Drop(s.FleetDropSpeed())
			}
			s.reverseFleet()
			return true
		}
	}
	return false
}
