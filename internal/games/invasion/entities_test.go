package invasion

import (
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestSettingsResetDynamic(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	s.IncreaseSpeed()
	s.reverseFleet()
	s.ResetDynamic()

	if s.ShipSpeed() != 1.5 || s.AlienSpeed() != 1.0 || s.BulletSpeed() != 3.0 {
		t.Errorf("speeds not reset: ship=%g alien=%g bullet=%g", s.ShipSpeed(), s.AlienSpeed(), s.BulletSpeed())
	}
	if s.FleetDirection() != 1 {
		t.Errorf("direction = %d, expected 1", s.FleetDirection())
	}
	if s.AlienPoints() != 50 {
		t.Errorf("points = %d, expected 50", s.AlienPoints())
	}
}

func TestSettingsIncreaseSpeed(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())

	wantPoints := []int{75, 112, 168, 252}
	for i := 0; i < 10; i++ {
		ship, alien, bullet, points := s.ShipSpeed(), s.AlienSpeed(), s.BulletSpeed(), s.AlienPoints()
		s.IncreaseSpeed()

		if s.ShipSpeed() <= ship || s.AlienSpeed() <= alien || s.BulletSpeed() <= bullet {
			t.Fatalf("wave %d: speeds should strictly increase", i+1)
		}
		if s.AlienPoints() < points {
			t.Fatalf("wave %d: points decreased from %d to %d", i+1, points, s.AlienPoints())
		}
		if i < len(wantPoints) && s.AlienPoints() != wantPoints[i] {
			t.Errorf("wave %d: points = %d, expected %d", i+1, s.AlienPoints(), wantPoints[i])
		}
	}
}

func TestShipMovementClamped(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	ship := NewShip(s)

	if r := ship.Rect(); r.X != 570 || r.Bottom() != 800 {
		t.Fatalf("ship should start centered on the bottom edge, got %+v", r)
	}

	ship.MovingLeft = true
	for i := 0; i < 1000; i++ {
		ship.Update(1.5)
	}
	if ship.Rect().X != 0 || ship.X() != 0 {
		t.Errorf("ship should stop at the left edge, x = %g", ship.X())
	}

	ship.MovingLeft = false
	ship.MovingRight = true
	for i := 0; i < 1000; i++ {
		ship.Update(1.5)
	}
	if ship.Rect().Right() != 1200 {
		t.Errorf("ship should stop at the right edge, right = %d", ship.Rect().Right())
	}

	// Both intents cancel out
	ship.Center()
	ship.MovingLeft = true
	ship.Update(1.5)
	if ship.X() != 570 {
		t.Errorf("opposite intents should cancel, x = %g", ship.X())
	}
}

func TestBulletFromShip(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	ship := NewShip(s)
	b := NewBullet(s, ship)

	if b.Rect() != core.NewRect(599, 752, 3, 15) {
		t.Errorf("bullet should start at the ship's nose, got %+v", b.Rect())
	}

	b.Update(3.3)
	if b.Rect().Y != 749 {
		t.Errorf("bullet y = %d, expected 749", b.Rect().Y)
	}
}

func TestBulletGone(t *testing.T) {
	tests := []struct {
		y    int
		gone bool
	}{
		{0, false},
		{-14, false},
		{-15, true},
		{-40, true},
	}

	for _, tc := range tests {
		b := &Bullet{y: float64(tc.y), rect: core.NewRect(0, tc.y, 3, 15)}
		if b.Gone() != tc.gone {
			t.Errorf("bullet at y=%d: Gone() = %v, expected %v", tc.y, b.Gone(), tc.gone)
		}
	}
}

func TestAlienCheckEdges(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())

	tests := []struct {
		x    int
		edge bool
	}{
		{0, true},
		{1, false},
		{600, false},
		{1139, false},
		{1140, true},
	}

	for _, tc := range tests {
		a := NewAlien(s, tc.x, 100)
		if a.CheckEdges(1200) != tc.edge {
			t.Errorf("alien at x=%d: CheckEdges = %v, expected %v", tc.x, !tc.edge, tc.edge)
		}
	}
}

func TestStatsHighScoreMonotonic(t *testing.T) {
	st := NewStats(3)
	st.AddScore(150)
	st.Reset(3)
	st.AddScore(50)

	if st.Score != 50 {
		t.Errorf("score = %d, expected 50", st.Score)
	}
	if st.HighScore != 150 {
		t.Errorf("high score = %d, expected 150", st.HighScore)
	}
	if st.Level != 1 || st.ShipsLeft != 3 {
		t.Errorf("reset should restore level and ships, got %+v", st)
	}
}
