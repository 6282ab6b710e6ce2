package invasion

import (
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestFleetLayout(t *testing.T) {
	tests := []struct {
		name             string
		width, height    int
		wantCols, wantRs int
	}{
		{"default world", 1200, 800, 9, 2},
		{"wide world", 1920, 1080, 15, 4},
		{"exactly one column", 240, 800, 1, 2},
		{"too narrow", 239, 800, 0, 0},
		{"too short", 1200, 627, 0, 0},
		{"negative space", 50, 50, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultInvasionConfig()
			cfg.Screen.Width = tc.width
			cfg.Screen.Height = tc.height

			cols, rows := FleetLayout(NewSettings(cfg))
			if cols != tc.wantCols || rows != tc.wantRs {
				t.Errorf("FleetLayout(%dx%d) = %dx%d, expected %dx%d",
					tc.width, tc.height, cols, rows, tc.wantCols, tc.wantRs)
			}
		})
	}
}

func TestBuildFleetFitsWorld(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	cols, rows := FleetLayout(s)
	if cols < 1 || rows < 1 {
		t.Fatalf("default world should hold a fleet, got %dx%d", cols, rows)
	}

	aliens := BuildFleet(s)
	if len(aliens) != cols*rows {
		t.Fatalf("expected %d aliens, got %d", cols*rows, len(aliens))
	}

	cfg := s.Config()
	area := core.NewRect(0, 0, cfg.Screen.Width, cfg.Screen.Height-cfg.Ship.Height)
	for i, a := range aliens {
		if !a.Rect().Within(area) {
			t.Errorf("alien %d at %+v outside %+v", i, a.Rect(), area)
		}
	}

	// Row-major placement with one alien of spacing
	if got := aliens[1].Rect().X - aliens[0].Rect().X; got != 2*cfg.Alien.Width {
		t.Errorf("column spacing = %d, expected %d", got, 2*cfg.Alien.Width)
	}
	if got := aliens[cols].Rect().Y - aliens[0].Rect().Y; got != 2*cfg.Alien.Height {
		t.Errorf("row spacing = %d, expected %d", got, 2*cfg.Alien.Height)
	}
}

func TestBuildFleetEmpty(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	cfg.Screen.Width = 10
	cfg.Screen.Height = 10

	if aliens := BuildFleet(NewSettings(cfg)); len(aliens) != 0 {
		t.Errorf("expected empty fleet, got %d aliens", len(aliens))
	}
}

func TestFleetEdgeReversal(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	drop := s.FleetDropSpeed()

	// Right edge exactly at the world edge
	aliens := []*Alien{
		NewAlien(s, 1200-60, 100),
		NewAlien(s, 500, 200),
	}

	if !checkFleetEdges(s, aliens) {
		t.Fatal("alien touching the right edge should trigger a reversal")
	}
	if s.FleetDirection() != -1 {
		t.Errorf("direction = %d, expected -1", s.FleetDirection())
	}
	if aliens[0].Rect().Y != 100+drop || aliens[1].Rect().Y != 200+drop {
		t.Errorf("every alien should drop by %d, got y=%d and y=%d",
			drop, aliens[0].Rect().Y, aliens[1].Rect().Y)
	}
}

func TestFleetEdgeReversalOncePerCheck(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	drop := s.FleetDropSpeed()

	// Both sides at once still means one drop and one flip
	aliens := []*Alien{
		NewAlien(s, 0, 100),
		NewAlien(s, 1200-60, 100),
		NewAlien(s, 1100, 100),
	}

	checkFleetEdges(s, aliens)
	if s.FleetDirection() != -1 {
		t.Errorf("direction = %d, expected a single flip to -1", s.FleetDirection())
	}
	for i, a := range aliens {
		if a.Rect().Y != 100+drop {
			t.Errorf("alien %d y = %d, expected %d", i, a.Rect().Y, 100+drop)
		}
	}
}

func TestFleetNoEdge(t *testing.T) {
	s := NewSettings(config.DefaultInvasionConfig())
	aliens := BuildFleet(s)

	if checkFleetEdges(s, aliens) {
		t.Error("fresh fleet should not touch an edge")
	}
	if s.FleetDirection() != 1 {
		t.Errorf("direction = %d, expected 1", s.FleetDirection())
	}
}

func TestSessionUpdateAliensReversesThenMoves(t *testing.T) {
	sess := NewSession(config.DefaultInvasionConfig())
	sess.Aliens = []*Alien{NewAlien(sess.Settings, 1200-60, 100)}

	sess.UpdateAliens()

	r := sess.Aliens[0].Rect()
	if r.X != 1200-60-1 {
		t.Errorf("alien should move left after the reversal, x = %d", r.X)
	}
	if r.Y != 110 {
		t.Errorf("alien should have dropped, y = %d", r.Y)
	}
}
