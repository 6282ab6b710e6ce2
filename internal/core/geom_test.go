package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 60, 58),
			b:        NewRect(30, 40, 3, 15),
			expected: true,
		},
		{
			name:     "bullet left of alien",
			a:        NewRect(100, 100, 60, 58),
			b:        NewRect(90, 110, 3, 15),
			expected: false,
		},
		{
			name:     "bullet below alien",
			a:        NewRect(100, 100, 60, 58),
			b:        NewRect(120, 170, 3, 15),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "bullet top touching alien bottom",
			a:        NewRect(0, 0, 60, 58),
			b:        NewRect(20, 58, 3, 15),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(500, 375, 200, 50)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 600, 400, true},
		{"top-left corner", 500, 375, true},
		{"bottom-right edge (exclusive)", 700, 425, false},
		{"outside left", 499, 400, false},
		{"outside below", 600, 425, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	world := NewRect(0, 0, 1200, 800)

	if !NewRect(0, 0, 1200, 800).Within(world) {
		t.Error("a rect should be within itself")
	}
	if !NewRect(1140, 742, 60, 58).Within(world) {
		t.Error("rect touching the bottom-right corner should be within")
	}
	if NewRect(1141, 0, 60, 58).Within(world) {
		t.Error("rect past the right edge should not be within")
	}
	if NewRect(-1, 0, 60, 58).Within(world) {
		t.Error("rect past the left edge should not be within")
	}
}

func TestRectCentered(t *testing.T) {
	world := NewRect(0, 0, 1200, 800)
	button := world.Centered(200, 50)

	if button != NewRect(500, 375, 200, 50) {
		t.Errorf("Centered() = %+v, expected {500 375 200 50}", button)
	}
	if button.CenterX() != 600 {
		t.Errorf("CenterX() = %d, expected 600", button.CenterX())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{742.0, 742},
		{739.4, 739},
		{739.5, 740},
		{-0.4, 0},
		{-2.6, -3},
	}

	for _, tc := range tests {
		if got := Round(tc.in); got != tc.expected {
			t.Errorf("Round(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{570.0, 0.0, 1140.0, 570.0},
		{-1.5, 0.0, 1140.0, 0.0},
		{1141.5, 0.0, 1140.0, 1140.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
