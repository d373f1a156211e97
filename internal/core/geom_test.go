package core

import "testing"

func TestRectIntersects(t *testing.T) {
	viewport := NewRect(0, 0, 80, 24)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"fully inside", NewRect(10, 5, 4, 3), true},
		{"straddles right edge", NewRect(78, 10, 6, 2), true},
		{"one cell overlap at corner", NewRect(79, 23, 5, 5), true},
		{"touching right edge only", NewRect(80, 0, 10, 24), false},
		{"touching bottom edge only", NewRect(0, 24, 80, 4), false},
		{"fully right of viewport", NewRect(100, 0, 10, 10), false},
		{"fully above viewport", NewRect(0, -20, 80, 10), false},
		{"engulfs the viewport", NewRect(-5, -5, 100, 40), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := viewport.Intersects(tc.r); got != tc.want {
				t.Errorf("Intersects() = %v, expected %v", got, tc.want)
			}
			// Intersection is symmetric
			if got := tc.r.Intersects(viewport); got != tc.want {
				t.Errorf("reverse Intersects() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	hud := NewRect(2, 1, 30, 3)

	// The right and bottom edges are exclusive
	inside := [][2]int{{2, 1}, {16, 2}, {31, 3}}
	outside := [][2]int{{32, 1}, {2, 4}, {1, 1}, {2, 0}}

	for _, p := range inside {
		if !hud.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, expected true", p[0], p[1])
		}
	}
	for _, p := range outside {
		if hud.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, expected false", p[0], p[1])
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(4, 6, 12, 8)

	if r.Right() != 16 {
		t.Errorf("Right() = %d, expected 16", r.Right())
	}
	if r.Bottom() != 14 {
		t.Errorf("Bottom() = %d, expected 14", r.Bottom())
	}
	if cx, cy := r.Center(); cx != 10 || cy != 10 {
		t.Errorf("Center() = (%d, %d), expected (10, 10)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	// Camera-style clamping to [0, levelWidth - viewportWidth]
	tests := []struct {
		val, want int
	}{
		{-3, 0},
		{0, 0},
		{17, 17},
		{36, 36},
		{50, 36},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, 0, 36); got != tc.want {
			t.Errorf("Clamp(%d, 0, 36) = %d, expected %d", tc.val, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, want float64
	}{
		{-0.25, 0},
		{0.5, 0.5},
		{19.75, 19.75},
		{20.01, 20},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 20); got != tc.want {
			t.Errorf("ClampF(%v, 0, 20) = %v, expected %v", tc.val, got, tc.want)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	if Min(3, 9) != 3 || Min(9, 3) != 3 {
		t.Error("Min should pick the smaller value either way")
	}
	if Max(3, 9) != 9 || Max(9, 3) != 9 {
		t.Error("Max should pick the larger value either way")
	}
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs should strip the sign")
	}
}
