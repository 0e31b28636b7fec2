package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v, expected {1 1 8 4}", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(1)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past zero should clamp size, got %+v", tiny)
	}
}

func TestViewportToCell(t *testing.T) {
	vp := Viewport{WorldW: 500, WorldH: 500, Area: NewRect(1, 1, 50, 25)}

	tests := []struct {
		name   string
		p      Vector2
		x, y   int
		inside bool
	}{
		{"origin", Vec(0, 0), 1, 1, true},
		{"center", Vec(250, 250), 26, 13, true},
		{"last cell", Vec(499.9, 499.9), 50, 25, true},
		{"right edge exclusive", Vec(500, 10), 51, 1, false},
		{"negative", Vec(-1, 10), 0, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := vp.ToCell(tc.p)
			if x != tc.x || y != tc.y || ok != tc.inside {
				t.Errorf("ToCell(%v) = (%d, %d, %v), expected (%d, %d, %v)", tc.p, x, y, ok, tc.x, tc.y, tc.inside)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{WorldW: 500, WorldH: 500, Area: NewRect(1, 1, 50, 25)}

	for _, cell := range [][2]int{{1, 1}, {10, 7}, {50, 25}} {
		p := vp.ToWorld(cell[0], cell[1])
		x, y, ok := vp.ToCell(p)
		if !ok || x != cell[0] || y != cell[1] {
			t.Errorf("cell %v -> %v -> (%d, %d, %v)", cell, p, x, y, ok)
		}
	}

	// Clicks on the border clamp into the field
	p := vp.ToWorld(0, 0)
	if p.X <= 0 || p.Y <= 0 {
		t.Errorf("ToWorld(0, 0) should clamp inside the world, got %v", p)
	}
}

func TestViewportCellSize(t *testing.T) {
	vp := Viewport{WorldW: 500, WorldH: 500, Area: NewRect(0, 0, 50, 25)}

	w, h := vp.CellSize(32, 32)
	if w != 3 || h != 2 {
		t.Errorf("CellSize(32, 32) = (%d, %d), expected (3, 2)", w, h)
	}

	w, h = vp.CellSize(1, 1)
	if w != 1 || h != 1 {
		t.Errorf("CellSize should be at least one cell, got (%d, %d)", w, h)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
