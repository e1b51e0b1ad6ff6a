package core

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(5, 15, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(15, 10, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(0, 30, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontally (no overlap)",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertically (no overlap)",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(0, 20, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewRect(0, 20, 20, 20),
			b:        NewRect(5, 15, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(9.5, 19.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectNormalized(t *testing.T) {
	r := NewRect(100, 50, -64, 64)
	if !r.Mirrored() {
		t.Fatal("negative width should report Mirrored")
	}

	n := r.Normalized()
	if n.X != 36 || n.W != 64 {
		t.Errorf("Normalized() = %+v, expected X=36 W=64", n)
	}
	if n.Y != r.Y || n.H != r.H {
		t.Errorf("Normalized() should keep Y/H, got %+v", n)
	}

	// Already positive: unchanged
	p := NewRect(1, 2, 3, 4)
	if p.Normalized() != p {
		t.Errorf("Normalized() of positive rect changed it: %+v", p.Normalized())
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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
