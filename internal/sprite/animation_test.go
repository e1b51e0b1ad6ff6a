package sprite

import (
	"errors"
	"testing"
)

func frames(n int) []Region {
	out := make([]Region, n)
	for i := range out {
		out[i] = Region{X: float64(i) * 0.1, Y: 0, W: 0.1, H: 0.5}
	}
	return out
}

func mustAnimation(t *testing.T, n, rate int) *Animation {
	t.Helper()
	a, err := NewAnimation(frames(n), rate)
	if err != nil {
		t.Fatalf("NewAnimation(%d, %d) failed: %v", n, rate, err)
	}
	return a
}

func TestNewAnimationRejectsEmpty(t *testing.T) {
	_, err := NewAnimation(nil, 3)
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("NewAnimation(nil) error = %v, expected ErrNoFrames", err)
	}

	if _, err := NewAnimation(frames(2), -1); err == nil {
		t.Error("NewAnimation with negative rate should fail")
	}
}

func TestNewAnimationCopiesFrames(t *testing.T) {
	src := frames(3)
	a, err := NewAnimation(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	src[0].X = 0.9
	if a.Frame().X != 0 {
		t.Error("animation should not alias the caller's frame slice")
	}
}

func TestTickAdvancesAfterRatePlusOne(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		rate   int
	}{
		{"rate zero", 4, 0},
		{"rate two", 4, 2},
		{"rate five", 6, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustAnimation(t, tc.frames, tc.rate)

			for i := 0; i < tc.rate; i++ {
				a.Tick()
				if a.Index() != 0 {
					t.Fatalf("index advanced early after %d ticks", i+1)
				}
			}

			a.Tick()
			if a.Index() != 1 {
				t.Errorf("after %d ticks index = %d, expected 1", tc.rate+1, a.Index())
			}
			if a.Counter() != 0 {
				t.Errorf("counter = %d, expected reset to 0", a.Counter())
			}
		})
	}
}

func TestTickWrapsBeforeLastFrame(t *testing.T) {
	// 3 frames, rate 2: index goes 0 -> 1 -> 0; frame 2 is never shown
	a := mustAnimation(t, 3, 2)

	for i := 0; i < 3; i++ {
		a.Tick()
	}
	if a.Index() != 1 || a.Counter() != 0 {
		t.Fatalf("after 3 ticks: index=%d counter=%d, expected 1/0", a.Index(), a.Counter())
	}

	for i := 0; i < 3; i++ {
		a.Tick()
	}
	if a.Index() != 0 || a.Counter() != 0 {
		t.Errorf("after 6 ticks: index=%d counter=%d, expected 0/0", a.Index(), a.Counter())
	}

	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		a.Tick()
		seen[a.Index()] = true
	}
	if seen[2] {
		t.Error("last frame should never be visited")
	}
}

func TestSingleFrameStaysPut(t *testing.T) {
	a := mustAnimation(t, 1, 0)
	for i := 0; i < 10; i++ {
		a.Tick()
		if a.Index() != 0 {
			t.Fatalf("single-frame animation moved to index %d", a.Index())
		}
	}
}

func TestStopReturnsToRest(t *testing.T) {
	a := mustAnimation(t, 5, 1)

	// Walk to a middle frame
	for a.Index() != 2 {
		a.Tick()
	}

	a.Stop()
	if a.Index() != 0 {
		t.Fatalf("Stop() left index at %d", a.Index())
	}
	if a.Frame() != frames(5)[0] {
		t.Errorf("Frame() after Stop = %+v, expected rest frame", a.Frame())
	}

	// Second Stop is a no-op
	counter := a.Counter()
	a.Stop()
	if a.Index() != 0 || a.Counter() != counter {
		t.Errorf("second Stop changed state: index=%d counter=%d (was %d)", a.Index(), a.Counter(), counter)
	}
}

func TestStopAtRestKeepsCounter(t *testing.T) {
	a := mustAnimation(t, 4, 10)
	a.Tick()
	a.Tick()

	a.Stop()
	if a.Index() != 0 || a.Counter() != 2 {
		t.Errorf("Stop at rest frame should not tick: index=%d counter=%d", a.Index(), a.Counter())
	}
}

func TestRegionValid(t *testing.T) {
	tests := []struct {
		name     string
		r        Region
		expected bool
	}{
		{"full sheet", Region{0, 0, 1, 1}, true},
		{"quarter", Region{0.5, 0.5, 0.5, 0.5}, true},
		{"zero width", Region{0, 0, 0, 1}, false},
		{"overflows right", Region{0.75, 0, 0.5, 0.5}, false},
		{"negative origin", Region{-0.1, 0, 0.5, 0.5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Valid(); got != tc.expected {
				t.Errorf("Valid() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
