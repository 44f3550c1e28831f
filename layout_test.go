package blossom

import "testing"

// Defaults: Size 40, MinSize 30, Spacing 8, strip height 56.

func TestXPosition(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		k    int
		want float64
	}{
		{0, 8},
		{1, 56},
		{2, 104},
		{5, 248},
	}
	for _, tt := range tests {
		if got := xPosition(tt.k, cfg); got != tt.want {
			t.Errorf("xPosition(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestStripWidth(t *testing.T) {
	cfg := DefaultConfig()

	if got := stripWidth(1, cfg); got != 56 {
		t.Errorf("stripWidth(1) = %v, want 56", got)
	}
	if got := stripWidth(5, cfg); got != 248 {
		t.Errorf("stripWidth(5) = %v, want 248", got)
	}
}

func TestStripFrame(t *testing.T) {
	cfg := DefaultConfig()
	f := stripFrame(Vec2{X: 100, Y: 400}, 5, cfg)

	want := Rect{X: 100, Y: 344, Width: 248, Height: 56}
	if f != want {
		t.Errorf("stripFrame = %+v, want %+v", f, want)
	}
}

func TestUniformFrames(t *testing.T) {
	cfg := DefaultConfig()
	frames := uniformFrames(nil, 3, cfg)

	want := []Rect{
		{X: 8, Y: 8, Width: 40, Height: 40},
		{X: 56, Y: 8, Width: 40, Height: 40},
		{X: 104, Y: 8, Width: 40, Height: 40},
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestFocusFrames_Middle(t *testing.T) {
	cfg := DefaultConfig()
	frames := focusFrames(nil, 5, 2, cfg)

	want := []Rect{
		{X: 8, Y: 13, Width: 30, Height: 30},
		// Left neighbor packs flush against the focused option: no gap.
		{X: 46, Y: 13, Width: 30, Height: 30},
		// Focused option protrudes upward by half its size.
		{X: 76, Y: -20, Width: 40, Height: 40},
		{X: 116, Y: 13, Width: 30, Height: 30},
		{X: 154, Y: 13, Width: 30, Height: 30},
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestFocusFrames_First(t *testing.T) {
	cfg := DefaultConfig()
	frames := focusFrames(nil, 3, 0, cfg)

	// The leading margin collapses when option 0 is focused.
	want := []Rect{
		{X: 0, Y: -20, Width: 40, Height: 40},
		{X: 40, Y: 13, Width: 30, Height: 30},
		{X: 78, Y: 13, Width: 30, Height: 30},
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestFocusFrames_Last(t *testing.T) {
	cfg := DefaultConfig()
	frames := focusFrames(nil, 3, 2, cfg)

	want := []Rect{
		{X: 8, Y: 13, Width: 30, Height: 30},
		{X: 46, Y: 13, Width: 30, Height: 30},
		{X: 76, Y: -20, Width: 40, Height: 40},
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestNearestIndex(t *testing.T) {
	// 5 options in a 248 wide strip: 49.6 per band.
	tests := []struct {
		name   string
		localX float64
		want   int
	}{
		{"left edge", 0, 0},
		{"middle", 124, 2},
		{"just inside right edge", 247.9, 4},
		{"right edge lands out of range", 248, 5},
		{"far left lands out of range", -50, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestIndex(tt.localX, 5, 248); got != tt.want {
				t.Errorf("nearestIndex(%v, 5, 248) = %d, want %d", tt.localX, got, tt.want)
			}
		})
	}
}

func TestNearestIndex_OptionCentersMapToOwnIndex(t *testing.T) {
	cfg := DefaultConfig()
	n := 5
	width := stripWidth(n, cfg)

	for k := 0; k < n; k++ {
		center := xPosition(k, cfg) + cfg.Size/2
		if got := nearestIndex(center, n, width); got != k {
			t.Errorf("center of option %d (x=%v) maps to %d", k, center, got)
		}
	}
}

func TestNearestIndex_Degenerate(t *testing.T) {
	if got := nearestIndex(10, 0, 248); got != -1 {
		t.Errorf("nearestIndex with no options = %d, want -1", got)
	}
	if got := nearestIndex(10, 5, 0); got != -1 {
		t.Errorf("nearestIndex with zero width = %d, want -1", got)
	}
}

func TestCollapsedFrame(t *testing.T) {
	cfg := DefaultConfig()
	f := collapsedFrame(Vec2{X: 100, Y: 50}, cfg)

	// Half of MinSize, centered on the given point.
	want := Rect{X: 92.5, Y: 42.5, Width: 15, Height: 15}
	if f != want {
		t.Errorf("collapsedFrame = %+v, want %+v", f, want)
	}
}
