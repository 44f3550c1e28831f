package blossom

// Layout math for the option strip. Option frames are in the strip's local
// coordinate space: origin at the strip's top-left corner, Y increasing
// downward. Pure functions, no element access.

// xPosition returns the left edge of option k when every option has the
// full edge length: (k+1)*spacing + size*k. Evaluated at k == n it also
// yields the strip's content width.
func xPosition(k int, cfg Config) float64 {
	return float64(k+1)*cfg.Spacing + cfg.Size*float64(k)
}

// stripWidth returns the strip width that fits n options at full size.
func stripWidth(n int, cfg Config) float64 {
	return xPosition(n, cfg)
}

// stripFrame returns the strip's rectangle in surface coordinates, sitting
// flush above the anchor point with its left edge on the anchor's X.
func stripFrame(anchor Vec2, n int, cfg Config) Rect {
	h := cfg.HeightForSize()
	return Rect{X: anchor.X, Y: anchor.Y - h, Width: stripWidth(n, cfg), Height: h}
}

// uniformFrames appends one frame per option in the uniform layout (every
// option at full size, vertically centered in the strip) to dst and
// returns the extended slice.
func uniformFrames(dst []Rect, n int, cfg Config) []Rect {
	y := (cfg.HeightForSize() - cfg.Size) / 2
	for k := 0; k < n; k++ {
		dst = append(dst, Rect{X: xPosition(k, cfg), Y: y, Width: cfg.Size, Height: cfg.Size})
	}
	return dst
}

// focusFrames appends one frame per option while option focused is
// magnified. The focused option keeps the full edge length with its
// vertical center on the strip's top edge, so it protrudes upward by half
// its size. Its left neighbor packs flush against it with no gap; every
// other option shrinks to MinSize with normal spacing. The leading margin
// collapses when option 0 is the focused one.
func focusFrames(dst []Rect, n, focused int, cfg Config) []Rect {
	minY := (cfg.HeightForSize() - cfg.MinSize) / 2
	last := 0.0
	if focused != 0 {
		last = cfg.Spacing
	}
	for k := 0; k < n; k++ {
		switch {
		case k == focused-1:
			dst = append(dst, Rect{X: last, Y: minY, Width: cfg.MinSize, Height: cfg.MinSize})
			last += cfg.MinSize
		case k == focused:
			dst = append(dst, Rect{X: last, Y: -cfg.Size / 2, Width: cfg.Size, Height: cfg.Size})
			last += cfg.Size
		default:
			dst = append(dst, Rect{X: last, Y: minY, Width: cfg.MinSize, Height: cfg.MinSize})
			last += cfg.MinSize + cfg.Spacing
		}
	}
	return dst
}

// nearestIndex maps a pointer position to an option index by dividing the
// strip into n equal bands. localX is measured from the strip's left edge.
// The result can land outside [0, n) when the pointer sits in the trailing
// padding; callers discard out-of-range values. Returns -1 when the strip
// is empty.
func nearestIndex(localX float64, n int, width float64) int {
	if n <= 0 || width <= 0 {
		return -1
	}
	return int(localX / (width / float64(n)))
}

// collapsedFrame returns the frame an option shrinks into while the picker
// closes: a square of half MinSize around the given center.
func collapsedFrame(center Vec2, cfg Config) Rect {
	edge := cfg.MinSize / 2
	return Rect{X: center.X - edge/2, Y: center.Y - edge/2, Width: edge, Height: edge}
}
