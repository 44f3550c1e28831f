package blossom

import "time"

// Animation timing shared by the expand and close passes. Each option's
// transition runs for optionGrowDuration seconds, starting optionStagger
// seconds after its left neighbor's.
const (
	optionStagger       = 0.05
	optionGrowDuration  = 0.2
	focusShiftDuration  = 0.15
	overlayFadeDuration = 0.12

	optionStartScale  = 0.25 // option size relative to its slot when inserted
	optionClosedAlpha = 0.2  // option opacity at the end of the close pass
)

// Config controls the picker's geometry and press behavior. The zero value
// of any field falls back to the documented default.
type Config struct {
	// Size is the edge length of an option at full magnification, and the
	// uniform edge length while no option is focused.
	Size float64
	// MinSize is the edge length of unfocused options while some option is
	// magnified.
	MinSize float64
	// Spacing is the horizontal gap between options and the strip's padding
	// around them.
	Spacing float64
	// StripColor fills the rounded strip behind the options.
	StripColor Color
	// ScrimColor fills the full-surface dismiss layer behind the strip.
	ScrimColor Color
	// PressDuration is how long the pointer must stay held on the trigger
	// before the picker opens.
	PressDuration time.Duration
	// PressSlop is how far the pointer may wander during the hold before
	// the press is abandoned.
	PressSlop float64
}

// DefaultConfig returns the default picker configuration.
func DefaultConfig() Config {
	return Config{
		Size:          40,
		MinSize:       30,
		Spacing:       8,
		StripColor:    Color{0.16, 0.15, 0.19, 0.95},
		ScrimColor:    Color{0, 0, 0, 0.35},
		PressDuration: 500 * time.Millisecond,
		PressSlop:     10,
	}
}

// withDefaults replaces zero-valued fields with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Size <= 0 {
		c.Size = d.Size
	}
	if c.MinSize <= 0 {
		c.MinSize = d.MinSize
	}
	if c.Spacing <= 0 {
		c.Spacing = d.Spacing
	}
	if c.StripColor == (Color{}) {
		c.StripColor = d.StripColor
	}
	if c.ScrimColor == (Color{}) {
		c.ScrimColor = d.ScrimColor
	}
	if c.PressDuration <= 0 {
		c.PressDuration = d.PressDuration
	}
	if c.PressSlop <= 0 {
		c.PressSlop = d.PressSlop
	}
	return c
}

// HeightForSize returns the strip height that fits one option of edge
// length Size plus padding above and below.
func (c Config) HeightForSize() float64 {
	return c.Size + 2*c.Spacing
}
