package blossom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the Run convenience wrapper.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical resolution in pixels.
	// Zero values fall back to 640x480.
	Width  int
	Height int
	// ShowFPS overlays the actual FPS and TPS in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives the surface with a minimal ebiten.Game
// adapter until the window closes. Hosts that own their game loop forward
// Update and Draw themselves instead; Run exists for examples and tools.
func Run(surface *Surface, cfg RunConfig) error {
	if surface == nil {
		panic("blossom: cannot run a nil surface")
	}

	w := cfg.Width
	if w <= 0 {
		w = 640
	}
	h := cfg.Height
	if h <= 0 {
		h = 480
	}

	surface.SetSize(float64(w), float64(h))
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(&surfaceGame{
		surface: surface,
		width:   w,
		height:  h,
		showFPS: cfg.ShowFPS,
	})
}

// surfaceGame adapts a Surface to the ebiten.Game interface.
type surfaceGame struct {
	surface *Surface
	width   int
	height  int
	showFPS bool
}

func (g *surfaceGame) Update() error {
	g.surface.Update()
	return nil
}

func (g *surfaceGame) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, 8)
	}
}

func (g *surfaceGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
