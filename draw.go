package blossom

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawTree walks the element tree depth-first in painter order, refreshing
// world transforms as it goes and drawing visible panels and icons. An
// overlay holds a handful of elements, so draws are submitted one by one
// with a single reused DrawImageOptions; there is no command buffer.
func (s *Surface) drawTree(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	s.drawElement(screen, s.root, identityTransform, 1.0, false, &op)
}

func (s *Surface) drawElement(screen *ebiten.Image, e *Element, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, op *ebiten.DrawImageOptions) {
	if !e.Visible {
		return
	}

	// Refresh the world transform in the draw walk so field writes made
	// after Update (transitions, update hooks) land this frame.
	recompute := e.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(e)
		e.worldTransform = multiplyAffine(parentTransform, local)
		e.worldAlpha = parentAlpha * e.Alpha
		e.transformDirty = false
	}

	switch e.Kind {
	case KindPanel:
		s.submitPanel(screen, e, op)
	case KindIcon:
		s.submitIcon(screen, e, op)
	}

	for _, child := range e.children {
		s.drawElement(screen, child, e.worldTransform, e.worldAlpha, recompute, op)
	}
}

// submitPanel draws a panel's fill: the baked rounded mask when the panel
// has a corner radius, a scaled white pixel otherwise.
func (s *Surface) submitPanel(screen *ebiten.Image, e *Element, op *ebiten.DrawImageOptions) {
	if e.worldAlpha <= 0 || e.Width <= 0 || e.Height <= 0 {
		return
	}

	op.GeoM.Reset()
	if e.CornerRadius > 0 {
		mask := e.ensurePanelMask()
		if mask == nil {
			return
		}
		// The mask is baked at the intrinsic size, so it maps 1:1 onto the
		// content box.
		b := mask.Bounds()
		op.GeoM.Scale(e.Width/float64(b.Dx()), e.Height/float64(b.Dy()))
		op.GeoM.Concat(worldGeoM(e.worldTransform))
		applyTint(op, e.Color, e.worldAlpha)
		screen.DrawImage(mask, op)
		return
	}

	op.GeoM.Scale(e.Width, e.Height)
	op.GeoM.Concat(worldGeoM(e.worldTransform))
	applyTint(op, e.Color, e.worldAlpha)
	screen.DrawImage(WhitePixel, op)
}

// submitIcon draws an icon's image scaled onto its content box.
func (s *Surface) submitIcon(screen *ebiten.Image, e *Element, op *ebiten.DrawImageOptions) {
	if e.Image == nil || e.worldAlpha <= 0 || e.Width <= 0 || e.Height <= 0 {
		return
	}

	b := e.Image.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 {
		return
	}

	op.GeoM.Reset()
	op.GeoM.Scale(e.Width/float64(sw), e.Height/float64(sh))
	op.GeoM.Concat(worldGeoM(e.worldTransform))
	applyTint(op, e.Color, e.worldAlpha)
	screen.DrawImage(e.Image, op)
}

// worldGeoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func worldGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// applyTint resets the options' color scale and applies the premultiplied
// tint: color components scaled by the color's own alpha and the element's
// world alpha.
func applyTint(op *ebiten.DrawImageOptions, c Color, alpha float64) {
	op.ColorScale.Reset()
	op.ColorScale.Scale(
		float32(c.R*c.A*alpha),
		float32(c.G*c.A*alpha),
		float32(c.B*c.A*alpha),
		float32(c.A*alpha),
	)
}

// ensurePanelMask returns the panel's baked rounded fill, building it on
// first use: a white image at the intrinsic size with alpha coverage
// falling off over one pixel at the corners. Color and opacity apply at
// draw time, so one bake serves any tint. The bake is keyed to nothing —
// recreate the panel to change its size or radius.
func (e *Element) ensurePanelMask() *ebiten.Image {
	if e.panelMask != nil {
		return e.panelMask
	}

	w := int(math.Ceil(e.Width))
	h := int(math.Ceil(e.Height))
	if w < 1 || h < 1 {
		return nil
	}

	fw := float64(w)
	fh := float64(h)
	r := e.CornerRadius
	if max := math.Min(fw, fh) / 2; r > max {
		r = max
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5

			// Corner circle center, when the pixel lies in a corner square.
			cx := -1.0
			if px < r {
				cx = r
			} else if px > fw-r {
				cx = fw - r
			}
			cy := -1.0
			if py < r {
				cy = r
			} else if py > fh-r {
				cy = fh - r
			}

			a := 1.0
			if cx >= 0 && cy >= 0 {
				d := math.Hypot(px-cx, py-cy)
				a = clamp01(r - d + 0.5)
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)})
		}
	}

	e.panelMask = ebiten.NewImageFromImage(img)
	return e.panelMask
}
