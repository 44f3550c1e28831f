package blossom

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource resolves display-image identifiers to images. The picker
// resolves each Option's Image through the source its owner supplies, so
// asset loading and atlas management stay outside the library.
type ImageSource interface {
	// ImageFor returns the image for the given identifier, or nil if the
	// identifier is unknown.
	ImageFor(name string) *ebiten.Image
}

// ImageMap is a map-backed ImageSource.
type ImageMap map[string]*ebiten.Image

// ImageFor returns the image registered under name, or nil.
func (m ImageMap) ImageFor(name string) *ebiten.Image {
	return m[name]
}

// resolveImage looks up name through src. A nil source or an unknown name
// yields a 1x1 magenta placeholder, with a stderr warning in debug mode.
func resolveImage(src ImageSource, name string) *ebiten.Image {
	if src != nil {
		if img := src.ImageFor(name); img != nil {
			return img
		}
	}
	if globalDebug {
		log.Printf("blossom: image %q not found, using magenta placeholder", name)
	}
	return ensureMagentaImage()
}

// magenta placeholder singleton (no sync.Once — blossom is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}
