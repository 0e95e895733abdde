package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// GenerateStripes renders a rainbow stripe test pattern. Stripe i carries
// the fully saturated hue at 360*i/count degrees and half lightness, so a
// horizontal and a vertical render of the same size blended together
// exercise a mode against every hue pairing.
//
// Orientation is "horizontal" (bands stacked top to bottom, the default)
// or "vertical" (bands running left to right). When the stripe count does
// not divide the image evenly, stripe sizes differ by at most one pixel.
func GenerateStripes(width, height, count int, orientation string) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if count <= 0 {
		return nil, fmt.Errorf("stripe count must be positive, got %d", count)
	}

	horizontal := false
	switch orientation {
	case "horizontal", "":
		horizontal = true
	case "vertical":
	default:
		return nil, fmt.Errorf("unknown orientation %q (use horizontal or vertical)", orientation)
	}

	colors := make([]color.NRGBA, count)
	for i := range colors {
		hue := 360 * float64(i) / float64(count)
		r, g, b := colorful.Hsl(hue, 1.0, 0.5).RGB255()
		colors[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if horizontal {
		for y := 0; y < height; y++ {
			c := colors[y*count/height]
			for x := 0; x < width; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	} else {
		for x := 0; x < width; x++ {
			c := colors[x*count/width]
			for y := 0; y < height; y++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img, nil
}
