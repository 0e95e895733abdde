package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/blend-modes-mcp/internal/blend"
)

// ToFloat converts a decoded image into the blend engine's normalized
// representation: a three-channel float64 buffer with samples in [0,1].
// The input is first cloned into 8-bit NRGBA form regardless of its
// source color model. Alpha is dropped; the engine blends opaque color
// planes.
func ToFloat(img image.Image) *blend.Image {
	nrgba := imaging.Clone(img)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()
	out := blend.NewImage(w, h, 3)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			src := y * nrgba.Stride
			dst := y * w * 3
			for x := 0; x < w; x++ {
				out.Pix[dst+0] = float64(nrgba.Pix[src+0]) / 255
				out.Pix[dst+1] = float64(nrgba.Pix[src+1]) / 255
				out.Pix[dst+2] = float64(nrgba.Pix[src+2]) / 255
				src += 4
				dst += 3
			}
		}
	})
	return out
}

// FromFloat renders a float image back into fully opaque 8-bit NRGBA,
// rounding each sample to the nearest level and clamping. Images with
// fewer than three channels replicate their first channel as gray;
// channels past the third are ignored.
func FromFloat(img *blend.Image) (*image.NRGBA, error) {
	if img.Channels < 1 {
		return nil, fmt.Errorf("cannot render image with %d channels", img.Channels)
	}

	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	ch := img.Channels
	parallel.Line(img.Height, func(start, end int) {
		for y := start; y < end; y++ {
			src := y * img.Width * ch
			dst := y * out.Stride
			for x := 0; x < img.Width; x++ {
				r := quantize(img.Pix[src])
				g, b := r, r
				if ch >= 3 {
					g = quantize(img.Pix[src+1])
					b = quantize(img.Pix[src+2])
				}
				out.Pix[dst+0] = r
				out.Pix[dst+1] = g
				out.Pix[dst+2] = b
				out.Pix[dst+3] = 255
				src += ch
				dst += 4
			}
		}
	})
	return out, nil
}

// quantize maps a [0,1] sample to its nearest 8-bit level.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
