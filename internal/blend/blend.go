package blend

import (
	"fmt"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/parallel"
)

// Blend applies mode to the overlay image over base and interpolates the
// result with base by opacity.
//
// Both images must have identical shape (width, height, channel count) and
// samples in [0,1]. The result is a new image of the same shape; inputs
// are never modified. Every output sample is clamped to [0,1] after the
// opacity interpolation:
//
//	result = base*(1-opacity) + blended*opacity
//
// Opacity outside [0,1] is clamped (NaN is treated as 1).
//
// # Errors
//
//   - Shape differences return an error wrapping ErrShapeMismatch; no
//     partial output is produced.
//   - Modes outside the supported set return an error wrapping
//     ErrUnknownMode that lists every valid mode name.
//   - The hue, saturation, color, and luminosity modes require at least
//     three channels and return an error wrapping ErrChannelCount
//     otherwise.
//
// Division edge cases inside color burn, color dodge, vivid light, and
// divide resolve to their documented limiting values and never fail.
func Blend(base, overlay *Image, mode Mode, opacity float64) (*Image, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: Mode(%d) (valid modes: %s)",
			ErrUnknownMode, int(mode), strings.Join(ModeNames(), ", "))
	}
	if !base.SameShape(overlay) {
		return nil, fmt.Errorf("%w: base %dx%d with %d channels, overlay %dx%d with %d channels",
			ErrShapeMismatch,
			base.Width, base.Height, base.Channels,
			overlay.Width, overlay.Height, overlay.Channels)
	}
	switch mode {
	case Hue, Saturation, Color, Luminosity:
		if base.Channels < 3 {
			return nil, fmt.Errorf("%w: %s blend of %d-channel images",
				ErrChannelCount, mode, base.Channels)
		}
	}

	opacity = ClampOpacity(opacity)

	out := NewImage(base.Width, base.Height, base.Channels)
	if fn := mode.channelFunc(); fn != nil {
		blendSeparable(base, overlay, out, fn, opacity)
	} else {
		blendNonSeparable(base, overlay, out, mode, opacity)
	}
	return out, nil
}

// blendSeparable runs a per-channel formula over every sample, splitting
// rows across workers.
func blendSeparable(base, overlay, out *Image, fn channelFunc, opacity float64) {
	rowLen := base.Width * base.Channels
	parallel.Line(base.Height, func(start, end int) {
		for i := start * rowLen; i < end*rowLen; i++ {
			a := base.Pix[i]
			out.Pix[i] = clampUnit(a*(1-opacity) + fn(a, overlay.Pix[i])*opacity)
		}
	})
}

// blendNonSeparable blends whole pixels at a time for the modes that need
// joint channel information.
func blendNonSeparable(base, overlay, out *Image, mode Mode, opacity float64) {
	ch := base.Channels
	rowLen := base.Width * ch
	parallel.Line(base.Height, func(start, end int) {
		buf := make([]float64, ch)
		for y := start; y < end; y++ {
			for x := 0; x < base.Width; x++ {
				off := y*rowLen + x*ch
				basePx := base.Pix[off : off+ch]
				blendPixel(mode, basePx, overlay.Pix[off:off+ch], buf)
				for c := 0; c < ch; c++ {
					out.Pix[off+c] = clampUnit(basePx[c]*(1-opacity) + buf[c]*opacity)
				}
			}
		}
	})
}

// ClampOpacity normalizes an opacity value to [0,1], the range Blend
// works with. NaN maps to 1 so an unset value means full effect.
func ClampOpacity(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return clampUnit(v)
}

// clampUnit clamps v to [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
