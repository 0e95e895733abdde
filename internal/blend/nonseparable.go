package blend

// blendPixel computes the fully blended pixel for a non-separable mode,
// writing Channels samples into dst. The darker/lighter color picks copy
// whichever whole pixel wins; the HSL modes recombine the first three
// channels and pass any remaining channels through from base.
func blendPixel(mode Mode, basePx, overPx, dst []float64) {
	switch mode {
	case DarkerColor:
		src := basePx
		if brightness(overPx) < brightness(basePx) {
			src = overPx
		}
		copy(dst, src)
	case LighterColor:
		src := basePx
		if brightness(overPx) > brightness(basePx) {
			src = overPx
		}
		copy(dst, src)
	case Hue, Saturation, Color, Luminosity:
		r, g, b := blendHSL(mode,
			basePx[0], basePx[1], basePx[2],
			overPx[0], overPx[1], overPx[2])
		dst[0], dst[1], dst[2] = r, g, b
		copy(dst[3:], basePx[3:])
	}
}

// brightness orders pixels for the darker and lighter color picks. Images
// with three or more channels compare luminosity; other layouts fall back
// to the raw channel sum.
func brightness(px []float64) float64 {
	if len(px) >= 3 {
		return Lum(px[0], px[1], px[2])
	}
	sum := 0.0
	for _, v := range px {
		sum += v
	}
	return sum
}

// blendHSL computes one of the four HSL mode results for an RGB triplet.
// br/bg/bb is the base (backdrop) color, sr/sg/sb the overlay color.
func blendHSL(mode Mode, br, bg, bb, sr, sg, sb float64) (float64, float64, float64) {
	switch mode {
	case Hue:
		// overlay's hue, base's saturation and luminosity
		r, g, b := SetSat(sr, sg, sb, Sat(br, bg, bb))
		return SetLum(r, g, b, Lum(br, bg, bb))
	case Saturation:
		// overlay's saturation, base's hue and luminosity
		r, g, b := SetSat(br, bg, bb, Sat(sr, sg, sb))
		return SetLum(r, g, b, Lum(br, bg, bb))
	case Color:
		// overlay's hue and saturation, base's luminosity
		return SetLum(sr, sg, sb, Lum(br, bg, bb))
	default:
		// overlay's luminosity, base's hue and saturation
		return SetLum(br, bg, bb, Lum(sr, sg, sb))
	}
}
