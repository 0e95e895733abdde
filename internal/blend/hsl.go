package blend

// HSL helper functions for the non-separable modes, following the W3C
// Compositing and Blending Level 1 definitions (section 8, non-separable
// blend modes). All values are normalized float64 in [0,1].

// Lum returns the luminosity of a color: 0.3*r + 0.59*g + 0.11*b.
func Lum(r, g, b float64) float64 {
	return 0.3*r + 0.59*g + 0.11*b
}

// Sat returns the saturation of a color: max(r,g,b) - min(r,g,b).
func Sat(r, g, b float64) float64 {
	return max3(r, g, b) - min3(r, g, b)
}

// ClipColor rescales channels that fall outside [0,1] back into range,
// pulling them toward the luminosity so hue and luminosity survive the
// adjustment. Colors already in range pass through unchanged.
func ClipColor(r, g, b float64) (float64, float64, float64) {
	l := Lum(r, g, b)
	n := min3(r, g, b)
	x := max3(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// SetLum shifts a color to the target luminosity l by adding the same
// delta to every channel, then clips the result back into range.
func SetLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - Lum(r, g, b)
	return ClipColor(r+d, g+d, b+d)
}

// SetSat rescales a color so its saturation becomes s while keeping the
// channel ordering: the minimum channel goes to zero, the maximum to s,
// and the middle keeps its relative position between them. A gray input
// has no hue to preserve and collapses to black; the SetLum that always
// follows in the mode compositions restores its luminosity.
func SetSat(r, g, b, s float64) (float64, float64, float64) {
	c := [3]float64{r, g, b}
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[hi] > c[lo] {
		c[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		c[hi] = s
	} else {
		c[mid], c[hi] = 0, 0
	}
	c[lo] = 0
	return c[0], c[1], c[2]
}

func min3(a, b, c float64) float64 { return min(a, min(b, c)) }
func max3(a, b, c float64) float64 { return max(a, max(b, c)) }
