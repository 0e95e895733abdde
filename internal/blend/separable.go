package blend

import "math"

// channelFunc blends one channel sample pair. a is the base sample, b the
// blend sample, both in [0,1]. Results may leave [0,1] for the linear
// modes; the caller clamps once, after opacity interpolation.
type channelFunc func(a, b float64) float64

// channelFunc returns the per-channel formula for a separable mode, or nil
// for the modes that need the whole pixel.
func (m Mode) channelFunc() channelFunc {
	switch m {
	case Normal:
		return blendNormal
	case Darken:
		return blendDarken
	case Multiply:
		return blendMultiply
	case ColorBurn:
		return blendColorBurn
	case LinearBurn:
		return blendLinearBurn
	case Lighten:
		return blendLighten
	case Screen:
		return blendScreen
	case ColorDodge:
		return blendColorDodge
	case LinearDodge:
		return blendLinearDodge
	case Overlay:
		return blendOverlay
	case SoftLight:
		return blendSoftLight
	case HardLight:
		return blendHardLight
	case VividLight:
		return blendVividLight
	case LinearLight:
		return blendLinearLight
	case PinLight:
		return blendPinLight
	case HardMix:
		return blendHardMix
	case Difference:
		return blendDifference
	case Exclusion:
		return blendExclusion
	case Subtract:
		return blendSubtract
	case Divide:
		return blendDivide
	default:
		return nil
	}
}

func blendNormal(a, b float64) float64   { return b }
func blendDarken(a, b float64) float64   { return math.Min(a, b) }
func blendMultiply(a, b float64) float64 { return a * b }

// blendColorBurn darkens the base to reflect the blend value.
// b == 0 yields 0 rather than dividing by zero.
func blendColorBurn(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-a)/b)
}

func blendLinearBurn(a, b float64) float64 { return a + b - 1 }
func blendLighten(a, b float64) float64    { return math.Max(a, b) }
func blendScreen(a, b float64) float64     { return 1 - (1-a)*(1-b) }

// blendColorDodge brightens the base to reflect the blend value.
// b == 1 yields 1 rather than dividing by zero.
func blendColorDodge(a, b float64) float64 {
	if b == 1 {
		return 1
	}
	return math.Min(1, a/(1-b))
}

func blendLinearDodge(a, b float64) float64 { return a + b }

func blendOverlay(a, b float64) float64 {
	if a < 0.5 {
		return 2 * a * b
	}
	return 1 - 2*(1-a)*(1-b)
}

// softLightD is the D(a) ramp from the soft-light definition: a cubic for
// dark base values, sqrt above 0.25.
func softLightD(a float64) float64 {
	if a <= 0.25 {
		return ((16*a-12)*a + 4) * a
	}
	return math.Sqrt(a)
}

func blendSoftLight(a, b float64) float64 {
	if b <= 0.5 {
		return a - (1-2*b)*a*(1-a)
	}
	return a + (2*b-1)*(softLightD(a)-a)
}

// blendHardLight is overlay with the layer roles swapped.
func blendHardLight(a, b float64) float64 { return blendOverlay(b, a) }

// blendVividLight burns below mid-gray, dodges above it.
func blendVividLight(a, b float64) float64 {
	if b < 0.5 {
		return blendColorBurn(a, 2*b)
	}
	return blendColorDodge(a, 2*b-1)
}

func blendLinearLight(a, b float64) float64 { return a + 2*b - 1 }

func blendPinLight(a, b float64) float64 {
	if b < 0.5 {
		return math.Min(a, 2*b)
	}
	return math.Max(a, 2*b-1)
}

// blendHardMix posterizes: vivid light snapped to 0 or 1.
func blendHardMix(a, b float64) float64 {
	if blendVividLight(a, b) < 0.5 {
		return 0
	}
	return 1
}

func blendDifference(a, b float64) float64 { return math.Abs(a - b) }
func blendExclusion(a, b float64) float64  { return a + b - 2*a*b }
func blendSubtract(a, b float64) float64   { return math.Max(0, a-b) }

// blendDivide brightens in proportion to the blend value. b == 0 yields 1,
// including for divide(0, 0).
func blendDivide(a, b float64) float64 {
	if b == 0 {
		return 1
	}
	return math.Min(1, a/b)
}
