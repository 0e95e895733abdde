package blend

import "errors"

// Sentinel errors returned by the engine. Blend wraps them with contextual
// detail, so callers should match with errors.Is.
var (
	// ErrShapeMismatch indicates the base and overlay images differ in
	// width, height, or channel count.
	ErrShapeMismatch = errors.New("image shapes do not match")

	// ErrUnknownMode indicates a mode outside the supported set.
	ErrUnknownMode = errors.New("unknown blend mode")

	// ErrChannelCount indicates an HSL mode (hue, saturation, color,
	// luminosity) was given images with fewer than three channels.
	ErrChannelCount = errors.New("mode requires at least three channels")
)
