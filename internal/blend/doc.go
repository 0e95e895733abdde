// Package blend implements the 26 Photoshop-style layer blend modes as
// pure functions over normalized float64 image buffers.
//
// The engine takes a base image, an overlay (blend) image of identical
// shape, a mode, and an opacity, and produces a new image:
//
//	result, err := blend.Blend(base, overlay, blend.Multiply, 1.0)
//
// # Image Representation
//
// Images are flat float64 buffers with samples in [0,1], stored row-major
// with channels interleaved (see the Image type). Decoding raster files
// into this representation and back is the job of the sibling imaging
// package; this package performs no I/O and holds no state.
//
// # Modes
//
// Twenty modes are separable and apply their formula independently to
// every channel sample: normal, darken, multiply, color burn, linear
// burn, lighten, screen, color dodge, linear dodge, overlay, soft light,
// hard light, vivid light, linear light, pin light, hard mix, difference,
// exclusion, subtract, and divide.
//
// Six modes operate on whole pixels. Darker color and lighter color pick
// whichever input pixel is darker or lighter overall. Hue, saturation,
// color, and luminosity recombine the HSL components of the two pixels
// using the W3C Compositing and Blending Level 1 helper functions (Lum,
// Sat, ClipColor, SetLum, SetSat), with luminosity weighted
// 0.3/0.59/0.11 across R/G/B.
//
// Mode values parse from their canonical names ("color burn") and common
// spelling variants via ParseMode.
//
// # Opacity
//
// After the mode formula runs, the result is linearly interpolated with
// the base: base*(1-opacity) + blended*opacity. Opacity 1 yields the full
// blend effect, opacity 0 returns the base unchanged. The interpolated
// value is then clamped to [0,1]; intermediate formula results (linear
// burn, linear light) may leave that range freely.
//
// # Errors
//
// Blend validates shape and mode before touching any pixel data and
// returns errors wrapping the package sentinels ErrShapeMismatch,
// ErrUnknownMode, and ErrChannelCount. Division-by-zero cases inside the
// formulas (color burn, color dodge, divide) are defined to their
// limiting values and never produce an error or a NaN.
//
// # Concurrency
//
// Blending fans out across rows using bild's parallel helper, sized to
// GOMAXPROCS. Pixels carry no cross-pixel dependency, so the parallel
// result is identical to a serial pass. All functions are safe for
// concurrent use; inputs are read-only.
package blend
