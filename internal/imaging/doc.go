// Package imaging bridges image files and the blend engine's float
// representation.
//
// The blend engine (the sibling blend package) works on pure float64
// buffers and performs no I/O. This package supplies everything around
// it: loading and caching decoded images, converting them to and from
// the normalized float form, saving and inline-encoding results,
// measuring differences between images, and generating the rainbow
// stripe test patterns used to exercise blend modes.
//
// # Conversion Convention
//
// ToFloat normalizes any decoded image to three float64 channels in
// [0,1] via an 8-bit NRGBA clone; alpha is dropped. FromFloat inverts
// the mapping with round-to-nearest quantization, producing fully opaque
// NRGBA. A round trip through both is lossless for 8-bit sources.
//
// # Supported Formats
//
// Loading handles PNG, JPEG, GIF, TIFF, BMP, and WebP (decode only).
// Saving picks the encoder from the output extension and supports every
// format but WebP.
//
// # Caching
//
// ImageCache keeps decoded images keyed by path so repeated blends
// against the same base pay the decode cost once. It is safe for
// concurrent use.
//
// # Comparison
//
// Compare reports the sum of absolute errors between two same-shaped
// images plus mean, maximum, and per-pixel difference counts. Blend
// outputs are validated against reference renders by comparing their SAE
// against zero.
//
// # Errors
//
// File and codec problems surface as wrapped I/O errors. Shape
// disagreements in Compare wrap blend.ErrShapeMismatch so callers can
// treat engine and comparison shape failures uniformly.
package imaging
