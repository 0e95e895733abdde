package imaging

import (
	"fmt"
	"math"

	"github.com/ironsheep/blend-modes-mcp/internal/blend"
)

// CompareResult reports how much two same-shaped images differ. The sum
// of absolute errors (SAE) is the headline metric for validating a blend
// output against a reference render; the rest localize how bad a
// disagreement is.
type CompareResult struct {
	// Width and Height are the shared image dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// SumAbsError is the sum of absolute sample differences across all
	// pixels and channels, in [0,1] sample units.
	SumAbsError float64 `json:"sum_abs_error"`

	// MeanAbsError is SumAbsError divided by the sample count.
	MeanAbsError float64 `json:"mean_abs_error"`

	// MaxAbsError is the largest single sample difference.
	MaxAbsError float64 `json:"max_abs_error"`

	// PixelsDifferent counts pixels with at least one sample differing
	// beyond the comparison tolerance.
	PixelsDifferent int `json:"pixels_different"`

	// FractionDifferent is PixelsDifferent over the pixel count.
	FractionDifferent float64 `json:"fraction_different"`

	// Identical is true when no sample differs beyond the tolerance.
	Identical bool `json:"identical"`
}

// compareTolerance forgives float conversion noise when deciding whether
// two samples differ.
const compareTolerance = 1e-9

// Compare measures the difference between two images of identical shape.
// Differing shapes return an error wrapping blend.ErrShapeMismatch.
func Compare(a, b *blend.Image) (*CompareResult, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %dx%d with %d channels vs %dx%d with %d channels",
			blend.ErrShapeMismatch,
			a.Width, a.Height, a.Channels,
			b.Width, b.Height, b.Channels)
	}

	res := &CompareResult{Width: a.Width, Height: a.Height}
	ch := a.Channels
	pixels := a.Width * a.Height
	for px := 0; px < pixels; px++ {
		off := px * ch
		differs := false
		for c := 0; c < ch; c++ {
			d := math.Abs(a.Pix[off+c] - b.Pix[off+c])
			res.SumAbsError += d
			if d > res.MaxAbsError {
				res.MaxAbsError = d
			}
			if d > compareTolerance {
				differs = true
			}
		}
		if differs {
			res.PixelsDifferent++
		}
	}

	if n := len(a.Pix); n > 0 {
		res.MeanAbsError = res.SumAbsError / float64(n)
	}
	if pixels > 0 {
		res.FractionDifferent = float64(res.PixelsDifferent) / float64(pixels)
	}
	res.Identical = res.PixelsDifferent == 0
	return res, nil
}
