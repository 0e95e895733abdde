package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/blend-modes-mcp/internal/blend"
)

func TestToFloat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 128, B: 255, A: 255})

	got := ToFloat(img)
	if got.Width != 2 || got.Height != 1 || got.Channels != 3 {
		t.Fatalf("shape %dx%dx%d, want 2x1x3", got.Width, got.Height, got.Channels)
	}

	want := []float64{1, 0, 51.0 / 255, 0, 128.0 / 255, 1}
	for i, v := range want {
		if math.Abs(got.Pix[i]-v) > 1e-12 {
			t.Errorf("Pix[%d] = %v, want %v", i, got.Pix[i], v)
		}
	}
}

func TestToFloat_DropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 150, B: 200, A: 128})

	got := ToFloat(img)
	want := []float64{100.0 / 255, 150.0 / 255, 200.0 / 255}
	for i, v := range want {
		if math.Abs(got.Pix[i]-v) > 1e-12 {
			t.Errorf("Pix[%d] = %v, want %v (alpha must not scale color)", i, got.Pix[i], v)
		}
	}
}

func TestFromFloat_RoundTrip(t *testing.T) {
	// 8-bit levels must survive the float conversion exactly.
	levels := []uint8{0, 1, 2, 63, 127, 128, 200, 254, 255}
	img := image.NewNRGBA(image.Rect(0, 0, len(levels), 1))
	for x, v := range levels {
		img.SetNRGBA(x, 0, color.NRGBA{R: v, G: 255 - v, B: v / 2, A: 255})
	}

	back, err := FromFloat(ToFloat(img))
	if err != nil {
		t.Fatalf("FromFloat failed: %v", err)
	}
	for x := range levels {
		got := back.NRGBAAt(x, 0)
		want := img.NRGBAAt(x, 0)
		if got != want {
			t.Errorf("pixel %d: got %v, want %v", x, got, want)
		}
	}
}

func TestFromFloat_GrayReplication(t *testing.T) {
	img := blend.NewImage(1, 1, 1)
	img.Pix[0] = 0.5

	got, err := FromFloat(img)
	if err != nil {
		t.Fatalf("FromFloat failed: %v", err)
	}
	want := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	if px := got.NRGBAAt(0, 0); px != want {
		t.Errorf("pixel = %v, want %v", px, want)
	}
}

func TestFromFloat_ClampsOutOfRange(t *testing.T) {
	img := blend.NewImage(2, 1, 3)
	copy(img.Pix, []float64{-0.5, -0.01, 0.5, 1.01, 2.0, 0.5})

	got, err := FromFloat(img)
	if err != nil {
		t.Fatalf("FromFloat failed: %v", err)
	}
	if px := got.NRGBAAt(0, 0); px != (color.NRGBA{R: 0, G: 0, B: 128, A: 255}) {
		t.Errorf("pixel 0 = %v, want clamped lows", px)
	}
	if px := got.NRGBAAt(1, 0); px != (color.NRGBA{R: 255, G: 255, B: 128, A: 255}) {
		t.Errorf("pixel 1 = %v, want clamped highs", px)
	}
}

func TestFromFloat_ExtraChannelsIgnored(t *testing.T) {
	img := blend.NewImage(1, 1, 4)
	copy(img.Pix, []float64{0.2, 0.4, 0.6, 0.9})

	got, err := FromFloat(img)
	if err != nil {
		t.Fatalf("FromFloat failed: %v", err)
	}
	want := color.NRGBA{R: 51, G: 102, B: 153, A: 255}
	if px := got.NRGBAAt(0, 0); px != want {
		t.Errorf("pixel = %v, want %v", px, want)
	}
}

func TestFromFloat_NoChannels(t *testing.T) {
	img := &blend.Image{Width: 1, Height: 1, Channels: 0}
	if _, err := FromFloat(img); err == nil {
		t.Fatal("FromFloat should reject images without channels")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.25, 64},
		{100.0 / 255, 100},
		{-0.3, 0},
		{1.7, 255},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
