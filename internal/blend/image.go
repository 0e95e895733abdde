package blend

// Image holds decoded raster data as float64 samples normalized to [0,1].
//
// Samples are stored row-major with channels interleaved: channel c of the
// pixel at (x, y) lives at Pix[(y*Width+x)*Channels+c]. The engine never
// modifies its inputs; every operation allocates a fresh buffer for its
// result.
type Image struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Channels is the number of samples per pixel (3 for RGB).
	Channels int

	// Pix is the sample buffer, length Width*Height*Channels.
	Pix []float64
}

// NewImage allocates a zeroed image with the given dimensions.
func NewImage(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}
}

// SameShape reports whether m and other have identical width, height, and
// channel count.
func (m *Image) SameShape(other *Image) bool {
	return m.Width == other.Width && m.Height == other.Height && m.Channels == other.Channels
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	out := NewImage(m.Width, m.Height, m.Channels)
	copy(out.Pix, m.Pix)
	return out
}

// At returns the sample for channel c of the pixel at (x, y).
// Coordinates are 0-based; no bounds checking is performed.
func (m *Image) At(x, y, c int) float64 {
	return m.Pix[(y*m.Width+x)*m.Channels+c]
}

// Set assigns the sample for channel c of the pixel at (x, y).
func (m *Image) Set(x, y, c int, v float64) {
	m.Pix[(y*m.Width+x)*m.Channels+c] = v
}
