// Package compositor writes colored, alpha-blended pixels into an RGBA8 frame buffer.
// All pixel writes in the program go through this package.
package compositor

import (
	"math"

	"github.com/genricoloni/starfield/internal/domain"
)

const bytesPerPixel = 4

// RGB is an opaque 8-bit color
type RGB struct {
	R, G, B uint8
}

// Frame is a row-major RGBA8 pixel buffer
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a frame covering the screen
func NewFrame(screen domain.ScreenGeometry) *Frame {
	return &Frame{
		Width:  screen.Width,
		Height: screen.Height,
		Pix:    make([]byte, screen.FrameSize()),
	}
}

// Clear resets every pixel to opaque black
func (f *Frame) Clear() {
	if len(f.Pix) == 0 {
		return
	}
	f.Pix[0], f.Pix[1], f.Pix[2], f.Pix[3] = 0, 0, 0, 255
	// Exponential copy
	for filled := bytesPerPixel; filled < len(f.Pix); filled *= 2 {
		copy(f.Pix[filled:], f.Pix[:filled])
	}
}

// inBounds returns true if in frame bounds
func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

func (f *Frame) index(x, y int) int {
	return (y*f.Width + x) * bytesPerPixel
}

// At returns the color and alpha stored at (x, y).
// Out-of-bounds reads return zero values.
func (f *Frame) At(x, y int) (RGB, uint8) {
	if !f.inBounds(x, y) {
		return RGB{}, 0
	}
	i := f.index(x, y)
	return RGB{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}, f.Pix[i+3]
}

// Set writes an opaque pixel, replacing whatever was there
func (f *Frame) Set(x, y int, c RGB) {
	if !f.inBounds(x, y) {
		return
	}
	i := f.index(x, y)
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = 255
}

// Blend composites c over the existing pixel with linear alpha.
// The alpha byte becomes opaque; a non-positive alpha leaves the pixel untouched.
func (f *Frame) Blend(x, y int, c RGB, alpha float64) {
	if alpha <= 0 || !f.inBounds(x, y) {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	i := f.index(x, y)
	f.Pix[i] = blendChannel(f.Pix[i], c.R, alpha)
	f.Pix[i+1] = blendChannel(f.Pix[i+1], c.G, alpha)
	f.Pix[i+2] = blendChannel(f.Pix[i+2], c.B, alpha)
	f.Pix[i+3] = 255
}

// FillSquare draws an opaque size x size square with its top-left corner at (x, y)
func (f *Frame) FillSquare(x, y, size int, c RGB) {
	for dx := 0; dx < size; dx++ {
		for dy := 0; dy < size; dy++ {
			f.Set(x+dx, y+dy, c)
		}
	}
}

// SoftPoint draws a soft-edged disc of the given size centered on (cx, cy).
// Each pixel is attenuated by a quadratic radial falloff before blending.
func (f *Frame) SoftPoint(cx, cy, size int, c RGB, alpha float64) {
	half := size / 2
	radius := float64(size) / 2
	for dx := -half; dx <= half; dx++ {
		for dy := -half; dy <= half; dy++ {
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			falloff := 1 - clamp01(dist/radius)
			falloff *= falloff
			f.Blend(cx+dx, cy+dy, c, clamp01(alpha*falloff))
		}
	}
}

// blendChannel mixes two channels in normalized space and rounds back to a byte
func blendChannel(dst, src uint8, alpha float64) uint8 {
	d := float64(dst) / 255.0
	s := float64(src) / 255.0
	return toByte((d*(1-alpha) + s*alpha) * 255.0)
}

// toByte converts float to uint8 with rounding
func toByte(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
