package compositor

import (
	"bytes"
	"testing"

	"github.com/genricoloni/starfield/internal/domain"
)

func newTestFrame(w, h int) *Frame {
	f := NewFrame(domain.ScreenGeometry{Width: w, Height: h})
	f.Clear()
	return f
}

func TestFrame_Clear(t *testing.T) {
	f := NewFrame(domain.ScreenGeometry{Width: 7, Height: 5})
	for i := range f.Pix {
		f.Pix[i] = 0x7F
	}

	f.Clear()

	for i := 0; i < len(f.Pix); i += 4 {
		if f.Pix[i] != 0 || f.Pix[i+1] != 0 || f.Pix[i+2] != 0 || f.Pix[i+3] != 255 {
			t.Fatalf("pixel %d not opaque black: %v", i/4, f.Pix[i:i+4])
		}
	}
}

func TestFrame_SetIndexing(t *testing.T) {
	f := newTestFrame(10, 4)
	f.Set(3, 2, RGB{10, 20, 30})

	idx := (2*10 + 3) * 4
	want := []byte{10, 20, 30, 255}
	if !bytes.Equal(f.Pix[idx:idx+4], want) {
		t.Errorf("expected %v at index %d, got %v", want, idx, f.Pix[idx:idx+4])
	}
}

func TestFrame_OutOfBoundsIsClipped(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"Left", -1, 0},
		{"Top", 0, -1},
		{"Right", 10, 0},
		{"Bottom", 0, 10},
		{"Far", 5000, -5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFrame(10, 10)
			before := append([]byte(nil), f.Pix...)

			f.Set(tt.x, tt.y, RGB{255, 255, 255})
			f.Blend(tt.x, tt.y, RGB{255, 255, 255}, 1)

			if !bytes.Equal(before, f.Pix) {
				t.Error("out-of-bounds write modified the buffer")
			}
		})
	}
}

func TestFrame_BlendZeroAlphaIsNoop(t *testing.T) {
	f := newTestFrame(8, 8)
	for i := range f.Pix {
		f.Pix[i] = byte(i * 7)
	}
	before := append([]byte(nil), f.Pix...)

	f.SoftPoint(4, 4, 6, RGB{255, 255, 220}, 0)
	for x := 0; x < 8; x++ {
		f.Blend(x, x, RGB{200, 100, 50}, 0)
	}

	if !bytes.Equal(before, f.Pix) {
		t.Error("zero alpha changed the buffer")
	}
}

func TestFrame_BlendFullAlphaReplaces(t *testing.T) {
	f := newTestFrame(4, 4)
	f.Set(1, 1, RGB{9, 99, 199})

	// size 1 has falloff 1 at the center
	f.SoftPoint(1, 1, 1, RGB{200, 150, 100}, 1)

	c, a := f.At(1, 1)
	if c != (RGB{200, 150, 100}) || a != 255 {
		t.Errorf("expected exact color with full opacity, got %v alpha %d", c, a)
	}
}

func TestFrame_BlendHalfAlpha(t *testing.T) {
	f := newTestFrame(2, 2)
	f.Blend(0, 0, RGB{255, 100, 0}, 0.5)

	c, a := f.At(0, 0)
	want := RGB{128, 50, 0}
	if c != want || a != 255 {
		t.Errorf("expected %v/255, got %v/%d", want, c, a)
	}
}

func TestFrame_FillSquare(t *testing.T) {
	f := newTestFrame(10, 10)
	f.FillSquare(8, 8, 4, RGB{1, 2, 3})

	painted := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c, _ := f.At(x, y); c == (RGB{1, 2, 3}) {
				painted++
			}
		}
	}
	// Only the 2x2 corner survives clipping
	if painted != 4 {
		t.Errorf("expected 4 painted pixels, got %d", painted)
	}
}

func TestFrame_SoftPointFalloff(t *testing.T) {
	f := newTestFrame(20, 20)
	f.SoftPoint(10, 10, 6, RGB{255, 255, 255}, 1)

	center, _ := f.At(10, 10)
	inner, _ := f.At(11, 10)
	edge, _ := f.At(13, 10)
	outside, _ := f.At(14, 10)

	if center.R != 255 {
		t.Errorf("center should be full intensity, got %d", center.R)
	}
	if inner.R == 0 || inner.R >= center.R {
		t.Errorf("inner pixel should be partially lit, got %d", inner.R)
	}
	// dist == radius gives zero falloff
	if edge.R != 0 {
		t.Errorf("edge pixel should stay black, got %d", edge.R)
	}
	if outside.R != 0 {
		t.Errorf("pixel outside the footprint was touched: %d", outside.R)
	}
}
