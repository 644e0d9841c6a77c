package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/menta2k/photofit/pkg/layout"
)

// createUniformImage creates a test image filled with a single color.
func createUniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestBackgroundCanvasSize(t *testing.T) {
	src := createUniformImage(40, 30, color.NRGBA{200, 100, 50, 255})
	bg := layout.Rect{X: -8, Y: -6, Width: 176, Height: 132}

	out := Background(src, bg, 160, 120, 2, 0.5)
	b := out.Bounds()
	if b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("Expected 160x120 canvas, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestBackgroundBrightnessMultiply(t *testing.T) {
	src := createUniformImage(40, 30, color.NRGBA{200, 100, 50, 255})
	bg := layout.Rect{X: 0, Y: 0, Width: 160, Height: 120}

	// No blur, so a uniform source stays uniform and the multiply is exact.
	out := Background(src, bg, 160, 120, 0, 0.5)

	got := out.NRGBAAt(80, 60)
	want := color.NRGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("Expected dimmed pixel %v, got %v", want, got)
	}
}

func TestBackgroundBrightnessClamps(t *testing.T) {
	src := createUniformImage(40, 30, color.NRGBA{200, 100, 50, 255})
	bg := layout.Rect{X: 0, Y: 0, Width: 160, Height: 120}

	out := Background(src, bg, 160, 120, 0, 2.0)

	got := out.NRGBAAt(80, 60)
	want := color.NRGBA{255, 200, 100, 255}
	if got != want {
		t.Errorf("Expected brightened pixel %v, got %v", want, got)
	}
}

func TestBackgroundUncoveredAreaIsBlack(t *testing.T) {
	// A background rect narrower than the canvas leaves black bars at the
	// sides; the fill never bleeds past its rect.
	src := createUniformImage(40, 30, color.NRGBA{200, 200, 200, 255})
	bg := layout.Rect{X: 40, Y: 0, Width: 80, Height: 120}

	out := Background(src, bg, 160, 120, 0, 1.0)

	black := color.NRGBA{0, 0, 0, 255}
	if got := out.NRGBAAt(10, 60); got != black {
		t.Errorf("Expected black left margin, got %v", got)
	}
	if got := out.NRGBAAt(150, 60); got != black {
		t.Errorf("Expected black right margin, got %v", got)
	}
	if got := out.NRGBAAt(80, 60); got == black {
		t.Error("Expected filled center, got black")
	}
}

func TestBackgroundCropsOverhang(t *testing.T) {
	// An oversized background rect with a negative origin is cropped to the
	// canvas instead of panicking or wrapping.
	src := createUniformImage(40, 30, color.NRGBA{120, 120, 120, 255})
	bg := layout.Rect{X: -20, Y: -15, Width: 200, Height: 150}

	out := Background(src, bg, 160, 120, 0, 1.0)

	black := color.NRGBA{0, 0, 0, 255}
	for _, pt := range []image.Point{{0, 0}, {159, 0}, {0, 119}, {159, 119}, {80, 60}} {
		if got := out.NRGBAAt(pt.X, pt.Y); got == black {
			t.Errorf("Expected covered pixel at %v, got black", pt)
		}
	}
}

func TestBackgroundDeterminism(t *testing.T) {
	src := createTestPattern(40, 30)
	bg := layout.Rect{X: -8, Y: -6, Width: 176, Height: 132}

	a := Background(src, bg, 160, 120, 3, 0.5)
	b := Background(src, bg, 160, 120, 3, 0.5)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Background produced different buffers for identical inputs")
	}
}

func TestComposite(t *testing.T) {
	canvas := createUniformImage(160, 120, color.NRGBA{0, 0, 0, 255})
	src := createUniformImage(40, 40, color.NRGBA{255, 255, 255, 255})
	fg := layout.Rect{X: 40, Y: 0, Width: 80, Height: 120}

	out := Composite(canvas, src, fg)

	b := out.Bounds()
	if b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("Expected 160x120 output, got %dx%d", b.Dx(), b.Dy())
	}

	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	// Foreground fully overwrites the canvas beneath it.
	if got := out.NRGBAAt(80, 60); got != white {
		t.Errorf("Expected white foreground pixel, got %v", got)
	}

	// Pixels outside the foreground rect keep their canvas value.
	if got := out.NRGBAAt(10, 60); got != black {
		t.Errorf("Expected untouched canvas pixel on the left, got %v", got)
	}
	if got := out.NRGBAAt(150, 60); got != black {
		t.Errorf("Expected untouched canvas pixel on the right, got %v", got)
	}
}

func TestCompositeTruncatesCoordinates(t *testing.T) {
	canvas := createUniformImage(160, 120, color.NRGBA{0, 0, 0, 255})
	src := createUniformImage(40, 40, color.NRGBA{255, 255, 255, 255})
	fg := layout.Rect{X: 40.9, Y: 0.9, Width: 80.9, Height: 118.9}

	out := Composite(canvas, src, fg)

	// Truncation, not rounding: the paste lands at (40, 0) with an 80x118 size.
	white := color.NRGBA{255, 255, 255, 255}
	if got := out.NRGBAAt(40, 0); got != white {
		t.Errorf("Expected foreground to start at (40,0), got %v", got)
	}
	if got := out.NRGBAAt(39, 0); got == white {
		t.Error("Expected canvas pixel at (39,0), got foreground")
	}
	if got := out.NRGBAAt(120, 0); got == white {
		t.Error("Expected canvas pixel at (120,0), got foreground")
	}
}

// createTestPattern creates an image with enough variation for blur to act on.
func createTestPattern(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{32, 32, 32, 255})
			}
		}
	}
	return img
}

func BenchmarkBackground(b *testing.B) {
	src := createTestPattern(400, 300)
	bg := layout.Rect{X: -40, Y: -30, Width: 880, Height: 660}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Background(src, bg, 800, 600, 10, 0.5)
	}
}
