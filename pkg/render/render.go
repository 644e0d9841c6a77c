// Package render turns a computed layout into pixels: the blurred, dimmed
// background fill and the foreground composite on top of it.
//
// This is where layout coordinates are truncated to integers, at the point
// of use; the layout package itself stays in floating point.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/menta2k/photofit/pkg/layout"
)

// Background produces a canvasW x canvasH fill layer from the source photo:
// the source resized to the background rect, Gaussian-blurred with blurSigma,
// its luminance scaled by brightness, then pasted onto a solid black canvas
// at the rect's origin. Portions of the rect outside the canvas bounds are
// cropped by the paste. Same inputs always produce the same buffer.
//
// brightness is a luminance multiply, not alpha compositing: values below 1
// darken the fill, values above 1 brighten it.
func Background(src image.Image, bg layout.Rect, canvasW, canvasH int, blurSigma, brightness float64) *image.NRGBA {
	fill := imaging.Resize(src, int(bg.Width), int(bg.Height), imaging.Lanczos)
	if blurSigma > 0 {
		fill = imaging.Blur(fill, blurSigma)
	}
	fill = dim(fill, brightness)

	canvas := imaging.New(canvasW, canvasH, color.NRGBA{0, 0, 0, 255})
	return imaging.Paste(canvas, fill, image.Pt(int(bg.X), int(bg.Y)))
}

// Composite resizes the source photo to the foreground rect and pastes it
// over the filled canvas at the rect's origin. The foreground rect is fully
// inside the canvas, so nothing is cropped; the paste overwrites background
// pixels without blending.
func Composite(canvas image.Image, src image.Image, fg layout.Rect) *image.NRGBA {
	fore := imaging.Resize(src, int(fg.Width), int(fg.Height), imaging.Lanczos)
	return imaging.Paste(canvas, fore, image.Pt(int(fg.X), int(fg.Y)))
}

// dim scales every channel of every pixel by factor, clamping to the valid
// range. Alpha is left untouched.
func dim(img image.Image, factor float64) *image.NRGBA {
	if factor == 1 {
		return imaging.Clone(img)
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R = clampChannel(float64(c.R) * factor)
		c.G = clampChannel(float64(c.G) * factor)
		c.B = clampChannel(float64(c.B) * factor)
		return c
	})
}

func clampChannel(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
