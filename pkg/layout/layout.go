// Package layout computes where the two layers of a composited canvas go:
// the aspect-preserved foreground copy of the source photo and the enlarged
// background fill behind it.
//
// The computation is pure geometry. It never touches pixels, and it stays in
// floating point throughout; consumers truncate coordinates to integers at
// the point of use so rounding error is not compounded across the two rect
// computations.
package layout

import "fmt"

// Rect is an axis-aligned rectangle in canvas coordinate space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Layout holds the placement of both layers for one canvas. The foreground
// rect is always fully contained within the canvas bounds. The background
// rect fully covers the canvas when the upscale factor is above 1; its X/Y
// may be negative and its far edges may exceed the canvas size, with the
// excess cropped at composite time.
type Layout struct {
	Foreground Rect
	Background Rect
}

// DegenerateGeometryError reports a zero-area source or canvas, caught
// before any aspect ratio is computed.
type DegenerateGeometryError struct {
	SourceWidth  float64
	SourceHeight float64
	CanvasWidth  float64
	CanvasHeight float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: source %gx%g, canvas %gx%g",
		e.SourceWidth, e.SourceHeight, e.CanvasWidth, e.CanvasHeight)
}

// Compute places a srcW x srcH source onto a canvasW x canvasH canvas.
//
// When the canvas is relatively wider than the source (ar_in < ar_out) the
// foreground matches the canvas height and is centered horizontally; the
// background matches the canvas width before upscaling. When the canvas is
// relatively taller the roles of the axes swap. Equal aspect ratios are the
// degenerate case where the foreground exactly fills the canvas and the
// background is the foreground scaled by upscale.
//
// The branch selection is also what keeps the foreground inside the canvas:
// in the match-widths branch ar_in >= ar_out, so the resulting height
// canvasW/ar_in can never exceed canvasH. No clamping is performed.
//
// upscale enlarges the background beyond exact canvas coverage so blurring
// cannot expose edge gaps. At upscale == 1 the background is exactly
// canvas-sized on the matched axis, with no overscan margin left to hide
// blur edge effects; Compute performs no correction for that boundary case.
func Compute(srcW, srcH, canvasW, canvasH, upscale float64) (Layout, error) {
	if srcW <= 0 || srcH <= 0 || canvasW <= 0 || canvasH <= 0 {
		return Layout{}, &DegenerateGeometryError{
			SourceWidth:  srcW,
			SourceHeight: srcH,
			CanvasWidth:  canvasW,
			CanvasHeight: canvasH,
		}
	}
	if upscale < 1 {
		return Layout{}, fmt.Errorf("upscale factor must be at least 1, got %g", upscale)
	}

	arIn := srcW / srcH
	arOut := canvasW / canvasH

	var fg, bg Rect
	if arIn < arOut {
		// Canvas is relatively wider: match heights.
		fg.Height = canvasH
		fg.Width = fg.Height * arIn
		fg.X = (canvasW - fg.Width) / 2
		fg.Y = 0

		bg.Width = canvasW * upscale
		bg.Height = canvasW / arIn * upscale
		bg.X = (canvasW - bg.Width) / 2
		bg.Y = (fg.Height - bg.Height) / 2
	} else {
		// Canvas is relatively taller: match widths.
		fg.Width = canvasW
		fg.Height = fg.Width / arIn
		fg.X = 0
		fg.Y = (canvasH - fg.Height) / 2

		bg.Height = canvasH * upscale
		bg.Width = canvasH * arIn * upscale
		bg.X = (fg.Width - bg.Width) / 2
		bg.Y = 0
	}

	return Layout{Foreground: fg, Background: bg}, nil
}
