// Package photofit fits photos of any size onto a fixed-size canvas without
// letterboxing.
//
// The photo itself is scaled to fit inside the canvas with its aspect ratio
// preserved, and the area around it is filled with an enlarged, blurred,
// dimmed copy of the same photo, so the output always has the exact canvas
// dimensions and no bare borders.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/menta2k/photofit"
//	)
//
//	func main() {
//		fitter := photofit.New()
//
//		// Load the photo; the EXIF orientation tag comes along for free.
//		src, err := fitter.Load("photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Composite it onto the canvas.
//		out, err := fitter.Process(src)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Save as JPEG with quality chosen from the input's file size.
//		if err := fitter.Save(out, "photo_fitted.jpg", src.ByteSize); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
//  1. Layout (pkg/layout): Pure geometry placing foreground and background
//  2. Orient (pkg/orient): EXIF orientation correction
//  3. Render (pkg/render): Background fill and foreground compositing
//  4. Quality (pkg/quality): Output encoder policy from input file size
//
// pkg/processing ties them together around decode and encode. Everything is
// deterministic: the same input file always produces the same output bytes.
// Components hold no shared mutable state, so a batch driver may process
// independent images concurrently with separate SourceImage values.
package photofit

import (
	"image"

	"github.com/menta2k/photofit/pkg/processing"
	"github.com/menta2k/photofit/pkg/quality"
)

// Version of the photofit library
const Version = "1.0.0"

// Fitter provides a high-level interface for fitting photos onto a canvas
type Fitter struct {
	processor *processing.Processor
}

// New creates a new Fitter with default configuration
func New() *Fitter {
	return &Fitter{
		processor: processing.New(),
	}
}

// NewWithConfig creates a new Fitter with custom configuration
func NewWithConfig(config processing.Config) *Fitter {
	return &Fitter{
		processor: processing.NewWithConfig(config),
	}
}

// Config returns the fitter's processing configuration
func (f *Fitter) Config() processing.Config {
	return f.processor.Config()
}

// Load reads and decodes the image at path, including its orientation tag
// and on-disk byte size
func (f *Fitter) Load(path string) (*processing.SourceImage, error) {
	return f.processor.Load(path)
}

// Process composites a loaded photo onto the configured canvas
func (f *Fitter) Process(src *processing.SourceImage) (*image.NRGBA, error) {
	return f.processor.Process(src)
}

// Save encodes img as a JPEG at path with the quality policy selected from
// the input's byte size. An existing file at path is never overwritten.
func (f *Fitter) Save(img image.Image, path string, inputByteSize int64) error {
	return f.processor.Save(img, path, quality.Select(inputByteSize))
}

// ProcessFile loads, composites and saves a single photo
func (f *Fitter) ProcessFile(inputPath, outputPath string) error {
	return f.processor.ProcessFile(inputPath, outputPath)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
