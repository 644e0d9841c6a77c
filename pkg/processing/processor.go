// Package processing wires one image through the full pipeline: decode,
// orientation correction, layout, background fill, foreground composite and
// JPEG encoding.
package processing

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/menta2k/photofit/pkg/layout"
	"github.com/menta2k/photofit/pkg/orient"
	"github.com/menta2k/photofit/pkg/quality"
	"github.com/menta2k/photofit/pkg/render"
)

// SupportedFormats is the closed set of input formats, matched by file
// extension before any decode is attempted.
var SupportedFormats = []string{"png", "jpg", "jpeg", "bmp"}

// UnsupportedFormatError reports a file whose extension is outside the
// supported set. It is raised before the file is opened.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported image format %q for %s (supported: %s)",
		e.Ext, e.Path, strings.Join(SupportedFormats, ", "))
}

// DecodeError reports corrupt or unreadable image data.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// OutputConflictError reports a destination path that already exists.
// Existing files are never overwritten.
type OutputConflictError struct {
	Path string
}

func (e *OutputConflictError) Error() string {
	return fmt.Sprintf("output file already exists: %s", e.Path)
}

// SourceImage is one decoded input photo. It is owned by a single processing
// run and immutable once decoded; orientation correction produces a new
// buffer rather than mutating the pixels in place.
type SourceImage struct {
	Image       image.Image
	Width       int
	Height      int
	ByteSize    int64
	Orientation orient.Orientation
}

// Config holds the parameters for one processor.
type Config struct {
	CanvasWidth  int     // output canvas width in pixels
	CanvasHeight int     // output canvas height in pixels
	BlurSigma    float64 // Gaussian blur applied to the background fill
	Brightness   float64 // background luminance multiplier, below 1 darkens
	Upscale      float64 // background enlargement beyond canvas coverage
}

// DefaultConfig returns the stock processing parameters: an 800x600 canvas
// with a heavily blurred background at half brightness, enlarged by 10% so
// the blur cannot expose edge gaps.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  800,
		CanvasHeight: 600,
		BlurSigma:    10,
		Brightness:   0.5,
		Upscale:      1.1,
	}
}

// Processor composites photos onto a fixed-size canvas.
type Processor struct {
	config Config
}

// New creates a Processor with the default configuration.
func New() *Processor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Processor with a custom configuration.
func NewWithConfig(config Config) *Processor {
	return &Processor{config: config}
}

// Config returns the processor's configuration.
func (p *Processor) Config() Config {
	return p.config
}

// Load reads and decodes the image at path. The file extension is checked
// against SupportedFormats before the file is read; decode failures yield a
// DecodeError. The EXIF orientation tag is extracted alongside the pixels so
// Process can bake it in.
func (p *Processor) Load(path string) (*SourceImage, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !isSupported(ext) {
		return nil, &UnsupportedFormatError{Path: path, Ext: ext}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	o, err := orient.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	b := img.Bounds()
	return &SourceImage{
		Image:       img,
		Width:       b.Dx(),
		Height:      b.Dy(),
		ByteSize:    int64(len(data)),
		Orientation: o,
	}, nil
}

// Process composites src onto the configured canvas: the orientation-corrected
// photo scaled to fit, centered over an enlarged, blurred, dimmed copy of
// itself that fills the canvas. It is a pure function of its input; no state
// is carried between calls, and src is not modified.
func (p *Processor) Process(src *SourceImage) (*image.NRGBA, error) {
	img := orient.Normalize(src.Image, src.Orientation)
	b := img.Bounds()

	l, err := layout.Compute(
		float64(b.Dx()), float64(b.Dy()),
		float64(p.config.CanvasWidth), float64(p.config.CanvasHeight),
		p.config.Upscale,
	)
	if err != nil {
		return nil, err
	}

	canvas := render.Background(img, l.Background,
		p.config.CanvasWidth, p.config.CanvasHeight,
		p.config.BlurSigma, p.config.Brightness)

	return render.Composite(canvas, img, l.Foreground), nil
}

// Save encodes img as a JPEG at path using the given policy, regardless of
// the input's format. A file already present at path is a hard error, never
// overwritten; the destination is created exclusively so a concurrent batch
// cannot race past the check. A failed encode removes the destination so no
// partial output is left behind.
//
// The policy's Optimize flag is advisory: it is honored by encoders that
// expose an optimization pass, while the built-in encoder applies the
// quality setting alone.
func (p *Processor) Save(img image.Image, path string, pol quality.Policy) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &OutputConflictError{Path: path}
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: pol.Quality}); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// ProcessFile is a convenience wrapper: load the input, composite it, select
// the output policy from the input's byte size and save the result.
func (p *Processor) ProcessFile(inputPath, outputPath string) error {
	src, err := p.Load(inputPath)
	if err != nil {
		return err
	}

	out, err := p.Process(src)
	if err != nil {
		return fmt.Errorf("processing %s: %w", inputPath, err)
	}

	return p.Save(out, outputPath, quality.Select(src.ByteSize))
}

func isSupported(ext string) bool {
	for _, s := range SupportedFormats {
		if ext == s {
			return true
		}
	}
	return false
}
