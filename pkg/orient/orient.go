// Package orient corrects a decoded image's pixel orientation using the
// embedded EXIF orientation tag (0x0112), so every downstream computation can
// treat the photo as if it had been captured upright.
package orient

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Orientation is the camera rotation recorded in a photo's metadata,
// expressed as the counter-clockwise rotation that makes the stored pixels
// upright.
type Orientation int

const (
	// Normal means the pixels are already upright (tag 1 or no tag).
	Normal Orientation = iota

	// Rotate90 corresponds to EXIF tag 8.
	Rotate90

	// Rotate180 corresponds to EXIF tag 3.
	Rotate180

	// Rotate270 corresponds to EXIF tag 6.
	Rotate270
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Normal:
		return "normal"
	case Rotate90:
		return "rotate-90"
	case Rotate180:
		return "rotate-180"
	case Rotate270:
		return "rotate-270"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// UnsupportedOrientationError reports an orientation tag value outside the
// recognized set. The mirrored forms (tags 2, 4, 5, 7) are rejected rather
// than guessed at.
type UnsupportedOrientationError struct {
	Tag int
}

func (e *UnsupportedOrientationError) Error() string {
	return fmt.Sprintf("unsupported EXIF orientation tag value %d", e.Tag)
}

// FromTag maps an EXIF orientation tag value to an Orientation. Recognized
// values are 1 (upright), 3, 6 and 8; anything else yields an
// UnsupportedOrientationError.
func FromTag(tag int) (Orientation, error) {
	switch tag {
	case 1:
		return Normal, nil
	case 3:
		return Rotate180, nil
	case 6:
		return Rotate270, nil
	case 8:
		return Rotate90, nil
	default:
		return Normal, &UnsupportedOrientationError{Tag: tag}
	}
}

// Read extracts the orientation tag from the raw image bytes in r.
//
// A missing EXIF block, or an EXIF block without an orientation entry, means
// the image is taken as already upright and Normal is returned without error.
// A tag that is present but carries an unrecognized value is an error:
// silently skipping it would ship a sideways photo.
func Read(r io.Reader) (Orientation, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return Normal, nil
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return Normal, nil
	}
	v, err := tag.Int(0)
	if err != nil {
		return Normal, nil
	}
	return FromTag(v)
}

// Normalize returns img with o baked into the pixels. Rotations produce a
// new buffer; the input is never mutated. Normal returns img unchanged, so
// re-applying Normalize to an already-normalized image is a no-op.
func Normalize(img image.Image, o Orientation) image.Image {
	switch o {
	case Rotate90:
		return imaging.Rotate90(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate270:
		return imaging.Rotate270(img)
	default:
		return img
	}
}
