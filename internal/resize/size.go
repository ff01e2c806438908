package resize

import (
	"github.com/vatsal3003/image-resize/pkg/models"
)

const (
	// MaxDimension bounds either side of a computed target.
	MaxDimension = 1<<16 - 1
	// MaxPixels bounds the target area; the resampler allocates 4 bytes per pixel.
	MaxPixels = 1 << 28
)

// NewSize computes the target dimensions for a validated request. Fractional
// results are truncated toward zero.
func NewSize(src models.Dimensions, req models.ResizeRequest) (models.Dimensions, error) {
	var w, h float64

	switch {
	case req.Scale != nil:
		w = float64(src.Width) * *req.Scale
		h = float64(src.Height) * *req.Scale
	case req.Width == nil && req.Height != nil:
		w = float64(*req.Height) * float64(src.Width) / float64(src.Height)
		h = float64(*req.Height)
	case req.Width != nil && req.Height == nil:
		w = float64(*req.Width)
		h = float64(*req.Width) * float64(src.Height) / float64(src.Width)
	case req.Width != nil && req.Height != nil:
		w = float64(*req.Width)
		h = float64(*req.Height)
	default:
		return models.Dimensions{}, ErrNoResizeOptions
	}

	// Checked before the int conversion, which is undefined for huge or
	// non-finite values.
	if !(w <= MaxDimension && h <= MaxDimension) {
		return models.Dimensions{}, ErrResultingSizeTooLarge
	}

	dst := models.Dimensions{Width: int(w), Height: int(h)}
	if dst.Width < 1 || dst.Height < 1 {
		return models.Dimensions{}, ErrEmptyResultingSize
	}

	if dst.Width*dst.Height > MaxPixels {
		return models.Dimensions{}, ErrResultingSizeTooLarge
	}

	return dst, nil
}
