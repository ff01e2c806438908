package resize

import (
	"math"

	"github.com/vatsal3003/image-resize/pkg/models"
)

// ValidateRequest rejects requests the processor must never act on. Checks
// run in a fixed order so the first problem found is the one reported.
func ValidateRequest(req models.ResizeRequest) error {
	if req.SourcePath == "" {
		return ErrNoSource
	}

	if req.Scale != nil {
		s := *req.Scale
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return ErrInvalidScale
		}
	}

	if req.Width != nil && *req.Width <= 0 {
		return ErrInvalidWidth
	}

	if req.Height != nil && *req.Height <= 0 {
		return ErrInvalidHeight
	}

	hasDimension := req.Width != nil || req.Height != nil
	if req.Scale != nil && hasDimension {
		return ErrExclusiveOptions
	}

	if req.Scale == nil && !hasDimension {
		return ErrNoResizeOptions
	}

	return nil
}
