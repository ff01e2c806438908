package resize

import (
	"errors"
)

var (
	ErrSourceNotFound    = errors.New("source image not found")
	ErrInvalidImage      = errors.New("source is not a valid image")
	ErrUnsupportedFormat = errors.New("unsupported target image format")
)

// ArgumentError reports a request that was rejected before any I/O.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

var (
	ErrNoSource           = &ArgumentError{Reason: "No source image specified"}
	ErrInvalidScale       = &ArgumentError{Reason: "Invalid value of scale argument"}
	ErrInvalidWidth       = &ArgumentError{Reason: "Invalid value of width option"}
	ErrInvalidHeight      = &ArgumentError{Reason: "Invalid value of height option"}
	ErrExclusiveOptions   = &ArgumentError{Reason: "Width/height and scale are exclusive options"}
	ErrNoResizeOptions    = &ArgumentError{Reason: "No resize options specified"}
	ErrEmptyResultingSize = &ArgumentError{Reason: "Resulting image size is empty"}

	ErrResultingSizeTooLarge = &ArgumentError{Reason: "Resulting image size is too large"}
)

// Describe turns an error returned by the processor into the one-line
// message shown to the user.
func Describe(err error) string {
	var argErr *ArgumentError
	switch {
	case errors.As(err, &argErr):
		return argErr.Reason
	case errors.Is(err, ErrSourceNotFound):
		return "The source image not found."
	case errors.Is(err, ErrInvalidImage):
		return "The source is not a valid image file."
	case errors.Is(err, ErrUnsupportedFormat):
		return "The target image format is not supported."
	default:
		return err.Error()
	}
}
