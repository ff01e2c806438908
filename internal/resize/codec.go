package resize

import (
	"github.com/vatsal3003/image-resize/pkg/models"
)

// Codec opens source images. Open must wrap ErrSourceNotFound when the path
// does not exist and ErrInvalidImage when it cannot be decoded.
type Codec interface {
	Open(path string) (Image, error)
}

// Image is a decoded image handle. Close releases whatever Open acquired and
// is safe to call more than once.
type Image interface {
	Size() models.Dimensions
	Resize(size models.Dimensions) (Image, error)
	Save(path string) error
	Close() error
}
