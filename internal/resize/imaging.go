package resize

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/vatsal3003/image-resize/pkg/models"
)

const DefaultJPEGQuality = 95

var filters = map[string]imaging.ResampleFilter{
	"nearest":           imaging.NearestNeighbor,
	"box":               imaging.Box,
	"linear":            imaging.Linear,
	"hermite":           imaging.Hermite,
	"mitchellnetravali": imaging.MitchellNetravali,
	"catmullrom":        imaging.CatmullRom,
	"bspline":           imaging.BSpline,
	"gaussian":          imaging.Gaussian,
	"bartlett":          imaging.Bartlett,
	"lanczos":           imaging.Lanczos,
	"hann":              imaging.Hann,
	"hamming":           imaging.Hamming,
	"blackman":          imaging.Blackman,
	"welch":             imaging.Welch,
	"cosine":            imaging.Cosine,
}

// LookupFilter returns the resample filter registered under name.
func LookupFilter(name string) (imaging.ResampleFilter, bool) {
	f, ok := filters[strings.ToLower(name)]
	return f, ok
}

type CodecOptions struct {
	Filter          string
	JPEGQuality     int
	AutoOrientation bool
}

// ImagingCodec decodes, resamples and encodes with disintegration/imaging.
type ImagingCodec struct {
	filter      imaging.ResampleFilter
	jpegQuality int
	autoOrient  bool
}

func NewImagingCodec(opts CodecOptions) (*ImagingCodec, error) {
	filter := imaging.Lanczos
	if opts.Filter != "" {
		f, ok := LookupFilter(opts.Filter)
		if !ok {
			return nil, &ArgumentError{Reason: fmt.Sprintf("Unknown resample filter %q", opts.Filter)}
		}
		filter = f
	}

	quality := opts.JPEGQuality
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	if quality < 1 || quality > 100 {
		return nil, &ArgumentError{Reason: fmt.Sprintf("Invalid value of quality option: %d", quality)}
	}

	return &ImagingCodec{
		filter:      filter,
		jpegQuality: quality,
		autoOrient:  opts.AutoOrientation,
	}, nil
}

func (c *ImagingCodec) Open(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidImage, path, err)
	}

	return &imagingImage{codec: c, img: img, file: f}, nil
}

type imagingImage struct {
	codec *ImagingCodec
	img   image.Image
	file  *os.File
}

func (i *imagingImage) Size() models.Dimensions {
	b := i.img.Bounds()
	return models.Dimensions{Width: b.Dx(), Height: b.Dy()}
}

func (i *imagingImage) Resize(size models.Dimensions) (Image, error) {
	if size.Width < 1 || size.Height < 1 {
		return nil, ErrEmptyResultingSize
	}

	dst := imaging.Resize(i.img, size.Width, size.Height, i.codec.filter)
	return &imagingImage{codec: i.codec, img: dst}, nil
}

func (i *imagingImage) Close() error {
	if i.file == nil {
		return nil
	}

	err := i.file.Close()
	i.file = nil
	return err
}

// Save encodes into a temporary sibling of path and renames it into place,
// so a failed save never leaves a partial file at path.
func (i *imagingImage) Save(path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.New().String()))

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	err = imaging.Encode(tmp, i.img, format, imaging.JPEGQuality(i.codec.jpegQuality))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode image %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move image into %s: %w", path, err)
	}

	return nil
}
