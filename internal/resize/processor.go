package resize

import (
	"fmt"
	"log"

	"github.com/vatsal3003/image-resize/pkg/models"
)

type ImageProcessor struct {
	codec     Codec
	tolerance float64
	logger    *log.Logger
}

func NewImageProcessor(codec Codec, tolerance float64, logger *log.Logger) *ImageProcessor {
	return &ImageProcessor{
		codec:     codec,
		tolerance: tolerance,
		logger:    logger,
	}
}

// Result describes a completed resize.
type Result struct {
	TargetPath string
	SourceSize models.Dimensions
	TargetSize models.Dimensions
}

// Process validates req, resizes its source and saves the result. Invalid
// requests are rejected before the codec is touched.
func (p *ImageProcessor) Process(req models.ResizeRequest) (Result, error) {
	if err := ValidateRequest(req); err != nil {
		return Result{}, err
	}

	src, err := p.codec.Open(req.SourcePath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	srcSize := src.Size()
	newSize, err := NewSize(srcSize, req)
	if err != nil {
		return Result{}, err
	}

	if !IsProportional(srcSize, newSize, p.tolerance) {
		p.logger.Printf("WARNING target image is not proportional to source (%s -> %s)", srcSize, newSize)
	}

	dst, err := src.Resize(newSize)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resize image: %w", err)
	}
	defer dst.Close()

	// The source is fully decoded; release it before writing output.
	if err := src.Close(); err != nil {
		p.logger.Printf("WARNING failed to close source %s: %v", req.SourcePath, err)
	}

	targetPath := TargetPath(req.SourcePath, req.TargetPath, srcSize)
	if err := dst.Save(targetPath); err != nil {
		return Result{}, fmt.Errorf("failed to save resized image %s: %w", targetPath, err)
	}

	return Result{
		TargetPath: targetPath,
		SourceSize: srcSize,
		TargetSize: newSize,
	}, nil
}
