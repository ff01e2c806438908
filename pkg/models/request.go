package models

import (
	"fmt"
)

type Dimensions struct {
	Width, Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ResizeRequest describes one resize invocation. Nil fields are options the
// caller did not set.
type ResizeRequest struct {
	SourcePath string
	TargetPath string
	Width      *int
	Height     *int
	Scale      *float64
}

func NewResizeRequest(sourcePath, targetPath string) ResizeRequest {
	return ResizeRequest{
		SourcePath: sourcePath,
		TargetPath: targetPath,
	}
}

func (r ResizeRequest) WithWidth(width int) ResizeRequest {
	r.Width = &width
	return r
}

func (r ResizeRequest) WithHeight(height int) ResizeRequest {
	r.Height = &height
	return r
}

func (r ResizeRequest) WithScale(scale float64) ResizeRequest {
	r.Scale = &scale
	return r
}
