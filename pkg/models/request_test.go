package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsString(t *testing.T) {
	assert.Equal(t, "200x100", Dimensions{Width: 200, Height: 100}.String())
}

func TestResizeRequestWithLeavesOriginalUntouched(t *testing.T) {
	base := NewResizeRequest("photo.jpg", "")
	withWidth := base.WithWidth(50)

	assert.Nil(t, base.Width)
	require.NotNil(t, withWidth.Width)
	assert.Equal(t, 50, *withWidth.Width)
	assert.Nil(t, withWidth.Height)
	assert.Nil(t, withWidth.Scale)

	scaled := base.WithScale(0.5)
	require.NotNil(t, scaled.Scale)
	assert.Equal(t, 0.5, *scaled.Scale)
	assert.Nil(t, base.Scale)
}
