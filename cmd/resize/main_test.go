package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vatsal3003/image-resize/internal/config"
)

func setup(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvConfigFile, config.EnvFilter, config.EnvJPEGQuality, config.EnvProportionTolerance, config.EnvAutoOrientation} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	img := imaging.New(200, 100, color.NRGBA{G: 255, A: 255})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, "photo.png")))
	return dir
}

func runCommand(args ...string) (int, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stderr.String()
}

func TestRunDerivesTargetName(t *testing.T) {
	dir := setup(t)

	code, out := runCommand("--width", "50", filepath.Join(dir, "photo.png"))
	require.Equal(t, 0, code, out)

	resized, err := imaging.Open(filepath.Join(dir, "photo__200x100.png"))
	require.NoError(t, err)
	assert.Equal(t, 50, resized.Bounds().Dx())
	assert.Equal(t, 25, resized.Bounds().Dy())
	assert.Contains(t, out, "INFO resized")
}

func TestRunExplicitTargetWithWarning(t *testing.T) {
	dir := setup(t)
	target := filepath.Join(dir, "square.jpg")

	code, out := runCommand("--width=100", "--height=100", "--filter", "nearest", "--quality", "70", "-q", filepath.Join(dir, "photo.png"), target)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "WARNING target image is not proportional to source")
	assert.NotContains(t, out, "INFO")

	resized, err := imaging.Open(target)
	require.NoError(t, err)
	assert.Equal(t, 100, resized.Bounds().Dx())
	assert.Equal(t, 100, resized.Bounds().Dy())
}

func TestRunFailures(t *testing.T) {
	dir := setup(t)
	src := filepath.Join(dir, "photo.png")
	notImage := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(notImage, []byte("hello"), 0644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no options", []string{src}, "No resize options specified"},
		{"zero scale", []string{"--scale", "0", src}, "Invalid value of scale argument"},
		{"negative scale", []string{"--scale=-1", src}, "Invalid value of scale argument"},
		{"nan scale", []string{"--scale", "NaN", src}, "Invalid value of scale argument"},
		{"infinite scale", []string{"--scale", "Inf", src}, "Invalid value of scale argument"},
		{"huge scale", []string{"--scale", "1e12", src}, "Resulting image size is too large"},
		{"overflowing scale", []string{"--scale", "1e30", src}, "Resulting image size is too large"},
		{"negative width", []string{"--width=-5", src}, "Invalid value of width option"},
		{"zero height", []string{"--height", "0", src}, "Invalid value of height option"},
		{"exclusive", []string{"--scale", "2", "--width", "10", src}, "Width/height and scale are exclusive options"},
		{"missing source", []string{"--scale", "2", filepath.Join(dir, "missing.png")}, "The source image not found."},
		{"not an image", []string{"--scale", "2", notImage}, "The source is not a valid image file."},
		{"unsupported target", []string{"--scale", "2", src, filepath.Join(dir, "out.xyz")}, "The target image format is not supported."},
		{"unknown filter", []string{"--scale", "2", "--filter", "sinc", src}, `Unknown resample filter "sinc"`},
		{"no arguments", nil, "accepts between 1 and 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := runCommand(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, out, tt.want)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "failed runs must not write output")
}

func TestRunBadConfig(t *testing.T) {
	setup(t)
	t.Setenv(config.EnvFilter, "sinc")

	code, out := runCommand("--scale", "2", "photo.png")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "failed to load config")
}

func TestRunHelpIgnoresBadConfig(t *testing.T) {
	setup(t)
	t.Setenv(config.EnvJPEGQuality, "high")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "--scale")
}
