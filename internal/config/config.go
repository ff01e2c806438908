package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vatsal3003/image-resize/internal/resize"
)

const (
	EnvConfigFile          = "IMAGE_RESIZE_CONFIG"
	EnvFilter              = "IMAGE_RESIZE_FILTER"
	EnvJPEGQuality         = "IMAGE_RESIZE_JPEG_QUALITY"
	EnvProportionTolerance = "IMAGE_RESIZE_PROPORTION_TOLERANCE"
	EnvAutoOrientation     = "IMAGE_RESIZE_AUTO_ORIENT"
)

type Config struct {
	Filter              string  `yaml:"filter"`
	JPEGQuality         int     `yaml:"jpeg_quality"`
	ProportionTolerance float64 `yaml:"proportion_tolerance"`
	AutoOrientation     bool    `yaml:"auto_orientation"`
}

func Default() *Config {
	return &Config{
		Filter:              "lanczos",
		JPEGQuality:         resize.DefaultJPEGQuality,
		ProportionTolerance: resize.DefaultProportionTolerance,
		AutoOrientation:     true,
	}
}

// NewConfig starts from the defaults, applies the YAML file named by
// IMAGE_RESIZE_CONFIG if set, then the IMAGE_RESIZE_* environment variables.
func NewConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvFilter); v != "" {
		c.Filter = v
	}

	if v := os.Getenv(EnvJPEGQuality); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvJPEGQuality, err)
		}
		c.JPEGQuality = q
	}

	if v := os.Getenv(EnvProportionTolerance); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvProportionTolerance, err)
		}
		c.ProportionTolerance = t
	}

	if v := os.Getenv(EnvAutoOrientation); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvAutoOrientation, err)
		}
		c.AutoOrientation = b
	}

	return nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if _, ok := resize.LookupFilter(c.Filter); !ok {
		return fmt.Errorf("filter %q is not a known resample filter", c.Filter)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	if !(c.ProportionTolerance > 0) || math.IsInf(c.ProportionTolerance, 0) {
		return fmt.Errorf("proportion_tolerance must be a positive finite number, got %v", c.ProportionTolerance)
	}
	return nil
}

func (c *Config) CodecOptions() resize.CodecOptions {
	return resize.CodecOptions{
		Filter:          c.Filter,
		JPEGQuality:     c.JPEGQuality,
		AutoOrientation: c.AutoOrientation,
	}
}
