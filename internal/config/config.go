// Package config loads the run configuration for the psi driver.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/McGIllicuddy7/psi/internal/core/observability/log"
	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config describes one run: the field, the image to render and the region to integrate.
type Config struct {
	Field     FieldConfig       `yaml:"field"`
	Image     ImageConfig       `yaml:"image"`
	Integrate IntegrationConfig `yaml:"integrate"`
	Workers   int               `yaml:"workers"`
	LogLevel  string            `yaml:"log_level"`
}

type FieldConfig struct {
	Location Point `yaml:"location"`
	Velocity Point `yaml:"velocity"`
}

type ImageConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Output string  `yaml:"output"`
	Format string  `yaml:"format"`
}

type IntegrationConfig struct {
	Region     Region  `yaml:"region"`
	Resolution float64 `yaml:"resolution"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vector() physics.Vector2 { return physics.NewVector2(p.X, p.Y) }

type Region struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r Region) Physics() physics.AxisAlignedRegion {
	return physics.NewRegion(r.X, r.Y, r.W, r.H)
}

// Default reproduces the reference run: a 1000x1000 image at scale 0.005 and
// the region [-2.5, 2.5]^2 integrated at 400 cells per unit.
func Default() *Config {
	return &Config{
		Image: ImageConfig{
			Width:  1000,
			Height: 1000,
			Scale:  0.005,
			Output: "test.png",
			Format: "png",
		},
		Integrate: IntegrationConfig{
			Region:     Region{X: -2.5, Y: -2.5, W: 5, H: 5},
			Resolution: 400,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML decodes YAML on top of the defaults and validates the result.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size must be positive, got %dx%d", c.Image.Width, c.Image.Height))
	}
	if !(c.Image.Scale > 0) {
		errs = append(errs, fmt.Errorf("image scale must be positive, got %g", c.Image.Scale))
	}
	switch strings.ToLower(c.Image.Format) {
	case "", "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("unsupported image format %q", c.Image.Format))
	}
	if !(c.Integrate.Resolution > 0) {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %g", c.Integrate.Resolution))
	}
	if err := c.Integrate.Region.Physics().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c *Config) Level() log.Level {
	l, _ := log.ParseLevel(c.LogLevel)
	return l
}
