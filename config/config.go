// Package config loads isopath settings from TOML or YAML files.
//
// Files only need to name the settings they change; everything else keeps
// the value from [Default]. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"honnef.co/go/isopath"
	"honnef.co/go/isopath/svgdoc"
)

// Format is a configuration file syntax.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("config: unsupported file extension %q", ext)
	}
}

type Fit struct {
	Tolerance   float64 `toml:"tolerance" yaml:"tolerance"`
	CornerAngle float64 `toml:"corner_angle" yaml:"corner_angle"`
	Refinements int     `toml:"refinements" yaml:"refinements"`
	MaxDepth    int     `toml:"max_depth" yaml:"max_depth"`
}

type Extract struct {
	// CloseTolerance closes line strings whose ends are at most this far
	// apart. Zero disables it.
	CloseTolerance float64 `toml:"close_tolerance" yaml:"close_tolerance"`
}

type SVG struct {
	Width       float64 `toml:"width" yaml:"width"`
	Height      float64 `toml:"height" yaml:"height"`
	Margin      float64 `toml:"margin" yaml:"margin"`
	Precision   int     `toml:"precision" yaml:"precision"`
	FlipY       bool    `toml:"flip_y" yaml:"flip_y"`
	Fill        string  `toml:"fill" yaml:"fill"`
	Stroke      string  `toml:"stroke" yaml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width"`
}

type Config struct {
	Fit     Fit     `toml:"fit" yaml:"fit"`
	Extract Extract `toml:"extract" yaml:"extract"`
	SVG     SVG     `toml:"svg" yaml:"svg"`
	// Workers limits concurrent fitting. Zero uses GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	fit := isopath.DefaultFitOptions()
	return Config{
		Fit: Fit{
			Tolerance:   fit.Tolerance,
			CornerAngle: fit.CornerAngle,
			Refinements: fit.Refinements,
			MaxDepth:    fit.MaxDepth,
		},
		SVG: SVG{
			Width:       800,
			Height:      600,
			Margin:      10,
			Precision:   3,
			FlipY:       true,
			Fill:        "none",
			Stroke:      "black",
			StrokeWidth: 1,
		},
	}
}

// Load reads the file at path on top of [Default] and validates the result.
func Load(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Decode(f, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration in the given format on top of [Default] and
// validates the result.
func Decode(r io.Reader, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document leaves the defaults alone.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an [*isopath.ConfigurationError] for the first invalid
// setting.
func (cfg Config) Validate() error {
	if err := cfg.FitOptions().Validate(); err != nil {
		return err
	}
	if err := cfg.Extractor().Validate(); err != nil {
		return err
	}
	if err := cfg.Document().Validate(); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return &isopath.ConfigurationError{Field: "workers", Value: cfg.Workers, Reason: "must not be negative"}
	}
	return nil
}

func (cfg Config) FitOptions() isopath.FitOptions {
	return isopath.FitOptions{
		Tolerance:   cfg.Fit.Tolerance,
		CornerAngle: cfg.Fit.CornerAngle,
		Refinements: cfg.Fit.Refinements,
		MaxDepth:    cfg.Fit.MaxDepth,
	}
}

func (cfg Config) Extractor() isopath.Extractor {
	return isopath.Extractor{CloseTolerance: cfg.Extract.CloseTolerance}
}

// Document returns an empty SVG document with the configured geometry.
func (cfg Config) Document() *svgdoc.Document {
	return &svgdoc.Document{
		Width:     cfg.SVG.Width,
		Height:    cfg.SVG.Height,
		Margin:    cfg.SVG.Margin,
		Precision: cfg.SVG.Precision,
		FlipY:     cfg.SVG.FlipY,
	}
}

// Layer returns a layer with the configured style.
func (cfg Config) Layer(id string, paths []isopath.SegmentedPath) svgdoc.Layer {
	return svgdoc.Layer{
		ID:          id,
		Fill:        cfg.SVG.Fill,
		Stroke:      cfg.SVG.Stroke,
		StrokeWidth: cfg.SVG.StrokeWidth,
		Paths:       paths,
	}
}
