package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/isopath"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, isopath.DefaultFitOptions(), cfg.FitOptions())
	assert.Equal(t, isopath.Extractor{}, cfg.Extractor())
}

func TestDecodeTOML(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
workers = 4

[fit]
tolerance = 0.1
corner_angle = 60

[extract]
close_tolerance = 0.5

[svg]
flip_y = false
fill = "#eee"
`), TOML)
	require.NoError(t, err)

	want := Default()
	want.Workers = 4
	want.Fit.Tolerance = 0.1
	want.Fit.CornerAngle = 60
	want.Extract.CloseTolerance = 0.5
	want.SVG.FlipY = false
	want.SVG.Fill = "#eee"
	assert.Equal(t, want, cfg)
	assert.Equal(t, isopath.FitOptions{Tolerance: 0.1, CornerAngle: 60, Refinements: 1}, cfg.FitOptions())
}

func TestDecodeYAML(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
fit:
  tolerance: 2
  refinements: 3
  max_depth: 12
svg:
  width: 1024
  precision: 1
`), YAML)
	require.NoError(t, err)

	want := Default()
	want.Fit.Tolerance = 2
	want.Fit.Refinements = 3
	want.Fit.MaxDepth = 12
	want.SVG.Width = 1024
	want.SVG.Precision = 1
	assert.Equal(t, want, cfg)

	doc := cfg.Document()
	assert.Equal(t, 1024.0, doc.Width)
	assert.Equal(t, 1, doc.Precision)
}

func TestDecodeEmpty(t *testing.T) {
	for _, format := range []Format{TOML, YAML} {
		cfg, err := Decode(strings.NewReader(""), format)
		require.NoError(t, err, format)
		assert.Equal(t, Default(), cfg, format)
	}
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("[fit]\ntolerence = 1\n"), TOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("fit:\n  tolerence: 1\n"), YAML)
	assert.Error(t, err)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		input string
		field string
	}{
		{"[fit]\ntolerance = 0\n", "tolerance"},
		{"[fit]\ncorner_angle = 180\n", "corner angle"},
		{"[fit]\nrefinements = -1\n", "refinements"},
		{"[extract]\nclose_tolerance = -1\n", "close tolerance"},
		{"[svg]\nheight = 0\n", "svg height"},
		{"[svg]\nmargin = 400\n", "svg margin"},
		{"workers = -2\n", "workers"},
	}
	for _, tt := range tests {
		_, err := Decode(strings.NewReader(tt.input), TOML)
		var cerr *isopath.ConfigurationError
		if assert.True(t, errors.As(err, &cerr), "%q: got %v", tt.input, err) {
			assert.Equal(t, tt.field, cerr.Field)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "isopath.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[fit]\ntolerance = 0.25\n"), 0o644))
	cfg, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Fit.Tolerance)

	yamlPath := filepath.Join(dir, "isopath.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("workers: 3\n"), 0o644))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)

	_, err = Load(filepath.Join(dir, "isopath.json"))
	assert.ErrorContains(t, err, "unsupported file extension")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLayer(t *testing.T) {
	l := Default().Layer("a", nil)
	assert.Equal(t, "a", l.ID)
	assert.Equal(t, "none", l.Fill)
	assert.Equal(t, "black", l.Stroke)
	assert.Equal(t, 1.0, l.StrokeWidth)
}
