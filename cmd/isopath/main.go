// Command isopath smooths the geometries of GeoJSON files and renders them
// as an SVG document, one layer per input file.
//
// Usage:
//
//	isopath [flags] input.geojson...
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"honnef.co/go/isopath"
	"honnef.co/go/isopath/config"
	"honnef.co/go/isopath/geojson"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML or YAML configuration file")
		tolerance  = flag.Float64("tolerance", 0, "maximum deviation from the input, in input units")
		corner     = flag.Float64("corner", 0, "turning angle in degrees above which a vertex stays a corner")
		workers    = flag.Int("workers", 0, "number of geometries fitted concurrently (0 for GOMAXPROCS)")
		output     = flag.String("o", "", "output file (default stdout)")
		verbose    = flag.Bool("v", false, "log debug information")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: isopath [flags] input.geojson...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	isopath.SetLogger(logger)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("loading configuration", "err", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tolerance":
			cfg.Fit.Tolerance = *tolerance
		case "corner":
			cfg.Fit.CornerAngle = *corner
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, logger, cfg, flag.Args(), *output); err != nil {
		logger.Error("isopath failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config, inputs []string, output string) error {
	doc := cfg.Document()
	for _, in := range inputs {
		data, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		features, err := geojson.Decode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		geoms := geojson.Geometries(features)
		paths, err := isopath.FitAll(ctx, cfg.Extractor(), geoms, cfg.FitOptions(), cfg.Workers)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		segs := 0
		for _, p := range paths {
			segs += p.NumSegments()
		}
		logger.Info("smoothed", "file", in, "features", len(features), "geometries", len(geoms), "segments", segs)
		if logger.Enabled(ctx, slog.LevelDebug) {
			worst := 0.0
			for i, g := range geoms {
				c, err := cfg.Extractor().Extract(g)
				if err != nil {
					return fmt.Errorf("%s: %w", in, err)
				}
				worst = max(worst, paths[i].Deviation(c))
			}
			logger.Debug("measured deviation", "file", in, "max", worst, "tolerance", cfg.Fit.Tolerance)
		}
		doc.Add(cfg.Layer(layerID(in), paths))
	}

	if output == "" {
		_, err := doc.WriteTo(os.Stdout)
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// layerID derives an XML id from a file name.
func layerID(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if id == "" || (id[0] >= '0' && id[0] <= '9') || id[0] == '-' {
		id = "layer-" + id
	}
	return id
}
