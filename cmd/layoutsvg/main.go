// Command layoutsvg draws the borehole cross-section of a run configuration
// as an SVG, so a heat-pipe layout can be eyeballed before a full
// preparation run. It reads the same configuration file as prep and fails on
// the same geometry violations.
//
// Usage:
//
//	go run ./cmd/layoutsvg -config run.yaml -out layout.svg
//
// Pass -out - to write the SVG to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/couchcryptid/geomelt-input-prep/internal/adapter/svg"
	"github.com/couchcryptid/geomelt-input-prep/internal/config"
	"github.com/couchcryptid/geomelt-input-prep/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to the run configuration")
	out := flag.String("out", "layout.svg", "output path, or - for stdout")
	flag.Parse()

	if *configPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -config")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	layout, err := domain.NewLayout(domain.HeatpipeConfig{
		Count:                  cfg.Borehole.PipeCount,
		BoreholeRadius:         cfg.Borehole.BoreholeRadius,
		PipeCircleRadius:       cfg.Borehole.PipeCircleRadius,
		InsulationOuterRadius:  cfg.Borehole.InsulationOuterRadius,
		PipeOuterRadius:        cfg.Borehole.PipeOuterRadius,
		PipeInnerRadius:        cfg.Borehole.PipeInnerRadius,
		BackfillConductivity:   cfg.Borehole.BackfillConductivity,
		InsulationConductivity: cfg.Borehole.InsulationConductivity,
		PipeConductivity:       cfg.Borehole.PipeConductivity,
	})
	if err != nil {
		return err
	}
	log.Printf("%s", layout)

	renderer := svg.NewRenderer(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if *out == "-" {
		return renderer.Render(os.Stdout, layout.CrossSection())
	}
	if err := renderer.RenderFile(*out, layout.CrossSection()); err != nil {
		return err
	}
	log.Printf("wrote %s", *out)
	return nil
}
