package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds one full input-preparation run, read from a YAML file.
type Config struct {
	Borehole BoreholeConfig `yaml:"borehole"`
	Weather  WeatherConfig  `yaml:"weather"`
	Window   WindowConfig   `yaml:"window"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BoreholeConfig carries the heat-pipe bundle geometry and material
// parameters. Values pass through to the layout constructor, which owns the
// physical validity rules.
type BoreholeConfig struct {
	PipeCount              int     `yaml:"pipe_count"`
	BoreholeRadius         float64 `yaml:"borehole_radius_m"`
	PipeCircleRadius       float64 `yaml:"pipe_circle_radius_m"`
	InsulationOuterRadius  float64 `yaml:"insulation_outer_radius_m"`
	PipeOuterRadius        float64 `yaml:"pipe_outer_radius_m"`
	PipeInnerRadius        float64 `yaml:"pipe_inner_radius_m"`
	BackfillConductivity   float64 `yaml:"backfill_conductivity"`
	InsulationConductivity float64 `yaml:"insulation_conductivity"`
	PipeConductivity       float64 `yaml:"pipe_conductivity"`
}

// WeatherConfig locates the hourly station export and describes its shape.
type WeatherConfig struct {
	Path      string  `yaml:"path"`
	SkipLines int     `yaml:"skip_lines"`
	Separator string  `yaml:"separator"`
	Columns   Columns `yaml:"columns"`
}

// Columns maps record roles to zero-based column positions in the export.
// The defaults match the usual DWD hourly layout, where column 2 holds the
// hour of day and is not read.
type Columns struct {
	Month         int `yaml:"month"`
	Day           int `yaml:"day"`
	Precipitation int `yaml:"precipitation"`
	Temperature   int `yaml:"temperature"`
	Humidity      int `yaml:"humidity"`
	WindSpeed     int `yaml:"wind_speed"`
	CloudOctants  int `yaml:"cloud_octants"`
}

// WindowConfig selects the simulation window within the export.
type WindowConfig struct {
	StartMonth int `yaml:"start_month"`
	StartDay   int `yaml:"start_day"`
	Steps      int `yaml:"steps"`
}

// OutputConfig names the artifacts a run writes. An empty CrossSectionSVG
// skips the drawing.
type OutputConfig struct {
	InputsPath      string `yaml:"inputs_path"`
	CrossSectionSVG string `yaml:"cross_section_svg"`
}

// LoggingConfig tunes the run log.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings assumed for every key the file leaves out.
func Default() *Config {
	return &Config{
		Weather: WeatherConfig{
			SkipLines: 1,
			Separator: ",",
			Columns: Columns{
				Month:         0,
				Day:           1,
				Precipitation: 3,
				Temperature:   4,
				Humidity:      5,
				WindSpeed:     6,
				CloudOctants:  7,
			},
		},
		Window: WindowConfig{
			StartMonth: 1,
			StartDay:   1,
			Steps:      8760,
		},
		Output: OutputConfig{
			InputsPath: "prepared_inputs.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the run configuration from path, fills absent keys with
// defaults, applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers process-level overrides on top of the file, so one run
// file can serve both a chatty dev shell and a quiet batch host.
func (c *Config) applyEnv() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks everything the file format itself can get wrong. Geometry
// values are deliberately not checked here: the layout constructor owns
// those rules and reports violations with full context.
func (c *Config) Validate() error {
	if c.Weather.Path == "" {
		return errors.New("weather.path is required")
	}
	if c.Weather.SkipLines < 0 {
		return fmt.Errorf("weather.skip_lines must not be negative, got %d", c.Weather.SkipLines)
	}
	if utf8.RuneCountInString(c.Weather.Separator) != 1 {
		return fmt.Errorf("weather.separator must be a single character, got %q", c.Weather.Separator)
	}

	columns := []struct {
		name  string
		index int
	}{
		{"month", c.Weather.Columns.Month},
		{"day", c.Weather.Columns.Day},
		{"precipitation", c.Weather.Columns.Precipitation},
		{"temperature", c.Weather.Columns.Temperature},
		{"humidity", c.Weather.Columns.Humidity},
		{"wind_speed", c.Weather.Columns.WindSpeed},
		{"cloud_octants", c.Weather.Columns.CloudOctants},
	}
	for _, col := range columns {
		if col.index < 0 {
			return fmt.Errorf("weather.columns.%s must not be negative, got %d", col.name, col.index)
		}
	}

	if c.Window.StartMonth < 1 || c.Window.StartMonth > 12 {
		return fmt.Errorf("window.start_month must be between 1 and 12, got %d", c.Window.StartMonth)
	}
	if c.Window.StartDay < 1 || c.Window.StartDay > 31 {
		return fmt.Errorf("window.start_day must be between 1 and 31, got %d", c.Window.StartDay)
	}
	if c.Window.Steps <= 0 {
		return fmt.Errorf("window.steps must be positive, got %d", c.Window.Steps)
	}

	if c.Output.InputsPath == "" {
		return errors.New("output.inputs_path is required")
	}
	return nil
}

// SeparatorRune returns the field separator for the CSV reader. Call only
// after Validate has accepted the separator.
func (w WeatherConfig) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(w.Separator)
	return r
}
