// Package weatherfile loads hourly station exports from delimited text files
// into the domain weather table.
package weatherfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/couchcryptid/geomelt-input-prep/internal/config"
	"github.com/couchcryptid/geomelt-input-prep/internal/domain"
)

// Loader reads a station export file into memory.
// It implements pipeline.TableLoader.
type Loader struct {
	path      string
	skipLines int
	separator rune
	columns   config.Columns
	logger    *slog.Logger
}

// NewLoader creates a loader for the export named by the weather section of
// the run configuration.
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{
		path:      cfg.Weather.Path,
		skipLines: cfg.Weather.SkipLines,
		separator: cfg.Weather.SeparatorRune(),
		columns:   cfg.Weather.Columns,
		logger:    logger,
	}
}

// Load reads the whole export. Rows keep file order, which the window
// extraction relies on. Header lines are skipped blindly, so a skip count
// running past the end of the file yields an empty table rather than an
// error.
func (l *Loader) Load(ctx context.Context) (domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open weather export: %w", err)
	}
	defer f.Close()

	buf := bufio.NewReader(f)
	for i := 0; i < l.skipLines; i++ {
		if _, err := buf.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				l.logger.Warn("weather export ends inside the header",
					"path", l.path, "skip_lines", l.skipLines)
				return domain.Table{}, nil
			}
			return nil, fmt.Errorf("skip header of %s: %w", l.path, err)
		}
	}

	r := csv.NewReader(buf)
	r.Comma = l.separator
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	need := l.maxColumn() + 1
	table := domain.Table{}
	for row := 1; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("data row %d: %w", row, err)
		}
		if len(fields) < need {
			return nil, fmt.Errorf("data row %d: need at least %d columns, got %d", row, need, len(fields))
		}
		rec, err := l.record(fields)
		if err != nil {
			return nil, fmt.Errorf("data row %d: %w", row, err)
		}
		table = append(table, rec)
	}

	l.logger.Debug("weather export loaded", "path", l.path, "rows", len(table))
	return table, nil
}

func (l *Loader) maxColumn() int {
	return lo.Max([]int{
		l.columns.Month,
		l.columns.Day,
		l.columns.Precipitation,
		l.columns.Temperature,
		l.columns.Humidity,
		l.columns.WindSpeed,
		l.columns.CloudOctants,
	})
}

func (l *Loader) record(fields []string) (domain.Record, error) {
	var (
		rec domain.Record
		err error
	)
	if rec.Month, err = intField(fields, l.columns.Month, "month"); err != nil {
		return domain.Record{}, err
	}
	if rec.Day, err = intField(fields, l.columns.Day, "day"); err != nil {
		return domain.Record{}, err
	}
	if rec.Precipitation, err = floatField(fields, l.columns.Precipitation, "precipitation"); err != nil {
		return domain.Record{}, err
	}
	if rec.Temperature, err = floatField(fields, l.columns.Temperature, "temperature"); err != nil {
		return domain.Record{}, err
	}
	if rec.Humidity, err = floatField(fields, l.columns.Humidity, "humidity"); err != nil {
		return domain.Record{}, err
	}
	if rec.WindSpeed, err = floatField(fields, l.columns.WindSpeed, "wind_speed"); err != nil {
		return domain.Record{}, err
	}
	if rec.CloudOctants, err = floatField(fields, l.columns.CloudOctants, "cloud_octants"); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// floatField parses one numeric cell. Exports written under a German locale
// carry a decimal comma, which is accepted too.
func floatField(fields []string, index int, name string) (float64, error) {
	raw := strings.TrimSpace(fields[index])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && strings.Contains(raw, ",") {
		v, err = strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	}
	if err != nil {
		return 0, fmt.Errorf("column %d (%s): parse %q: %w", index, name, raw, err)
	}
	return v, nil
}

func intField(fields []string, index int, name string) (int, error) {
	v, err := floatField(fields, index, name)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
