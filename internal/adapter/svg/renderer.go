// Package svg renders borehole cross-sections as standalone SVG documents.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	svgo "github.com/ajstarks/svgo"
	"github.com/samber/lo"

	"github.com/couchcryptid/geomelt-input-prep/internal/domain"
)

const (
	canvasSize   = 600
	canvasMargin = 48

	// Drawing line widths are in points; screen strokes look right at
	// 2 px/pt on the default canvas.
	strokeScale = 2

	strokeColor = "#1f2937"
)

// Renderer draws cross-section descriptions onto a fixed square canvas. The
// world-to-screen scale is uniform in x and y, which keeps the equal-aspect
// promise of the description: circles stay circles.
type Renderer struct {
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render writes the cross-section as a complete SVG document.
func (r *Renderer) Render(w io.Writer, cs domain.CrossSection) error {
	buf := bufio.NewWriter(w)
	canvas := svgo.New(buf)

	view := fitViewport(cs)
	canvas.Start(canvasSize, canvasSize)
	canvas.Title(cs.Title)

	for _, c := range cs.Circles {
		canvas.Circle(view.x(c.Center.X), view.y(c.Center.Y), view.length(c.Radius), circleStyle(c))
	}
	for _, l := range cs.Labels {
		canvas.Text(view.x(l.At.X), view.y(l.At.Y), l.Text,
			fmt.Sprintf("font-size:%gpx;text-anchor:middle;dominant-baseline:middle;fill:%s", l.FontSize, strokeColor))
	}

	canvas.Text(canvasSize/2, canvasMargin/2, cs.Title,
		"font-size:16px;text-anchor:middle;font-weight:bold")
	canvas.Text(canvasSize/2, canvasSize-canvasMargin/4, cs.XLabel,
		"font-size:12px;text-anchor:middle")
	canvas.Text(canvasMargin/4, canvasSize/2, cs.YLabel,
		"font-size:12px;text-anchor:middle",
		fmt.Sprintf(`transform="rotate(-90 %d %d)"`, canvasMargin/4, canvasSize/2))

	canvas.End()

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("render cross-section: %w", err)
	}
	return nil
}

// RenderFile writes the cross-section to a new file at path.
func (r *Renderer) RenderFile(path string, cs domain.CrossSection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cross-section file: %w", err)
	}
	if err := r.Render(f, cs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close cross-section file: %w", err)
	}
	r.logger.Debug("cross-section written", "path", path,
		"circles", len(cs.Circles), "labels", len(cs.Labels))
	return nil
}

func circleStyle(c domain.Circle) string {
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", strokeColor, c.LineWidth*strokeScale)
	if c.Dashed {
		style += ";stroke-dasharray:6,4"
	}
	return style
}

// viewport maps world coordinates (meters, y up) onto the canvas
// (pixels, y down).
type viewport struct {
	scale  float64
	center float64
}

func fitViewport(cs domain.CrossSection) viewport {
	extent := 0.0
	if len(cs.Circles) > 0 {
		extent = lo.Max(lo.Map(cs.Circles, func(c domain.Circle, _ int) float64 {
			return math.Max(math.Abs(c.Center.X), math.Abs(c.Center.Y)) + c.Radius
		}))
	}
	if extent <= 0 {
		extent = 1
	}
	return viewport{
		scale:  (float64(canvasSize)/2 - float64(canvasMargin)) / extent,
		center: float64(canvasSize) / 2,
	}
}

func (v viewport) x(world float64) int {
	return int(math.Round(v.center + world*v.scale))
}

func (v viewport) y(world float64) int {
	return int(math.Round(v.center - world*v.scale))
}

// length converts a world distance to pixels, keeping hairline radii visible.
func (v viewport) length(world float64) int {
	px := int(math.Round(world * v.scale))
	if px < 1 {
		px = 1
	}
	return px
}
