package domain

import "strconv"

// Drawing style shared by every cross-section element.
const (
	crossSectionLineWidth = 0.5
	crossSectionFontSize  = 12
)

// Circle is one circle of a cross-section drawing, in borehole coordinates.
type Circle struct {
	Center    Point   `json:"center"`
	Radius    float64 `json:"radius"`
	LineWidth float64 `json:"line_width"`
	Dashed    bool    `json:"dashed,omitempty"`
}

// Label is a text annotation centered at a point.
type Label struct {
	Text     string  `json:"text"`
	At       Point   `json:"at"`
	FontSize float64 `json:"font_size"`
}

// CrossSection is a renderable description of the borehole cross-section. It
// carries everything a drawing surface needs (geometry, styling, axis
// labels) and depends on no particular one, so the same description can back
// an SVG file, a plot window, or a report figure.
type CrossSection struct {
	Title       string   `json:"title"`
	XLabel      string   `json:"x_label"`
	YLabel      string   `json:"y_label"`
	EqualAspect bool     `json:"equal_aspect"`
	Circles     []Circle `json:"circles"`
	Labels      []Label  `json:"labels"`
}

// CrossSection returns the drawing description of the layout: the borehole
// wall as a dashed outline, then per pipe the insulation, outer-wall, and
// inner-wall circles around its center, plus a 1-based pipe number label at
// each center. Both axes are in meters and must keep equal scale or the
// circles render as ellipses.
func (l *Layout) CrossSection() CrossSection {
	centers := l.PipeCenters()

	circles := make([]Circle, 0, 1+3*len(centers))
	circles = append(circles, Circle{
		Radius:    l.cfg.BoreholeRadius,
		LineWidth: crossSectionLineWidth,
		Dashed:    true,
	})

	labels := make([]Label, 0, len(centers))
	for i, center := range centers {
		for _, r := range []float64{l.cfg.InsulationOuterRadius, l.cfg.PipeOuterRadius, l.cfg.PipeInnerRadius} {
			circles = append(circles, Circle{
				Center:    center,
				Radius:    r,
				LineWidth: crossSectionLineWidth,
			})
		}
		labels = append(labels, Label{
			Text:     strconv.Itoa(i + 1),
			At:       center,
			FontSize: crossSectionFontSize,
		})
	}

	return CrossSection{
		Title:       "Heatpipe Layout",
		XLabel:      "x (m)",
		YLabel:      "y (m)",
		EqualAspect: true,
		Circles:     circles,
		Labels:      labels,
	}
}
