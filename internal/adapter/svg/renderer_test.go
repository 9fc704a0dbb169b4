package svg

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/geomelt-input-prep/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCrossSection(t *testing.T) domain.CrossSection {
	t.Helper()
	layout, err := domain.NewLayout(domain.HeatpipeConfig{
		Count:                  4,
		BoreholeRadius:         0.076,
		PipeCircleRadius:       0.064,
		InsulationOuterRadius:  0.016,
		PipeOuterRadius:        0.012,
		PipeInnerRadius:        0.010,
		BackfillConductivity:   2,
		InsulationConductivity: 0.03,
		PipeConductivity:       14,
	})
	require.NoError(t, err)
	return layout.CrossSection()
}

func TestRender(t *testing.T) {
	r := NewRenderer(testLogger())
	var buf bytes.Buffer

	require.NoError(t, r.Render(&buf, testCrossSection(t)))
	out := buf.String()

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 13, strings.Count(out, "<circle"), "borehole wall plus three circles per pipe")
	assert.Contains(t, out, "stroke-dasharray")
	assert.Contains(t, out, `cx="300" cy="300"`, "borehole wall sits at the canvas center")
	assert.Contains(t, out, ">1</text>")
	assert.Contains(t, out, ">4</text>")
	assert.Contains(t, out, "Heatpipe Layout")
	assert.Contains(t, out, "x (m)")
	assert.Contains(t, out, "y (m)")
	assert.Contains(t, out, "rotate(-90")
}

func TestRender_EmptyDescription(t *testing.T) {
	r := NewRenderer(testLogger())
	var buf bytes.Buffer

	require.NoError(t, r.Render(&buf, domain.CrossSection{}))

	assert.Contains(t, buf.String(), "<svg")
	assert.Zero(t, strings.Count(buf.String(), "<circle"))
}

func TestRenderFile(t *testing.T) {
	r := NewRenderer(testLogger())
	path := filepath.Join(t.TempDir(), "layout.svg")

	require.NoError(t, r.RenderFile(path, testCrossSection(t)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<svg")
}

func TestRenderFile_BadPath(t *testing.T) {
	r := NewRenderer(testLogger())
	path := filepath.Join(t.TempDir(), "missing-dir", "layout.svg")

	err := r.RenderFile(path, testCrossSection(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create cross-section")
}
