package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/internal/meshtest"
	"github.com/katalvlaran/meshpath/mesh"
	"github.com/katalvlaran/meshpath/render"
)

func TestPlot_WritesPNG(t *testing.T) {
	path := []mesh.Vertex{{X: 0}, {X: 1, Y: 2}, {X: 2, Y: 3}, {X: 4, Y: 4}}
	p, err := render.Plot(meshtest.Pond(), path, render.WithTitle("pond"))
	require.NoError(t, err)
	assert.Equal(t, "pond", p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, render.WriteTo(&buf, p, 3, 3, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestPlot_SVGAndProjection(t *testing.T) {
	p, err := render.Plot(meshtest.Square(), nil, render.WithProjection(render.XZ))
	require.NoError(t, err)
	assert.Equal(t, "z", p.Y.Label.Text)

	var buf bytes.Buffer
	require.NoError(t, render.WriteTo(&buf, p, 2, 2, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	assert.Error(t, render.WriteTo(&buf, p, 2, 2, "bmp-but-not-really"))
}

func TestPlot_EmptyMesh(t *testing.T) {
	m, err := mesh.New(nil, nil)
	require.NoError(t, err)
	_, err = render.Plot(m, nil)
	assert.ErrorIs(t, err, render.ErrEmptyMesh)
}

func TestSave(t *testing.T) {
	p, err := render.Plot(meshtest.Irregular(), nil)
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "irregular.png")
	require.NoError(t, render.Save(file, p, 2, 2))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestParseProjection(t *testing.T) {
	for in, want := range map[string]render.Projection{"": render.XY, "xy": render.XY, "xz": render.XZ, "yz": render.YZ} {
		got, err := render.ParseProjection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := render.ParseProjection("zz")
	assert.Error(t, err)
}
