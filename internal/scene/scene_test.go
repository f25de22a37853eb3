package scene

import (
	"testing"

	"rasterpad/internal/raster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
	"width": 8,
	"height": 8,
	"background": "#102030",
	"ops": [
		{"type": "rectangle", "x1": 1, "y1": 1, "x2": 3, "y2": 3, "color": "#ffffff"},
		{"type": "line", "x1": 0, "y1": 0, "x2": 7, "y2": 7, "color": "#ff0000", "thickness": 1, "opacity": 0.5},
		{"type": "ellipse", "x": 4, "y": 4, "h_axis": 2, "v_axis": 2, "color": "#00ff00", "thickness": 1}
	]
}`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 8, s.Width)
	assert.Equal(t, 8, s.Height)
	require.Len(t, s.Ops, 3)
	assert.Equal(t, "rectangle", s.Ops[0].Type)
	require.NotNil(t, s.Ops[1].Opacity)
	assert.Equal(t, 0.5, *s.Ops[1].Opacity)
	assert.Nil(t, s.Ops[0].Opacity)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"bad json", `{`},
		{"zero width", `{"width": 0, "height": 5, "background": "#000000"}`},
		{"bad background", `{"width": 5, "height": 5, "background": "red"}`},
		{"unknown op", `{"width": 5, "height": 5, "background": "#000000",
			"ops": [{"type": "triangle", "color": "#ffffff"}]}`},
		{"bad op color", `{"width": 5, "height": 5, "background": "#000000",
			"ops": [{"type": "line", "color": "ffffff"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, raster.RGB(255, 128, 0), c)

	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 5,
		"height": 5,
		"background": "#000000",
		"ops": [{"type": "rectangle", "x1": 1, "y1": 1, "x2": 3, "y2": 3, "color": "#0a141e"}]
	}`))
	require.NoError(t, err)

	buf, err := s.Render(1)
	require.NoError(t, err)
	assert.Equal(t, 5, buf.Width())

	c, err := buf.GetPixel(2, 2)
	require.NoError(t, err)
	assert.Equal(t, raster.RGB(10, 20, 30), c)

	c, err = buf.GetPixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, raster.RGB(0, 0, 0), c)
}

func TestRenderSupersampled(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 4,
		"height": 4,
		"background": "#ffffff",
		"ops": [{"type": "rectangle", "x1": 0, "y1": 0, "x2": 1, "y2": 1, "color": "#000000"}]
	}`))
	require.NoError(t, err)

	buf, err := s.Render(2)
	require.NoError(t, err)
	assert.Equal(t, 8, buf.Width())
	assert.Equal(t, 8, buf.Height())

	c, err := buf.GetPixel(2, 2)
	require.NoError(t, err)
	assert.Equal(t, raster.RGB(0, 0, 0), c, "scaled corner is inclusive")

	c, err = buf.GetPixel(3, 3)
	require.NoError(t, err)
	assert.Equal(t, raster.RGB(255, 255, 255), c)
}

func TestRenderDefaultOpacityIsOpaque(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 3,
		"height": 3,
		"background": "#404040",
		"ops": [{"type": "line", "x1": 0, "y1": 1, "x2": 2, "y2": 1, "color": "#ffffff", "thickness": 1}]
	}`))
	require.NoError(t, err)

	buf, err := s.Render(1)
	require.NoError(t, err)
	c, err := buf.GetPixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, raster.RGB(255, 255, 255), c)
}
