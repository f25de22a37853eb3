// Package scene describes a drawing as JSON: buffer dimensions, a background
// color, and an ordered list of primitive operations executed against a
// raster buffer.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"rasterpad/internal/raster"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Op is one primitive draw operation. Which coordinate fields apply depends
// on the type: lines and rectangles use x1/y1/x2/y2, ellipses use x/y with
// h_axis/v_axis.
type Op struct {
	Type string `json:"type"` // "line", "rectangle" or "ellipse"

	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`

	X     int `json:"x"`
	Y     int `json:"y"`
	HAxis int `json:"h_axis"`
	VAxis int `json:"v_axis"`

	Color     string   `json:"color"` // "#rrggbb"
	Thickness int      `json:"thickness"`
	Opacity   *float64 `json:"opacity"` // nil means fully opaque
}

// Scene is a complete drawing description.
type Scene struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
	Ops        []Op   `json:"ops"`
}

// Load reads and parses a scene file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a JSON scene so Render cannot fail halfway
// through drawing.
func Parse(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: parse: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Scene{}, fmt.Errorf("scene: invalid dimensions %dx%d", s.Width, s.Height)
	}
	if _, err := ParseColor(s.Background); err != nil {
		return Scene{}, fmt.Errorf("scene: background: %w", err)
	}
	for i, op := range s.Ops {
		switch op.Type {
		case "line", "rectangle", "ellipse":
		default:
			return Scene{}, fmt.Errorf("scene: op %d: unknown type %q", i, op.Type)
		}
		if _, err := ParseColor(op.Color); err != nil {
			return Scene{}, fmt.Errorf("scene: op %d: %w", i, err)
		}
	}
	return s, nil
}

// ParseColor converts a "#rrggbb" hex string into an engine color.
func ParseColor(s string) (raster.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("scene: color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return raster.RGB(r, g, b), nil
}

// Render executes the scene against a fresh buffer. A scale factor above 1
// renders at supersampled resolution (coordinates, axes and thicknesses all
// multiplied) for later downsampling.
func (s *Scene) Render(scale int) (*raster.Buffer, error) {
	if scale < 1 {
		scale = 1
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return nil, err
	}
	buf, err := raster.New(s.Width*scale, s.Height*scale, bg)
	if err != nil {
		return nil, fmt.Errorf("scene: buffer: %w", err)
	}
	for _, op := range s.Ops {
		c, err := ParseColor(op.Color)
		if err != nil {
			return nil, err
		}
		opacity := 1.0
		if op.Opacity != nil {
			opacity = *op.Opacity
		}
		switch op.Type {
		case "line":
			// Lines are single-pixel; thickness only distinguishes the
			// zero-thickness no-op, so it is not scaled.
			buf.DrawLine(op.X1*scale, op.Y1*scale, op.X2*scale, op.Y2*scale, c, op.Thickness, opacity)
		case "rectangle":
			buf.DrawRectangle(op.X1*scale, op.Y1*scale, op.X2*scale, op.Y2*scale, c, op.Thickness*scale, opacity)
		case "ellipse":
			buf.DrawEllipse(op.X*scale, op.Y*scale, op.HAxis*scale, op.VAxis*scale, c, op.Thickness*scale, opacity)
		}
	}
	return buf, nil
}
