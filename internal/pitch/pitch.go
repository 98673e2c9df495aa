// Package pitch is the rendering sink: it consumes the geometry and colors
// produced by the analytics layers and emits an SVG diagram. It owns no
// analytics; callers hand it finished markers, paths, and legend entries.
package pitch

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/tacticpad/go-corner-stats/internal/geometry"
)

// Marker is one labelled point on the pitch. Radius should already encode
// whatever the caller wants size to mean (typically corner count).
type Marker struct {
	At     geometry.Point
	Color  string
	Label  string
	Radius float64
}

// Legend is one swatch+text entry under the diagram.
type Legend struct {
	Color string
	Text  string
}

// Diagram is a complete render request.
type Diagram struct {
	Title string
	// Background is an optional field image path. When empty or missing the
	// synthetic pitch is drawn instead; a missing asset never fails a render.
	Background string
	Markers    []Marker
	Paths      []geometry.Path
	PathColor  string
	Legend     []Legend
	Width      int
	Height     int
}

const (
	defaultWidth  = 800
	defaultHeight = 560
	legendRow     = 22
)

// Render writes the diagram as SVG. Coordinates are mapped through
// geometry.ToCanvas, which flips the y axis for the bottom-up plot.
func Render(w io.Writer, d Diagram) {
	width, height := d.Width, d.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	canvas := svg.New(w)
	canvas.Start(width, height+legendHeight(d))

	drawField(canvas, d.Background, width, height)

	if d.Title != "" {
		canvas.Text(width/2, 24, d.Title, "text-anchor:middle;font-size:16px;font-weight:bold;fill:white")
	}

	pathColor := d.PathColor
	if pathColor == "" {
		pathColor = "white"
	}
	for _, p := range d.Paths {
		drawPath(canvas, p, pathColor, width, height)
	}

	for _, m := range d.Markers {
		x, y := geometry.ToCanvas(m.At, width, height)
		r := int(m.Radius)
		if r < 4 {
			r = 4
		}
		canvas.Circle(x, y, r, fmt.Sprintf("fill:%s;stroke:black;fill-opacity:0.7", m.Color))
		if m.Label != "" {
			canvas.Text(x, y+4, m.Label, "text-anchor:middle;font-size:11px;font-weight:bold;fill:black")
		}
	}

	drawLegend(canvas, d.Legend, height)
	canvas.End()
}

func legendHeight(d Diagram) int {
	if len(d.Legend) == 0 {
		return 0
	}
	return len(d.Legend)*legendRow + 10
}

// drawField paints the background image when it exists, otherwise the
// synthetic half pitch: penalty area, goal area, and the penalty arc, scaled
// from the 0–100 field model.
func drawField(canvas *svg.SVG, background string, width, height int) {
	if background != "" {
		if _, err := os.Stat(background); err == nil {
			canvas.Image(0, 0, width, height, background)
			return
		}
	}

	canvas.Rect(0, 0, width, height, "fill:#2e7d32")

	sx := func(v float64) int { return int(v * float64(width) / 100) }
	sy := func(v float64) int { return int(v * float64(height) / 100) }

	// Goal line runs along the bottom after the y flip. Penalty area 40.3
	// wide and 16.5 deep, goal area 18.3 by 5.5, matching the field model.
	line := "fill:none;stroke:white;stroke-width:2"
	canvas.Rect(sx(29.85), height-sy(16.5), sx(40.3), sy(16.5), line)
	canvas.Rect(sx(40.85), height-sy(5.5), sx(18.3), sy(5.5), line)
	canvas.Arc(sx(41), height-sy(16.5), sx(9), sx(9), 0, false, true, sx(59), height-sy(16.5), line)
	canvas.Line(0, height-1, width, height-1, line)
}

// drawPath renders a variable-width trajectory as one line segment per sample
// pair plus the arrowhead triangle. A single-point path (degenerate
// trajectory) becomes a plain marker dot.
func drawPath(canvas *svg.SVG, p geometry.Path, color string, width, height int) {
	if len(p.Points) == 0 {
		return
	}
	if len(p.Points) == 1 {
		x, y := geometry.ToCanvas(p.Points[0].Point, width, height)
		canvas.Circle(x, y, 5, fmt.Sprintf("fill:%s", color))
		return
	}

	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		x1, y1 := geometry.ToCanvas(a.Point, width, height)
		x2, y2 := geometry.ToCanvas(b.Point, width, height)
		sw := (a.Width + b.Width) / 2
		canvas.Line(x1, y1, x2, y2,
			fmt.Sprintf("stroke:%s;stroke-width:%.1f;stroke-linecap:round;stroke-opacity:0.85", color, sw))
	}

	xs := make([]int, 3)
	ys := make([]int, 3)
	for i, pt := range p.Arrow {
		xs[i], ys[i] = geometry.ToCanvas(pt, width, height)
	}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s", color))
}

func drawLegend(canvas *svg.SVG, legend []Legend, height int) {
	y := height + 18
	for _, l := range legend {
		canvas.Circle(16, y-4, 7, fmt.Sprintf("fill:%s;stroke:black", l.Color))
		canvas.Text(32, y, l.Text, "font-size:13px;fill:black")
		y += legendRow
	}
}

// MarkerRadius converts a contributing-corner count into a marker radius.
// Monotonic in count, not linear; mirrors the registration tool's sizing.
func MarkerRadius(count int) float64 {
	return 8 + float64(count)/5*4
}
