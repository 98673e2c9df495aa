package pitch

import (
	"strings"
	"testing"

	"github.com/tacticpad/go-corner-stats/internal/geometry"
)

func TestRenderSyntheticPitch(t *testing.T) {
	var b strings.Builder
	Render(&b, Diagram{
		Title: "Atlético Sur, attacking corners",
		Markers: []Marker{
			{At: geometry.Point{X: 50, Y: 12}, Color: "orange", Label: "9", Radius: 10},
		},
		Legend: []Legend{{Color: "orange", Text: "Rematador"}},
	})
	out := b.String()

	for _, want := range []string{"<svg", "</svg>", "Atlético Sur", "orange", ">9<", "Rematador"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// No background given, the synthetic field is drawn.
	if !strings.Contains(out, "#2e7d32") {
		t.Error("expected synthetic pitch fill")
	}
}

func TestRenderMissingBackgroundFallsBack(t *testing.T) {
	var b strings.Builder
	Render(&b, Diagram{Background: "/nonexistent/field.png"})
	out := b.String()

	if strings.Contains(out, "field.png") {
		t.Error("missing background must not be referenced")
	}
	if !strings.Contains(out, "#2e7d32") {
		t.Error("expected fallback to the synthetic pitch")
	}
}

func TestRenderPathSegments(t *testing.T) {
	p := geometry.Trajectory(geometry.Point{X: 96, Y: 6}, geometry.Point{X: 58, Y: 12}, 0.15, 10)

	var b strings.Builder
	Render(&b, Diagram{Paths: []geometry.Path{p}})
	out := b.String()

	if strings.Count(out, "<line") < 10 {
		t.Errorf("expected one segment per sample pair, got %d lines", strings.Count(out, "<line"))
	}
	if !strings.Contains(out, "<polygon") {
		t.Error("expected an arrowhead polygon")
	}
}

func TestRenderDegeneratePathAsDot(t *testing.T) {
	at := geometry.Point{X: 50, Y: 30}
	p := geometry.Trajectory(at, at, 0.15, 10)

	var b strings.Builder
	Render(&b, Diagram{Paths: []geometry.Path{p}})
	out := b.String()

	if strings.Contains(out, "<polygon") {
		t.Error("a single-point path has no direction, no arrowhead expected")
	}
	if !strings.Contains(out, "<circle") {
		t.Error("expected the degenerate path to render as a dot")
	}
}

func TestMarkerRadiusMonotone(t *testing.T) {
	prev := MarkerRadius(0)
	for count := 1; count <= 20; count++ {
		r := MarkerRadius(count)
		if r < prev {
			t.Fatalf("radius must not shrink with count: %d gives %f after %f", count, r, prev)
		}
		prev = r
	}
}
