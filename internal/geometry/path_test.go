package geometry

import (
	"math"
	"testing"
)

func TestTrajectoryEndpoints(t *testing.T) {
	origin := Point{X: 96, Y: 6}
	landing := Point{X: 58, Y: 12}
	p := Trajectory(origin, landing, 0.15, 20)

	if len(p.Points) != 21 {
		t.Fatalf("expected 21 samples for 20 steps, got %d", len(p.Points))
	}
	if p.Points[0].Point != origin {
		t.Errorf("curve must start at origin, got %+v", p.Points[0].Point)
	}
	end := p.Points[len(p.Points)-1].Point
	if math.Abs(end.X-landing.X) > 1e-9 || math.Abs(end.Y-landing.Y) > 1e-9 {
		t.Errorf("curve must end at landing, got %+v", end)
	}
}

func TestTrajectoryWidthProfile(t *testing.T) {
	p := Trajectory(Point{X: 96, Y: 6}, Point{X: 50, Y: 12}, 0.15, 20)

	first := p.Points[0].Width
	mid := p.Points[10].Width
	last := p.Points[20].Width
	if math.Abs(first-baseWidth) > 1e-9 || math.Abs(last-baseWidth) > 1e-9 {
		t.Errorf("endpoints should use base width, got %f and %f", first, last)
	}
	if math.Abs(mid-maxWidth) > 1e-9 {
		t.Errorf("midpoint should use max width, got %f", mid)
	}
	for _, pt := range p.Points {
		if pt.Width < baseWidth-1e-9 || pt.Width > maxWidth+1e-9 {
			t.Errorf("width %f outside profile bounds", pt.Width)
		}
	}
}

func TestTrajectoryStraightLineWhenFlat(t *testing.T) {
	origin := Point{X: 20, Y: 10}
	landing := Point{X: 80, Y: 10}
	p := Trajectory(origin, landing, 0, 10)
	for _, pt := range p.Points {
		if math.Abs(pt.Y-10) > 1e-9 {
			t.Errorf("zero curvature must give a straight line, got y=%f", pt.Y)
		}
	}
}

func TestTrajectoryClampsToField(t *testing.T) {
	// A strong bow on an up-field delivery pushes control points past the
	// right touchline; sampled points must still land inside the field.
	p := Trajectory(Point{X: 96, Y: 6}, Point{X: 90, Y: 90}, 0.8, 30)
	if !p.Clamped {
		t.Error("expected the exaggerated bow to be clamped")
	}
	for _, pt := range p.Points {
		if pt.X < 0 || pt.X > 100 || pt.Y < 0 || pt.Y > 100 {
			t.Errorf("sample escaped the field: %+v", pt.Point)
		}
	}
}

func TestTrajectoryDegenerate(t *testing.T) {
	at := Point{X: 50, Y: 30}
	p := Trajectory(at, at, 0.2, 20)
	if len(p.Points) != 1 {
		t.Fatalf("coinciding endpoints should give a single marker, got %d points", len(p.Points))
	}
	if p.Points[0].Point != at {
		t.Errorf("marker must sit at the point, got %+v", p.Points[0].Point)
	}
}

func TestTrajectoryMirrorSymmetry(t *testing.T) {
	right := Trajectory(Point{X: 96, Y: 6}, Point{X: 58, Y: 12}, 0.2, 20)
	left := Trajectory(Point{X: 4, Y: 6}, Point{X: 42, Y: 12}, 0.2, 20)

	// The direction-dependent sign flip keeps both arcs bowing the same way:
	// each sampled point of the left curve mirrors the right curve in x.
	for i := range right.Points {
		r := right.Points[i].Point
		l := left.Points[i].Point
		if math.Abs(l.X-(100-r.X)) > 1e-9 || math.Abs(l.Y-r.Y) > 1e-9 {
			t.Fatalf("sample %d not mirrored: right %+v, left %+v", i, r, l)
		}
	}
}

func TestSummaryTrajectoryWidth(t *testing.T) {
	p := SummaryTrajectory(Point{X: 96, Y: 6}, Point{X: 50, Y: 25}, 0.15, 20, 5)
	mid := p.Points[10].Width
	if math.Abs(mid-5) > 1e-9 {
		t.Errorf("midpoint width should match the requested width, got %f", mid)
	}

	// Requested widths below the base are raised to it.
	p = SummaryTrajectory(Point{X: 96, Y: 6}, Point{X: 50, Y: 25}, 0.15, 20, 0.1)
	if p.Points[10].Width < baseWidth-1e-9 {
		t.Errorf("width floor not applied, got %f", p.Points[10].Width)
	}
}

func TestArrowheadAtLanding(t *testing.T) {
	landing := Point{X: 58, Y: 12}
	p := Trajectory(Point{X: 96, Y: 6}, landing, 0.15, 20)
	tip := p.Arrow[0]
	if math.Abs(tip.X-landing.X) > 1e-9 || math.Abs(tip.Y-landing.Y) > 1e-9 {
		t.Errorf("arrow tip should sit at the landing point, got %+v", tip)
	}
	if p.Arrow[1] == tip || p.Arrow[2] == tip {
		t.Error("arrow base points should differ from the tip")
	}
}

func TestToCanvasFlipsY(t *testing.T) {
	x, y := ToCanvas(Point{X: 0, Y: 0}, 800, 560)
	if x != 0 || y != 560 {
		t.Errorf("goal-line corner should map to the canvas bottom, got (%d, %d)", x, y)
	}
	x, y = ToCanvas(Point{X: 100, Y: 100}, 800, 560)
	if x != 800 || y != 0 {
		t.Errorf("far corner should map to the canvas top, got (%d, %d)", x, y)
	}
	x, y = ToCanvas(Point{X: 50, Y: 50}, 800, 560)
	if x != 400 || y != 280 {
		t.Errorf("center mapping wrong: (%d, %d)", x, y)
	}
}
