package geometry

import "math"

// PathPoint is one sampled point of a trajectory with its stroke width.
type PathPoint struct {
	Point
	Width float64
}

// Path is a renderable ball-flight arc: an ordered point sequence with a
// variable width profile and a tangent-aligned arrowhead at the landing end.
type Path struct {
	Points []PathPoint
	Arrow  [3]Point
	// Clamped is set when any sampled point had to be pulled back into the
	// [0,100] range; callers may surface a warning.
	Clamped bool
}

const (
	defaultSteps = 20
	baseWidth    = 0.8
	maxWidth     = 3.0
	arrowLen     = 2.5
	arrowHalf    = 1.2
)

// Trajectory computes the full-resolution flight arc from origin to landing
// as a cubic Bézier sampled at steps uniform parameter values. curvature
// scales the perpendicular control-point offset relative to the travel
// distance; 0 gives a straight line.
//
// The curve bows away from goal. Travel direction decides the offset sign so
// that right-to-left and left-to-right corners arc consistently; flipping it
// would make one side's arrows bend into the goal.
func Trajectory(origin, landing Point, curvature float64, steps int) Path {
	if steps < 2 {
		steps = defaultSteps
	}

	dx := landing.X - origin.X
	dy := landing.Y - origin.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		// Degenerate: origin and landing coincide. A single marker, no
		// direction to normalize.
		return Path{Points: []PathPoint{{Point: clamp(origin), Width: maxWidth}}}
	}

	// Perpendicular of the travel direction; sign flipped for right-to-left
	// travel so the bow stays on the far-from-goal side.
	px, py := -dy/dist, dx/dist
	if dx < 0 {
		px, py = -px, -py
	}
	offset := dist * curvature

	c1 := Point{
		X: origin.X + dx/3 + px*offset,
		Y: origin.Y + dy/3 + py*offset,
	}
	c2 := Point{
		X: origin.X + 2*dx/3 + px*offset,
		Y: origin.Y + 2*dy/3 + py*offset,
	}

	p := Path{Points: make([]PathPoint, 0, steps+1)}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pt := cubicAt(origin, c1, c2, landing, t)
		cl := clamp(pt)
		if cl != pt {
			p.Clamped = true
		}
		p.Points = append(p.Points, PathPoint{Point: cl, Width: widthAt(t)})
	}
	p.Arrow = arrowhead(p.Points)
	return p
}

// SummaryTrajectory is the lighter-weight quadratic variant used for overlay
// arrows (one per side×zone cell). width fixes the midpoint stroke width so
// callers can encode a cell's share of the total.
func SummaryTrajectory(origin, landing Point, curvature float64, steps int, width float64) Path {
	if steps < 2 {
		steps = defaultSteps
	}
	if width < baseWidth {
		width = baseWidth
	}

	dx := landing.X - origin.X
	dy := landing.Y - origin.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return Path{Points: []PathPoint{{Point: clamp(origin), Width: width}}}
	}

	px, py := -dy/dist, dx/dist
	if dx < 0 {
		px, py = -px, -py
	}
	ctrl := Point{
		X: origin.X + dx/2 + px*dist*curvature,
		Y: origin.Y + dy/2 + py*dist*curvature,
	}

	p := Path{Points: make([]PathPoint, 0, steps+1)}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pt := quadAt(origin, ctrl, landing, t)
		cl := clamp(pt)
		if cl != pt {
			p.Clamped = true
		}
		w := baseWidth + (width-baseWidth)*math.Sin(t*math.Pi)
		p.Points = append(p.Points, PathPoint{Point: cl, Width: w})
	}
	p.Arrow = arrowhead(p.Points)
	return p
}

// widthAt is the "drawn arrow" stroke profile: thinnest at the endpoints,
// thickest at the midpoint.
func widthAt(t float64) float64 {
	return baseWidth + (maxWidth-baseWidth)*math.Sin(t*math.Pi)
}

// cubicAt evaluates a cubic Bézier with the Bernstein basis.
func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// quadAt evaluates a quadratic Bézier.
func quadAt(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	b0 := u * u
	b1 := 2 * u * t
	b2 := t * t
	return Point{
		X: b0*p0.X + b1*p1.X + b2*p2.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y,
	}
}

// arrowhead builds a small triangle oriented along the tangent of the final
// sampled segment. Fewer than two points means no direction, no arrow.
func arrowhead(pts []PathPoint) [3]Point {
	n := len(pts)
	if n < 2 {
		var a [3]Point
		if n == 1 {
			a = [3]Point{pts[0].Point, pts[0].Point, pts[0].Point}
		}
		return a
	}
	tip := pts[n-1].Point
	prev := pts[n-2].Point
	dx := tip.X - prev.X
	dy := tip.Y - prev.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return [3]Point{tip, tip, tip}
	}
	ux, uy := dx/d, dy/d
	// Base of the triangle sits back along the tangent, spread perpendicular.
	bx := tip.X - ux*arrowLen
	by := tip.Y - uy*arrowLen
	return [3]Point{
		tip,
		{X: bx - uy*arrowHalf, Y: by + ux*arrowHalf},
		{X: bx + uy*arrowHalf, Y: by - ux*arrowHalf},
	}
}

func clamp(p Point) Point {
	return Point{X: clamp01(p.X), Y: clamp01(p.Y)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ToCanvas maps a field point to pixel coordinates on a canvas of the given
// size. The y axis is flipped: registration stores y growing downward from
// the goal line, analytical plots draw bottom-up.
func ToCanvas(p Point, width, height int) (int, int) {
	x := p.X * float64(width) / 100
	y := float64(height) - p.Y*float64(height)/100
	return int(math.Round(x)), int(math.Round(y))
}
