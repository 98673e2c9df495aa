package geometry

import (
	"testing"

	"github.com/tacticpad/go-corner-stats/internal/model"
)

func TestOriginPerSide(t *testing.T) {
	if got := Origin(model.SideRight); got != (Point{X: 96, Y: 6}) {
		t.Errorf("right origin: %+v", got)
	}
	if got := Origin(model.SideLeft); got != (Point{X: 4, Y: 6}) {
		t.Errorf("left origin: %+v", got)
	}
}

func TestZoneCoordinatesMirror(t *testing.T) {
	for _, zone := range ZoneNames {
		r := ZoneCoordinate(model.SideRight, zone)
		l := ZoneCoordinate(model.SideLeft, zone)
		if l.X != 100-r.X {
			t.Errorf("%s: left x %f is not the mirror of right x %f", zone, l.X, r.X)
		}
		if l.Y != r.Y {
			t.Errorf("%s: y must not change between sides, got %f vs %f", zone, l.Y, r.Y)
		}
	}
}

func TestZoneCoordinatesInRange(t *testing.T) {
	for _, side := range []model.Side{model.SideRight, model.SideLeft} {
		for _, zone := range ZoneNames {
			p := ZoneCoordinate(side, zone)
			if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
				t.Errorf("%s/%s out of range: %+v", side, zone, p)
			}
		}
	}
}

func TestZoneCoordinateNearPostIsNearKickingSide(t *testing.T) {
	r := ZoneCoordinate(model.SideRight, ZoneNearPost)
	if r.X <= 50 {
		t.Errorf("right-corner near post should sit on the right half, got x=%f", r.X)
	}
	l := ZoneCoordinate(model.SideLeft, ZoneNearPost)
	if l.X >= 50 {
		t.Errorf("left-corner near post should sit on the left half, got x=%f", l.X)
	}
}

func TestZoneCoordinateFallback(t *testing.T) {
	for _, name := range []string{"Personalizada", "", "zona inventada"} {
		if got := ZoneCoordinate(model.SideRight, name); got != fallback {
			t.Errorf("%q should resolve to the central default, got %+v", name, got)
		}
	}
}
