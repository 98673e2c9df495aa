// Package geometry holds the field coordinate model: the side-aware mapping
// from named landing zones to percent-of-field coordinates, the corner origin
// rule, and the Bézier trajectory builder.
//
// Coordinates are percent-of-field on both axes, goal at low y. Zone names are
// mirrored across the two corner sides: "Primer Palo" is the post nearer the
// kicking side, so the same name resolves to different absolute coordinates
// for a right-side and a left-side corner. Every consumer must resolve zone
// names through ZoneCoordinate; raw coordinates from different sides are not
// comparable without that reflection.
package geometry

import "github.com/tacticpad/go-corner-stats/internal/model"

// Point is a 2-D field coordinate in percent-of-field units.
type Point struct {
	X, Y float64
}

// Canonical zone names.
const (
	ZoneNearPost    = "Primer Palo"
	ZoneSixYardBox  = "Centro Área Pequeña"
	ZoneFarPost     = "Segundo Palo"
	ZoneEdgeNear    = "Frontal Palo Cercano"
	ZoneEdgeCenter  = "Frontal Centro"
	ZoneEdgeFar     = "Frontal Palo Lejano"
	ZoneRebound     = "Zona de Rechace"
	ZoneShortCorner = "Zona en Corto"
)

// ZoneNames lists the canonical zones in display order.
var ZoneNames = []string{
	ZoneNearPost, ZoneSixYardBox, ZoneFarPost,
	ZoneEdgeNear, ZoneEdgeCenter, ZoneEdgeFar,
	ZoneRebound, ZoneShortCorner,
}

// fallback is returned for unrecognized or free-text zone labels
// ("Personalizada" and friends). Historical records must not fail to plot.
var fallback = Point{X: 50, Y: 30}

// rightZones maps zone names for a corner taken from the right arc (x≈96).
// "Primer Palo" is the post nearer x=100, the short-corner zone hugs the
// right touchline.
var rightZones = map[string]Point{
	ZoneNearPost:    {X: 58, Y: 12},
	ZoneSixYardBox:  {X: 50, Y: 12},
	ZoneFarPost:     {X: 42, Y: 12},
	ZoneEdgeNear:    {X: 60, Y: 25},
	ZoneEdgeCenter:  {X: 50, Y: 25},
	ZoneEdgeFar:     {X: 40, Y: 25},
	ZoneRebound:     {X: 50, Y: 38},
	ZoneShortCorner: {X: 85, Y: 12},
}

// leftZones is the mirror image (x → 100−x) for a corner from the left arc.
var leftZones = map[string]Point{
	ZoneNearPost:    {X: 42, Y: 12},
	ZoneSixYardBox:  {X: 50, Y: 12},
	ZoneFarPost:     {X: 58, Y: 12},
	ZoneEdgeNear:    {X: 40, Y: 25},
	ZoneEdgeCenter:  {X: 50, Y: 25},
	ZoneEdgeFar:     {X: 60, Y: 25},
	ZoneRebound:     {X: 50, Y: 38},
	ZoneShortCorner: {X: 15, Y: 12},
}

// Origin returns the corner-arc location the kick is taken from.
func Origin(side model.Side) Point {
	if side == model.SideLeft {
		return Point{X: 4, Y: 6}
	}
	return Point{X: 96, Y: 6}
}

// ZoneCoordinate resolves a named landing zone for the given corner side.
// Unknown names resolve to a central default rather than failing.
func ZoneCoordinate(side model.Side, zone string) Point {
	table := rightZones
	if side == model.SideLeft {
		table = leftZones
	}
	if p, ok := table[zone]; ok {
		return p
	}
	return fallback
}
