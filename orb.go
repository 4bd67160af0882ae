package clipper2

import (
	"github.com/paulmach/orb"
)

// Interop with the orb geometry types, for feeding polygons from GeoJSON or
// OSM-style sources through boolean operations and back.

// PathFromRing converts an orb ring onto the grid. The ring's closing point,
// when present, is dropped; paths do not repeat their first point.
func PathFromRing(r orb.Ring, scale Scale) Path {
	if 1 < len(r) && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	points := make([]Point, len(r))
	for i, pt := range r {
		points[i] = Point{scale.ToGrid(pt[0]), scale.ToGrid(pt[1])}
	}
	return Path{points: points, scale: scale}
}

// PathsFromPolygon converts an orb polygon, outer ring and holes alike, into a
// flat contour collection.
func PathsFromPolygon(p orb.Polygon, scale Scale) Paths {
	ps := make(Paths, len(p))
	for i, r := range p {
		ps[i] = PathFromRing(r, scale)
	}
	return ps
}

// PathsFromMultiPolygon converts an orb multipolygon into a flat contour
// collection.
func PathsFromMultiPolygon(mp orb.MultiPolygon, scale Scale) Paths {
	ps := Paths{}
	for _, p := range mp {
		ps = append(ps, PathsFromPolygon(p, scale)...)
	}
	return ps
}

// Ring returns the path as a closed orb ring in application coordinates.
func (p Path) Ring() orb.Ring {
	r := make(orb.Ring, 0, len(p.points)+1)
	for _, pt := range p.points {
		r = append(r, orb.Point{p.scale.FromGrid(pt.X), p.scale.FromGrid(pt.Y)})
	}
	if 0 < len(r) {
		r = append(r, r[0])
	}
	return r
}

// MultiPolygon converts the result forest into an orb multipolygon: every
// solid node becomes a polygon whose interior rings are its direct hole
// children, and islands nested inside holes become polygons of their own.
// Winding directions are kept as the engine produced them.
func (r BooleanTreeResult) MultiPolygon() orb.MultiPolygon {
	mp := orb.MultiPolygon{}
	var walk func(t *PolyTree)
	walk = func(t *PolyTree) {
		polygon := orb.Polygon{t.polygon.Ring()}
		for _, hole := range t.children {
			polygon = append(polygon, hole.polygon.Ring())
			for _, island := range hole.children {
				walk(island)
			}
		}
		mp = append(mp, polygon)
	}
	for _, t := range r.Trees {
		walk(t)
	}
	return mp
}
