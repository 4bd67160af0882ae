package clipper2

import (
	"github.com/ByteArena/poly2tri-go"
)

// Triangulate returns a constrained Delaunay triangulation of the region
// bounded by this node's contour minus its direct hole children, as a
// collection of triangle contours in grid coordinates. Islands nested inside
// the holes are not part of the region; triangulate them separately. Must not
// be called on a hole node.
func (t *PolyTree) Triangulate() Paths {
	if t.isHole {
		panic("cannot triangulate a hole")
	}

	contour := make([]*poly2tri.Point, 0, t.polygon.Len())
	for _, pt := range t.polygon.points {
		contour = append(contour, poly2tri.NewPoint(float64(pt.X), float64(pt.Y)))
	}
	swctx := poly2tri.NewSweepContext(contour, false)
	for _, hole := range t.children {
		points := make([]*poly2tri.Point, 0, hole.polygon.Len())
		for _, pt := range hole.polygon.points {
			points = append(points, poly2tri.NewPoint(float64(pt.X), float64(pt.Y)))
		}
		swctx.AddHole(points)
	}
	swctx.Triangulate()

	triangles := Paths{}
	for _, tr := range swctx.GetTriangles() {
		triangles = append(triangles, Path{
			points: []Point{
				{int64(tr.Points[0].X), int64(tr.Points[0].Y)},
				{int64(tr.Points[1].X), int64(tr.Points[1].Y)},
				{int64(tr.Points[2].X), int64(tr.Points[2].Y)},
			},
			scale: t.polygon.scale,
		})
	}
	return triangles
}
