package clipper2

import (
	clipper "github.com/ctessum/go.clipper"
)

// Path is one contour: an ordered sequence of grid points, open or closed
// depending on how it is registered. The core never adds an implicit closing
// edge. A path remembers the scale its coordinates were converted with so that
// areas and float conversions round-trip without the caller re-supplying it.
type Path struct {
	points []Point
	scale  Scale
}

// NewPath returns a path over the given grid points.
func NewPath(points []Point, scale Scale) Path {
	return Path{points: points, scale: scale}
}

// PathFromFloats returns a path from application coordinates using the default
// Centi scale.
func PathFromFloats(coords [][2]float64) Path {
	return PathFromFloatsScale(coords, Centi)
}

// PathFromFloatsScale returns a path from application coordinates converted onto
// the grid with the given scale.
func PathFromFloatsScale(coords [][2]float64, scale Scale) Path {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{scale.ToGrid(c[0]), scale.ToGrid(c[1])}
	}
	return Path{points: points, scale: scale}
}

// Len returns the number of points.
func (p Path) Len() int {
	return len(p.points)
}

// Point returns the i-th point.
func (p Path) Point(i int) Point {
	return p.points[i]
}

// Points returns the list of grid points of the path.
func (p Path) Points() []Point {
	return p.points
}

// Scale returns the scale the path's coordinates were converted with.
func (p Path) Scale() Scale {
	return p.scale
}

// Floats returns the path as application coordinate pairs.
func (p Path) Floats() [][2]float64 {
	coords := make([][2]float64, len(p.points))
	for i, pt := range p.points {
		coords[i] = [2]float64{p.scale.FromGrid(pt.X), p.scale.FromGrid(pt.Y)}
	}
	return coords
}

// Area returns the signed area enclosed by the path in application units, using
// the shoelace formula. Positive for one winding direction, negative for the
// other; area scales with the square of the scale factor.
func (p Path) Area() float64 {
	if len(p.points) < 3 {
		return 0.0
	}
	a := 0.0
	j := len(p.points) - 1
	for i := 0; i < len(p.points); i++ {
		a += (float64(p.points[j].X) + float64(p.points[i].X)) * float64(p.points[j].Y-p.points[i].Y)
		j = i
	}
	return -a / 2.0 / float64(p.scale) / float64(p.scale)
}

// Translate moves the path by (dx,dy) in application units.
func (p Path) Translate(dx, dy float64) Path {
	d := Point{p.scale.ToGrid(dx), p.scale.ToGrid(dy)}
	points := make([]Point, len(p.points))
	for i, pt := range p.points {
		points[i] = pt.Add(d)
	}
	return Path{points: points, scale: p.scale}
}

// Reverse returns the path with its winding direction reversed.
func (p Path) Reverse() Path {
	points := make([]Point, len(p.points))
	for i, pt := range p.points {
		points[len(points)-1-i] = pt
	}
	return Path{points: points, scale: p.scale}
}

// Bounds returns the bounding rectangle of the path in application units.
func (p Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	x0, y0 := p.points[0].X, p.points[0].Y
	x1, y1 := x0, y0
	for _, pt := range p.points[1:] {
		if pt.X < x0 {
			x0 = pt.X
		} else if x1 < pt.X {
			x1 = pt.X
		}
		if pt.Y < y0 {
			y0 = pt.Y
		} else if y1 < pt.Y {
			y1 = pt.Y
		}
	}
	return Rect{
		X: p.scale.FromGrid(x0),
		Y: p.scale.FromGrid(y0),
		W: p.scale.FromGrid(x1 - x0),
		H: p.scale.FromGrid(y1 - y0),
	}
}

// Contains returns true if the application coordinate (x,y) lies inside or on
// the boundary of the closed path.
func (p Path) Contains(x, y float64) bool {
	pt := &clipper.IntPoint{X: clipper.CInt(p.scale.ToGrid(x)), Y: clipper.CInt(p.scale.ToGrid(y))}
	return clipper.PointInPolygon(pt, p.toClipper()) != 0
}

// Equals returns true if both paths visit the same grid points in the same
// order, starting anywhere along the contour.
func (p Path) Equals(q Path) bool {
	if len(p.points) != len(q.points) {
		return false
	} else if len(p.points) == 0 {
		return true
	}
	for shift := range p.points {
		match := true
		for i := range p.points {
			if !p.points[i].Equals(q.points[(i+shift)%len(q.points)]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
