package clipper2

// Paths is a collection of independent contours. Insertion order is preserved
// but carries no meaning; a boolean operation may output many contours.
type Paths []Path

// PathsFromFloats returns a collection of paths from application coordinates
// using the default Centi scale.
func PathsFromFloats(coords [][][2]float64) Paths {
	return PathsFromFloatsScale(coords, Centi)
}

// PathsFromFloatsScale returns a collection of paths from application
// coordinates converted onto the grid with the given scale.
func PathsFromFloatsScale(coords [][][2]float64, scale Scale) Paths {
	ps := make(Paths, len(coords))
	for i, c := range coords {
		ps[i] = PathFromFloatsScale(c, scale)
	}
	return ps
}

// Floats returns all contours as application coordinate pairs.
func (ps Paths) Floats() [][][2]float64 {
	coords := make([][][2]float64, len(ps))
	for i, p := range ps {
		coords[i] = p.Floats()
	}
	return coords
}

// Area returns the sum of the signed areas of all contours in application
// units. Holes wind opposite to their enclosing contour and subtract.
func (ps Paths) Area() float64 {
	a := 0.0
	for _, p := range ps {
		a += p.Area()
	}
	return a
}

// Translate moves all contours by (dx,dy) in application units.
func (ps Paths) Translate(dx, dy float64) Paths {
	qs := make(Paths, len(ps))
	for i, p := range ps {
		qs[i] = p.Translate(dx, dy)
	}
	return qs
}

// Bounds returns the bounding rectangle of all contours in application units.
func (ps Paths) Bounds() Rect {
	if len(ps) == 0 {
		return Rect{}
	}
	r := ps[0].Bounds()
	for _, p := range ps[1:] {
		b := p.Bounds()
		x1 := max(r.X+r.W, b.X+b.W)
		y1 := max(r.Y+r.H, b.Y+b.H)
		r.X = min(r.X, b.X)
		r.Y = min(r.Y, b.Y)
		r.W = x1 - r.X
		r.H = y1 - r.Y
	}
	return r
}

// scaleOf returns the scale shared by the contours, or the default when the
// collection is empty.
func (ps Paths) scaleOf() Scale {
	if len(ps) == 0 {
		return Centi
	}
	return ps[0].scale
}
