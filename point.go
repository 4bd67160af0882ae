package clipper2

// Point is a coordinate on the integer grid the clipping engine operates on. Use a
// Scale to map between application coordinates and grid coordinates.
type Point struct {
	X, Y int64
}

// Equals returns true if P and Q are the same grid coordinate.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in application coordinates, used for path
// bounds.
type Rect struct {
	X, Y, W, H float64
}
