package clipper2

import (
	clipper "github.com/ctessum/go.clipper"
)

// Inflate grows (positive delta) or shrinks (negative delta) the contours by
// delta application units, through the engine's offsetting primitive. The join
// type shapes convex corners; the end type selects between closed polygons,
// closed lines and the open-end cap styles. The miter limit caps how far miter
// joins may extend, in multiples of delta; values at or below zero keep the
// engine default.
func (ps Paths) Inflate(delta float64, joinType JoinType, endType EndType, miterLimit float64) Paths {
	scale := ps.scaleOf()
	co := clipper.NewClipperOffset()
	if 0 < miterLimit {
		co.MiterLimit = miterLimit
	}
	co.AddPaths(ps.toClipper(), joinType.toClipper(), endType.toClipper())
	solution := co.Execute(delta * float64(scale))
	return pathsFromClipper(solution, scale)
}
