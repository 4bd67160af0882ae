package clipper2

// Test helpers for comparing boolean-operation output. Engines are free to
// start an output contour at any vertex and, depending on the operation, to
// reverse the winding of holes, so contours compare rotation- and
// direction-insensitively and collections compare order-insensitively.

func contourMatch(p, q Path) bool {
	return p.Equals(q) || p.Equals(q.Reverse())
}

func pathsMatch(ps, qs Paths) bool {
	if len(ps) != len(qs) {
		return false
	}
	used := make([]bool, len(qs))
	for _, p := range ps {
		found := false
		for i, q := range qs {
			if !used[i] && contourMatch(p, q) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var (
	// The squares from the original boolean-operation example: the clip
	// overlaps the subject's top-right corner by exactly 1x1.
	squareSubject = [][2]float64{{0.2, 0.2}, {6.0, 0.2}, {6.0, 6.0}, {0.2, 6.0}}
	squareClip    = [][2]float64{{5.0, 5.0}, {8.0, 5.0}, {8.0, 8.0}, {5.0, 8.0}}
)
