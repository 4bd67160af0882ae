package clipper2

// One-shot operations for the common case of one subject collection against
// one clip collection. Each builds, executes and consumes a full builder chain;
// use the builder directly to register multiple collections or open subjects.

// Union joins the subject and clip polygons.
func Union(subject, clip Paths, fillRule FillRule) (BooleanResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).Union(fillRule)
}

// Difference subtracts the clip polygons from the subject polygons.
func Difference(subject, clip Paths, fillRule FillRule) (BooleanResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).Difference(fillRule)
}

// Intersect keeps the regions covered by both the subject and clip polygons.
func Intersect(subject, clip Paths, fillRule FillRule) (BooleanResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).Intersect(fillRule)
}

// Xor keeps the regions covered by exactly one of the subject and clip
// polygons.
func Xor(subject, clip Paths, fillRule FillRule) (BooleanResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).Xor(fillRule)
}

// UnionTree joins the subject and clip polygons, returning the result with
// hierarchy.
func UnionTree(subject, clip Paths, fillRule FillRule) (BooleanTreeResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).UnionTree(fillRule)
}

// DifferenceTree subtracts the clip polygons from the subject polygons,
// returning the result with hierarchy.
func DifferenceTree(subject, clip Paths, fillRule FillRule) (BooleanTreeResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).DifferenceTree(fillRule)
}

// IntersectTree keeps the regions covered by both the subject and clip
// polygons, returning the result with hierarchy.
func IntersectTree(subject, clip Paths, fillRule FillRule) (BooleanTreeResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).IntersectTree(fillRule)
}

// XorTree keeps the regions covered by exactly one of the subject and clip
// polygons, returning the result with hierarchy.
func XorTree(subject, clip Paths, fillRule FillRule) (BooleanTreeResult, error) {
	return NewClipper().AddSubject(subject).AddClip(clip).XorTree(fillRule)
}
