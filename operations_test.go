package clipper2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestUnion(t *testing.T) {
	result, err := Union(
		PathsFromFloats([][][2]float64{squareSubject}),
		PathsFromFloats([][][2]float64{squareClip}),
		NonZero)
	test.Error(t, err)

	expected := PathsFromFloats([][][2]float64{{
		{6.0, 5.0}, {8.0, 5.0}, {8.0, 8.0}, {5.0, 8.0},
		{5.0, 6.0}, {0.2, 6.0}, {0.2, 0.2}, {6.0, 0.2},
	}})
	test.That(t, pathsMatch(result.Closed, expected), "got", result.Closed.Floats())
	test.T(t, len(result.Open), 0)
}

func TestOperationsAreas(t *testing.T) {
	subject := PathsFromFloats([][][2]float64{squareSubject})
	clip := PathsFromFloats([][][2]float64{squareClip})

	union, err := Union(subject, clip, NonZero)
	test.Error(t, err)
	test.Float(t, union.Closed.Area(), 41.64)

	difference, err := Difference(subject, clip, NonZero)
	test.Error(t, err)
	test.Float(t, difference.Closed.Area(), 32.64)

	intersection, err := Intersect(subject, clip, NonZero)
	test.Error(t, err)
	test.Float(t, intersection.Closed.Area(), 1.0)

	xor, err := Xor(subject, clip, NonZero)
	test.Error(t, err)
	test.Float(t, xor.Closed.Area(), 40.64)

	// set-theoretic relations between the results
	test.That(t, union.Closed.Area() <= subject.Area()+clip.Area())
	test.That(t, max(subject.Area(), clip.Area()) <= union.Closed.Area())
	test.That(t, intersection.Closed.Area() <= min(subject.Area(), clip.Area()))
	test.Float(t, union.Closed.Area()-intersection.Closed.Area(), xor.Closed.Area())
}

func TestOperationsTree(t *testing.T) {
	subject := PathsFromFloats([][][2]float64{squareSubject})
	clip := PathsFromFloats([][][2]float64{squareClip})

	result, err := UnionTree(subject, clip, NonZero)
	test.Error(t, err)
	test.T(t, len(result.Trees), 1)
	test.Float(t, result.Trees[0].Area(), 41.64)

	intersection, err := IntersectTree(subject, clip, NonZero)
	test.Error(t, err)
	test.T(t, len(intersection.Trees), 1)

	difference, err := DifferenceTree(subject, clip, NonZero)
	test.Error(t, err)
	test.T(t, len(difference.Trees), 1)

	xor, err := XorTree(subject, clip, NonZero)
	test.Error(t, err)
	test.That(t, 0 < len(xor.Trees))
}
