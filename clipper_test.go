package clipper2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestClipperUnion(t *testing.T) {
	result, err := NewClipper().
		AddSubject(PathsFromFloats([][][2]float64{squareSubject})).
		AddClip(PathsFromFloats([][][2]float64{squareClip})).
		Union(NonZero)
	test.Error(t, err)
	test.T(t, len(result.Closed), 1)
	test.T(t, len(result.Open), 0)

	expected := PathFromFloats([][2]float64{
		{6.0, 5.0}, {8.0, 5.0}, {8.0, 8.0}, {5.0, 8.0},
		{5.0, 6.0}, {0.2, 6.0}, {0.2, 0.2}, {6.0, 0.2},
	})
	test.That(t, contourMatch(result.Closed[0], expected), "got", result.Closed[0].Floats())
	test.Float(t, result.Closed[0].Area(), 41.64)
}

func TestClipperDifference(t *testing.T) {
	result, err := NewClipper().
		AddSubject(PathsFromFloats([][][2]float64{squareSubject})).
		AddClip(PathsFromFloats([][][2]float64{squareClip})).
		Difference(NonZero)
	test.Error(t, err)
	test.T(t, len(result.Closed), 1)

	expected := PathFromFloats([][2]float64{
		{0.2, 0.2}, {6.0, 0.2}, {6.0, 5.0}, {5.0, 5.0}, {5.0, 6.0}, {0.2, 6.0},
	})
	test.That(t, contourMatch(result.Closed[0], expected), "got", result.Closed[0].Floats())
	test.Float(t, result.Closed[0].Area(), 32.64)
}

func TestClipperIntersect(t *testing.T) {
	result, err := NewClipper().
		AddSubject(PathsFromFloats([][][2]float64{squareSubject})).
		AddClip(PathsFromFloats([][][2]float64{squareClip})).
		Intersect(NonZero)
	test.Error(t, err)
	test.T(t, len(result.Closed), 1)

	expected := PathFromFloats([][2]float64{{5.0, 5.0}, {6.0, 5.0}, {6.0, 6.0}, {5.0, 6.0}})
	test.That(t, contourMatch(result.Closed[0], expected), "got", result.Closed[0].Floats())
	test.Float(t, result.Closed[0].Area(), 1.0)
}

func TestClipperXor(t *testing.T) {
	result, err := NewClipper().
		AddSubject(PathsFromFloats([][][2]float64{squareSubject})).
		AddClip(PathsFromFloats([][][2]float64{squareClip})).
		Xor(NonZero)
	test.Error(t, err)

	// union minus intersection
	test.Float(t, result.Closed.Area(), 40.64)
}

func TestClipperMultipleCollections(t *testing.T) {
	subject1 := PathsFromFloats([][][2]float64{{{0.0, 0.0}, {2.0, 0.0}, {2.0, 2.0}, {0.0, 2.0}}})
	subject2 := PathsFromFloats([][][2]float64{{{10.0, 0.0}, {12.0, 0.0}, {12.0, 2.0}, {10.0, 2.0}}})
	clip := PathsFromFloats([][][2]float64{{{-1.0, -1.0}, {13.0, -1.0}, {13.0, 1.0}, {-1.0, 1.0}}})

	result, err := NewClipper().
		AddSubject(subject1).
		AddSubject(subject2).
		AddClip(clip).
		Intersect(NonZero)
	test.Error(t, err)
	test.T(t, len(result.Closed), 2)
	test.Float(t, result.Closed.Area(), 4.0)
}

func TestClipperOpenSubject(t *testing.T) {
	line := PathsFromFloats([][][2]float64{{{0.0, 1.0}, {10.0, 1.0}}})
	clip := PathsFromFloats([][][2]float64{{{2.0, 0.0}, {8.0, 0.0}, {8.0, 4.0}, {2.0, 4.0}}})

	result, err := NewClipper().
		AddOpenSubject(line).
		AddClip(clip).
		Intersect(NonZero)
	test.Error(t, err)
	test.T(t, len(result.Closed), 0)
	test.T(t, len(result.Open), 1)

	expected := PathFromFloats([][2]float64{{2.0, 1.0}, {8.0, 1.0}})
	test.That(t, contourMatch(result.Open[0], expected), "got", result.Open[0].Floats())
}

func TestClipperIdempotent(t *testing.T) {
	run := func() Paths {
		result, err := NewClipper().
			AddSubject(PathsFromFloats([][][2]float64{squareSubject})).
			AddClip(PathsFromFloats([][][2]float64{squareClip})).
			Union(NonZero)
		test.Error(t, err)
		return result.Closed
	}
	test.That(t, pathsMatch(run(), run()))
}

func TestClipperResourceSafety(t *testing.T) {
	allocs, frees := engineAllocs, engineFrees

	// discarded at every intermediate state
	NewClipper().Close()
	subjects := NewClipper().AddSubject(PathsFromFloats([][][2]float64{squareSubject}))
	subjects.Close()
	subjects.Close() // second close is a no-op
	clips := NewClipper().
		AddSubject(PathsFromFloats([][][2]float64{squareSubject})).
		AddClip(PathsFromFloats([][][2]float64{squareClip}))
	clips.Close()

	// consumed by a boolean operation; Close afterwards must not double-release
	full := NewClipper().
		AddSubject(PathsFromFloats([][][2]float64{squareSubject})).
		AddClip(PathsFromFloats([][][2]float64{squareClip}))
	_, err := full.Union(NonZero)
	test.Error(t, err)
	full.Close()

	// transferring ownership along the chain must not release in between
	c := NewClipper()
	s := c.AddSubject(PathsFromFloats([][][2]float64{squareSubject}))
	c.Close() // no longer the owner, must be a no-op
	test.T(t, engineFrees, frees+4)
	s.Close()

	test.T(t, engineAllocs, allocs+5)
	test.T(t, engineFrees, frees+5)
}

func TestClipperConsumed(t *testing.T) {
	c := NewClipper()
	s := c.AddSubject(PathsFromFloats([][][2]float64{squareSubject}))
	defer s.Close()

	defer func() {
		test.That(t, recover() != nil, "expected panic on use of consumed builder")
	}()
	c.AddSubject(PathsFromFloats([][][2]float64{squareSubject}))
}
