// Package clipper2 applies boolean operations (union, difference, intersection,
// xor) to sets of 2-D polygons. Operations are sequenced through a builder whose
// type changes with every step, so that an operation cannot be executed before
// at least one subject and one clip have been registered. Results come back
// either as flat contour collections or as a tree of polygons with nested holes
// and islands. The clipping computation itself is delegated to an external
// engine working on a fixed integer grid; a Scale maps application coordinates
// onto that grid.
package clipper2

import (
	"errors"
)

// ErrFailedBooleanOperation is reported when the engine fails to execute a
// boolean operation. No geometry is returned and the builder is consumed; retry
// requires building a new operation from scratch.
var ErrFailedBooleanOperation = errors.New("clipper2: failed boolean operation")

// BooleanResult holds the flat output of a boolean operation.
type BooleanResult struct {
	Closed Paths
	Open   Paths
}

// BooleanTreeResult holds the hierarchical output of a boolean operation. Trees
// is a forest of top-level solid polygons, each with its holes and nested
// islands as descendants; open contours have no hierarchy and are listed apart.
type BooleanTreeResult struct {
	Trees []*PolyTree
	Open  Paths
}

// owner holds the one engine handle a builder chain operates on. Every state
// transition moves the handle to the next builder value; a builder that no
// longer owns it cannot release or use it.
type owner struct {
	h *engineHandle
}

// take moves the engine handle out of this builder. Using a builder after its
// handle has moved on is a contract violation and panics.
func (o *owner) take() *engineHandle {
	if o.h == nil {
		panic("clipper2: use of consumed builder")
	}
	h := o.h
	o.h = nil
	return h
}

// Close releases the engine handle if this builder value still owns it.
// Builders that reached a boolean operation, transferred ownership onward, or
// were already closed are left alone, so Close is always safe to call, also in
// a defer.
func (o *owner) Close() {
	if o.h != nil {
		o.h.free()
		o.h = nil
	}
}

// Clipper is the initial state of the builder: no subjects registered yet.
type Clipper struct {
	owner
}

// NewClipper returns an empty builder. Discarding it without reaching a boolean
// operation requires a Close call to release the engine handle.
func NewClipper() *Clipper {
	return &Clipper{owner{newEngineHandle()}}
}

// NewClipperScale returns an empty builder whose outputs use the given scale
// even if every registered collection is empty. Normally the builder adopts the
// scale of the first registered geometry.
func NewClipperScale(scale Scale) *Clipper {
	h := newEngineHandle()
	h.scale = scale
	h.scaleSet = true
	return &Clipper{owner{h}}
}

// AddSubject registers closed subject contours and moves the builder to the
// with-subjects state.
func (c *Clipper) AddSubject(subject Paths) *ClipperWithSubjects {
	h := c.take()
	h.addSubjects(subject)
	return &ClipperWithSubjects{owner{h}}
}

// AddOpenSubject registers open subject contours and moves the builder to the
// with-subjects state.
func (c *Clipper) AddOpenSubject(subject Paths) *ClipperWithSubjects {
	h := c.take()
	h.addOpenSubjects(subject)
	return &ClipperWithSubjects{owner{h}}
}

// ClipperWithSubjects is the builder state with one or more subjects and no
// clips. Only here does registering clips become available.
type ClipperWithSubjects struct {
	owner
}

// AddSubject registers more closed subject contours.
func (c *ClipperWithSubjects) AddSubject(subject Paths) *ClipperWithSubjects {
	h := c.take()
	h.addSubjects(subject)
	return &ClipperWithSubjects{owner{h}}
}

// AddOpenSubject registers more open subject contours.
func (c *ClipperWithSubjects) AddOpenSubject(subject Paths) *ClipperWithSubjects {
	h := c.take()
	h.addOpenSubjects(subject)
	return &ClipperWithSubjects{owner{h}}
}

// AddClip registers clip contours and moves the builder to the with-clips
// state, from which boolean operations can be executed.
func (c *ClipperWithSubjects) AddClip(clip Paths) *ClipperWithClips {
	h := c.take()
	h.addClips(clip)
	return &ClipperWithClips{owner{h}}
}

// ClipperWithClips is the builder state with at least one subject and one clip.
// Boolean operations are only reachable from this state; executing one consumes
// the builder and releases the engine handle whether it succeeds or not.
type ClipperWithClips struct {
	owner
}

// AddClip registers more clip contours.
func (c *ClipperWithClips) AddClip(clip Paths) *ClipperWithClips {
	h := c.take()
	h.addClips(clip)
	return &ClipperWithClips{owner{h}}
}

// Union executes a union of the subjects and clips.
func (c *ClipperWithClips) Union(fillRule FillRule) (BooleanResult, error) {
	return c.boolean(ClipUnion, fillRule)
}

// Difference executes a difference, subtracting the clips from the subjects.
func (c *ClipperWithClips) Difference(fillRule FillRule) (BooleanResult, error) {
	return c.boolean(ClipDifference, fillRule)
}

// Intersect executes an intersection of the subjects and clips.
func (c *ClipperWithClips) Intersect(fillRule FillRule) (BooleanResult, error) {
	return c.boolean(ClipIntersection, fillRule)
}

// Xor executes a symmetric difference of the subjects and clips.
func (c *ClipperWithClips) Xor(fillRule FillRule) (BooleanResult, error) {
	return c.boolean(ClipXor, fillRule)
}

// UnionTree executes a union and returns the result with hierarchy.
func (c *ClipperWithClips) UnionTree(fillRule FillRule) (BooleanTreeResult, error) {
	return c.booleanTree(ClipUnion, fillRule)
}

// DifferenceTree executes a difference and returns the result with hierarchy.
func (c *ClipperWithClips) DifferenceTree(fillRule FillRule) (BooleanTreeResult, error) {
	return c.booleanTree(ClipDifference, fillRule)
}

// IntersectTree executes an intersection and returns the result with hierarchy.
func (c *ClipperWithClips) IntersectTree(fillRule FillRule) (BooleanTreeResult, error) {
	return c.booleanTree(ClipIntersection, fillRule)
}

// XorTree executes a symmetric difference and returns the result with
// hierarchy.
func (c *ClipperWithClips) XorTree(fillRule FillRule) (BooleanTreeResult, error) {
	return c.booleanTree(ClipXor, fillRule)
}

func (c *ClipperWithClips) boolean(clipType ClipType, fillRule FillRule) (BooleanResult, error) {
	h := c.take()
	defer h.free()

	closed, open, ok := h.execute(clipType, fillRule)
	if !ok {
		return BooleanResult{}, ErrFailedBooleanOperation
	}
	return BooleanResult{Closed: closed, Open: open}, nil
}

func (c *ClipperWithClips) booleanTree(clipType ClipType, fillRule FillRule) (BooleanTreeResult, error) {
	h := c.take()
	defer h.free()

	trees, open, ok := h.executeTree(clipType, fillRule)
	if !ok {
		return BooleanTreeResult{}, ErrFailedBooleanOperation
	}
	return BooleanTreeResult{Trees: trees, Open: open}, nil
}
