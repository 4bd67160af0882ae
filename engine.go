package clipper2

import (
	clipper "github.com/ctessum/go.clipper"
)

// Engine handle bookkeeping, readable by tests to verify that every handle
// allocated is released exactly once.
var (
	engineAllocs int
	engineFrees  int
)

// engineHandle is the narrow boundary to the clipping engine: one opaque
// computation handle on which geometry is registered and a boolean operation is
// executed at most once. A handle is exclusively owned by a single builder
// value at any time; free releases it and is safe to call twice.
type engineHandle struct {
	c        *clipper.Clipper
	scale    Scale
	scaleSet bool
	hasOpen  bool
	freed    bool
}

func newEngineHandle() *engineHandle {
	engineAllocs++
	return &engineHandle{c: clipper.NewClipper(clipper.IoNone), scale: Centi}
}

// free releases the engine handle. The second and later calls are no-ops; the
// single-owner discipline of the builder makes them unreachable, this is a
// defense against it being violated.
func (h *engineHandle) free() {
	if h.freed {
		return
	}
	h.freed = true
	h.c.Clear()
	h.c = nil
	engineFrees++
}

func (h *engineHandle) adoptScale(ps Paths) {
	if !h.scaleSet && 0 < len(ps) {
		h.scale = ps.scaleOf()
		h.scaleSet = true
	}
}

func (h *engineHandle) addSubjects(ps Paths) {
	h.adoptScale(ps)
	h.c.AddPaths(ps.toClipper(), clipper.PtSubject, true)
}

func (h *engineHandle) addOpenSubjects(ps Paths) {
	h.adoptScale(ps)
	if 0 < len(ps) {
		h.hasOpen = true
	}
	h.c.AddPaths(ps.toClipper(), clipper.PtSubject, false)
}

func (h *engineHandle) addClips(ps Paths) {
	h.adoptScale(ps)
	h.c.AddPaths(ps.toClipper(), clipper.PtClip, true)
}

// execute runs the flat boolean operation and returns the closed and open
// output contours. When open subjects were registered the engine requires its
// tree primitive; the adapter flattens the tree itself since the engine's own
// flatten helpers lose their results.
func (h *engineHandle) execute(ct ClipType, fr FillRule) (Paths, Paths, bool) {
	if !h.hasOpen {
		solution, ok := h.c.Execute1(ct.toClipper(), fr.toClipper(), fr.toClipper())
		if !ok {
			return nil, nil, false
		}
		return pathsFromClipper(solution, h.scale), Paths{}, true
	}

	tree, ok := h.c.Execute2(ct.toClipper(), fr.toClipper(), fr.toClipper())
	if !ok {
		return nil, nil, false
	}
	closed := Paths{}
	var walk func(n *clipper.PolyNode)
	walk = func(n *clipper.PolyNode) {
		if !n.IsOpen && 0 < len(n.Contour()) {
			closed = append(closed, pathFromClipper(n.Contour(), h.scale))
		}
		for _, child := range n.Childs() {
			walk(child)
		}
	}
	for _, child := range tree.Childs() {
		walk(child)
	}
	return closed, h.openFromTree(tree), true
}

// executeTree runs the tree-producing boolean operation and eagerly copies the
// engine's native tree into independently owned nodes before the handle is
// released. Open contours only ever appear as direct children of the virtual
// root.
func (h *engineHandle) executeTree(ct ClipType, fr FillRule) ([]*PolyTree, Paths, bool) {
	tree, ok := h.c.Execute2(ct.toClipper(), fr.toClipper(), fr.toClipper())
	if !ok {
		return nil, nil, false
	}
	trees := make([]*PolyTree, 0, tree.ChildCount())
	for _, child := range tree.Childs() {
		if child.IsOpen {
			continue
		}
		trees = append(trees, polyTreeFromEngine(child, nil, h.scale))
	}
	return trees, h.openFromTree(tree), true
}

func (h *engineHandle) openFromTree(tree *clipper.PolyTree) Paths {
	open := Paths{}
	for _, child := range tree.Childs() {
		if child.IsOpen {
			open = append(open, pathFromClipper(child.Contour(), h.scale))
		}
	}
	return open
}

func (p Path) toClipper() clipper.Path {
	cp := make(clipper.Path, len(p.points))
	for i, pt := range p.points {
		cp[i] = &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)}
	}
	return cp
}

func (ps Paths) toClipper() clipper.Paths {
	cps := make(clipper.Paths, len(ps))
	for i, p := range ps {
		cps[i] = p.toClipper()
	}
	return cps
}

func pathFromClipper(cp clipper.Path, scale Scale) Path {
	points := make([]Point, len(cp))
	for i, pt := range cp {
		points[i] = Point{int64(pt.X), int64(pt.Y)}
	}
	return Path{points: points, scale: scale}
}

func pathsFromClipper(cps clipper.Paths, scale Scale) Paths {
	ps := make(Paths, len(cps))
	for i, cp := range cps {
		ps[i] = pathFromClipper(cp, scale)
	}
	return ps
}
