package clipper2

import (
	clipper "github.com/ctessum/go.clipper"
)

// PolyTree is one node in the hierarchical result of a tree-producing boolean
// operation: a polygon contour, whether it is a hole, and its child nodes. A
// hole's children are solid islands and vice versa; the engine guarantees this
// alternation and the reconstruction preserves it. Every node is an independent
// deep copy, made in one walk right after the operation, so a tree can be held
// indefinitely without any tie to engine memory.
type PolyTree struct {
	polygon  Path
	isHole   bool
	children []*PolyTree
	parent   *PolyTree
}

// polyTreeFromEngine deep-copies an engine node and its descendants. Open-path
// nodes are skipped; their contours belong to the open output.
func polyTreeFromEngine(n *clipper.PolyNode, parent *PolyTree, scale Scale) *PolyTree {
	t := &PolyTree{
		polygon: pathFromClipper(n.Contour(), scale),
		isHole:  n.IsHole(),
		parent:  parent,
	}
	for _, child := range n.Childs() {
		if child.IsOpen {
			continue
		}
		t.children = append(t.children, polyTreeFromEngine(child, t, scale))
	}
	return t
}

// Polygon returns the node's contour.
func (t *PolyTree) Polygon() Path {
	return t.polygon
}

// IsHole returns true if the node's contour bounds a hole rather than a solid
// region.
func (t *PolyTree) IsHole() bool {
	return t.isHole
}

// ChildCount returns the number of direct children.
func (t *PolyTree) ChildCount() int {
	return len(t.children)
}

// Child returns the i-th direct child, or nil if out of range.
func (t *PolyTree) Child(i int) *PolyTree {
	if i < 0 || len(t.children) <= i {
		return nil
	}
	return t.children[i]
}

// Children returns the direct children in engine order. Iteration order over
// the tree is defined by the children lists only, depth-first and pre-order.
func (t *PolyTree) Children() []*PolyTree {
	return t.children
}

// Parent returns the node this node is nested in, or nil for a top-level node.
// The back-reference is for lookup only; it never defines iteration order.
func (t *PolyTree) Parent() *PolyTree {
	return t.parent
}

// Area returns the signed area of the node's own contour in application units.
func (t *PolyTree) Area() float64 {
	return t.polygon.Area()
}

// ToPaths flattens the node and all its descendants into one contour
// collection, depth-first and pre-order.
func (t *PolyTree) ToPaths() Paths {
	ps := Paths{}
	t.collectPaths(&ps, false)
	return ps
}

// HolePaths flattens only the hole contours of the node and its descendants,
// depth-first and pre-order.
func (t *PolyTree) HolePaths() Paths {
	ps := Paths{}
	t.collectPaths(&ps, true)
	return ps
}

func (t *PolyTree) collectPaths(ps *Paths, holesOnly bool) {
	if !holesOnly || t.isHole {
		*ps = append(*ps, t.polygon)
	}
	for _, child := range t.children {
		child.collectPaths(ps, holesOnly)
	}
}
