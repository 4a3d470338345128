package tooltip

// Anchor is the geometry and tree capability that trigger matching and
// placement rely on. *Node implements it; hosts with their own visual tree
// can provide another implementation.
type Anchor interface {
	// AnchorBounds returns the element's bounding rectangle in surface space.
	AnchorBounds() Rect
	// AnchorParent returns the parent element, or nil at the top of the tree.
	AnchorParent() Anchor
	// AnchorChildren returns the direct children in document order.
	AnchorChildren() []Anchor
	// AnchorName returns the element's name, matched by #name and glob selectors.
	AnchorName() string
	// HasClass reports class membership, matched by .class selectors.
	HasClass(class string) bool
	// Datum returns the data record bound to the element.
	Datum() any
}

// VisualNode is the capability the controller uses to present the tooltip.
type VisualNode interface {
	// Mount shows the node with the given content, attaching it if needed.
	Mount(content Content)
	// Unmount hides and detaches the node.
	Unmount()
	// IsMounted reports whether the node is currently shown.
	IsMounted() bool
	// SetPosition places the node's top-left corner in surface coordinates.
	SetPosition(x, y float64)
	// SetAttributes replaces custom attributes and the custom class name.
	SetAttributes(attrs map[string]string, className string)
	// SetInteractive controls whether the node receives pointer events.
	SetInteractive(enabled bool)
	// Size returns the node's current size for placement.
	Size() Vec2
	// Contains reports whether a lies inside the tooltip's own subtree.
	Contains(a Anchor) bool
	// Dispose releases the node permanently.
	Dispose()
}

// isInside reports whether a is root or one of its descendants, walking the
// anchor parent chain.
func isInside(a, root Anchor) bool {
	if a == nil || root == nil {
		return false
	}
	for p := a; p != nil; p = p.AnchorParent() {
		if p == root {
			return true
		}
	}
	return false
}
