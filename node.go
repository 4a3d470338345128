package tooltip

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node *Node
	// Related is the node the pointer came from (enter) or moved to (leave).
	// Nil when the pointer came from or went to empty space.
	Related   *Node
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// nodeIDCounter is a plain counter (no atomic, the package is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. Visualization components are
// subtrees of nodes; the tooltip itself is a node too.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Width and Height are the unscaled size.
	X, Y          float64
	ScaleX        float64
	ScaleY        float64
	Width, Height float64

	// Computed world placement, refreshed by updateWorldTransform.
	worldX, worldY           float64
	worldScaleX, worldScaleY float64
	transformDirty           bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Ordering
	ZIndex int

	// Appearance
	Color       Color
	Label       string
	customImage *ebiten.Image

	// Metadata
	classes    []string
	Attributes map[string]string
	UserData   any

	// Hit testing
	HitShape HitShape

	// Per-node callbacks (nil by default)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnClick        func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnUpdate       func(dt float64)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.worldScaleX = 1
	n.worldScaleY = 1
	n.Color = Color{}
	n.Visible = true
	n.Interactable = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a group node with no visual representation. Containers
// are not hit-testable unless given a HitShape.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewRect creates a solid rectangle node of the given size.
func NewRect(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewLabel creates a text node. Its size follows the measured text.
func NewLabel(name, text string) *Node {
	n := &Node{Name: name, Label: text}
	nodeDefaults(n)
	return n
}

// SetCustomImage sets a user-provided *ebiten.Image drawn at the node's origin.
func (n *Node) SetCustomImage(img *ebiten.Image) {
	n.customImage = img
}

// CustomImage returns the user-provided image, or nil if not set.
func (n *Node) CustomImage() *ebiten.Image {
	return n.customImage
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("tooltip: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("tooltip: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("tooltip: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("tooltip: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("tooltip: child index out of range")
	}
	child.Parent = n
	n.children = slices.Insert(n.children, index, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("tooltip: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("tooltip: child index out of range")
	}
	child := n.children[index]
	n.children = slices.Delete(n.children, index, index+1)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("tooltip: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("tooltip: child index out of range")
	}
	old := slices.Index(n.children, child)
	if old == index {
		return
	}
	n.children = slices.Delete(n.children, old, old+1)
	n.children = slices.Insert(n.children, index, child)
	n.childrenSorted = false
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Walk visits n and its descendants depth-first in document (insertion)
// order. Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// IsDescendantOf reports whether n lies in the subtree rooted at ancestor.
// A node counts as its own descendant.
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	return ancestor != nil && isAncestor(ancestor, n)
}

// --- Classes and attributes ---

// AddClass adds class to the node's class list if not already present.
func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// RemoveClass removes class from the node's class list.
func (n *Node) RemoveClass(class string) {
	if i := slices.Index(n.classes, class); i >= 0 {
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns the class list. The returned slice MUST NOT be mutated.
func (n *Node) Classes() []string {
	return n.classes
}

// SetAttribute sets a custom attribute on the node.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// Attribute returns the value of a custom attribute.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.Attributes[name]
	return v, ok
}

// --- Anchor ---

// AnchorBounds returns the node's world-space bounding rectangle.
func (n *Node) AnchorBounds() Rect {
	return n.WorldBounds()
}

// AnchorParent returns the parent node, or nil at the root.
func (n *Node) AnchorParent() Anchor {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// AnchorChildren returns the node's children as anchors.
func (n *Node) AnchorChildren() []Anchor {
	out := make([]Anchor, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// AnchorName returns the node name.
func (n *Node) AnchorName() string {
	return n.Name
}

// Datum returns the data record bound to the node.
func (n *Node) Datum() any {
	return n.UserData
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.customImage = nil
	n.classes = nil
	n.Attributes = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnPointerMove = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
