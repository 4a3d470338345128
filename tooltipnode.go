package tooltip

// TooltipClass is always present on the tooltip's root node.
const TooltipClass = "tooltip"

// tooltipZIndex keeps the tooltip above ordinary scene content.
const tooltipZIndex = 1 << 19

// DefaultTooltipColor is the background fill of a tooltip.
var DefaultTooltipColor = Color{R: 0.1, G: 0.1, B: 0.12, A: 0.9}

// TooltipNode is the scene-graph VisualNode used by the controller. Its root
// is a filled rectangle sized to the content plus padding; text content is a
// label child and structured content is reparented under the root while
// mounted.
type TooltipNode struct {
	parent  *Node
	bg      *Node
	label   *Node
	body    *Node
	padding float64

	className string
	mounted   bool
}

// NewTooltipNode returns a tooltip that mounts itself under parent.
func NewTooltipNode(parent *Node) *TooltipNode {
	bg := NewRect("tooltip", 0, 0, DefaultTooltipColor)
	bg.AddClass(TooltipClass)
	bg.ZIndex = tooltipZIndex
	bg.Interactable = false

	label := NewLabel("tooltip-text", "")
	label.Interactable = false
	bg.AddChild(label)

	return &TooltipNode{parent: parent, bg: bg, label: label, padding: labelPaddingDefault}
}

// Root returns the tooltip's root node.
func (t *TooltipNode) Root() *Node {
	return t.bg
}

// Mount shows content, replacing whatever was shown before.
func (t *TooltipNode) Mount(content Content) {
	if t.bg.IsDisposed() {
		return
	}
	if t.body != nil {
		t.body.RemoveFromParent()
		t.body = nil
	}

	var w, h float64
	switch content.Kind {
	case ContentText:
		t.label.Label = content.Text
		t.label.Visible = true
		w, h = measureLabel(content.Text)
	case ContentNode:
		t.label.Label = ""
		t.label.Visible = false
		t.body = content.Node
		t.body.RemoveFromParent()
		t.body.SetPosition(t.padding, t.padding)
		t.bg.AddChild(t.body)
		w, h = subtreeExtent(t.body)
	}
	t.label.SetPosition(t.padding, t.padding)
	t.bg.SetSize(w+2*t.padding, h+2*t.padding)

	if t.bg.Parent == nil && t.parent != nil && !t.parent.IsDisposed() {
		t.parent.AddChild(t.bg)
	}
	t.mounted = true
}

// Unmount detaches the tooltip from the scene. Structured content is
// released back to its owner.
func (t *TooltipNode) Unmount() {
	if t.body != nil {
		t.body.RemoveFromParent()
		t.body = nil
	}
	t.bg.RemoveFromParent()
	t.mounted = false
}

// IsMounted reports whether the tooltip is attached and showing content.
func (t *TooltipNode) IsMounted() bool {
	return t.mounted
}

// SetPosition moves the tooltip. Its parent is expected to sit at the
// surface origin.
func (t *TooltipNode) SetPosition(x, y float64) {
	t.bg.SetPosition(x, y)
}

// SetAttributes replaces the custom attributes and the custom class.
func (t *TooltipNode) SetAttributes(attrs map[string]string, className string) {
	clear(t.bg.Attributes)
	for k, v := range attrs {
		t.bg.SetAttribute(k, v)
	}
	if t.className != "" && t.className != TooltipClass {
		t.bg.RemoveClass(t.className)
	}
	t.className = className
	t.bg.AddClass(className)
}

// SetInteractive controls whether the tooltip is hit-testable.
func (t *TooltipNode) SetInteractive(enabled bool) {
	t.bg.Interactable = enabled
}

// Size returns the tooltip's size including padding.
func (t *TooltipNode) Size() Vec2 {
	return Vec2{X: t.bg.Width, Y: t.bg.Height}
}

// Contains reports whether a is the tooltip root or one of its descendants.
func (t *TooltipNode) Contains(a Anchor) bool {
	n, ok := a.(*Node)
	return ok && n != nil && n.IsDescendantOf(t.bg)
}

// Dispose detaches and disposes the tooltip's own nodes. Structured content
// is released first so the caller's subtree survives.
func (t *TooltipNode) Dispose() {
	t.Unmount()
	t.bg.Dispose()
}

// subtreeExtent returns the size of the box from n's origin covering n and
// all of its descendants, in n's parent units.
func subtreeExtent(n *Node) (w, h float64) {
	nw, nh := nodeDimensions(n)
	w, h = nw, nh
	for _, c := range n.children {
		if !c.Visible {
			continue
		}
		cw, ch := subtreeExtent(c)
		w = max(w, c.X+cw)
		h = max(h, c.Y+ch)
	}
	return w * n.ScaleX, h * n.ScaleY
}
