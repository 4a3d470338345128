package tooltip

// Nodes support translation and scale only. World placement is kept as an
// origin plus accumulated scale rather than a full affine matrix.

// updateWorldTransform recomputes a node's world origin and scale.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, px, py, psx, psy float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldX = px + n.X*psx
		n.worldY = py + n.Y*psy
		n.worldScaleX = psx * n.ScaleX
		n.worldScaleY = psy * n.ScaleY
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldX, n.worldY, n.worldScaleX, n.worldScaleY, recompute)
	}
}

// refreshTransforms brings every node under root up to date.
func refreshTransforms(root *Node) {
	updateWorldTransform(root, 0, 0, 1, 1, false)
}

// refreshNodeTransform recomputes n's world placement from its ancestor chain,
// regardless of dirty flags. Used when a query happens between frames.
func refreshNodeTransform(n *Node) {
	x, y, sx, sy := 0.0, 0.0, 1.0, 1.0
	var chain []*Node
	for p := n; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		x += c.X * sx
		y += c.Y * sy
		sx *= c.ScaleX
		sy *= c.ScaleY
	}
	n.worldX, n.worldY = x, y
	n.worldScaleX, n.worldScaleY = sx, sy
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	markSubtreeDirty(n)
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	markSubtreeDirty(n)
}

// SetSize sets the node's unscaled width and height.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	markSubtreeDirty(n)
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	lx, ly = wx-n.worldX, wy-n.worldY
	if n.worldScaleX != 0 {
		lx /= n.worldScaleX
	}
	if n.worldScaleY != 0 {
		ly /= n.worldScaleY
	}
	return lx, ly
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.worldX + lx*n.worldScaleX, n.worldY + ly*n.worldScaleY
}

// WorldBounds returns the node's world-space bounding rectangle. The node's
// placement is recomputed from its ancestors so the result is current even
// between frames.
func (n *Node) WorldBounds() Rect {
	refreshNodeTransform(n)
	w, h := nodeDimensions(n)
	x0, y0 := n.LocalToWorld(0, 0)
	x1, y1 := n.LocalToWorld(w, h)
	return boundsOfPoints(Vec2{x0, y0}, Vec2{x1, y1})
}
