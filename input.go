package tooltip

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

// Only the mouse pointer is tracked; touch input is not handled.
type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	seen      bool
	hitNode   *Node
	hoverNode *Node
	button    MouseButton
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type updateHandler struct {
	id uint32
	fn func(dt float32)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []pointerHandler
	update       []updateHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id)
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id)
	case EventUpdate:
		for i := range h.reg.update {
			if h.reg.update[i].id == h.id {
				h.reg.update = append(h.reg.update[:i:i], h.reg.update[i+1:]...)
				return
			}
		}
	}
}

// removeHandler returns s without the handler carrying id. A fresh slice is
// built so a dispatch loop ranging over the old slice is not disturbed.
func removeHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry) add(list *[]pointerHandler, event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	*list = append(*list, pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(&s.handlers.pointerDown, EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(&s.handlers.pointerUp, EventPointerUp, fn)
}

// OnPointerMove registers a scene-level callback for pointer move events.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(&s.handlers.pointerMove, EventPointerMove, fn)
}

// OnPointerEnter registers a scene-level callback for pointer enter events.
// Fired when the pointer moves over a new node (or from nil to a node).
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(&s.handlers.pointerEnter, EventPointerEnter, fn)
}

// OnPointerLeave registers a scene-level callback for pointer leave events.
// Fired when the pointer leaves a node (moves to a different node or to empty space).
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(&s.handlers.pointerLeave, EventPointerLeave, fn)
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(&s.handlers.click, EventClick, fn)
}

// OnUpdate registers a callback invoked once per frame, after input has been
// processed, with the frame duration in seconds.
func (s *Scene) OnUpdate(fn func(dt float32)) CallbackHandle {
	s.handlers.nextID++
	s.handlers.update = append(s.handlers.update, updateHandler{id: s.handlers.nextID, fn: fn})
	return CallbackHandle{id: s.handlers.nextID, reg: &s.handlers, event: EventUpdate}
}

// CapturePointer routes all pointer events to the given node.
func (s *Scene) CapturePointer(node *Node) {
	s.captured = node
}

// ReleasePointer stops routing pointer events to a captured node.
func (s *Scene) ReleasePointer() {
	s.captured = nil
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise derives the box from node dimensions.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	buf = append(buf, n)
	for _, child := range sortedChildren(n) {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput handles one frame of pointer input. Injected events take
// precedence; real devices are polled only when pollDevices is set and the
// injection queue is empty.
func (s *Scene) processInput(pollDevices bool) {
	if s.processInjectedInput() {
		return
	}
	if pollDevices {
		s.processMousePointer(readModifiers())
	}
}

// processMousePointer handles mouse input.
func (s *Scene) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	// Cursor outside the window reports as leaving every node.
	inside := s.viewport.IsEmpty() || s.viewport.Contains(float64(mx), float64(my))
	s.processPointer(float64(mx), float64(my), inside, pressed, button, mods)
}

// processPointer runs the pointer state machine. inside is false when the
// pointer has left the surface entirely.
func (s *Scene) processPointer(wx, wy float64, inside, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer

	var target *Node
	switch {
	case s.captured != nil:
		target = s.captured
	case inside:
		target = s.hitTest(wx, wy)
	}

	// Fire hover leave/enter when the hovered node changes.
	if target != ps.hoverNode {
		prev := ps.hoverNode
		ps.hoverNode = target
		if prev != nil {
			s.fire(EventPointerLeave, prev, target, wx, wy, button, mods)
		}
		if target != nil {
			s.fire(EventPointerEnter, target, prev, wx, wy, button, mods)
		}
	}

	moved := !ps.seen || wx != ps.lastX || wy != ps.lastY
	ps.seen = true

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.fire(EventPointerDown, target, nil, wx, wy, button, mods)
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fire(EventClick, target, nil, wx, wy, ps.button, mods)
		}
		s.fire(EventPointerUp, target, nil, wx, wy, ps.button, mods)
		s.captured = nil
		ps.down = false
		ps.hitNode = nil
	case moved && inside && target != nil:
		s.fire(EventPointerMove, target, nil, wx, wy, button, mods)
	}
	ps.lastX = wx
	ps.lastY = wy
}

// PointerPosition returns the last known pointer position in world space.
func (s *Scene) PointerPosition() Vec2 {
	return Vec2{X: s.pointer.lastX, Y: s.pointer.lastY}
}

// HoveredNode returns the node currently under the pointer, or nil.
func (s *Scene) HoveredNode() *Node {
	return s.pointer.hoverNode
}

// --- Event dispatch ---

// fire dispatches an event to scene-level handlers first, then to the
// node's own callback.
func (s *Scene) fire(event EventType, node, related *Node, wx, wy float64, button MouseButton, mods KeyModifiers) {
	var lx, ly float64
	var userData any
	if node != nil {
		lx, ly = node.WorldToLocal(wx, wy)
		userData = node.UserData
	}
	ctx := PointerContext{
		Node: node, Related: related, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, Modifiers: mods,
	}

	var handlers []pointerHandler
	var own func(PointerContext)
	switch event {
	case EventPointerDown:
		handlers = s.handlers.pointerDown
		if node != nil {
			own = node.OnPointerDown
		}
	case EventPointerUp:
		handlers = s.handlers.pointerUp
		if node != nil {
			own = node.OnPointerUp
		}
	case EventPointerMove:
		handlers = s.handlers.pointerMove
		if node != nil {
			own = node.OnPointerMove
		}
	case EventClick:
		handlers = s.handlers.click
		if node != nil {
			own = node.OnClick
		}
	case EventPointerEnter:
		handlers = s.handlers.pointerEnter
		if node != nil {
			own = node.OnPointerEnter
		}
	case EventPointerLeave:
		handlers = s.handlers.pointerLeave
		if node != nil {
			own = node.OnPointerLeave
		}
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	if own != nil {
		own(ctx)
	}
}
