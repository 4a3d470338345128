package tooltip

import (
	"errors"
	"fmt"
	"log/slog"
)

// TooltipState is a snapshot of the controller's tooltip.
type TooltipState struct {
	Visible bool
	// Binding is the trigger that produced the current content, nil for a
	// manual Show.
	Binding *TriggerBinding
	Content Content
	// Anchor is the matched element the tooltip refers to.
	Anchor  Anchor
	Pointer Vec2
	// Position is the last placement, relative to the container origin.
	Position Vec2
	// Phase is the scheduler state and Pending reports an outstanding timer.
	Phase   VisibilityState
	Pending bool
}

// Controller drives a single tooltip over a scene: it matches hovered
// elements against the configured triggers, resolves content, schedules
// visibility and keeps the tooltip placed.
//
// A Controller is single-threaded like the scene it observes.
type Controller struct {
	scene    *Scene
	cfg      Config
	registry *TriggerRegistry
	resolver *ContentResolver
	sched    *DelayScheduler
	node     VisualNode
	logger   *slog.Logger

	state    TooltipState
	handles  []CallbackHandle
	attached bool
	disposed bool
}

// NewController validates cfg and returns a detached controller. Call Attach
// to start observing the scene.
//
// cfg is taken as given: build it from DefaultConfig or MergeConfig. A zero
// Config literal turns FollowCursor off, while its empty placement fields
// select the axis defaults (Auto horizontally, Top vertically).
func NewController(scene *Scene, cfg Config) (*Controller, error) {
	if scene == nil {
		return nil, &ConfigError{Field: "scene", Err: errors.New("nil scene")}
	}
	c := &Controller{scene: scene, sched: NewDelayScheduler()}
	if err := c.apply(MergeConfig(PartialConfig{}, cfg)); err != nil {
		return nil, err
	}
	c.node = NewTooltipNode(scene.Root())
	return c, nil
}

// apply validates cfg and makes it current.
func (c *Controller) apply(cfg Config) error {
	if err := validateContainer(c.scene, cfg.Container); err != nil {
		return err
	}
	registry, err := NewTriggerRegistry(cfg.Triggers)
	if err != nil {
		return err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "tooltip")
	cfg.HorizontalPlacement = checkPosition(logger, "horizontalPlacement", cfg.HorizontalPlacement, PositionAuto)
	cfg.VerticalPlacement = checkPosition(logger, "verticalPlacement", cfg.VerticalPlacement, PositionTop)

	c.cfg = cfg
	c.registry = registry
	c.logger = logger
	c.resolver = NewContentResolver(logger, cfg.OnError)
	return nil
}

func validateContainer(scene *Scene, container Anchor) error {
	if container == nil {
		return nil
	}
	if n, ok := container.(*Node); ok {
		if n == nil || n.IsDisposed() {
			return &ConfigError{Field: "container", Err: fmt.Errorf("%w: disposed", ErrInvalidContainer)}
		}
		if !n.IsDescendantOf(scene.Root()) {
			return &ConfigError{Field: "container", Err: fmt.Errorf("%w: not in scene", ErrInvalidContainer)}
		}
	}
	if container.AnchorBounds().IsEmpty() {
		return &ConfigError{Field: "container", Err: fmt.Errorf("%w: zero size", ErrInvalidContainer)}
	}
	return nil
}

func checkPosition(logger *slog.Logger, field string, p, def Position) Position {
	if p == "" {
		return def
	}
	n, ok := ParsePosition(string(p))
	if !ok {
		logger.Warn("unknown placement, using default", "field", field, "value", string(p), "default", string(def))
		return def
	}
	return n
}

// Attach subscribes to the scene's hover and frame events. Calling it again,
// or after Dispose, does nothing.
func (c *Controller) Attach() {
	if c.attached || c.disposed {
		return
	}
	c.handles = append(c.handles,
		c.scene.OnPointerEnter(c.handleEnter),
		c.scene.OnPointerLeave(c.handleLeave),
		c.scene.OnPointerMove(c.handleMove),
		c.scene.OnUpdate(c.tick),
	)
	c.attached = true
}

// Dispose cancels pending timers, unsubscribes from the scene and releases
// the tooltip node. It is safe to call more than once.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
	c.attached = false
	c.sched.Reset(false)
	c.node.Dispose()
	c.state = TooltipState{}
	c.disposed = true
}

// Show displays content immediately at the given pointer position,
// bypassing triggers and delays. Suppressed content hides the tooltip.
func (c *Controller) Show(content Content, at Vec2) {
	if c.disposed {
		return
	}
	if content.IsSuppressed() {
		c.Hide()
		return
	}
	c.state.Binding = nil
	c.state.Anchor = nil
	c.state.Content = content
	c.state.Pointer = at
	c.sched.Reset(true)
	c.showNow()
}

// Hide removes the tooltip immediately and cancels any pending timer.
func (c *Controller) Hide() {
	if c.disposed {
		return
	}
	c.sched.Reset(false)
	c.hideNow()
}

// SetConfig merges partial over the current configuration. On error the
// current configuration stays in effect.
func (c *Controller) SetConfig(partial PartialConfig) error {
	if c.disposed {
		return &ConfigError{Field: "controller", Err: errors.New("disposed")}
	}
	if err := c.apply(MergeConfig(partial, c.cfg)); err != nil {
		return err
	}
	c.node.SetInteractive(c.hoverable())
	if c.state.Visible {
		c.node.SetAttributes(c.cfg.Attributes, c.cfg.ClassName)
		c.reposition()
	}
	return nil
}

// Config returns a copy of the configuration in effect.
func (c *Controller) Config() Config {
	return MergeConfig(PartialConfig{}, c.cfg)
}

// State returns a snapshot of the tooltip state.
func (c *Controller) State() TooltipState {
	s := c.state
	s.Phase = c.sched.State()
	s.Pending = c.sched.Pending()
	return s
}

// IsVisible reports whether the tooltip is shown.
func (c *Controller) IsVisible() bool {
	return c.state.Visible
}

// Node returns the tooltip's visual node.
func (c *Controller) Node() VisualNode {
	return c.node
}

func (c *Controller) handleEnter(ctx PointerContext) {
	if c.disposed || ctx.Node == nil {
		return
	}
	if c.node.Contains(ctx.Node) {
		if c.sched.State() == StatePendingHide {
			c.sched.CancelPending()
		}
		return
	}

	m, ok := c.registry.MatchEvent(ctx.Node, c.cfg.Components)
	if !ok {
		c.leave()
		return
	}
	candidates := c.registry.Candidates(m.Binding, m.Component)
	content := c.resolver.Resolve(m.Binding, m.Element.Datum(), indexOf(candidates, m.Element), candidates)
	if content.IsSuppressed() {
		c.leave()
		return
	}

	c.state.Binding = m.Binding
	c.state.Anchor = m.Element
	c.state.Content = content
	c.state.Pointer = Vec2{X: ctx.GlobalX, Y: ctx.GlobalY}

	if !c.sched.Enter(c.cfg.ShowDelay, c.showNow) && c.state.Visible {
		// Already showing: swap to the new element's content in place.
		c.showNow()
	}
}

func (c *Controller) handleLeave(ctx PointerContext) {
	if c.disposed || ctx.Node == nil {
		return
	}
	if c.cfg.AllowHover && ctx.Related != nil && c.node.Contains(ctx.Related) {
		return
	}
	if !c.node.Contains(ctx.Node) && !c.observes(ctx.Node) {
		return
	}
	c.leave()
}

func (c *Controller) handleMove(ctx PointerContext) {
	if c.disposed {
		return
	}
	if ctx.Node != nil && c.node.Contains(ctx.Node) {
		return
	}
	c.state.Pointer = Vec2{X: ctx.GlobalX, Y: ctx.GlobalY}
	if c.state.Visible && c.cfg.FollowCursor {
		c.reposition()
	}
}

// tick advances the scheduler and keeps a visible tooltip on its anchor.
func (c *Controller) tick(dt float32) {
	if c.disposed {
		return
	}
	c.sched.Update(dt)
	if !c.state.Visible {
		return
	}
	if n, ok := c.state.Anchor.(*Node); ok && n.IsDisposed() {
		c.Hide()
		return
	}
	c.reposition()
}

// hoverable reports whether the pointer may rest on the tooltip. A tooltip
// tracking the cursor sits on the pointer, so it stays out of hit testing
// there and keeps following moves over the anchor.
func (c *Controller) hoverable() bool {
	return c.cfg.AllowHover && !c.cfg.FollowCursor
}

// observes reports whether a lies inside one of the configured components.
func (c *Controller) observes(a Anchor) bool {
	for _, comp := range c.cfg.Components {
		if isInside(a, comp) {
			return true
		}
	}
	return false
}

func (c *Controller) leave() {
	c.sched.Leave(c.cfg.HideDelay, c.hideNow)
}

func (c *Controller) showNow() {
	if c.state.Content.IsSuppressed() {
		return
	}
	c.node.SetAttributes(c.cfg.Attributes, c.cfg.ClassName)
	c.node.SetInteractive(c.hoverable())
	c.node.Mount(c.state.Content)
	c.state.Visible = true
	c.reposition()
	c.logger.Debug("tooltip shown", "content", c.state.Content.Kind.String())
}

func (c *Controller) hideNow() {
	wasVisible := c.state.Visible
	c.node.Unmount()
	c.state.Visible = false
	c.state.Binding = nil
	c.state.Anchor = nil
	c.state.Content = Suppressed
	if wasVisible {
		c.logger.Debug("tooltip hidden")
	}
}

// containerRect returns the placement bounds in surface coordinates.
func (c *Controller) containerRect() Rect {
	if c.cfg.Container != nil {
		return c.cfg.Container.AnchorBounds()
	}
	return c.scene.Viewport()
}

func (c *Controller) reposition() {
	anchor := Rect{X: c.state.Pointer.X, Y: c.state.Pointer.Y}
	if c.state.Anchor != nil {
		anchor = c.state.Anchor.AnchorBounds()
	}
	container := c.containerRect()
	pos := Place(PlacementRequest{
		Anchor:          anchor,
		Pointer:         c.state.Pointer,
		FollowCursor:    c.cfg.FollowCursor,
		Horizontal:      c.cfg.HorizontalPlacement,
		Vertical:        c.cfg.VerticalPlacement,
		HorizontalShift: c.cfg.HorizontalShift,
		VerticalShift:   c.cfg.VerticalShift,
		Size:            c.node.Size(),
		Container:       container,
	})
	c.state.Position = pos
	if container.IsEmpty() {
		c.node.SetPosition(pos.X, pos.Y)
		return
	}
	c.node.SetPosition(container.X+pos.X, container.Y+pos.Y)
}
