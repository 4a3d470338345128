package tooltip

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, input state,
// per-frame hooks and the draw pass.
type Scene struct {
	root   *Node
	debug  bool
	logger *slog.Logger

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	viewport Rect
	frame    uint64

	// Input state
	handlers    handlerRegistry
	captured    *Node
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		logger:        slog.Default().With("component", "scene"),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetViewport sets the visible surface rectangle. It is the default
// placement bound for tooltips. Run keeps it in sync with the window layout.
func (s *Scene) SetViewport(r Rect) {
	s.viewport = r
}

// Viewport returns the visible surface rectangle.
func (s *Scene) Viewport() Rect {
	return s.viewport
}

// SetLogger replaces the scene logger. A nil logger restores slog.Default().
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l.With("component", "scene")
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Update processes input and runs per-frame hooks. Call it from the
// ebiten.Game Update method.
func (s *Scene) Update() {
	s.update(float32(1.0/float64(ebiten.TPS())), true)
}

// update advances one frame. pollDevices is false in headless use, where only
// injected input drives the pointer.
func (s *Scene) update(dt float32, pollDevices bool) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	// Refresh world transforms first so hit testing has accurate positions.
	refreshTransforms(s.root)
	updateNodes(s.root, float64(dt))
	s.processInput(pollDevices)

	// Handlers may remove themselves while running.
	for _, h := range append([]updateHandler(nil), s.handlers.update...) {
		h.fn(dt)
	}
	s.frame++

	if s.debug {
		s.debugLog(debugStats{updateTime: time.Since(t0), hooks: len(s.handlers.update)})
	}
}

// updateNodes runs OnUpdate callbacks for visible nodes depth-first.
func updateNodes(n *Node, dt float64) {
	if !n.Visible {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		updateNodes(child, dt)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
