package tooltip

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window; the scene viewport follows.
	Resizable bool
	// ExitOnScriptEnd closes the window once an attached test script has run
	// and its screenshots are written.
	ExitOnScriptEnd bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	s := g.scene
	if g.cfg.ExitOnScriptEnd && s.testRunner != nil && s.testRunner.Done() && len(s.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	s.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(w, h int) (int, int) {
	vp := Rect{Width: float64(w), Height: float64(h)}
	if g.scene.Viewport() != vp {
		g.scene.SetViewport(vp)
	}
	return w, h
}

// Run opens a window and drives the scene until the window is closed.
// For full control, implement ebiten.Game yourself and call Scene.Update,
// Scene.Draw and Scene.SetViewport directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetViewport(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	if cfg.ShowFPS {
		scene.Root().AddChild(NewFPSWidget())
	}
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}
