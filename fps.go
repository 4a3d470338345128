package tooltip

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a node that displays the current FPS and TPS,
// refreshed about twice a second. It is not interactable so it never
// intercepts hover events meant for chart elements.
func NewFPSWidget() *Node {
	img := ebiten.NewImage(100, 32)

	node := NewContainer("fps_widget")
	node.SetCustomImage(img)
	node.Interactable = false
	node.ZIndex = 1 << 20

	var elapsed float64
	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < 0.5 {
			return
		}
		elapsed = 0

		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
