package tooltip

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Metrics of the ebitenutil debug font used for labels.
const (
	labelGlyphWidth     = 6
	labelLineHeight     = 16
	labelPaddingDefault = 6
)

// whitePixel is a 1x1 white image used to fill solid rectangles. Created on
// first draw so constructing nodes never touches the graphics driver.
var whitePixel *ebiten.Image

// measureLabel returns the rendered size of text in the debug font.
func measureLabel(text string) (w, h float64) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, utf8.RuneCountInString(line))
	}
	return float64(widest * labelGlyphWidth), float64(len(lines) * labelLineHeight)
}

// nodeDimensions returns the node's unscaled local size: explicit
// Width/Height first, then a custom image, then the measured label.
func nodeDimensions(n *Node) (w, h float64) {
	switch {
	case n.Width != 0 || n.Height != 0:
		return n.Width, n.Height
	case n.customImage != nil:
		b := n.customImage.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	case n.Label != "":
		return measureLabel(n.Label)
	default:
		return 0, 0
	}
}

// sortedChildren returns n's children in ZIndex order, rebuilding the cached
// order when the child list changed.
func sortedChildren(n *Node) []*Node {
	if len(n.children) < 2 {
		return n.children
	}
	if !n.childrenSorted || len(n.sortedChildren) != len(n.children) {
		rebuildSortedChildren(n)
	}
	return n.sortedChildren
}

// rebuildSortedChildren copies children and stable-sorts them by ZIndex.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// Draw renders the scene tree in painter order onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	refreshTransforms(s.root)
	count := 0
	s.drawNode(screen, s.root, &count)
	s.flushScreenshots(screen)

	if s.debug {
		s.debugLog(debugStats{drawTime: time.Since(t0), nodes: count})
	}
}

func (s *Scene) drawNode(screen *ebiten.Image, n *Node, count *int) {
	if !n.Visible {
		return
	}
	*count++
	switch {
	case n.customImage != nil:
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.worldScaleX, n.worldScaleY)
		op.GeoM.Translate(n.worldX, n.worldY)
		if n.Color.A > 0 {
			op.ColorScale.Scale(float32(n.Color.R*n.Color.A), float32(n.Color.G*n.Color.A),
				float32(n.Color.B*n.Color.A), float32(n.Color.A))
		}
		screen.DrawImage(n.customImage, &op)
	case n.Color.A > 0 && n.Width > 0 && n.Height > 0:
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width*n.worldScaleX, n.Height*n.worldScaleY)
		op.GeoM.Translate(n.worldX, n.worldY)
		op.ColorScale.Scale(float32(n.Color.R*n.Color.A), float32(n.Color.G*n.Color.A),
			float32(n.Color.B*n.Color.A), float32(n.Color.A))
		screen.DrawImage(whitePixel, &op)
	}
	if n.Label != "" {
		ebitenutil.DebugPrintAt(screen, n.Label, int(n.worldX), int(n.worldY))
	}
	for _, child := range sortedChildren(n) {
		s.drawNode(screen, child, count)
	}
}
