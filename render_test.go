package tooltip

import "testing"

func TestMeasureLabel(t *testing.T) {
	tests := []struct {
		name string
		text string
		w, h float64
	}{
		{"empty", "", 0, 0},
		{"single line", "abcd", 4 * labelGlyphWidth, labelLineHeight},
		{"multi line", "ab\nabcde\nc", 5 * labelGlyphWidth, 3 * labelLineHeight},
		{"runes", "k€", 2 * labelGlyphWidth, labelLineHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := measureLabel(tt.text)
			if w != tt.w || h != tt.h {
				t.Errorf("measureLabel(%q) = (%v, %v), want (%v, %v)", tt.text, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestRebuildSortedChildrenStable(t *testing.T) {
	p := NewContainer("p")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)
	a.SetZIndex(1)
	c.SetZIndex(1)

	got := sortedChildren(p)
	want := []*Node{b, a, c}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sorted[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}

	// The tooltip root sorts above ordinary content.
	tn := NewTooltipNode(p)
	tn.Mount(Text("x"))
	got = sortedChildren(p)
	if got[len(got)-1] != tn.Root() {
		t.Errorf("last drawn = %q, want tooltip", got[len(got)-1].Name)
	}
}
