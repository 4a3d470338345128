package tooltip

import (
	"errors"
	"testing"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in      string
		kind    selectorKind
		arg     string
		wantErr bool
	}{
		{"*", selectorAny, "", false},
		{".point", selectorClass, "point", false},
		{"#title", selectorName, "title", false},
		{"bar-*", selectorGlob, "bar-*", false},
		{"  .point ", selectorClass, "point", false},
		{"{dot,point}-?", selectorGlob, "{dot,point}-?", false},
		{"", 0, "", true},
		{".", 0, "", true},
		{"#", 0, "", true},
		{".a.b", 0, "", true},
		{".a b", 0, "", true},
		{"bar-[", 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sel, err := ParseSelector(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelector) {
					t.Errorf("err = %v, want ErrInvalidSelector", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sel.kind != tt.kind || sel.arg != tt.arg {
				t.Errorf("got kind %d arg %q, want %d %q", sel.kind, sel.arg, tt.kind, tt.arg)
			}
			if sel.String() != tt.in {
				t.Errorf("String() = %q, want %q", sel.String(), tt.in)
			}
		})
	}
}

func TestSelectorMatches(t *testing.T) {
	n := NewRect("bar-3", 1, 1, ColorWhite)
	n.AddClass("point")

	tests := []struct {
		sel  string
		want bool
	}{
		{"*", true},
		{".point", true},
		{".line", false},
		{"#bar-3", true},
		{"#bar", false},
		{"bar-*", true},
		{"dot-*", false},
		{"bar-?", true},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			sel, err := ParseSelector(tt.sel)
			if err != nil {
				t.Fatal(err)
			}
			if got := sel.Matches(n); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func constText(s string) ContentFunc {
	return func(any, int, []Anchor) (Content, error) { return Text(s), nil }
}

// chart builds root > chart > series > point(.point, datum) x3.
func chart() (root, component, series *Node, points []*Node) {
	root = NewContainer("root")
	component = NewContainer("chart")
	series = NewContainer("series")
	series.AddClass("series")
	root.AddChild(component)
	component.AddChild(series)
	for i := range 3 {
		p := NewRect("point", 10, 10, ColorWhite)
		p.AddClass("point")
		p.UserData = i * 10
		p.SetPosition(float64(i*20), 0)
		series.AddChild(p)
		points = append(points, p)
	}
	return root, component, series, points
}

func TestNewTriggerRegistryInvalidSelector(t *testing.T) {
	_, err := NewTriggerRegistry([]Trigger{
		{Selector: ".point", Content: constText("a")},
		{Selector: "", Content: constText("b")},
	})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if cfgErr.Field != "triggers[1]" {
		t.Errorf("Field = %q, want triggers[1]", cfgErr.Field)
	}
	if !errors.Is(err, ErrInvalidSelector) {
		t.Error("error should wrap ErrInvalidSelector")
	}
}

func TestMatchClosestAncestorWins(t *testing.T) {
	_, component, series, points := chart()
	r, err := NewTriggerRegistry([]Trigger{
		{Selector: ".series", Content: constText("series")},
		{Selector: ".point", Content: constText("point")},
	})
	if err != nil {
		t.Fatal(err)
	}

	b, el := r.Match(points[1], component)
	if b == nil || b.Selector.String() != ".point" {
		t.Fatalf("binding = %v, want .point", b)
	}
	if el != Anchor(points[1]) {
		t.Errorf("element = %v, want points[1]", el)
	}

	b, el = r.Match(series, component)
	if b == nil || b.Selector.String() != ".series" || el != Anchor(series) {
		t.Errorf("series match = %v, %v", b, el)
	}
}

func TestMatchDeclarationOrderBreaksTies(t *testing.T) {
	_, component, _, points := chart()
	r, err := NewTriggerRegistry([]Trigger{
		{Selector: "*", Content: constText("any")},
		{Selector: ".point", Content: constText("point")},
	})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := r.Match(points[0], component)
	if b == nil || b.Order != 0 {
		t.Errorf("binding = %+v, want the first declared", b)
	}
}

func TestMatchStopsAtComponentRoot(t *testing.T) {
	root, _, series, points := chart()
	root.AddClass("page")
	r, err := NewTriggerRegistry([]Trigger{{Selector: ".page", Content: constText("page")}})
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := r.Match(points[0], series); b != nil {
		t.Errorf("match above the component root: %v", b)
	}
	if b, _ := r.Match(points[0], root); b == nil {
		t.Error("root itself should be matchable")
	}
}

func TestMatchOutsideComponent(t *testing.T) {
	_, component, _, _ := chart()
	stray := NewRect("stray", 1, 1, ColorWhite)
	stray.AddClass("point")
	r, _ := NewTriggerRegistry([]Trigger{{Selector: ".point", Content: constText("p")}})

	if b, el := r.Match(stray, component); b != nil || el != nil {
		t.Errorf("Match = %v, %v, want nothing", b, el)
	}
}

func TestCandidatesDocumentOrder(t *testing.T) {
	_, component, _, points := chart()
	r, _ := NewTriggerRegistry([]Trigger{{Selector: ".point", Content: constText("p")}})

	got := r.Candidates(r.Bindings()[0], component)
	if len(got) != len(points) {
		t.Fatalf("candidates = %d, want %d", len(got), len(points))
	}
	for i, p := range points {
		if got[i] != Anchor(p) {
			t.Errorf("candidate %d mismatch", i)
		}
		if indexOf(got, p) != i {
			t.Errorf("indexOf(points[%d]) = %d", i, indexOf(got, p))
		}
	}
	if indexOf(got, component) != -1 {
		t.Error("component should not be a candidate")
	}
}

func TestMatchEventFirstComponentWins(t *testing.T) {
	root, component, series, points := chart()
	r, _ := NewTriggerRegistry([]Trigger{{Selector: ".point", Content: constText("p")}})

	other := NewContainer("other")
	root.AddChild(other)

	m, ok := r.MatchEvent(points[2], []Anchor{other, series, component})
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Component != Anchor(series) {
		t.Errorf("component = %v, want series (first containing match)", m.Component)
	}
	if m.Element != Anchor(points[2]) || m.Binding != r.Bindings()[0] {
		t.Errorf("match = %+v", m)
	}

	if _, ok := r.MatchEvent(series, []Anchor{component}); ok {
		t.Error("series itself has no trigger")
	}
}

func TestSuppressedBinding(t *testing.T) {
	r, _ := NewTriggerRegistry([]Trigger{
		{Selector: ".point"},
		{Selector: ".bar", Content: constText("b")},
	})
	if !r.Bindings()[0].Suppressed() {
		t.Error("nil content should mark the binding suppressed")
	}
	if r.Bindings()[1].Suppressed() {
		t.Error("binding with content should not be suppressed")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}
