package tooltip

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type selectorKind uint8

const (
	selectorAny   selectorKind = iota // *
	selectorClass                     // .class
	selectorName                      // #name
	selectorGlob                      // doublestar pattern on the name
)

// Selector is a compiled trigger selector.
type Selector struct {
	raw  string
	kind selectorKind
	arg  string
}

// ParseSelector compiles a selector. Supported forms are ".class",
// "#name", "*" and doublestar glob patterns matched against the element name
// (for example "bar-*" or "{dot,point}-?").
func ParseSelector(s string) (Selector, error) {
	raw := s
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Selector{}, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	case s == "*":
		return Selector{raw: raw, kind: selectorAny}, nil
	case strings.HasPrefix(s, "."):
		return compileSimple(raw, selectorClass, s[1:])
	case strings.HasPrefix(s, "#"):
		return compileSimple(raw, selectorName, s[1:])
	}
	if !doublestar.ValidatePattern(s) {
		return Selector{}, fmt.Errorf("%w: bad pattern %q", ErrInvalidSelector, raw)
	}
	return Selector{raw: raw, kind: selectorGlob, arg: s}, nil
}

func compileSimple(raw string, kind selectorKind, arg string) (Selector, error) {
	if arg == "" || strings.ContainsAny(arg, " \t.#") {
		return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, raw)
	}
	return Selector{raw: raw, kind: kind, arg: arg}, nil
}

// String returns the selector as written.
func (s Selector) String() string {
	return s.raw
}

// Matches reports whether the element satisfies the selector.
func (s Selector) Matches(a Anchor) bool {
	switch s.kind {
	case selectorAny:
		return true
	case selectorClass:
		return a.HasClass(s.arg)
	case selectorName:
		return a.AnchorName() == s.arg
	case selectorGlob:
		// Pattern validity was checked at compile time.
		ok, _ := doublestar.Match(s.arg, a.AnchorName())
		return ok
	}
	return false
}

// TriggerBinding is a compiled trigger: a selector and its content function.
type TriggerBinding struct {
	Selector Selector
	// Order is the trigger's position in the configured list.
	Order   int
	content ContentFunc
}

// Suppressed reports whether the binding is an explicit no-content marker.
func (b *TriggerBinding) Suppressed() bool {
	return b.content == nil
}

// TriggerRegistry resolves hovered elements to trigger bindings. It is
// immutable after construction and side-effect free.
type TriggerRegistry struct {
	bindings []*TriggerBinding
}

// NewTriggerRegistry compiles triggers in declaration order.
func NewTriggerRegistry(triggers []Trigger) (*TriggerRegistry, error) {
	r := &TriggerRegistry{bindings: make([]*TriggerBinding, 0, len(triggers))}
	for i, t := range triggers {
		sel, err := ParseSelector(t.Selector)
		if err != nil {
			return nil, &ConfigError{Field: fmt.Sprintf("triggers[%d]", i), Err: err}
		}
		r.bindings = append(r.bindings, &TriggerBinding{Selector: sel, Order: i, content: t.Content})
	}
	return r, nil
}

// Bindings returns the compiled bindings in declaration order.
func (r *TriggerRegistry) Bindings() []*TriggerBinding {
	return r.bindings
}

// Len returns the number of bindings.
func (r *TriggerRegistry) Len() int {
	return len(r.bindings)
}

// Match walks target's ancestor chain closest-first, up to and including
// root, and returns the first binding whose selector matches together with
// the matched element. The closest matching ancestor wins; among selectors
// matching the same element, declaration order decides. Returns nil if target
// is outside root or nothing matches.
func (r *TriggerRegistry) Match(target, root Anchor) (*TriggerBinding, Anchor) {
	if !isInside(target, root) {
		return nil, nil
	}
	for a := target; a != nil; a = a.AnchorParent() {
		for _, b := range r.bindings {
			if b.Selector.Matches(a) {
				return b, a
			}
		}
		if a == root {
			break
		}
	}
	return nil, nil
}

// Candidates returns every element under root (inclusive) matching the
// binding's selector, in depth-first document order.
func (r *TriggerRegistry) Candidates(b *TriggerBinding, root Anchor) []Anchor {
	var out []Anchor
	var walk func(a Anchor)
	walk = func(a Anchor) {
		if b.Selector.Matches(a) {
			out = append(out, a)
		}
		for _, c := range a.AnchorChildren() {
			walk(c)
		}
	}
	walk(root)
	return out
}

// TriggerMatch is the result of matching an event target against the
// configured components.
type TriggerMatch struct {
	Binding   *TriggerBinding
	Element   Anchor
	Component Anchor
}

// MatchEvent scans components in configured order and returns the first
// match. When nested components both match, the earlier-registered one wins.
func (r *TriggerRegistry) MatchEvent(target Anchor, components []Anchor) (TriggerMatch, bool) {
	for _, comp := range components {
		if b, el := r.Match(target, comp); b != nil {
			return TriggerMatch{Binding: b, Element: el, Component: comp}, true
		}
	}
	return TriggerMatch{}, false
}

// indexOf returns the position of a in list, or -1.
func indexOf(list []Anchor, a Anchor) int {
	for i, c := range list {
		if c == a {
			return i
		}
	}
	return -1
}
