package tooltip

import (
	"fmt"
	"log/slog"
)

// ContentKind tags the variant held by a Content value.
type ContentKind uint8

const (
	ContentSuppressed ContentKind = iota // no tooltip for this event
	ContentText                          // plain text
	ContentNode                          // structured node subtree
)

// String returns the kind name.
func (k ContentKind) String() string {
	switch k {
	case ContentSuppressed:
		return "suppressed"
	case ContentText:
		return "text"
	case ContentNode:
		return "node"
	default:
		return "unknown"
	}
}

// Content is what a tooltip displays. The zero value is Suppressed, so a
// content function that returns Content{} hides the tooltip.
type Content struct {
	Kind ContentKind
	Text string
	Node *Node
}

// Suppressed is the explicit "no content" outcome.
var Suppressed = Content{}

// Text returns text content.
func Text(s string) Content {
	return Content{Kind: ContentText, Text: s}
}

// Textf returns formatted text content.
func Textf(format string, args ...any) Content {
	return Text(fmt.Sprintf(format, args...))
}

// NodeContent returns structured content rendered by the given subtree.
// A nil node is treated as Suppressed.
func NodeContent(n *Node) Content {
	if n == nil {
		return Suppressed
	}
	return Content{Kind: ContentNode, Node: n}
}

// IsSuppressed reports whether the content hides the tooltip.
func (c Content) IsSuppressed() bool {
	return c.Kind == ContentSuppressed || (c.Kind == ContentNode && c.Node == nil)
}

// ContentFunc produces tooltip content for a hovered element. datum is the
// element's bound data, index its position among candidates, and candidates
// every element of the component matching the same selector.
type ContentFunc func(datum any, index int, candidates []Anchor) (Content, error)

// Trigger binds a selector to a content function. A nil Content marks the
// selector as explicitly producing no tooltip.
type Trigger struct {
	Selector string
	Content  ContentFunc
}

// ContentResolver invokes content functions and normalizes their outcome.
type ContentResolver struct {
	logger  *slog.Logger
	onError func(error)
}

// NewContentResolver returns a resolver that logs producer failures to logger
// and forwards them to onError when it is non-nil.
func NewContentResolver(logger *slog.Logger, onError func(error)) *ContentResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentResolver{logger: logger, onError: onError}
}

// Resolve runs the binding's content function. Errors and panics are
// reported and yield Suppressed.
func (r *ContentResolver) Resolve(b *TriggerBinding, datum any, index int, candidates []Anchor) (out Content) {
	if b == nil || b.content == nil {
		return Suppressed
	}
	defer func() {
		if v := recover(); v != nil {
			err, ok := v.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", v)
			}
			r.report(b, index, err)
			out = Suppressed
		}
	}()

	c, err := b.content(datum, index, candidates)
	if err != nil {
		r.report(b, index, err)
		return Suppressed
	}
	if c.IsSuppressed() {
		return Suppressed
	}
	return c
}

func (r *ContentResolver) report(b *TriggerBinding, index int, err error) {
	perr := &ProducerError{Selector: b.Selector.String(), Index: index, Err: err}
	r.logger.Error("tooltip content failed",
		"selector", perr.Selector, "index", index, "err", err)
	if r.onError != nil {
		r.onError(perr)
	}
}
