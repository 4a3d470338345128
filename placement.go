package tooltip

import "strings"

// Position names a side of the reference point where the tooltip is placed.
// Configuration accepts any case ("Left", "left"); see ParsePosition.
type Position string

const (
	PositionAuto   Position = "auto"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionCenter Position = "center"
)

// ParsePosition normalizes a raw placement string. It reports false for
// values that name no position.
func ParsePosition(s string) (Position, bool) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PositionAuto, PositionLeft, PositionRight, PositionTop, PositionBottom, PositionCenter:
		return p, true
	}
	return "", false
}

// PlacementRequest gathers everything Place needs. All rectangles and points
// are in surface coordinates.
type PlacementRequest struct {
	Anchor          Rect
	Pointer         Vec2
	FollowCursor    bool
	Horizontal      Position
	Vertical        Position
	HorizontalShift float64
	VerticalShift   float64
	// Size is the tooltip's own width and height.
	Size Vec2
	// Container bounds placement. An empty container leaves it unbounded.
	Container Rect
}

// axis describes one placement axis in terms of its low ("left"/"top") and
// high ("right"/"bottom") sides.
type axis struct {
	before, after Position // sides placing the tooltip before or after the reference
	preferred     Position // Auto choice when both or neither side fits
}

var (
	horizontalAxis = axis{before: PositionLeft, after: PositionRight, preferred: PositionRight}
	verticalAxis   = axis{before: PositionTop, after: PositionBottom, preferred: PositionTop}
)

// span is the reference extent on one axis: its low edge, high edge and
// center. With follow-cursor all three are the pointer coordinate.
type span struct {
	lo, hi, mid float64
}

// Place resolves a placement request into the tooltip's top-left corner,
// relative to the container origin. It is pure: identical requests yield
// identical results.
//
// Explicit sides apply their shift; Auto, Center and the other axis' names
// ignore it. A placement overflowing the container flips to the opposite
// side once, then clamps to the container edge.
func Place(req PlacementRequest) Vec2 {
	var hs, vs span
	if req.FollowCursor {
		hs = span{req.Pointer.X, req.Pointer.X, req.Pointer.X}
		vs = span{req.Pointer.Y, req.Pointer.Y, req.Pointer.Y}
	} else {
		c := req.Anchor.Center()
		hs = span{req.Anchor.X, req.Anchor.Right(), c.X}
		vs = span{req.Anchor.Y, req.Anchor.Bottom(), c.Y}
	}

	bounded := !req.Container.IsEmpty()
	x := placeAxis(horizontalAxis, normalizeSide(req.Horizontal, PositionAuto), hs,
		req.Size.X, req.HorizontalShift, req.Container.X, req.Container.Right(), bounded)
	y := placeAxis(verticalAxis, normalizeSide(req.Vertical, PositionTop), vs,
		req.Size.Y, req.VerticalShift, req.Container.Y, req.Container.Bottom(), bounded)

	if !bounded {
		return Vec2{X: x, Y: y}
	}
	return Vec2{X: x - req.Container.X, Y: y - req.Container.Y}
}

// normalizeSide maps an arbitrary configured value onto a known position,
// falling back to def for unknown strings.
func normalizeSide(p Position, def Position) Position {
	if n, ok := ParsePosition(string(p)); ok {
		return n
	}
	return def
}

// placeAxis computes the tooltip's start coordinate on one axis. size is the
// tooltip extent, [lo, hi] the container extent.
func placeAxis(ax axis, side Position, ref span, size, shift, lo, hi float64, bounded bool) float64 {
	at := func(side Position, shift float64) float64 {
		if side == ax.before {
			return ref.lo - size - shift
		}
		return ref.hi + shift
	}
	fits := func(v float64) bool {
		return !bounded || (v >= lo && v+size <= hi)
	}

	var v float64
	switch side {
	case ax.before, ax.after:
		v = at(side, shift)
		if !fits(v) {
			v = at(opposite(ax, side), shift)
		}
	case PositionAuto:
		other := opposite(ax, ax.preferred)
		switch {
		case fits(at(ax.preferred, 0)):
			v = at(ax.preferred, 0)
		case fits(at(other, 0)):
			v = at(other, 0)
		default:
			v = at(ax.preferred, 0)
		}
	default:
		// Center, or a side belonging to the other axis.
		v = ref.mid - size/2
	}

	if !bounded {
		return v
	}
	return clampSpan(v, size, lo, hi)
}

func opposite(ax axis, side Position) Position {
	if side == ax.before {
		return ax.after
	}
	return ax.before
}

// clampSpan keeps [v, v+size] inside [lo, hi]. A span larger than the
// container pins to lo.
func clampSpan(v, size, lo, hi float64) float64 {
	if v+size > hi {
		v = hi - size
	}
	if v < lo {
		v = lo
	}
	return v
}
