package tooltip

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. Without cameras, screen and world coordinates coincide.
type syntheticPointerEvent struct {
	x, y    float64
	inside  bool
	pressed bool
	button  MouseButton
}

// InjectMove queues a hover move (no button held) to the given screen
// coordinates. The event is consumed on the next frame's input pass.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, inside: true,
	})
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button).
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, inside: true,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, inside: true,
		button: MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectLeave queues the pointer leaving the surface, which fires leave on
// whatever node is hovered.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: s.pointer.lastX, y: s.pointer.lastY,
	})
}

// InjectHover moves the pointer along a straight line from (fromX, fromY) to
// (toX, toY) over the given number of frames (minimum 1).
func (s *Scene) InjectHover(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	if frames == 1 {
		s.InjectMove(toX, toY)
		return
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, evt.inside, evt.pressed, evt.button, 0)
	return true
}
