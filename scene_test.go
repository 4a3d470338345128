package tooltip

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", s.ScreenshotDir)
	}
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneViewport(t *testing.T) {
	s := NewScene()
	r := Rect{Width: 640, Height: 480}
	s.SetViewport(r)
	if s.Viewport() != r {
		t.Errorf("Viewport = %+v, want %+v", s.Viewport(), r)
	}
}

func TestUpdateRunsHooksAfterInput(t *testing.T) {
	s, low, _ := newHitScene()
	var order []string
	s.OnPointerEnter(func(PointerContext) { order = append(order, "enter") })
	s.OnUpdate(func(float32) { order = append(order, "update") })
	low.OnUpdate = func(float64) { order = append(order, "node") }

	s.InjectMove(5, 5)
	step(s)

	want := []string{"node", "enter", "update"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
	if s.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", s.Frame())
	}
}

func TestOnUpdateReceivesDelta(t *testing.T) {
	s := NewScene()
	var got float32
	s.OnUpdate(func(dt float32) { got = dt })
	s.update(0.25, false)
	if got != 0.25 {
		t.Errorf("dt = %v, want 0.25", got)
	}
}

func TestOnUpdateRemove(t *testing.T) {
	s := NewScene()
	n := 0
	h := s.OnUpdate(func(float32) { n++ })
	step(s)
	h.Remove()
	step(s)
	if n != 1 {
		t.Errorf("hook ran %d times, want 1", n)
	}
}

func TestOnUpdateRemoveSelf(t *testing.T) {
	s := NewScene()
	var h CallbackHandle
	other := 0
	h = s.OnUpdate(func(float32) { h.Remove() })
	s.OnUpdate(func(float32) { other++ })
	step(s)
	step(s)
	if other != 2 {
		t.Errorf("other hook ran %d times, want 2", other)
	}
	if len(s.handlers.update) != 1 {
		t.Errorf("update hooks = %d, want 1", len(s.handlers.update))
	}
}

func TestHiddenNodeSkipsOnUpdate(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	n.Visible = false
	ran := false
	n.OnUpdate = func(float64) { ran = true }
	s.Root().AddChild(n)
	step(s)
	if ran {
		t.Error("OnUpdate should not run for invisible nodes")
	}
}

func TestDebugFrameLog(t *testing.T) {
	var buf bytes.Buffer
	s := NewScene()
	s.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	step(s)

	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "component=scene") {
		t.Errorf("debug log = %q", out)
	}
}

func TestDebugCheckDisposedPanics(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for disposed node")
		}
	}()
	debugCheckDisposed(n, "AddChild")
}
