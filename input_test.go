package blossom

import (
	"math"
	"testing"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- elementContainsLocal tests ---

func TestElementContainsLocal_WithHitShape(t *testing.T) {
	e := NewPanel("test", 64, 64, ColorWhite)
	e.HitShape = HitCircle{CenterX: 32, CenterY: 32, Radius: 16}

	if !elementContainsLocal(e, 32, 32) {
		t.Error("should contain center of circle")
	}
	if elementContainsLocal(e, 0, 0) {
		t.Error("should not contain corner outside circle")
	}
}

func TestElementContainsLocal_DefaultContentBox(t *testing.T) {
	e := NewPanel("test", 100, 50, ColorWhite)

	if !elementContainsLocal(e, 50, 25) {
		t.Error("should contain center of content box")
	}
	if !elementContainsLocal(e, 0, 0) {
		t.Error("should contain top-left corner")
	}
	if elementContainsLocal(e, -1, 25) {
		t.Error("should not contain point outside left")
	}
	if elementContainsLocal(e, 101, 25) {
		t.Error("should not contain point outside right")
	}
}

func TestElementContainsLocal_GroupNoHitShape(t *testing.T) {
	e := NewGroup("box")
	if elementContainsLocal(e, 0, 0) {
		t.Error("group without HitShape should not be hit-testable")
	}
}

func TestElementContainsLocal_GroupWithHitShape(t *testing.T) {
	e := NewGroup("box")
	e.HitShape = HitRect{X: 0, Y: 0, Width: 100, Height: 100}
	if !elementContainsLocal(e, 50, 50) {
		t.Error("group with HitShape should be hit-testable")
	}
}

// --- Hit test traversal tests ---

func newTestPanel(name string, w, h float64) *Element {
	e := NewPanel(name, w, h, ColorWhite)
	e.Interactable = true
	return e
}

func TestHitTest_TopmostElement(t *testing.T) {
	s := NewSurface(640, 480)
	// Two overlapping panels at origin.
	a := newTestPanel("a", 100, 100)
	b := newTestPanel("b", 100, 100)

	s.Root().AddChild(a)
	s.Root().AddChild(b)

	// Refresh transforms.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	hit := s.hitTest(50, 50)
	if hit != b {
		t.Errorf("expected topmost element b, got %v", hit)
	}
}

func TestHitTest_SkipsInvisible(t *testing.T) {
	s := NewSurface(640, 480)
	a := newTestPanel("a", 100, 100)
	b := newTestPanel("b", 100, 100)
	b.Visible = false

	s.Root().AddChild(a)
	s.Root().AddChild(b)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	hit := s.hitTest(50, 50)
	if hit != a {
		t.Errorf("expected element a (b is invisible), got %v", hit)
	}
}

func TestHitTest_SkipsNonInteractable(t *testing.T) {
	s := NewSurface(640, 480)
	a := newTestPanel("a", 100, 100)
	b := NewPanel("b", 100, 100, ColorWhite)
	// b.Interactable is false by default

	s.Root().AddChild(a)
	s.Root().AddChild(b)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	hit := s.hitTest(50, 50)
	if hit != a {
		t.Errorf("expected element a (b is not interactable), got %v", hit)
	}
}

func TestHitTest_Miss(t *testing.T) {
	s := NewSurface(640, 480)
	a := newTestPanel("a", 100, 100)

	s.Root().AddChild(a)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	hit := s.hitTest(200, 200)
	if hit != nil {
		t.Errorf("expected nil, got %v", hit)
	}
}

func TestHitTest_TransformedElement(t *testing.T) {
	s := NewSurface(640, 480)
	a := newTestPanel("a", 100, 100)
	a.X = 200
	a.Y = 200

	s.Root().AddChild(a)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	// Point at origin should miss.
	if s.hitTest(50, 50) != nil {
		t.Error("expected miss at origin")
	}
	// Point at (250, 250) should hit.
	if s.hitTest(250, 250) != a {
		t.Error("expected hit at (250, 250)")
	}
}

func TestHitTest_RotatedElement(t *testing.T) {
	s := NewSurface(640, 480)
	a := newTestPanel("a", 100, 100)
	a.PivotX = 50
	a.PivotY = 50
	a.X = 50
	a.Y = 50
	a.Rotation = math.Pi / 4 // 45 degrees

	s.Root().AddChild(a)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	// Center should still hit.
	if s.hitTest(50, 50) != a {
		t.Error("center of rotated element should hit")
	}
}

// --- Callback dispatch tests ---

func TestPointerDownDispatch(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var called bool
	panel.OnPointerDown = func(ctx PointerContext) {
		called = true
		if ctx.Element != panel {
			t.Error("expected hit panel")
		}
		if ctx.Button != MouseButtonLeft {
			t.Errorf("Button = %d, want left", ctx.Button)
		}
	}

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	if !called {
		t.Error("pointer down callback not fired")
	}
}

func TestPointerUpDispatch(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var upCalled bool
	panel.OnPointerUp = func(ctx PointerContext) { upCalled = true }

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 50, 50, false, MouseButtonLeft)
	if !upCalled {
		t.Error("pointer up callback not fired")
	}
}

func TestContextCoordinates(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	panel.X = 50
	panel.Y = 50
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	panel.OnPointerDown = func(ctx PointerContext) {
		if ctx.GlobalX != 75 || ctx.GlobalY != 75 {
			t.Errorf("expected global (75,75), got (%v,%v)", ctx.GlobalX, ctx.GlobalY)
		}
		// Local should be offset by the element's position.
		if ctx.LocalX != 25 || ctx.LocalY != 25 {
			t.Errorf("expected local (25,25), got (%v,%v)", ctx.LocalX, ctx.LocalY)
		}
	}

	s.processPointer(0, 75, 75, true, MouseButtonLeft)
}

func TestContextUserData(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	panel.UserData = "payload"
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	panel.OnPointerDown = func(ctx PointerContext) {
		if ctx.UserData != "payload" {
			t.Errorf("UserData = %v, want payload", ctx.UserData)
		}
	}
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
}

// --- Move semantics ---

func TestHeldMoveFires(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var moves int
	panel.OnPointerMove = func(ctx PointerContext) { moves++ }

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 60, 50, true, MouseButtonLeft)
	s.processPointer(0, 70, 50, true, MouseButtonLeft)
	if moves != 2 {
		t.Errorf("moves = %d, want 2 (one per position change)", moves)
	}
}

func TestStationaryHeldPointerFiresNothing(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var moves int
	panel.OnPointerMove = func(ctx PointerContext) { moves++ }

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 50, 50, true, MouseButtonLeft) // same position
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	if moves != 0 {
		t.Errorf("moves = %d, want 0 for a stationary pointer", moves)
	}
}

func TestHeldMoveReportsPressButton(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var got MouseButton
	panel.OnPointerMove = func(ctx PointerContext) { got = ctx.Button }

	// Press with right, then a held move that claims middle: the button
	// captured at press time stays authoritative.
	s.processPointer(0, 50, 50, true, MouseButtonRight)
	s.processPointer(0, 60, 50, true, MouseButtonMiddle)
	if got != MouseButtonRight {
		t.Errorf("held move Button = %d, want press-time right", got)
	}
}

func TestHoverMove(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var moveCalled bool
	panel.OnPointerMove = func(ctx PointerContext) {
		moveCalled = true
		if ctx.Element != panel {
			t.Error("expected panel on hover")
		}
	}

	// Hover (not pressed) with position change.
	s.processPointer(0, 50, 50, false, MouseButtonLeft)
	if !moveCalled {
		t.Error("pointer move callback not fired on hover")
	}
}

// --- Pointer capture tests ---

func TestPointerCapture(t *testing.T) {
	s := NewSurface(640, 480)
	a := newTestPanel("a", 100, 100)
	b := newTestPanel("b", 100, 100)
	b.X = 200

	s.Root().AddChild(a)
	s.Root().AddChild(b)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	// Capture pointer to b.
	s.CapturePointer(0, b)

	// Hit test at a's location still returns a, but events route to b.
	if s.hitTest(50, 50) != a {
		t.Error("hitTest should return a")
	}
	if s.Captured(0) != b {
		t.Error("Captured(0) should be b")
	}

	var received *Element
	b.OnPointerDown = func(ctx PointerContext) { received = ctx.Element }
	a.OnPointerDown = func(ctx PointerContext) { t.Error("a should not receive the event") }

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	if received != b {
		t.Errorf("expected captured element b, got %v", received)
	}

	s.ReleasePointer(0)
	if s.Captured(0) != nil {
		t.Error("Captured(0) should be nil after release")
	}
}

func TestAutoReleaseCaptureOnPointerUp(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	s.CapturePointer(0, panel)
	if s.Captured(0) != panel {
		t.Fatal("capture not set")
	}

	// Press and release.
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 50, 50, false, MouseButtonLeft)

	if s.Captured(0) != nil {
		t.Error("capture should be auto-released on pointer up")
	}
}

func TestCaptureRoutesMovesOutsideBounds(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)
	s.Root().AddChild(panel)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var moves int
	panel.OnPointerMove = func(ctx PointerContext) { moves++ }

	panel.OnPointerDown = func(ctx PointerContext) {
		s.CapturePointer(ctx.PointerID, panel)
	}

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	// Drag far outside the panel; capture keeps routing moves to it.
	s.processPointer(0, 400, 300, true, MouseButtonLeft)
	s.processPointer(0, 500, 400, true, MouseButtonLeft)
	if moves != 2 {
		t.Errorf("moves = %d, want 2 while captured outside bounds", moves)
	}
}

func TestCapturePointerIgnoresBadID(t *testing.T) {
	s := NewSurface(640, 480)
	panel := newTestPanel("p", 100, 100)

	// Should not panic or corrupt state.
	s.CapturePointer(-1, panel)
	s.CapturePointer(maxPointers, panel)
	s.ReleasePointer(-1)
	s.ReleasePointer(maxPointers)
	if s.Captured(-1) != nil || s.Captured(maxPointers) != nil {
		t.Error("out-of-range pointer IDs should report nil capture")
	}
}

// --- collectInteractable tests ---

func TestCollectInteractable_SkipsInvisibleSubtree(t *testing.T) {
	s := NewSurface(640, 480)
	container := NewGroup("c")
	container.Interactable = true
	container.Visible = false

	child := newTestPanel("child", 100, 100)
	container.AddChild(child)

	s.Root().AddChild(container)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	buf := s.collectInteractable(s.root, nil)
	for _, e := range buf {
		if e == child {
			t.Error("invisible subtree children should not be collected")
		}
	}
}

func TestCollectInteractable_SkipsNonInteractableSubtree(t *testing.T) {
	s := NewSurface(640, 480)
	container := NewGroup("c")
	container.Interactable = false

	child := newTestPanel("child", 100, 100)
	container.AddChild(child)

	s.Root().AddChild(container)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	buf := s.collectInteractable(s.root, nil)
	for _, e := range buf {
		if e == child {
			t.Error("non-interactable subtree children should not be collected")
		}
	}
}

func TestCollectInteractable_PainterOrder(t *testing.T) {
	s := NewSurface(640, 480)
	a := newTestPanel("a", 10, 10)
	b := newTestPanel("b", 10, 10)
	c := newTestPanel("c", 10, 10)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	b.AddChild(c)
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	buf := s.collectInteractable(s.root, nil)
	names := ""
	for _, e := range buf {
		names += e.Name
	}
	if names != "abc" {
		t.Errorf("collected order = %q, want %q", names, "abc")
	}
}

// --- Benchmarks ---

func BenchmarkHitTest_100Elements(b *testing.B) {
	s := NewSurface(1280, 960)
	for i := 0; i < 100; i++ {
		e := newTestPanel("e", 10, 10)
		e.X = float64(i%10) * 12
		e.Y = float64(i/10) * 12
		s.Root().AddChild(e)
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		s.hitTest(61, 61)
	}
}
