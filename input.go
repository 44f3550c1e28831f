package blossom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// --- Pointer capture ---

// CapturePointer routes all events for pointerID to the given element until
// the pointer is released or the capture is explicitly dropped.
func (s *Surface) CapturePointer(pointerID int, element *Element) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = element
	}
}

// ReleasePointer stops routing events for pointerID to a captured element.
func (s *Surface) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// Captured returns the element currently capturing pointerID, or nil.
func (s *Surface) Captured(pointerID int) *Element {
	if pointerID < 0 || pointerID >= maxPointers {
		return nil
	}
	return s.captured[pointerID]
}

// --- Hit testing ---

// elementContainsLocal tests whether (lx, ly) falls inside an element's hit
// region. Uses HitShape if set; otherwise the content box. Groups with no
// HitShape are not hit-testable.
func elementContainsLocal(e *Element, lx, ly float64) bool {
	if e.HitShape != nil {
		return e.HitShape.Contains(lx, ly)
	}
	if e.Kind == KindGroup || (e.Width == 0 && e.Height == 0) {
		return false
	}
	return lx >= 0 && lx <= e.Width && ly >= 0 && ly <= e.Height
}

// collectInteractable walks the tree in painter order (DFS, insertion
// order), appending hit-testable elements to buf. Skips Visible=false or
// Interactable=false subtrees.
func (s *Surface) collectInteractable(e *Element, buf []*Element) []*Element {
	if !e.Visible || !e.Interactable {
		return buf
	}

	if e.HitShape != nil || e.Kind != KindGroup {
		buf = append(buf, e)
	}

	for _, child := range e.children {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable element at (wx, wy) in surface
// coordinates. Returns nil if nothing is hit.
func (s *Surface) hitTest(wx, wy float64) *Element {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual element first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		e := s.hitBuf[i]
		lx, ly := e.WorldToLocal(wx, wy)
		if elementContainsLocal(e, lx, ly) {
			return e
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Surface.Update() to handle all mouse and
// touch input. World transforms are already refreshed at the start of
// Surface.Update(). A queued synthetic event replaces real mouse input for
// the frame; touch input is always processed.
func (s *Surface) processInput() {
	if !s.processInjectedInput() {
		s.processMousePointer()
	}
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Surface) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	wx, wy := float64(mx), float64(my)

	// Detect which button is pressed. If the pointer is already down, the
	// stored button stays authoritative for the rest of the interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, wx, wy, pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Surface) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Surface) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
// Move events fire whenever the position changes, held or not, so press
// recognizers can track a dragging pointer through capture.
func (s *Surface) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	// Determine target element: captured element or hit test.
	var target *Element
	if s.captured[pointerID] != nil {
		target = s.captured[pointerID]
	} else {
		target = s.hitTest(wx, wy)
	}

	if pressed && !ps.down {
		// Just pressed — capture button for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.lastX = wx
		ps.lastY = wy

		s.firePointerDown(target, pointerID, wx, wy, ps.button)
	} else if !pressed && ps.down {
		// Just released — use button from press start.
		s.firePointerUp(target, pointerID, wx, wy, ps.button)

		// Auto-release capture.
		s.captured[pointerID] = nil
		ps.down = false
	} else if wx != ps.lastX || wy != ps.lastY {
		// Held drag or hover move. Held pointers report the button from
		// press time.
		b := button
		if ps.down {
			b = ps.button
		}
		s.firePointerMove(target, pointerID, wx, wy, b)
		ps.lastX = wx
		ps.lastY = wy
	}
}

// --- Event dispatch ---

func (s *Surface) firePointerDown(element *Element, pointerID int, wx, wy float64, button MouseButton) {
	if element == nil || element.OnPointerDown == nil {
		return
	}
	lx, ly := element.WorldToLocal(wx, wy)
	element.OnPointerDown(PointerContext{
		Element: element, UserData: element.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	})
}

func (s *Surface) firePointerUp(element *Element, pointerID int, wx, wy float64, button MouseButton) {
	if element == nil || element.OnPointerUp == nil {
		return
	}
	lx, ly := element.WorldToLocal(wx, wy)
	element.OnPointerUp(PointerContext{
		Element: element, UserData: element.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	})
}

func (s *Surface) firePointerMove(element *Element, pointerID int, wx, wy float64, button MouseButton) {
	if element == nil || element.OnPointerMove == nil {
		return
	}
	lx, ly := element.WorldToLocal(wx, wy)
	element.OnPointerMove(PointerContext{
		Element: element, UserData: element.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	})
}
