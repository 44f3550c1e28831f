package blossom

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Option is one pickable entry. Image is a display-image identifier,
// resolved through the selector's ImageSource when the strip opens.
type Option struct {
	Image string
}

// Delegate receives the outcome of a completed gesture. Exactly one of the
// two methods is invoked per completed gesture: never zero, never both.
type Delegate interface {
	// SelectedOption reports the option under the pointer when the gesture
	// ended. The index refers to the dataset as it was when the strip opened.
	SelectedOption(sel *Selector, index int)
	// CancelledAction reports a gesture that ended with no option selected.
	CancelledAction(sel *Selector)
}

// DelegateFuncs adapts plain functions to the Delegate interface.
// Nil fields are no-ops.
type DelegateFuncs struct {
	Selected  func(sel *Selector, index int)
	Cancelled func(sel *Selector)
}

// SelectedOption calls the Selected func if set.
func (d DelegateFuncs) SelectedOption(sel *Selector, index int) {
	if d.Selected != nil {
		d.Selected(sel, index)
	}
}

// CancelledAction calls the Cancelled func if set.
func (d DelegateFuncs) CancelledAction(sel *Selector) {
	if d.Cancelled != nil {
		d.Cancelled(sel)
	}
}

// selectorState tracks the gesture lifecycle.
type selectorState uint8

const (
	stateIdle      selectorState = iota // no overlay, waiting for a press
	stateExpanding                      // overlay inserted, grow-in running
	stateTracking                       // pointer moves drive the focus pass
	stateResolving                      // close pass running, outcome pending
)

// Selector is a press-and-hold reaction picker. It occupies a trigger
// rectangle on an attached Surface; holding a pointer on the trigger opens
// a strip of options above it, dragging magnifies the option under the
// pointer, and releasing reports the selected index (or a cancellation)
// through the Delegate.
//
// A Selector does nothing until it is attached, and everything it shows is
// torn down when the gesture resolves. All methods must be called from the
// game loop; the Selector is single-threaded like the rest of the package.
type Selector struct {
	cfg     Config
	frame   Rect
	options []Option

	delegate Delegate // non-owning; nil degrades both callbacks to no-ops
	images   ImageSource

	surface *Surface
	trigger *Element
	rec     pressRecognizer
	anim    Animator

	state    selectorState
	active   bool
	selected int // -1 while nothing is selected
	origin   Vec2

	// Per-gesture session. The dataset is snapshotted when the strip opens
	// so mid-gesture SetOptions calls cannot orphan the selection.
	session   []Option
	scrim     *Element
	strip     *Element
	icons     []*Element
	stripRect Rect   // surface coordinates
	frames    []Rect // reused layout buffer
}

// NewSelector creates a picker whose trigger occupies frame, in surface
// coordinates. Zero-valued Config fields fall back to their defaults.
func NewSelector(frame Rect, cfg Config) *Selector {
	s := &Selector{
		cfg:      cfg.withDefaults(),
		frame:    frame,
		selected: -1,
	}
	s.rec = pressRecognizer{
		minDuration: s.cfg.PressDuration.Seconds(),
		slop:        s.cfg.PressSlop,
		onPhase:     s.HandleGesture,
	}
	return s
}

// --- Wiring ---

// Attach inserts the picker's trigger element into the surface and arms the
// press recognizer. Panics if surface is nil or the selector is already
// attached.
func (s *Selector) Attach(surface *Surface) {
	if surface == nil {
		panic("blossom: cannot attach selector to a nil surface")
	}
	if s.surface != nil {
		panic("blossom: selector is already attached")
	}
	s.surface = surface

	t := NewGroup("picker-trigger")
	t.Interactable = true
	t.HitShape = HitRect{Width: s.frame.Width, Height: s.frame.Height}
	t.SetPosition(s.frame.X, s.frame.Y)
	t.OnPointerDown = func(ctx PointerContext) {
		// Capture so the drag keeps routing here after it leaves the
		// trigger bounds.
		surface.CapturePointer(ctx.PointerID, t)
		s.rec.press(ctx)
	}
	t.OnPointerMove = func(ctx PointerContext) {
		s.rec.move(ctx)
	}
	t.OnPointerUp = func(ctx PointerContext) {
		s.rec.release(ctx)
	}
	t.OnUpdate = func(dt float64) {
		s.rec.tick(dt)
		s.anim.Update(float32(dt))
	}
	s.trigger = t
	surface.Root().AddChild(t)
}

// Detach removes the trigger and any open overlay from the surface. An
// in-flight gesture is abandoned without a delegate callback; callbacks are
// reserved for gestures that resolve.
func (s *Selector) Detach() {
	if s.surface == nil {
		return
	}
	s.rec.cancel()
	s.anim.StopAll()
	if s.scrim != nil {
		s.scrim.Dispose()
	}
	s.scrim = nil
	s.strip = nil
	s.icons = s.icons[:0]
	s.session = s.session[:0]
	s.trigger.Dispose()
	s.trigger = nil
	s.surface = nil
	s.state = stateIdle
	s.active = false
	s.selected = -1
}

// --- Accessors ---

// SetOptions replaces the dataset. An open gesture keeps the snapshot it
// took when the strip opened; the new dataset applies from the next gesture.
func (s *Selector) SetOptions(options []Option) {
	s.options = options
}

// Options returns the current dataset. The returned slice MUST NOT be
// mutated by the caller.
func (s *Selector) Options() []Option {
	return s.options
}

// SetDelegate sets the outcome receiver. A nil delegate is allowed and
// turns both callbacks into no-ops.
func (s *Selector) SetDelegate(d Delegate) {
	s.delegate = d
}

// SetImageSource sets the resolver for Option image identifiers.
func (s *Selector) SetImageSource(src ImageSource) {
	s.images = src
}

// Config returns the picker's effective configuration.
func (s *Selector) Config() Config {
	return s.cfg
}

// Frame returns the trigger rectangle in surface coordinates.
func (s *Selector) Frame() Rect {
	return s.frame
}

// SetFrame moves the trigger rectangle. An open overlay keeps the anchor
// captured when its gesture began.
func (s *Selector) SetFrame(frame Rect) {
	s.frame = frame
	if s.trigger != nil {
		s.trigger.HitShape = HitRect{Width: frame.Width, Height: frame.Height}
		s.trigger.SetPosition(frame.X, frame.Y)
	}
}

// Trigger returns the trigger element while attached, or nil. Useful for
// parenting button visuals under the picker's hit area.
func (s *Selector) Trigger() *Element {
	return s.trigger
}

// IsActive reports whether an overlay is open (from gesture begin until
// the close pass resolves).
func (s *Selector) IsActive() bool {
	return s.active
}

// SelectedItem returns the currently focused option index, if any.
func (s *Selector) SelectedItem() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

// --- State machine ---

// HandleGesture drives the picker with a gesture phase at a surface
// coordinate. The attached press recognizer calls this; tests and custom
// recognizers may call it directly. Began opens the strip, Moved drives the
// focus pass, Ended starts the close pass. Every other phase is a no-op,
// as is a Began while a gesture is already open.
func (s *Selector) HandleGesture(phase GesturePhase, x, y float64) {
	if globalDebug {
		debugLogPhase(phase, x, y)
	}
	switch phase {
	case PhaseBegan:
		s.beginGesture()
	case PhaseMoved:
		s.trackGesture(x, y)
	case PhaseEnded:
		s.endGesture()
	}
}

// beginGesture snapshots the dataset, captures the anchor, and opens the
// overlay with the staggered grow-in.
func (s *Selector) beginGesture() {
	if s.state != stateIdle || s.surface == nil {
		return
	}
	s.selected = -1
	s.active = true
	s.state = stateExpanding
	s.session = append(s.session[:0], s.options...)
	s.origin = Vec2{X: s.frame.X, Y: s.frame.Y}
	s.buildOverlay()
}

// buildOverlay inserts the scrim, the strip, and one icon per option, and
// starts the grow-in transitions. The strip is a child of the scrim so one
// disposal removes the whole overlay.
func (s *Selector) buildOverlay() {
	n := len(s.session)
	sw, sh := s.surface.Size()

	scrim := NewPanel("picker-scrim", sw, sh, s.cfg.ScrimColor)
	scrim.Interactable = true
	scrim.HitShape = HitRect{Width: sw, Height: sh}
	scrim.Alpha = 0
	s.surface.Root().AddChild(scrim)
	s.scrim = scrim
	s.anim.Start(NewFadeTransition(scrim, 1, overlayFadeDuration, 0, ease.OutQuad))

	s.stripRect = stripFrame(s.origin, n, s.cfg)
	strip := NewPanel("picker-strip", s.stripRect.Width, s.stripRect.Height, s.cfg.StripColor)
	strip.CornerRadius = s.stripRect.Height / 2
	strip.SetPosition(s.stripRect.X, s.stripRect.Y)
	scrim.AddChild(strip)
	s.strip = strip

	s.frames = uniformFrames(s.frames[:0], n, s.cfg)
	s.icons = s.icons[:0]
	for i, opt := range s.session {
		icon := NewIcon(fmt.Sprintf("picker-option-%d", i), resolveImage(s.images, opt.Image))
		icon.Width = s.cfg.Size
		icon.Height = s.cfg.Size

		// Insert small and transparent at the slot center, then grow in.
		slot := s.frames[i]
		c := slot.Center()
		startEdge := slot.Width * optionStartScale
		icon.SetFrame(Rect{
			X:      c.X - startEdge/2,
			Y:      c.Y - startEdge/2,
			Width:  startEdge,
			Height: startEdge,
		})
		icon.Alpha = 0
		strip.AddChild(icon)
		s.icons = append(s.icons, icon)

		delay := float32(float64(i) * optionStagger)
		s.anim.Start(NewFrameTransition(icon, slot, optionGrowDuration, delay, ease.OutBack))
		s.anim.Start(NewFadeTransition(icon, 1, optionGrowDuration, delay, ease.OutQuad))
	}
}

// trackGesture maps the pointer position to a focused option. Inside the
// strip, a valid index becomes the focus; out-of-range indices keep the
// prior focus. Outside the strip, the focus clears and every option
// animates back to the uniform layout.
func (s *Selector) trackGesture(x, y float64) {
	if s.state != stateExpanding && s.state != stateTracking {
		return
	}
	s.state = stateTracking

	if !s.stripRect.Contains(x, y) {
		s.clearFocus()
		return
	}

	idx := nearestIndex(x-s.stripRect.X, len(s.session), s.stripRect.Width)
	if idx < 0 || idx >= len(s.session) {
		return
	}
	s.focusOption(idx)
}

// focusOption magnifies option i and shifts the rest into the focus
// layout. Re-focusing the already focused option skips the relayout, so a
// pointer resting on one option does not restart its transitions.
func (s *Selector) focusOption(i int) {
	if s.selected == i {
		return
	}
	s.selected = i
	s.frames = focusFrames(s.frames[:0], len(s.session), i, s.cfg)
	for k, icon := range s.icons {
		s.anim.Start(NewFrameTransition(icon, s.frames[k], focusShiftDuration, 0, ease.OutCubic))
	}
}

// clearFocus empties the selection and returns every option to the uniform
// layout. A no-op while nothing is focused, which keeps the grow-in
// transitions alive when the pointer starts outside the strip.
func (s *Selector) clearFocus() {
	if s.selected < 0 {
		return
	}
	s.selected = -1
	s.frames = uniformFrames(s.frames[:0], len(s.session), s.cfg)
	for k, icon := range s.icons {
		s.anim.Start(NewFrameTransition(icon, s.frames[k], focusShiftDuration, 0, ease.OutCubic))
	}
}

// endGesture starts the staggered close pass. The option at index n/2
// carries the completion that resolves the gesture; with an empty strip
// the gesture resolves immediately.
func (s *Selector) endGesture() {
	if s.state != stateExpanding && s.state != stateTracking {
		return
	}
	s.state = stateResolving

	n := len(s.icons)
	if n == 0 {
		s.finishGesture()
		return
	}

	mid := n / 2
	for i, icon := range s.icons {
		delay := float32(float64(i) * optionStagger)
		target := collapsedFrame(Vec2{X: icon.X, Y: icon.Y}, s.cfg)
		ft := NewFrameTransition(icon, target, optionGrowDuration, delay, ease.InCubic)
		if i == mid {
			ft.OnComplete = s.finishGesture
		}
		s.anim.Start(ft)
		s.anim.Start(NewFadeTransition(icon, optionClosedAlpha, optionGrowDuration, delay, ease.InQuad))
	}
}

// finishGesture collapses the strip, removes the overlay, marks the picker
// inactive, and reports the outcome. Runs exactly once per gesture: from
// the midpoint option's close transition, or directly when the strip is
// empty. The remaining close transitions die silently with the disposed
// overlay.
func (s *Selector) finishGesture() {
	if s.state != stateResolving {
		return
	}
	if s.strip != nil {
		s.strip.Alpha = 0
		s.strip.MarkDirty()
	}
	if s.scrim != nil {
		s.scrim.Dispose()
	}
	s.scrim = nil
	s.strip = nil
	s.icons = s.icons[:0]
	s.session = s.session[:0]

	idx := s.selected
	s.selected = -1
	s.active = false
	s.state = stateIdle

	if s.delegate == nil {
		return
	}
	if idx >= 0 {
		s.delegate.SelectedOption(s, idx)
	} else {
		s.delegate.CancelledAction(s)
	}
}
