package blossom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the top-level object that owns the element tree, input state,
// and the synthetic input queue. The host application constructs one with
// its logical size and forwards Update and Draw from its game loop; nothing
// here reaches for ambient window state, so a Surface can be embedded in
// any ebiten.Game.
type Surface struct {
	root   *Element
	width  float64
	height float64
	debug  bool

	// ClearColor fills the screen at the start of Draw. Leave the zero
	// value to skip clearing, for hosts that draw beneath the overlay.
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written as PNG files.
	ScreenshotDir string

	updateFunc func(dt float64)

	// Input state
	captured     [maxPointers]*Element
	pointers     [maxPointers]pointerState
	hitBuf       []*Element
	updateBuf    []*Element
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	// Synthetic input (inject.go)
	injectQueue []syntheticPointerEvent

	// Scripted playback (script.go)
	script *Script

	// Screenshot queue (screenshot.go)
	screenshotQueue []string
}

// NewSurface creates a surface of the given logical size with a pre-created
// root group.
func NewSurface(width, height float64) *Surface {
	root := NewGroup("root")
	root.Interactable = true
	return &Surface{
		root:          root,
		width:         width,
		height:        height,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the surface's root group element.
func (s *Surface) Root() *Element {
	return s.root
}

// Size returns the surface's logical size.
func (s *Surface) Size() (width, height float64) {
	return s.width, s.height
}

// SetSize updates the surface's logical size. Hosts call this from their
// Layout when the window geometry changes.
func (s *Surface) SetSize(width, height float64) {
	s.width = width
	s.height = height
}

// SetUpdateFunc registers fn to run once per Update with the frame delta in
// seconds, after input processing and element updates.
func (s *Surface) SetUpdateFunc(fn func(dt float64)) {
	s.updateFunc = fn
}

// Update advances the surface by one frame: refreshes world transforms,
// steps the active script, processes input, runs element update hooks, and
// finally the surface update func.
func (s *Surface) Update() {
	dt := 1.0 / float64(ebiten.TPS())

	// Refresh world transforms first so hit testing sees accurate
	// positions this frame.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.script != nil {
		s.stepScript()
	}
	s.processInput()
	s.runElementUpdates(dt)

	if s.updateFunc != nil {
		s.updateFunc(dt)
	}
}

// runElementUpdates calls OnUpdate on every element that has one. The hook
// list is collected up front so hooks may freely add, remove, or dispose
// elements; hooks on elements disposed earlier in the same pass are
// skipped.
func (s *Surface) runElementUpdates(dt float64) {
	s.updateBuf = collectUpdatable(s.root, s.updateBuf[:0])
	for _, e := range s.updateBuf {
		if e.disposed || e.OnUpdate == nil {
			continue
		}
		e.OnUpdate(dt)
	}
}

// collectUpdatable appends every element in the subtree with an OnUpdate
// hook to buf, in tree order. Visibility does not gate update hooks.
func collectUpdatable(e *Element, buf []*Element) []*Element {
	if e.OnUpdate != nil {
		buf = append(buf, e)
	}
	for _, child := range e.children {
		buf = collectUpdatable(child, buf)
	}
	return buf
}

// Draw clears the screen (when ClearColor is set), renders the element tree
// in painter order, and flushes any queued screenshots.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	s.drawTree(screen)
	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// access panics and tree shape warnings are printed to stderr.
func (s *Surface) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Surface debug flag so that
// element operations (which lack a Surface pointer) can check it cheaply.
// Only valid with a single Surface; multiple Surfaces with differing debug
// modes will reflect whichever called SetDebugMode last.
var globalDebug bool
