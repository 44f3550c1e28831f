package blossom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionKind identifies which element fields a Transition writes.
// The Animator keeps at most one active transition per (element, kind) pair.
type TransitionKind uint8

const (
	TransitionFrame TransitionKind = iota // X, Y, ScaleX, ScaleY toward a target frame
	TransitionFade                        // Alpha toward a target value
)

// Transition animates up to 6 float64 fields on an Element over a fixed
// duration, after an optional start delay. Create one via NewFrameTransition
// or NewFadeTransition and hand it to an Animator, or call Update(dt)
// yourself each frame. Values are applied directly and the element is
// marked dirty. If the target element is disposed, the transition stops
// immediately and the completion callback is never invoked.
type Transition struct {
	tweens [6]*gween.Tween
	count  int
	fields [6]*float64
	target *Element
	kind   TransitionKind
	delay  float32
	Done   bool

	// OnComplete fires exactly once, when every tween has finished. It does
	// not fire for transitions that are superseded, stopped, or whose target
	// is disposed mid-flight.
	OnComplete func()
}

// Target returns the element this transition writes to.
func (t *Transition) Target() *Element {
	return t.target
}

// Kind returns the transition's field group.
func (t *Transition) Kind() TransitionKind {
	return t.kind
}

// Delay returns the remaining start delay in seconds.
func (t *Transition) Delay() float32 {
	return t.delay
}

// Update advances the transition by dt seconds. Time consumed by the start
// delay carries over into the tweens within the same frame, so a stagger of
// delays stays frame-rate independent. When the last tween finishes,
// OnComplete (if set) fires once.
func (t *Transition) Update(dt float32) {
	if t.Done {
		return
	}

	if t.target != nil && t.target.IsDisposed() {
		t.Done = true
		return
	}

	if t.delay > 0 {
		t.delay -= dt
		if t.delay > 0 {
			return
		}
		dt = -t.delay
		t.delay = 0
	}

	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	if t.target != nil {
		t.target.MarkDirty()
	}

	if allDone {
		t.Done = true
		if fn := t.OnComplete; fn != nil {
			t.OnComplete = nil
			fn()
		}
	}
}

// NewFrameTransition creates a Transition that moves and scales element so
// its content box covers the frame rectangle (in the parent's coordinate
// space) after duration seconds, starting after delay seconds. The element
// is given a centered pivot, matching SetFrame.
func NewFrameTransition(element *Element, frame Rect, duration, delay float32, fn ease.TweenFunc) *Transition {
	element.PivotX = element.Width / 2
	element.PivotY = element.Height / 2

	toScaleX := element.ScaleX
	if element.Width > 0 {
		toScaleX = frame.Width / element.Width
	}
	toScaleY := element.ScaleY
	if element.Height > 0 {
		toScaleY = frame.Height / element.Height
	}
	center := frame.Center()

	t := &Transition{count: 4, target: element, kind: TransitionFrame, delay: delay}
	t.tweens[0] = gween.New(float32(element.X), float32(center.X), duration, fn)
	t.tweens[1] = gween.New(float32(element.Y), float32(center.Y), duration, fn)
	t.tweens[2] = gween.New(float32(element.ScaleX), float32(toScaleX), duration, fn)
	t.tweens[3] = gween.New(float32(element.ScaleY), float32(toScaleY), duration, fn)
	t.fields[0] = &element.X
	t.fields[1] = &element.Y
	t.fields[2] = &element.ScaleX
	t.fields[3] = &element.ScaleY
	return t
}

// NewFadeTransition creates a Transition that animates element.Alpha to the
// target value after duration seconds, starting after delay seconds.
func NewFadeTransition(element *Element, to float64, duration, delay float32, fn ease.TweenFunc) *Transition {
	t := &Transition{count: 1, target: element, kind: TransitionFade, delay: delay}
	t.tweens[0] = gween.New(float32(element.Alpha), float32(to), duration, fn)
	t.fields[0] = &element.Alpha
	return t
}

// --- Animator ---

// Animator advances a set of transitions from the frame update. Starting a
// transition replaces any active one with the same (target, kind) pair; the
// replaced transition is dropped without firing its completion. Last write
// wins, nothing is queued.
//
// There is no global animator — owners call Update themselves.
type Animator struct {
	transitions []*Transition
}

// Start registers t, superseding any active transition with the same target
// and kind.
func (a *Animator) Start(t *Transition) {
	for i, other := range a.transitions {
		if other.target == t.target && other.kind == t.kind {
			a.transitions[i] = t
			return
		}
	}
	a.transitions = append(a.transitions, t)
}

// Update advances all active transitions by dt seconds and retires finished
// ones. Completion callbacks run during this call; transitions they start
// are advanced from the next update.
func (a *Animator) Update(dt float32) {
	active := len(a.transitions)
	for i := 0; i < active; i++ {
		a.transitions[i].Update(dt)
	}

	n := 0
	for _, t := range a.transitions {
		if !t.Done {
			a.transitions[n] = t
			n++
		}
	}
	for i := n; i < len(a.transitions); i++ {
		a.transitions[i] = nil
	}
	a.transitions = a.transitions[:n]
}

// StopAll drops every active transition without firing completions.
func (a *Animator) StopAll() {
	for i := range a.transitions {
		a.transitions[i] = nil
	}
	a.transitions = a.transitions[:0]
}

// Active returns the number of transitions still in flight.
func (a *Animator) Active() int {
	return len(a.transitions)
}
