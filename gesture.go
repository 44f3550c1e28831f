package blossom

// pressRecognizer turns raw pointer events on a trigger element into press
// gesture phases. The pointer must stay within slop pixels of its starting
// point for minDuration seconds before the gesture begins; early release or
// excessive movement abandons the press with PhaseFailed. Once begun, every
// position change reports PhaseMoved and the release reports PhaseEnded.
// One pointer is tracked at a time; presses from other pointers are ignored
// until it resolves.
type pressRecognizer struct {
	minDuration float64
	slop        float64

	onPhase func(phase GesturePhase, x, y float64)

	waiting   bool // pointer down, hold threshold not yet reached
	began     bool // threshold reached, gesture live
	pointerID int
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	held      float64
}

// press starts tracking a pointer. Ignored while another press is in flight.
func (r *pressRecognizer) press(ctx PointerContext) {
	if r.waiting || r.began {
		return
	}
	r.waiting = true
	r.pointerID = ctx.PointerID
	r.startX = ctx.GlobalX
	r.startY = ctx.GlobalY
	r.lastX = ctx.GlobalX
	r.lastY = ctx.GlobalY
	r.held = 0
}

// move updates the tracked pointer. Before the threshold, movement beyond
// slop abandons the press; after it, the move is reported.
func (r *pressRecognizer) move(ctx PointerContext) {
	if !r.waiting && !r.began {
		return
	}
	if ctx.PointerID != r.pointerID {
		return
	}
	r.lastX = ctx.GlobalX
	r.lastY = ctx.GlobalY

	if r.began {
		r.emit(PhaseMoved, ctx.GlobalX, ctx.GlobalY)
		return
	}

	dx := ctx.GlobalX - r.startX
	dy := ctx.GlobalY - r.startY
	if dx*dx+dy*dy > r.slop*r.slop {
		r.waiting = false
		r.emit(PhaseFailed, ctx.GlobalX, ctx.GlobalY)
	}
}

// release resolves the tracked pointer: PhaseEnded for a live gesture,
// PhaseFailed for a press that never crossed the threshold.
func (r *pressRecognizer) release(ctx PointerContext) {
	if !r.waiting && !r.began {
		return
	}
	if ctx.PointerID != r.pointerID {
		return
	}
	if r.began {
		r.began = false
		r.emit(PhaseEnded, ctx.GlobalX, ctx.GlobalY)
		return
	}
	r.waiting = false
	r.emit(PhaseFailed, ctx.GlobalX, ctx.GlobalY)
}

// tick advances the hold timer by dt seconds and fires PhaseBegan when the
// threshold is crossed. Driven from the trigger's update hook.
func (r *pressRecognizer) tick(dt float64) {
	if !r.waiting {
		return
	}
	r.held += dt
	if r.held >= r.minDuration {
		r.waiting = false
		r.began = true
		r.emit(PhaseBegan, r.lastX, r.lastY)
	}
}

// cancel aborts any in-flight press or live gesture, reporting
// PhaseCancelled if the gesture had begun. Used when the owning control
// detaches mid-press.
func (r *pressRecognizer) cancel() {
	if r.began {
		r.began = false
		r.emit(PhaseCancelled, r.lastX, r.lastY)
		return
	}
	r.waiting = false
}

// active reports whether a press or live gesture is in flight.
func (r *pressRecognizer) active() bool {
	return r.waiting || r.began
}

func (r *pressRecognizer) emit(phase GesturePhase, x, y float64) {
	if r.onPhase != nil {
		r.onPhase(phase, x, y)
	}
}
