package blossom

import (
	"fmt"
	"os"
)

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used in a tree operation. Only called when the surface is in
// debug mode. In release mode callers skip this entirely.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("blossom debug: %s on disposed element %q (ID was %d)", op, e.Name, e.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[blossom] warning: tree depth %d exceeds %d (element %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}

// debugCheckChildCount warns on stderr if an element has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if len(e.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[blossom] warning: element %q has %d children (threshold %d)\n",
			e.Name, len(e.children), debugMaxChildCount)
	}
}

// debugLogPhase traces gesture phases to stderr. Only called in debug mode.
func debugLogPhase(phase GesturePhase, x, y float64) {
	_, _ = fmt.Fprintf(os.Stderr, "[blossom] gesture %s at (%.1f, %.1f)\n", phase, x, y)
}
