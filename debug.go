package casement

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set GUI debug flag so that window
// operations (which go through their gui pointer only for state, not
// config) can check it cheaply. Only meaningful with a single GUI; several
// GUIs with differing debug modes reflect whichever called SetDebugMode
// last.
var globalDebug bool

// debugTraceEvent prints one line per public event-funnel entry. Every
// window-to-window and input-to-window delivery passes through exactly two
// entry points (WindowEvent, ScreenEvent), so this trace is a complete
// record of event flow.
func debugTraceEvent(entry string, target, sender *Window, ev Event, param int) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[casement] %s: %s(%d) sender=%s target=%s\n",
		entry, ev, param, debugWindowLabel(sender), debugWindowLabel(target))
}

// debugWindowLabel renders a window pointer for trace output.
func debugWindowLabel(w *Window) string {
	if w == nil {
		return "<nil>"
	}
	r := w.rect
	return fmt.Sprintf("%T(%d,%d %dx%d)@%p", w, r.X, r.Y, r.Width, r.Height, w)
}

// debugCheckDisposed panics when a disposed window is used in a tree
// operation. Only called when debug mode is on.
func debugCheckDisposed(w *Window, op string) {
	if w.disposed {
		panic(fmt.Sprintf("casement debug: %s on disposed window %p", op, w))
	}
}

// debugMaxTreeDepth is the depth past which a parent chain is almost
// certainly a construction bug.
const debugMaxTreeDepth = 16

func debugCheckTreeDepth(w *Window) {
	depth := 0
	for p := w; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[casement] warning: tree depth %d exceeds %d (window %p)\n",
			depth, debugMaxTreeDepth, w)
	}
}
