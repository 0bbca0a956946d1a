package casement

// WindowType tags a window's role in the screen. The type is fixed at
// construction and never changes.
type WindowType uint8

const (
	WindowNormal       WindowType = iota // ordinary widget or frame
	WindowDialog                         // modal dialog, closeable
	WindowStrongDialog                   // modal dialog that outlives serial/timeout sweeps
	WindowPopup                          // transient overlay; hides windows without claiming capture
)

// windowFlags is the per-window state record. The original packed bitfield
// is spelled out as named booleans; behavior is unchanged.
type windowFlags struct {
	visible            bool // user-controlled visibility
	hiddenBehindDialog bool // temporarily occluded by a modal overlay
	enabled            bool // eligible for focus and interaction
	invalid            bool // needs redraw
	hasTimer           bool // a GUI timer is attached to this window
	timeoutClose       bool // screen is closed by the inactivity sweep
	serialClose        bool // screen is closed when a serial print starts
	enforceCapture     bool // capturable even while not visible
	shadow             bool // drawn with the disabled look
	schemeBackground   bool // background resolves through the shared scheme
	closeOnClick       bool // a click closes the active screen
	relativeSubwins    bool // children use this window's origin as their frame
}
