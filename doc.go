// Package casement is a retained-mode windowing core for embedded
// on-screen displays: small devices with a framebuffer, a rotary encoder,
// and a push button, and no windowing OS underneath.
//
// Casement provides the window tree, invalidation-based redraw, focus and
// input-capture management, and event dispatch that an on-device GUI
// needs. Concrete screens, fonts, icons, and rich draw primitives are the
// caller's business, reached through narrow collaborator interfaces
// ([Display], [Sounder], [MotionNotifier]).
//
// # Quick start
//
// Create a [GUI], open a screen, and drive it from a loop. On the desktop,
// [Run] provides the loop and maps mouse and keyboard input onto the
// device's encoder and knob:
//
//	display := casement.NewEbitenDisplay(nil)
//	g := casement.New(casement.Config{Display: display})
//
//	root := casement.NewFrame(g, nil, casement.Rect{Width: 320, Height: 240})
//	// ... add windows under root ...
//	g.Screens().Open(root)
//
//	casement.Run(g, casement.RunConfig{Title: "Panel", Width: 320, Height: 240})
//
// On a device, implement [Display] over the framebuffer driver and call
// [GUI.Update], [GUI.Draw], [GUI.EncoderEvent], and [GUI.KnobEvent] from
// the one task that owns the GUI.
//
// # Window tree
//
// Every element is a [Window]. Container windows (made with [NewFrame],
// [NewDialog], [NewStrongDialog], [NewPopup]) own a forward-linked list of
// children; a child registers into its parent at construction and whoever
// constructed it disposes it. Windows start invalid and visible; [Window.Show],
// [Window.Hide], [Window.Invalidate], and [Window.Validate] drive the
// dirty-rect redraw cycle.
//
// Focus is a single GUI-wide pointer moved by [Window.SetFocus]. Input
// capture is never stored: [GUI.CapturedWindow] derives it from the active
// screen's visibility each time input arrives.
//
// # Single-threaded contract
//
// Everything runs on one goroutine: tree mutation, event dispatch, and
// drawing. Event delivery is synchronous and funnels through exactly two
// entry points, [Window.WindowEvent] and [Window.ScreenEvent], which trace
// every delivery in debug mode.
//
// # Extras
//
// [Window.SlideTo] tweens a window between positions (via [gween]).
// [LoadTheme] reads named color schemes from YAML and [GUI.WatchTheme]
// hot-reloads them during development. [LoadScript] replays JSON-scripted
// encoder and knob input for automated interaction tests.
//
// [gween]: https://github.com/tanema/gween
package casement
