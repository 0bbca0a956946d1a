package casement

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenDisplay implements Display on top of an *ebiten.Image. During Run
// the target is swapped to the real screen every frame; standalone use can
// point it at any offscreen image.
type EbitenDisplay struct {
	target *ebiten.Image
}

// NewEbitenDisplay creates a display. A nil target is fine until the first
// FillRect; Run sets it each frame.
func NewEbitenDisplay(target *ebiten.Image) *EbitenDisplay {
	return &EbitenDisplay{target: target}
}

// SetTarget redirects subsequent fills to img.
func (d *EbitenDisplay) SetTarget(img *ebiten.Image) { d.target = img }

// FillRect fills r with a solid color.
func (d *EbitenDisplay) FillRect(r Rect, c Color) {
	if d.target == nil || r.IsEmpty() {
		return
	}
	sub := d.target.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
	sub.Fill(c.toRGBA())
}

// RunConfig configures the Run game loop.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// HoldTicks is how many ticks the knob must stay pressed before the
	// gesture becomes a hold. Zero means 60 (one second at the default TPS).
	HoldTicks int
}

const defaultHoldTicks = 60

// game adapts a GUI to ebiten.Game, sampling the desktop stand-ins for the
// device's physical input: mouse wheel or arrow keys turn the encoder,
// Enter or the left mouse button is the knob.
type game struct {
	gui     *GUI
	display *EbitenDisplay
	cfg     RunConfig

	pressTicks int
	held       bool
}

func (gm *game) Update() error {
	g := gm.gui

	// Encoder: wheel steps plus arrow keys.
	_, wheelY := ebiten.Wheel()
	diff := int(wheelY)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		diff++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		diff--
	}
	g.EncoderEvent(diff)

	// Knob: pressed / held / released state machine.
	pressed := ebiten.IsKeyPressed(ebiten.KeyEnter) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	holdTicks := gm.cfg.HoldTicks
	if holdTicks <= 0 {
		holdTicks = defaultHoldTicks
	}
	switch {
	case pressed && gm.pressTicks == 0:
		gm.pressTicks = 1
		g.KnobEvent(BtnPressed)
	case pressed:
		gm.pressTicks++
		if !gm.held && gm.pressTicks >= holdTicks {
			gm.held = true
			g.KnobEvent(BtnHeld)
		}
	case gm.pressTicks > 0:
		gm.pressTicks = 0
		gm.held = false
		g.KnobEvent(BtnReleased)
	}

	g.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (gm *game) Draw(screen *ebiten.Image) {
	gm.display.SetTarget(screen)
	gm.gui.Draw()
}

func (gm *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gm.cfg.Width, gm.cfg.Height
}

// Run opens a desktop window and drives the GUI loop until the window is
// closed. The GUI must have been created with an *EbitenDisplay. Screen
// clearing is disabled so invalidation alone decides what repaints,
// matching the device framebuffer model.
func Run(g *GUI, cfg RunConfig) error {
	display, ok := g.display.(*EbitenDisplay)
	if !ok {
		return fmt.Errorf("casement: Run requires a GUI configured with an *EbitenDisplay")
	}
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 240
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*2, cfg.Height*2)
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(&game{gui: g, display: display, cfg: cfg})
}
