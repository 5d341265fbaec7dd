// Package graphics renders the emulator's 256x240 frame buffer to a window.
// Windowing and input polling are a host-layer concern outside the core
// emulation packages, so this package exposes exactly one sink: a window
// that accepts a completed frame and reports raw key transitions back.
package graphics

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a keyboard key the display reports transitions for. Only the keys
// the emulator's default controller mapping and quit handling need are
// named; anything else on the keyboard is ignored.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyJ
	KeyK
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
)

// KeyEvent is a single key press or release, reported once per transition
// (not once per frame held).
type KeyEvent struct {
	Key     Key
	Pressed bool
}

var trackedKeys = map[ebiten.Key]Key{
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyW:          KeyW,
	ebiten.KeyA:          KeyA,
	ebiten.KeyS:          KeyS,
	ebiten.KeyD:          KeyD,
	ebiten.KeyJ:          KeyJ,
	ebiten.KeyK:          KeyK,
	ebiten.Key1:          Key1,
	ebiten.Key2:          Key2,
	ebiten.Key3:          Key3,
	ebiten.Key4:          Key4,
	ebiten.Key5:          Key5,
	ebiten.Key6:          Key6,
	ebiten.Key7:          Key7,
	ebiten.Key8:          Key8,
}

// Display is an ebitengine-backed window that shows the emulator's frame
// buffer and reports key transitions. It implements ebiten.Game directly;
// there is no backend abstraction to swap out since windowing is a single
// fixed concern here, not a pluggable one.
type Display struct {
	title  string
	width  int
	height int
	vsync  bool

	frame      [256 * 240]uint32
	frameImage *ebiten.Image
	pixels     []byte // reused RGBA scratch buffer, avoids a per-frame allocation

	update func() error
	events []KeyEvent
	closed bool
}

// NewDisplay creates a window sized width x height that will show the NES's
// fixed 256x240 output scaled and letterboxed to fit.
func NewDisplay(title string, width, height int, vsync bool) *Display {
	d := &Display{
		title:      title,
		width:      width,
		height:     height,
		vsync:      vsync,
		frameImage: ebiten.NewImage(256, 240),
		pixels:     make([]byte, 256*240*4),
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(vsync)
	return d
}

// SetTitle updates the window's title bar text.
func (d *Display) SetTitle(title string) {
	d.title = title
	ebiten.SetWindowTitle(title)
}

// RenderFrame copies a completed frame buffer in for the next Draw call.
func (d *Display) RenderFrame(frame [256 * 240]uint32) {
	d.frame = frame
	for i, pixel := range frame {
		o := i * 4
		d.pixels[o] = byte(pixel >> 16)
		d.pixels[o+1] = byte(pixel >> 8)
		d.pixels[o+2] = byte(pixel)
		d.pixels[o+3] = 0xFF
	}
	d.frameImage.WritePixels(d.pixels)
}

// PollKeys drains and returns key transitions accumulated since the last
// call.
func (d *Display) PollKeys() []KeyEvent {
	events := d.events
	d.events = nil
	return events
}

// ShouldClose reports whether Close has been called.
func (d *Display) ShouldClose() bool { return d.closed }

// Close marks the window closed; the ebiten game loop exits on its next
// Update.
func (d *Display) Close() { d.closed = true }

// Run starts the ebitengine game loop, calling onFrame once per tick before
// drawing. It blocks until the window closes.
func (d *Display) Run(onFrame func() error) error {
	d.update = onFrame
	return ebiten.RunGame(d)
}

// Update implements ebiten.Game: poll keys, then step the emulator.
func (d *Display) Update() error {
	if d.closed {
		return ebiten.Termination
	}
	for ebitenKey, key := range trackedKeys {
		if inpututil.IsKeyJustPressed(ebitenKey) {
			d.events = append(d.events, KeyEvent{Key: key, Pressed: true})
		} else if inpututil.IsKeyJustReleased(ebitenKey) {
			d.events = append(d.events, KeyEvent{Key: key, Pressed: false})
		}
	}
	if d.update == nil {
		return nil
	}
	if err := d.update(); err != nil {
		log.Printf("frame update error: %v", err)
	}
	return nil
}

// Draw implements ebiten.Game: scale-to-fit and letterbox the 256x240
// frame into the current window size.
func (d *Display) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{A: 255})

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	scaleX := float64(w) / 256
	scaleY := float64(h) / 240
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	offsetX := (float64(w) - 256*scale) / 2
	offsetY := (float64(h) - 240*scale) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(d.frameImage, op)
}

// Layout implements ebiten.Game: report the current window size unchanged,
// scaling is handled in Draw.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.width, d.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// FrameToRGBA converts a packed 0x00RRGGBB frame buffer into an RGBA byte
// slice in row-major order, the same layout ebitengine's WritePixels wants.
// Exported for tests and for any caller (PPM dump, screenshot) that needs
// the conversion without going through a live Display.
func FrameToRGBA(frame [256 * 240]uint32) []byte {
	out := make([]byte, 256*240*4)
	for i, pixel := range frame {
		o := i * 4
		out[o] = byte(pixel >> 16)
		out[o+1] = byte(pixel >> 8)
		out[o+2] = byte(pixel)
		out[o+3] = 0xFF
	}
	return out
}
