// Package preview renders the state of a sparkle.Group as a one-pixel-tall
// image and pushes it to a periph display.Drawer. The default sink is the
// ANSI terminal screen device, which makes headless runs and simulators
// visible without hardware.
package preview

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	sparkle "github.com/coreman2200/funtimes-sparkle"
)

// palette maps a sparkle color to the pixel shown while the LED is lit.
// Unlit LEDs render black.
var palette = map[sparkle.Color]color.NRGBA{
	sparkle.Any:         {R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF},
	sparkle.Infrared:    {R: 0x40, A: 0xFF},
	sparkle.Red:         {R: 0xFF, A: 0xFF},
	sparkle.Orange:      {R: 0xFF, G: 0x80, A: 0xFF},
	sparkle.Yellow:      {R: 0xFF, G: 0xFF, A: 0xFF},
	sparkle.Green:       {G: 0xFF, A: 0xFF},
	sparkle.Aqua:        {G: 0xFF, B: 0xFF, A: 0xFF},
	sparkle.Blue:        {B: 0xFF, A: 0xFF},
	sparkle.Purple:      {R: 0x80, B: 0xFF, A: 0xFF},
	sparkle.Ultraviolet: {R: 0x40, B: 0x80, A: 0xFF},
	sparkle.White:       {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// Frame draws group snapshots onto a display.Drawer.
type Frame struct {
	d display.Drawer
}

// New wraps an existing drawer.
func New(d display.Drawer) *Frame {
	return &Frame{d: d}
}

// Terminal returns a Frame backed by the console screen device.
func Terminal(n int) *Frame {
	return New(screen.New(n))
}

// Image renders the group as a 1xN image, one pixel per member in group
// order.
func Image(g *sparkle.Group) *image.NRGBA {
	lights := g.Lights()
	im := image.NewNRGBA(image.Rect(0, 0, len(lights), 1))
	for x, l := range lights {
		px := color.NRGBA{A: 0xFF}
		if l.IsOn() {
			px = palette[l.Color()]
		}
		im.SetNRGBA(x, 0, px)
	}
	return im
}

// Draw pushes the group's current state to the drawer.
func (f *Frame) Draw(g *sparkle.Group) error {
	return f.d.Draw(f.d.Bounds(), Image(g), image.Point{})
}

// Halt releases the underlying drawer.
func (f *Frame) Halt() error {
	return f.d.Halt()
}

// Recorder is a display.Drawer that keeps every frame it is handed, for
// headless tests.
type Recorder struct {
	W      int
	Frames []*image.NRGBA
}

func (r *Recorder) String() string { return "preview.Recorder" }

func (r *Recorder) Halt() error { return nil }

func (r *Recorder) ColorModel() color.Model { return color.NRGBAModel }

func (r *Recorder) Bounds() image.Rectangle { return image.Rect(0, 0, r.W, 1) }

func (r *Recorder) Draw(bounds image.Rectangle, src image.Image, sp image.Point) error {
	im := image.NewNRGBA(bounds)
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			im.Set(x, y, src.At(sp.X+x-bounds.Min.X, sp.Y+y-bounds.Min.Y))
		}
	}
	r.Frames = append(r.Frames, im)
	return nil
}
