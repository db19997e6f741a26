//Package window shows the emulator in a pixelgl window and reads its keyboard
package window

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/screen"
)

const DefaultScale = 10

type Window struct {
	*pixelgl.Window
	KeyMap   [cpu.NumKeys]pixelgl.Button
	keysDown [cpu.NumKeys]bool
	scale    float64
	imd      *imdraw.IMDraw
}

//Run hands fn to pixelgl, which must own the main thread for as long as any
//window is open
func Run(fn func() error) error {
	var err error
	pixelgl.Run(func() {
		err = fn()
	})
	return err
}

//New opens a window scale times the size of the CHIP-8 screen. Must be called
//from inside Run.
func New(scale int, layout keypad.Layout) (*Window, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	keyMap, err := buttons(layout)
	if err != nil {
		return nil, err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Chyp8",
		Bounds: pixel.R(0, 0, float64(screen.Width*scale), float64(screen.Height*scale)),
		//the run loop paces itself, vsync would stall it on every frame
		VSync: false,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening window: %w", err)
	}

	return &Window{
		Window: win,
		KeyMap: keyMap,
		scale:  float64(scale),
		imd:    imdraw.New(nil),
	}, nil
}

//Draw paints every lit pixel as a scale x scale square
func (w *Window) Draw(frame screen.Frame) error {
	w.Clear(colornames.Black)
	w.imd.Clear()
	w.imd.Color = colornames.White

	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			if !frame.At(x, y) {
				continue
			}
			//pixel's origin is the bottom left corner
			top := float64(screen.Height-y) * w.scale
			left := float64(x) * w.scale
			w.imd.Push(pixel.V(left, top-w.scale), pixel.V(left+w.scale, top))
			w.imd.Rectangle(0)
		}
	}

	w.imd.Draw(w)
	w.Update()
	return nil
}

//Poll reports the keys that changed since the last call
func (w *Window) Poll() []cpu.KeyEvent {
	w.UpdateInput()

	var events []cpu.KeyEvent
	for key, b := range w.KeyMap {
		down := w.Pressed(b)
		if down == w.keysDown[key] {
			continue
		}
		w.keysDown[key] = down
		events = append(events, cpu.KeyEvent{Key: uint8(key), Down: down})
	}
	return events
}

//Quit is true once the window is closed or escape is pressed
func (w *Window) Quit() bool {
	return w.Closed() || w.Pressed(pixelgl.KeyEscape)
}
