//Package terminal runs the emulator inside a text terminal using termbox
package terminal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nsf/termbox-go"
	"golang.org/x/term"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/screen"
)

//terminals only report key presses, so a key counts as held for this long
const keyRepeatDuration = time.Second / 5

var ErrNotTerminal = errors.New("stdout is not a terminal")

type Terminal struct {
	keys      *keyTracker
	poll      func() termbox.Event
	interrupt func()
	events    chan termbox.Event
	done      chan struct{}
	stopped   chan struct{}
	quit      bool
}

//Open takes over the terminal. Close must be called to give it back.
func Open(layout keypad.Layout) (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	return newTerminal(layout, termbox.PollEvent, termbox.Interrupt), nil
}

func newTerminal(layout keypad.Layout, poll func() termbox.Event, interrupt func()) *Terminal {
	t := &Terminal{
		keys:      newKeyTracker(layout, keyRepeatDuration, time.Now),
		poll:      poll,
		interrupt: interrupt,
		events:    make(chan termbox.Event, 64),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go t.pollEvents()
	return t
}

//pollEvents feeds the blocking termbox poll into a channel the run loop can
//drain without waiting. It only returns on an interrupt, so stop always has
//a receiver for it.
func (t *Terminal) pollEvents() {
	defer close(t.stopped)
	for {
		ev := t.poll()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
		}
	}
}

//stop ends the poller and waits for it
func (t *Terminal) stop() {
	close(t.done)
	t.interrupt()
	<-t.stopped
}

func (t *Terminal) Close() {
	t.stop()
	termbox.Close()
}

//Draw paints each lit pixel as two cells so the screen keeps its aspect ratio
func (t *Terminal) Draw(frame screen.Frame) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			if frame.At(x, y) {
				termbox.SetCell(2*x, y, ' ', termbox.ColorDefault, termbox.ColorWhite)
				termbox.SetCell(2*x+1, y, ' ', termbox.ColorDefault, termbox.ColorWhite)
			}
		}
	}
	return termbox.Flush()
}

func (t *Terminal) Poll() []cpu.KeyEvent {
	var events []cpu.KeyEvent

	for {
		select {
		case ev := <-t.events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
				t.quit = true
				continue
			}
			if e, ok := t.keys.press(ev.Ch); ok {
				events = append(events, e)
			}
		default:
			return append(events, t.keys.expire()...)
		}
	}
}

func (t *Terminal) Quit() bool {
	return t.quit
}
