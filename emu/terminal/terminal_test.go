package terminal

import (
	"testing"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrogolib/assert"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
)

//fakeEvents hands out its events in order, repeating the last one until
//interrupted. interrupt blocks until a poll receives it, like
//termbox.Interrupt does.
type fakeEvents struct {
	interrupts chan struct{}
	events     []termbox.Event
	next       int
}

func newFakeEvents(events ...termbox.Event) *fakeEvents {
	return &fakeEvents{
		interrupts: make(chan struct{}),
		events:     events,
	}
}

func (f *fakeEvents) poll() termbox.Event {
	select {
	case <-f.interrupts:
		return termbox.Event{Type: termbox.EventInterrupt}
	default:
	}
	ev := f.events[f.next]
	if f.next < len(f.events)-1 {
		f.next++
	}
	return ev
}

func (f *fakeEvents) interrupt() {
	f.interrupts <- struct{}{}
}

func stopWithin(t *testing.T, term *Terminal, d time.Duration) {
	t.Helper()
	stopped := make(chan struct{})
	go func() {
		term.stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(d):
		t.Fatal("poller did not stop")
	}
}

func TestStopWithFullEventBuffer(t *testing.T) {
	f := newFakeEvents(termbox.Event{Type: termbox.EventKey, Ch: 'w'})
	term := newTerminal(keypad.Default(), f.poll, f.interrupt)

	for len(term.events) < cap(term.events) {
		time.Sleep(time.Millisecond)
	}
	stopWithin(t, term, time.Second)
}

func TestPollAppliesPressesAndQuit(t *testing.T) {
	f := newFakeEvents(
		termbox.Event{Type: termbox.EventKey, Ch: 'w'},
		termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc},
	)
	term := newTerminal(keypad.Default(), f.poll, f.interrupt)
	defer stopWithin(t, term, time.Second)

	var events []cpu.KeyEvent
	for !term.Quit() || len(events) == 0 {
		events = append(events, term.Poll()...)
	}
	assert.True(t, term.Quit())
	assert.Equal(t, cpu.KeyEvent{Key: 0x5, Down: true}, events[0])
}
