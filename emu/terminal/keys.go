package terminal

import (
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
)

//keyTracker turns a stream of key presses into press and release events. A
//press holds the key until hold has passed without another press of it.
type keyTracker struct {
	layout  keypad.Layout
	hold    time.Duration
	now     func() time.Time
	release [cpu.NumKeys]time.Time // zero when the key is up
}

func newKeyTracker(layout keypad.Layout, hold time.Duration, now func() time.Time) *keyTracker {
	return &keyTracker{
		layout: layout,
		hold:   hold,
		now:    now,
	}
}

//press returns a key down event unless the key is already held
func (k *keyTracker) press(r rune) (cpu.KeyEvent, bool) {
	key, ok := k.layout.Key(r)
	if !ok {
		return cpu.KeyEvent{}, false
	}

	held := !k.release[key].IsZero()
	k.release[key] = k.now().Add(k.hold)
	if held {
		return cpu.KeyEvent{}, false
	}
	return cpu.KeyEvent{Key: key, Down: true}, true
}

//expire releases every key whose hold time ran out
func (k *keyTracker) expire() []cpu.KeyEvent {
	var events []cpu.KeyEvent

	now := k.now()
	for key, at := range k.release {
		if at.IsZero() || now.Before(at) {
			continue
		}
		k.release[key] = time.Time{}
		events = append(events, cpu.KeyEvent{Key: uint8(key), Down: false})
	}
	return events
}
