package terminal

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
)

func TestKeyTracker(t *testing.T) {
	now := time.Unix(0, 0)
	k := newKeyTracker(keypad.Default(), keyRepeatDuration, func() time.Time { return now })

	e, ok := k.press('w')
	assert.True(t, ok)
	assert.Equal(t, cpu.KeyEvent{Key: 0x5, Down: true}, e)

	_, ok = k.press('p')
	assert.False(t, ok, "unbound key")

	now = now.Add(keyRepeatDuration / 2)
	_, ok = k.press('w')
	assert.False(t, ok, "repeat of a held key")
	assert.Equal(t, 0, len(k.expire()))

	// the repeat pushed the release out
	now = now.Add(keyRepeatDuration / 2)
	assert.Equal(t, 0, len(k.expire()))

	now = now.Add(keyRepeatDuration / 2)
	released := k.expire()
	assert.Equal(t, 1, len(released))
	assert.Equal(t, cpu.KeyEvent{Key: 0x5, Down: false}, released[0])
	assert.Equal(t, 0, len(k.expire()))

	_, ok = k.press('W')
	assert.True(t, ok, "released key can be pressed again")
}
