package screen

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawWrapsHorizontally(t *testing.T) {
	var fb Framebuffer

	collision := fb.Draw(60, 5, []byte{0xFF})
	assert.False(t, collision)

	for x := 0; x < Width; x++ {
		want := x >= 60 || x <= 3
		assert.Equal(t, want, fb.Get(x, 5))
	}
	for x := 0; x < Width; x++ {
		assert.False(t, fb.Get(x, 4))
		assert.False(t, fb.Get(x, 6))
	}
}

func TestDrawWrapsVertically(t *testing.T) {
	var fb Framebuffer

	fb.Draw(0, 30, []byte{0x80, 0x80, 0x80, 0x80})

	assert.True(t, fb.Get(0, 30))
	assert.True(t, fb.Get(0, 31))
	assert.True(t, fb.Get(0, 0))
	assert.True(t, fb.Get(0, 1))
	assert.False(t, fb.Get(0, 2))
}

func TestDrawBitOrder(t *testing.T) {
	var fb Framebuffer

	fb.Draw(10, 0, []byte{0xA1})

	want := []bool{true, false, true, false, false, false, false, true}
	for i, w := range want {
		assert.Equal(t, w, fb.Get(10+i, 0))
	}
}

func TestDrawTwiceRestores(t *testing.T) {
	var fb Framebuffer
	fb.Draw(2, 3, []byte{0x80})
	fb.Draw(3, 3, []byte{0x0F})
	before := fb.Snapshot()

	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
	assert.True(t, fb.Draw(2, 1, sprite), "first draw overlaps the pixel at (2, 3)")
	assert.True(t, fb.Draw(2, 1, sprite), "second draw erases its own pixels")

	assert.Equal(t, before, fb.Snapshot())
}

func TestDrawNoCollisionOnEmptySprite(t *testing.T) {
	var fb Framebuffer
	fb.Draw(0, 0, []byte{0xFF})

	assert.False(t, fb.Draw(0, 0, []byte{0x00}))
	assert.True(t, fb.Get(0, 0))
}

func TestClear(t *testing.T) {
	var fb Framebuffer
	fb.Draw(0, 0, []byte{0xFF, 0xFF})

	fb.Clear()

	assert.Equal(t, Frame{}, fb.Snapshot())
}

func TestFrameAt(t *testing.T) {
	var fb Framebuffer
	fb.Draw(63, 31, []byte{0x80})

	frame := fb.Snapshot()
	assert.True(t, frame.At(63, 31))
	assert.False(t, frame.At(0, 0))
}
