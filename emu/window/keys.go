package window

import (
	"fmt"

	"github.com/faiface/pixel/pixelgl"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
)

//button maps a layout character to its pixelgl key. Only letters and digits
//can be bound.
func button(r rune) (pixelgl.Button, bool) {
	switch {
	case r >= '0' && r <= '9':
		return pixelgl.Key0 + pixelgl.Button(r-'0'), true
	case r >= 'a' && r <= 'z':
		return pixelgl.KeyA + pixelgl.Button(r-'a'), true
	}
	return pixelgl.KeyUnknown, false
}

func buttons(layout keypad.Layout) ([cpu.NumKeys]pixelgl.Button, error) {
	var keyMap [cpu.NumKeys]pixelgl.Button

	for key, r := range layout {
		b, ok := button(r)
		if !ok {
			return keyMap, fmt.Errorf("key %X: %q can't be bound in a window", key, r)
		}
		keyMap[key] = b
	}
	return keyMap, nil
}
