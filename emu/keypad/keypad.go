//Package keypad maps host keys to the 16 key hex keypad
package keypad

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

//DefaultLayout puts the keypad on the left of a QWERTY keyboard
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
const DefaultLayout = "x123qweasdzc4rfv"

//Layout holds the host key for each keypad key 0x0-0xF
type Layout [16]rune

//Parse reads a layout from 16 distinct characters, the first being the host
//key for 0x0
func Parse(s string) (Layout, error) {
	var l Layout

	if n := utf8.RuneCountInString(s); n != len(l) {
		return l, fmt.Errorf("layout %q has %d keys, want %d", s, n, len(l))
	}

	seen := make(map[rune]bool)
	i := 0
	for _, r := range s {
		r = unicode.ToLower(r)
		if seen[r] {
			return l, fmt.Errorf("layout %q binds %q twice", s, r)
		}
		seen[r] = true
		l[i] = r
		i++
	}
	return l, nil
}

//Default returns the parsed DefaultLayout
func Default() Layout {
	l, _ := Parse(DefaultLayout)
	return l
}

//Key returns the keypad key bound to r
func (l Layout) Key(r rune) (uint8, bool) {
	r = unicode.ToLower(r)
	for i, b := range l {
		if b == r {
			return uint8(i), true
		}
	}
	return 0, false
}
