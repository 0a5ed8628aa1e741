package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/kamrankamilli/vncview/pkg/input"
)

// specialKeys maps SDL keycodes for non-character keys to keysyms.
var specialKeys = map[sdl.Keycode]uint32{
	sdl.K_RETURN:    input.KeyReturn,
	sdl.K_TAB:       input.KeyTab,
	sdl.K_BACKSPACE: input.KeyBackspace,
	sdl.K_ESCAPE:    input.KeyEscape,
	sdl.K_LEFT:      input.KeyLeft,
	sdl.K_RIGHT:     input.KeyRight,
	sdl.K_UP:        input.KeyUp,
	sdl.K_DOWN:      input.KeyDown,
	sdl.K_DELETE:    input.KeyDelete,
	sdl.K_HOME:      input.KeyHome,
	sdl.K_END:       input.KeyEnd,
	sdl.K_PAGEUP:    input.KeyPageUp,
	sdl.K_PAGEDOWN:  input.KeyPageDown,
	sdl.K_INSERT:    input.KeyInsert,
	sdl.K_F1:        input.KeyF1,
	sdl.K_F2:        input.KeyF2,
	sdl.K_F3:        input.KeyF3,
	sdl.K_F4:        input.KeyF4,
	sdl.K_F5:        input.KeyF5,
	sdl.K_F6:        input.KeyF6,
	sdl.K_F7:        input.KeyF7,
	sdl.K_F8:        input.KeyF8,
	sdl.K_F9:        input.KeyF9,
	sdl.K_F10:       input.KeyF10,
	sdl.K_F11:       input.KeyF11,
	sdl.K_F12:       input.KeyF12,
	sdl.K_LSHIFT:    input.KeyShiftLeft,
	sdl.K_RSHIFT:    input.KeyShiftRight,
	sdl.K_LCTRL:     input.KeyControlLeft,
	sdl.K_RCTRL:     input.KeyControlRight,
	sdl.K_LALT:      input.KeyAltLeft,
	sdl.K_RALT:      input.KeyAltRight,
	sdl.K_LGUI:      input.KeySuperLeft,
	sdl.K_RGUI:      input.KeySuperRight,
}

// shiftedPunct resolves shifted punctuation and digits assuming a US layout,
// the same assumption SDL's keycodes themselves encode.
var shiftedPunct = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
	';': ':', '\'': '"', ',': '<', '.': '>', '/': '?',
	'`': '~',
}

// keysymFor maps an SDL key to a keysym, or 0 when the key has no mapping.
// SDL keycodes carry the unshifted symbol; the shifted symbol is resolved
// here so the wire sees the character the user actually typed.
func keysymFor(k sdl.Keysym) uint32 {
	if ks, ok := specialKeys[k.Sym]; ok {
		return ks
	}
	if k.Sym < 0x20 || k.Sym >= 0x80 {
		return 0
	}
	r := rune(k.Sym)
	if k.Mod&sdl.KMOD_SHIFT != 0 {
		r = shiftRune(r)
	}
	return input.KeysymForRune(r)
}

func shiftRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	if s, ok := shiftedPunct[r]; ok {
		return s
	}
	return r
}
