package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/kamrankamilli/vncview/pkg/input"
)

func TestKeysymFor(t *testing.T) {
	tests := []struct {
		name string
		sym  sdl.Keysym
		want uint32
	}{
		{
			name: "lowercase letter",
			sym:  sdl.Keysym{Sym: sdl.K_a},
			want: 0x61,
		},
		{
			name: "shifted letter uppercases",
			sym:  sdl.Keysym{Sym: sdl.K_a, Mod: sdl.KMOD_LSHIFT},
			want: 0x41,
		},
		{
			name: "shifted digit resolves punctuation",
			sym:  sdl.Keysym{Sym: sdl.K_2, Mod: sdl.KMOD_RSHIFT},
			want: '@',
		},
		{
			name: "space passes through",
			sym:  sdl.Keysym{Sym: sdl.K_SPACE},
			want: 0x20,
		},
		{
			name: "return maps to keysym",
			sym:  sdl.Keysym{Sym: sdl.K_RETURN},
			want: input.KeyReturn,
		},
		{
			name: "modifier key maps to keysym",
			sym:  sdl.Keysym{Sym: sdl.K_LSHIFT},
			want: input.KeyShiftLeft,
		},
		{
			name: "function key maps to keysym",
			sym:  sdl.Keysym{Sym: sdl.K_F12},
			want: input.KeyF12,
		},
		{
			name: "caps lock has no mapping",
			sym:  sdl.Keysym{Sym: sdl.K_CAPSLOCK},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysymFor(tt.sym))
		})
	}
}

func TestShiftRuneLeavesUnmappedRunesAlone(t *testing.T) {
	assert.Equal(t, rune(' '), shiftRune(' '))
	assert.Equal(t, rune('A'), shiftRune('A'))
}
