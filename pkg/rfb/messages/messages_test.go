package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

func TestSetPixelFormatEncode(t *testing.T) {
	m := &SetPixelFormat{Format: types.PixelFormat{
		BPP:        32,
		Depth:      24,
		BigEndian:  0,
		TrueColour: 1,
		RedMax:     255,
		GreenMax:   255,
		BlueMax:    255,
		RedShift:   16,
		GreenShift: 8,
		BlueShift:  0,
	}}

	// type byte, 3 padding; then the 16-byte format: bpp/depth/big-endian/
	// true-colour, channel maxima, channel shifts, format padding
	want := []byte{
		0,
		0, 0, 0,
		32, 24, 0, 1,
		0, 255, 0, 255, 0, 255,
		16, 8, 0,
		0, 0, 0,
	}
	assert.Equal(t, uint8(types.CmdSetPixelFormat), m.Code())
	require.Equal(t, want, m.Encode())
}

func TestFramebufferUpdateRequestEncode(t *testing.T) {
	tests := []struct {
		name string
		w, h uint16
		want []byte
	}{
		{"svga", 800, 600, []byte{3, 0, 0, 0, 0, 0, 0x03, 0x20, 0x02, 0x58}},
		{"single pixel", 1, 1, []byte{3, 0, 0, 0, 0, 0, 0, 1, 0, 1}},
		{"max geometry", 0xffff, 0xffff, []byte{3, 0, 0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewFullUpdateRequest(tt.w, tt.h)
			require.Equal(t, tt.want, req.Encode())
			// full updates only, never incremental
			assert.False(t, req.Incremental())
		})
	}
}

func TestKeyEventEncode(t *testing.T) {
	tests := []struct {
		name   string
		keysym uint32
		down   bool
		want   []byte
	}{
		{"letter down", 0x61, true, []byte{4, 1, 0, 0, 0, 0, 0, 0x61}},
		{"letter up", 0x61, false, []byte{4, 0, 0, 0, 0, 0, 0, 0x61}},
		{"return down", 0xff0d, true, []byte{4, 1, 0, 0, 0, 0, 0xff, 0x0d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := NewKeyEvent(tt.keysym, tt.down)
			require.Equal(t, tt.want, ev.Encode())
			assert.Equal(t, tt.down, ev.IsDown())
		})
	}
}

func TestPointerEventEncode(t *testing.T) {
	ev := NewPointerEvent(640, 512, types.ButtonLeft)
	require.Equal(t, []byte{5, 1, 0x02, 0x80, 0x02, 0x00}, ev.Encode())

	// mask carries the full current button state
	chord := NewPointerEvent(0, 0, types.ButtonLeft|types.ButtonRight)
	require.Equal(t, []byte{5, 5, 0, 0, 0, 0}, chord.Encode())
}
