package messages

import (
	"github.com/kamrankamilli/vncview/pkg/internal/util"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// PointerEvent carries the pointer position and the full current button
// state. Producers send the absolute mask on every change: press sets a bit,
// release clears it, drags repeat the held mask at each new position.
type PointerEvent struct {
	types.PointerEvent
}

// NewPointerEvent builds a pointer event at the given framebuffer position.
func NewPointerEvent(x, y uint16, buttonMask uint8) *PointerEvent {
	ev := &PointerEvent{}
	ev.X = x
	ev.Y = y
	ev.ButtonMask = buttonMask
	return ev
}

func (m *PointerEvent) Code() uint8 { return types.CmdPointerEvent }

func (m *PointerEvent) Encode() []byte {
	return util.PackBytes(m.Code(), &m.PointerEvent)
}
