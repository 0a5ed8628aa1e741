package messages

import (
	"github.com/kamrankamilli/vncview/pkg/internal/util"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// KeyEvent is a key press or release, identified by an X11 keysym.
type KeyEvent struct {
	types.KeyEvent
}

// NewKeyEvent builds a key event for the given keysym.
func NewKeyEvent(keysym uint32, down bool) *KeyEvent {
	ev := &KeyEvent{}
	ev.Key = keysym
	if down {
		ev.DownFlag = 1
	}
	return ev
}

func (m *KeyEvent) Code() uint8 { return types.CmdKeyEvent }

func (m *KeyEvent) Encode() []byte {
	return util.PackBytes(m.Code(), m.DownFlag, [2]byte{}, m.Key)
}
