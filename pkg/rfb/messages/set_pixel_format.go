package messages

import (
	"github.com/kamrankamilli/vncview/pkg/internal/util"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// SetPixelFormat tells the server the format to use for all subsequent
// pixel data. The protocol has no acknowledgement for it; the client sends
// it once right after ServerInit and decodes everything after that point in
// the requested format.
type SetPixelFormat struct {
	Format types.PixelFormat
}

func (m *SetPixelFormat) Code() uint8 { return types.CmdSetPixelFormat }

func (m *SetPixelFormat) Encode() []byte {
	return util.PackBytes(m.Code(), [3]byte{}, &m.Format)
}
