package messages

import (
	"github.com/kamrankamilli/vncview/pkg/internal/util"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// FramebufferUpdateRequest asks the server for a region of the framebuffer.
// The session loop only ever sends full (non-incremental) requests: some
// hypervisor VNC servers sit on an incremental request forever when nothing
// changed, and a stalled console is worse than the extra bandwidth.
type FramebufferUpdateRequest struct {
	types.FrameBufferUpdateRequest
}

// NewFullUpdateRequest returns a non-incremental request for the whole
// framebuffer.
func NewFullUpdateRequest(width, height uint16) *FramebufferUpdateRequest {
	return &FramebufferUpdateRequest{
		FrameBufferUpdateRequest: types.FrameBufferUpdateRequest{
			IncrementalFlag: 0,
			X:               0,
			Y:               0,
			Width:           width,
			Height:          height,
		},
	}
}

func (m *FramebufferUpdateRequest) Code() uint8 { return types.CmdFramebufferUpdateRequest }

func (m *FramebufferUpdateRequest) Encode() []byte {
	return util.PackBytes(m.Code(), &m.FrameBufferUpdateRequest)
}
