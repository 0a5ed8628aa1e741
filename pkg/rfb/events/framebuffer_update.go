package events

import (
	"github.com/kamrankamilli/vncview/pkg/buffer"
	"github.com/kamrankamilli/vncview/pkg/display"
	"github.com/kamrankamilli/vncview/pkg/internal/log"
	"github.com/kamrankamilli/vncview/pkg/rfb/encodings"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// FrameBufferUpdate handles framebuffer update messages: 1 padding byte, a
// u16 rectangle count, then that many rectangles of 12-byte header plus
// encoding-specific pixel data, merged into the display as they arrive.
type FrameBufferUpdate struct {
	decoders []encodings.Encoding
}

// NewFrameBufferUpdate returns a handler with fresh decoder instances.
func NewFrameBufferUpdate() *FrameBufferUpdate {
	return &FrameBufferUpdate{decoders: encodings.GetDefaults()}
}

func (f *FrameBufferUpdate) Code() uint8 { return types.CmdFramebufferUpdate }

func (f *FrameBufferUpdate) Handle(buf *buffer.ReadWriter, d *display.Display) error {
	if err := buf.ReadPadding(1); err != nil {
		return err
	}
	var numRects uint16
	if err := buf.Read(&numRects); err != nil {
		return err
	}
	log.Debugf("Framebuffer update with %d rectangle(s)", numRects)

	for i := uint16(0); i < numRects; i++ {
		var rect types.FrameBufferRectangle
		if err := buf.ReadInto(&rect); err != nil {
			return err
		}
		dec := f.decoderFor(rect.EncType)
		if dec == nil {
			return &encodings.UnsupportedEncodingError{Type: rect.EncType}
		}
		if err := dec.Read(buf, d.GetPixelFormat(), d, &rect); err != nil {
			return err
		}
	}
	return nil
}

func (f *FrameBufferUpdate) decoderFor(code int32) encodings.Encoding {
	for _, dec := range f.decoders {
		if dec.Code() == code {
			return dec
		}
	}
	return nil
}
