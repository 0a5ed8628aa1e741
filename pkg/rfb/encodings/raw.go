package encodings

import (
	"github.com/kamrankamilli/vncview/pkg/buffer"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// RawEncoding decodes raw-encoded rectangles: width*height pixels in the
// negotiated format, left to right, top to bottom.
type RawEncoding struct {
	// scratch holds one pixel row and is reused across rectangles.
	scratch []byte
}

// Code returns the code for RAW.
func (r *RawEncoding) Code() int32 { return types.EncodingRaw }

// Read consumes the rectangle's pixel data row by row, merging each row into
// fb as it arrives. The full payload is read off the wire even when the
// rectangle overhangs the framebuffer, keeping the stream aligned. The
// scratch buffer is sized from the width alone, so a corrupt height in the
// rectangle header cannot force a huge allocation.
func (r *RawEncoding) Read(buf *buffer.ReadWriter, format *types.PixelFormat, fb Framebuffer, rect *types.FrameBufferRectangle) error {
	rowLen := int(rect.Width) * format.BytesPerPixel()
	if cap(r.scratch) < rowLen {
		r.scratch = make([]byte, rowLen)
	}
	row := r.scratch[:rowLen]
	for i := 0; i < int(rect.Height); i++ {
		if err := buf.ReadFull(row); err != nil {
			return err
		}
		fb.MergeRect(int(rect.X), int(rect.Y)+i, int(rect.Width), 1, row)
	}
	return nil
}
