package encodings

import (
	"fmt"

	"github.com/kamrankamilli/vncview/pkg/buffer"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// Framebuffer is the merge target for decoded rectangles.
type Framebuffer interface {
	MergeRect(x, y, w, h int, data []byte)
}

// Encoding is an interface to be implemented by rectangle decoders.
type Encoding interface {
	Code() int32
	Read(buf *buffer.ReadWriter, format *types.PixelFormat, fb Framebuffer, rect *types.FrameBufferRectangle) error
}

// GetDefaults returns fresh instances of the decoders the client understands.
// Raw only; the client never sends SetEncodings, which pins a compliant
// server to Raw.
func GetDefaults() []Encoding {
	return []Encoding{
		&RawEncoding{},
	}
}

// UnsupportedEncodingError reports a rectangle announcing an encoding the
// client has no decoder for. The stream position past the header is unknown
// at that point, so the session cannot continue.
type UnsupportedEncodingError struct {
	Type int32
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("no decoder for encoding type %d", e.Type)
}
