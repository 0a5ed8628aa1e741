package display

import (
	"image"

	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// Display is the client's copy of the remote framebuffer. The buffer is
// allocated once from the ServerInit geometry and never resized; only the
// session goroutine writes to it.
type Display struct {
	width, height int
	name          string
	pixelFormat   *types.PixelFormat

	// fb holds width*height pixels of 4 bytes each in the wire layout of
	// DefaultPixelFormat (B, G, R, X), row-major.
	fb []byte
}

// DefaultPixelFormat is the format the client installs with SetPixelFormat
// right after ServerInit: 32bpp, depth 24, little-endian, true colour, 8 bits
// per channel at shifts 16/8/0. Each pixel arrives as the bytes B, G, R, X.
var DefaultPixelFormat = &types.PixelFormat{
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
}

// NewDisplay allocates a framebuffer for the given remote geometry.
func NewDisplay(width, height int, name string) *Display {
	return &Display{
		width:       width,
		height:      height,
		name:        name,
		pixelFormat: DefaultPixelFormat,
		fb:          make([]byte, width*height*4),
	}
}

func (d *Display) GetDimensions() (width, height int) { return d.width, d.height }
func (d *Display) GetName() string                    { return d.name }
func (d *Display) GetPixelFormat() *types.PixelFormat { return d.pixelFormat }

// Bounds returns the framebuffer rectangle.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// MergeRect copies a decoded rectangle of 4-byte pixels into the framebuffer.
// data carries the full w*h rectangle as read off the wire; portions falling
// outside the framebuffer are dropped, the in-bounds remainder still lands.
func (d *Display) MergeRect(x, y, w, h int, data []byte) {
	rect := image.Rect(x, y, x+w, y+h)
	clipped := rect.Intersect(d.Bounds())
	if clipped.Empty() {
		return
	}

	srcStride := w * 4
	spanLen := clipped.Dx() * 4
	for row := clipped.Min.Y; row < clipped.Max.Y; row++ {
		srcOff := (row-rect.Min.Y)*srcStride + (clipped.Min.X-rect.Min.X)*4
		dstOff := (row*d.width + clipped.Min.X) * 4
		copy(d.fb[dstOff:dstOff+spanLen], data[srcOff:srcOff+spanLen])
	}
}

// Snapshot converts the whole framebuffer into a freshly allocated RGBA
// image: bytes 0 and 2 of each pixel swap (B,G,R,X to R,G,B) and the alpha
// channel is forced opaque. The image shares no memory with the live buffer,
// so callers may retain it across updates.
func (d *Display) Snapshot() *image.RGBA {
	img := image.NewRGBA(d.Bounds())
	fb := d.fb
	for i := 0; i+3 < len(fb); i += 4 {
		img.Pix[i+0] = fb[i+2]
		img.Pix[i+1] = fb[i+1]
		img.Pix[i+2] = fb[i+0]
		img.Pix[i+3] = 0xff
	}
	return img
}
