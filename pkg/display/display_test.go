package display

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRectAndSnapshot(t *testing.T) {
	d := NewDisplay(2, 2, "test")
	// wire pixels are B,G,R,X with garbage in X: blue, green / red, white
	d.MergeRect(0, 0, 2, 2, []byte{
		255, 0, 0, 0,
		0, 255, 0, 0,
		0, 0, 255, 0,
		255, 255, 255, 77,
	})

	img := d.Snapshot()
	require.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 1))
}

func TestMergeRectAtOffset(t *testing.T) {
	d := NewDisplay(4, 4, "test")
	d.MergeRect(2, 1, 1, 2, []byte{
		0, 0, 10, 0,
		0, 0, 20, 0,
	})

	img := d.Snapshot()
	assert.Equal(t, color.RGBA{10, 0, 0, 255}, img.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{20, 0, 0, 255}, img.RGBAAt(2, 2))
	// neighbours stay untouched, opaque black
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(3, 1))
}

func TestMergeRectClipsOverhang(t *testing.T) {
	d := NewDisplay(4, 4, "test")
	// 2x2 rectangle at (3,3): only its top-left pixel lands
	data := bytes.Repeat([]byte{0, 0, 0xaa, 0}, 4)
	d.MergeRect(3, 3, 2, 2, data)

	img := d.Snapshot()
	assert.Equal(t, color.RGBA{0xaa, 0, 0, 255}, img.RGBAAt(3, 3))
}

func TestMergeRectFullyOutsideIsDropped(t *testing.T) {
	d := NewDisplay(2, 2, "test")
	d.MergeRect(5, 5, 2, 2, make([]byte, 2*2*4))

	img := d.Snapshot()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(x, y))
		}
	}
}

func TestSnapshotIsValueCopy(t *testing.T) {
	d := NewDisplay(1, 1, "test")
	d.MergeRect(0, 0, 1, 1, []byte{0, 0, 9, 0})
	first := d.Snapshot()

	d.MergeRect(0, 0, 1, 1, []byte{0, 0, 200, 0})
	assert.Equal(t, color.RGBA{9, 0, 0, 255}, first.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{200, 0, 0, 255}, d.Snapshot().RGBAAt(0, 0))
}

func TestDefaultPixelFormatIsFourBytes(t *testing.T) {
	assert.Equal(t, 4, DefaultPixelFormat.BytesPerPixel())
}
