package types

// Client -> server message types. See RFC 6143 Section 7.5.
const (
	CmdSetPixelFormat           uint8 = 0
	CmdSetEncodings             uint8 = 2
	CmdFramebufferUpdateRequest uint8 = 3
	CmdKeyEvent                 uint8 = 4
	CmdPointerEvent             uint8 = 5
)

// Server -> client message types. See RFC 6143 Section 7.6.
const (
	CmdFramebufferUpdate   uint8 = 0
	CmdSetColourMapEntries uint8 = 1
	CmdBell                uint8 = 2
	CmdServerCutText       uint8 = 3
)

// EncodingRaw is the only rectangle encoding the client handles. Not sending
// SetEncodings leaves a compliant server no other choice.
const EncodingRaw int32 = 0

// Pointer button bits in a PointerEvent mask.
const (
	ButtonLeft      uint8 = 1 << 0
	ButtonMiddle    uint8 = 1 << 1
	ButtonRight     uint8 = 1 << 2
	ButtonWheelUp   uint8 = 1 << 3
	ButtonWheelDown uint8 = 1 << 4
)

// PixelFormat is the 16-byte wire record describing pixel packing.
type PixelFormat struct {
	BPP        uint8
	Depth      uint8
	BigEndian  uint8
	TrueColour uint8
	RedMax     uint16
	GreenMax   uint16
	BlueMax    uint16
	RedShift   uint8
	GreenShift uint8
	BlueShift  uint8
	Padding    [3]byte
}

// BytesPerPixel returns the pixel stride implied by BPP.
func (pf *PixelFormat) BytesPerPixel() int { return int(pf.BPP+7) / 8 }

// ServerInit is the fixed part of the server initialisation record. The
// desktop name that follows is read separately using NameLength.
type ServerInit struct {
	Width       uint16
	Height      uint16
	PixelFormat PixelFormat
	NameLength  uint32
}

// FrameBufferRectangle is the 12-byte header preceding rectangle pixel data.
type FrameBufferRectangle struct {
	X       uint16
	Y       uint16
	Width   uint16
	Height  uint16
	EncType int32
}

// FrameBufferUpdateRequest asks the server for the contents of a region.
type FrameBufferUpdateRequest struct {
	IncrementalFlag uint8
	X               uint16
	Y               uint16
	Width           uint16
	Height          uint16
}

// Incremental reports whether only changed regions were requested.
func (r *FrameBufferUpdateRequest) Incremental() bool { return r.IncrementalFlag != 0 }

// KeyEvent is a key press or release. The two wire padding bytes between
// DownFlag and Key are handled by the codec, not the struct.
type KeyEvent struct {
	DownFlag uint8
	Key      uint32
}

// IsDown reports whether this event is a press.
func (ev *KeyEvent) IsDown() bool { return ev.DownFlag != 0 }

// PointerEvent carries the current pointer position and full button state.
// The mask is absolute, not a delta; a release is the same position with the
// button's bit cleared.
type PointerEvent struct {
	ButtonMask uint8
	X          uint16
	Y          uint16
}
