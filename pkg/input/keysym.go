package input

import "sync"

// X11 keysym values for the non-character keys a viewer forwards. Printable
// characters do not appear here: their keysym is the Unicode scalar value
// (KeysymForRune).
const (
	KeyBackspace uint32 = 0xff08
	KeyTab       uint32 = 0xff09
	KeyReturn    uint32 = 0xff0d
	KeyEscape    uint32 = 0xff1b
	KeyHome      uint32 = 0xff50
	KeyLeft      uint32 = 0xff51
	KeyUp        uint32 = 0xff52
	KeyRight     uint32 = 0xff53
	KeyDown      uint32 = 0xff54
	KeyPageUp    uint32 = 0xff55
	KeyPageDown  uint32 = 0xff56
	KeyEnd       uint32 = 0xff57
	KeyInsert    uint32 = 0xff63
	KeyDelete    uint32 = 0xffff

	KeyF1  uint32 = 0xffbe
	KeyF2  uint32 = 0xffbf
	KeyF3  uint32 = 0xffc0
	KeyF4  uint32 = 0xffc1
	KeyF5  uint32 = 0xffc2
	KeyF6  uint32 = 0xffc3
	KeyF7  uint32 = 0xffc4
	KeyF8  uint32 = 0xffc5
	KeyF9  uint32 = 0xffc6
	KeyF10 uint32 = 0xffc7
	KeyF11 uint32 = 0xffc8
	KeyF12 uint32 = 0xffc9

	KeyShiftLeft    uint32 = 0xffe1
	KeyShiftRight   uint32 = 0xffe2
	KeyControlLeft  uint32 = 0xffe3
	KeyControlRight uint32 = 0xffe4
	KeyAltLeft      uint32 = 0xffe9
	KeyAltRight     uint32 = 0xffea
	KeySuperLeft    uint32 = 0xffeb
	KeySuperRight   uint32 = 0xffec
)

// KeysymForRune maps a printable character to its keysym. Character keys use
// the character's Unicode scalar value on the wire.
func KeysymForRune(r rune) uint32 { return uint32(r) }

// KeyTracker remembers which keysym went out when a physical key was pressed
// so the release repeats the same value. Modifier state can change between
// press and release; recomputing the keysym at release time would pair a down
// event for one symbol with an up event for another and leave the remote
// keyboard state stuck. Physical keys are identified by whatever stable code
// the event source provides (e.g. a scancode).
type KeyTracker struct {
	mu   sync.Mutex
	down map[uint32]uint32
}

// NewKeyTracker returns an empty tracker.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{down: make(map[uint32]uint32)}
}

// Press records keysym as the symbol sent for the physical key code and
// returns it. Repeat events for a held key keep the original mapping.
func (t *KeyTracker) Press(code, keysym uint32) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if held, ok := t.down[code]; ok {
		return held
	}
	t.down[code] = keysym
	return keysym
}

// Release forgets the mapping for code and returns the keysym recorded at
// press time. ok is false when no press was recorded for code; callers
// should drop such releases.
func (t *KeyTracker) Release(code uint32) (keysym uint32, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	keysym, ok = t.down[code]
	if ok {
		delete(t.down, code)
	}
	return keysym, ok
}

// ReleaseAll clears the tracker and returns the keysyms that were held, so a
// viewer losing focus can send an up event for each.
func (t *KeyTracker) ReleaseAll() []uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]uint32, 0, len(t.down))
	for _, ks := range t.down {
		keys = append(keys, ks)
	}
	t.down = make(map[uint32]uint32)
	return keys
}
