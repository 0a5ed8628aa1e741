package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyTrackerPairsReleaseWithPressKeysym(t *testing.T) {
	tr := NewKeyTracker()
	const scancode = 30

	assert.Equal(t, uint32(0x41), tr.Press(scancode, 0x41))

	// shift was released mid-keystroke; the release still pairs with 'A'
	ks, ok := tr.Release(scancode)
	require.True(t, ok)
	assert.Equal(t, uint32(0x41), ks)

	// the mapping is forgotten once released
	_, ok = tr.Release(scancode)
	assert.False(t, ok)
}

func TestKeyTrackerRepeatKeepsOriginalMapping(t *testing.T) {
	tr := NewKeyTracker()
	tr.Press(5, 0x61)

	// autorepeat under drifted modifiers reports the press-time keysym
	assert.Equal(t, uint32(0x61), tr.Press(5, 0x41))

	ks, ok := tr.Release(5)
	require.True(t, ok)
	assert.Equal(t, uint32(0x61), ks)
}

func TestKeyTrackerDropsUnknownRelease(t *testing.T) {
	tr := NewKeyTracker()
	_, ok := tr.Release(99)
	assert.False(t, ok)
}

func TestKeyTrackerReleaseAll(t *testing.T) {
	tr := NewKeyTracker()
	tr.Press(1, KeyShiftLeft)
	tr.Press(2, 0x61)

	got := tr.ReleaseAll()
	assert.ElementsMatch(t, []uint32{KeyShiftLeft, 0x61}, got)
	assert.Empty(t, tr.ReleaseAll())
}

func TestKeysymForRune(t *testing.T) {
	assert.Equal(t, uint32(0x61), KeysymForRune('a'))
	assert.Equal(t, uint32(0x20), KeysymForRune(' '))
	assert.Equal(t, uint32(0xe9), KeysymForRune('é'))
}
