package input

import (
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDrainsInEnqueueOrder(t *testing.T) {
	q := NewQueue()
	q.EnqueueKey(0x61, true)
	q.EnqueuePointer(10, 20, 1)
	q.EnqueueKey(0x61, false)
	require.Equal(t, 3, q.Len())

	msgs := q.DrainAll()
	require.Len(t, msgs, 3)
	assert.Equal(t, byte(4), msgs[0][0])
	assert.Equal(t, byte(5), msgs[1][0])
	assert.Equal(t, byte(4), msgs[2][0])

	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.DrainAll())
}

func TestQueueEncodesWireMessages(t *testing.T) {
	q := NewQueue()
	q.EnqueuePointer(0x0102, 0x0304, 0x07)
	q.EnqueueKey(0xff0d, true)

	msgs := q.DrainAll()
	require.Len(t, msgs, 2)
	assert.Equal(t, []byte{5, 7, 1, 2, 3, 4}, msgs[0])
	assert.Equal(t, []byte{4, 1, 0, 0, 0, 0, 0xff, 0x0d}, msgs[1])
}

func TestQueueConcurrentProducersKeepTheirOrder(t *testing.T) {
	q := NewQueue()
	const perProducer = 200

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < perProducer; i++ {
			q.EnqueueKey(uint32(i), true)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < perProducer; i++ {
			q.EnqueuePointer(uint16(i), 0, 0)
		}
	}()

	// drain concurrently with the producers
	var all [][]byte
	deadline := time.Now().Add(5 * time.Second)
	for len(all) < 2*perProducer {
		if time.Now().After(deadline) {
			t.Fatalf("drained only %d of %d messages", len(all), 2*perProducer)
		}
		batch := q.DrainAll()
		if len(batch) == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		all = append(all, batch...)
	}
	wg.Wait()

	var keys []uint32
	var ptrs []uint16
	for _, m := range all {
		switch m[0] {
		case 4:
			keys = append(keys, binary.BigEndian.Uint32(m[4:8]))
		case 5:
			ptrs = append(ptrs, binary.BigEndian.Uint16(m[2:4]))
		}
	}
	require.Len(t, keys, perProducer)
	require.Len(t, ptrs, perProducer)
	for i := range keys {
		assert.Equal(t, uint32(i), keys[i])
	}
	for i := range ptrs {
		assert.Equal(t, uint16(i), ptrs[i])
	}
}
