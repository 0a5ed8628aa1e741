// Package input queues pointer and key events for a session and carries the
// keysym bookkeeping a viewer needs to produce well-formed event pairs.
package input

import (
	"sync"

	"github.com/kamrankamilli/vncview/pkg/rfb/messages"
)

// Queue collects pre-encoded client messages from producer goroutines until
// the session loop drains them onto the wire. Messages leave in enqueue
// order; a drain takes everything queued so far in one step.
type Queue struct {
	mu      sync.Mutex
	pending [][]byte
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make([][]byte, 0, 16)}
}

// EnqueuePointer queues a pointer event at the given framebuffer position.
// The mask is the full current button state, not a delta.
func (q *Queue) EnqueuePointer(x, y uint16, buttonMask uint8) {
	q.enqueue(messages.NewPointerEvent(x, y, buttonMask))
}

// EnqueueKey queues a key transition for the given keysym.
func (q *Queue) EnqueueKey(keysym uint32, down bool) {
	q.enqueue(messages.NewKeyEvent(keysym, down))
}

func (q *Queue) enqueue(m messages.Message) {
	encoded := m.Encode()
	q.mu.Lock()
	q.pending = append(q.pending, encoded)
	q.mu.Unlock()
}

// DrainAll removes and returns every queued message. The returned slice is
// the caller's to keep; later enqueues land in a fresh backing slice.
func (q *Queue) DrainAll() [][]byte {
	q.mu.Lock()
	drained := q.pending
	q.pending = nil
	q.mu.Unlock()
	return drained
}

// Len reports the number of queued messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
