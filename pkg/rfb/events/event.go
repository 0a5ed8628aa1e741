package events

import (
	"github.com/kamrankamilli/vncview/pkg/buffer"
	"github.com/kamrankamilli/vncview/pkg/display"
)

// Event is an interface implemented by server message handlers.
type Event interface {
	Code() uint8
	Handle(buf *buffer.ReadWriter, d *display.Display) error
}

// GetDefaults returns fresh handlers for the server messages the client
// consumes. Message types with no handler are skipped by the session loop.
func GetDefaults() []Event {
	return []Event{
		NewFrameBufferUpdate(),
	}
}

// HandlerMap indexes handlers by message type for loop dispatch.
func HandlerMap(evs []Event) map[uint8]Event {
	m := make(map[uint8]Event, len(evs))
	for _, ev := range evs {
		m[ev.Code()] = ev
	}
	return m
}
