package rfb

import (
	stderrors "errors"
	"time"

	"github.com/juju/errors"

	"github.com/kamrankamilli/vncview/pkg/config"
	"github.com/kamrankamilli/vncview/pkg/internal/log"
	"github.com/kamrankamilli/vncview/pkg/rfb/encodings"
	"github.com/kamrankamilli/vncview/pkg/rfb/events"
	"github.com/kamrankamilli/vncview/pkg/rfb/messages"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// serve drives the update loop until the session ends, then tears down the
// socket and notifies the observer.
func (c *Conn) serve() {
	defer func() {
		_ = c.Disconnect()
		c.notifyDisconnected()
		log.Infof("Session %s: closed", c.SessionID())
	}()

	handlers := events.HandlerMap(events.GetDefaults())

	for c.Ready() {
		if err := c.cycle(handlers); err != nil {
			if !c.Ready() {
				// Disconnect raced the cycle; the error is just the socket
				// closing underneath it.
				return
			}
			var unsupported *encodings.UnsupportedEncodingError
			if stderrors.As(err, &unsupported) {
				log.Errorf("Session %s: %v", c.SessionID(), err)
				c.notifyError(err)
				return
			}
			log.Warningf("Session %s: update cycle: %v", c.SessionID(), err)
			c.notifyError(err)
			time.Sleep(config.RetryDelay)
			continue
		}
		time.Sleep(config.LoopDelay)
	}
}

// cycle performs one update-loop iteration: drain queued input onto the
// wire, request a full framebuffer update, then consume one server message.
// Input drained here is written strictly before the update request.
func (c *Conn) cycle(handlers map[uint8]events.Event) error {
	for _, msg := range c.input.DrainAll() {
		if err := c.buf.WriteBytes(msg); err != nil {
			return errors.Annotate(err, "writing input event")
		}
	}

	w, h := c.display.GetDimensions()
	req := messages.NewFullUpdateRequest(uint16(w), uint16(h))
	if err := c.buf.WriteBytes(req.Encode()); err != nil {
		return errors.Annotate(err, "writing update request")
	}
	if err := c.buf.Flush(); err != nil {
		return errors.Annotate(err, "flushing requests")
	}

	cmd, err := c.buf.ReadByte()
	if err != nil {
		return errors.Annotate(err, "reading server message type")
	}
	hdlr, ok := handlers[cmd]
	if !ok {
		// Unknown server chatter; skip its assumed 3 padding bytes and
		// carry on.
		log.Debugf("Session %s: unsupported server message type %d", c.SessionID(), cmd)
		return c.buf.ReadPadding(3)
	}
	if err := hdlr.Handle(c.buf, c.display); err != nil {
		return err
	}
	if cmd == types.CmdFramebufferUpdate {
		// All rectangles merged; convert once and hand off the snapshot.
		c.notifyFrame(c.display.Snapshot())
	}
	return nil
}
