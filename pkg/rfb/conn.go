package rfb

import (
	"image"
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kamrankamilli/vncview/pkg/buffer"
	"github.com/kamrankamilli/vncview/pkg/display"
	"github.com/kamrankamilli/vncview/pkg/input"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// Connection states.
const (
	StateDisconnected int32 = iota
	StateHandshaking
	StateReady
)

// ConnectionInfo describes a negotiated session.
type ConnectionInfo struct {
	SessionID     string
	ServerVersion string
	Width         int
	Height        int
	DesktopName   string
	ServerFormat  types.PixelFormat
}

// Observer receives session callbacks. Every method is invoked from the
// session goroutine, so implementations must return promptly and hand heavy
// work elsewhere. A nil Observer is legal; all notifications are dropped.
type Observer interface {
	OnConnected(info *ConnectionInfo)
	OnFrameReady(img *image.RGBA)
	OnError(err error)
	OnDisconnected()
}

// Conn represents a client connection to an RFB server.
type Conn struct {
	c        net.Conn
	buf      *buffer.ReadWriter
	display  *display.Display
	input    *input.Queue
	observer Observer

	sessionID uuid.UUID
	state     atomic.Int32

	serverVersion string
	minor         int

	closeOnce sync.Once
	closeErr  error
}

func newConn(c net.Conn, observer Observer) *Conn {
	return &Conn{
		c:         c,
		buf:       buffer.NewReadWriteBuffer(c),
		input:     input.NewQueue(),
		observer:  observer,
		sessionID: uuid.New(),
	}
}

// SessionID identifies this session in logs and observer info.
func (c *Conn) SessionID() string { return c.sessionID.String() }

// Ready reports whether the session finished its handshake and is being
// driven by the update loop.
func (c *Conn) Ready() bool { return c.state.Load() == StateReady }

// GetDimensions returns the remote framebuffer geometry, fixed at ServerInit.
// Zeros until the handshake has processed ServerInit.
func (c *Conn) GetDimensions() (width, height int) {
	if c.display == nil {
		return 0, 0
	}
	return c.display.GetDimensions()
}

// DesktopName returns the name the server advertised in ServerInit.
func (c *Conn) DesktopName() string {
	if c.display == nil {
		return ""
	}
	return c.display.GetName()
}

// Snapshot copies the current framebuffer into a fresh RGBA image. Nil until
// the handshake has processed ServerInit. The live framebuffer belongs to the
// session goroutine; call this from observer callbacks or once the session
// has ended.
func (c *Conn) Snapshot() *image.RGBA {
	if c.display == nil {
		return nil
	}
	return c.display.Snapshot()
}

// EnqueuePointer queues a pointer event for the next loop cycle. x and y are
// framebuffer coordinates; mask is the full current button state.
func (c *Conn) EnqueuePointer(x, y uint16, buttonMask uint8) {
	c.input.EnqueuePointer(x, y, buttonMask)
}

// EnqueueKey queues a key transition for the next loop cycle.
func (c *Conn) EnqueueKey(keysym uint32, down bool) {
	c.input.EnqueueKey(keysym, down)
}

// Disconnect tears the session down. Safe to call from any goroutine and
// idempotent: the state flips to disconnected first, then the socket close
// unblocks any in-flight read so the session goroutine can wind down and
// emit OnDisconnected.
func (c *Conn) Disconnect() error {
	c.closeOnce.Do(func() {
		c.state.Store(StateDisconnected)
		c.closeErr = c.c.Close()
	})
	return c.closeErr
}

func (c *Conn) notifyConnected(info *ConnectionInfo) {
	if c.observer != nil {
		c.observer.OnConnected(info)
	}
}

func (c *Conn) notifyFrame(img *image.RGBA) {
	if c.observer != nil {
		c.observer.OnFrameReady(img)
	}
}

func (c *Conn) notifyError(err error) {
	if c.observer != nil {
		c.observer.OnError(err)
	}
}

func (c *Conn) notifyDisconnected() {
	if c.observer != nil {
		c.observer.OnDisconnected()
	}
}
