package rfb

import (
	"context"
	"net"
	"strings"

	"github.com/juju/errors"
	"golang.org/x/net/websocket"

	"github.com/kamrankamilli/vncview/pkg/config"
	"github.com/kamrankamilli/vncview/pkg/internal/log"
)

// Dial connects to an RFB server and runs the session until Disconnect or a
// fatal protocol error. addr is host:port for plain TCP, or a ws:// / wss://
// URL for websockified endpoints. The handshake completes before Dial
// returns; the update loop then runs on its own goroutine, reporting to
// observer. There is no reconnect: a failed attempt is the caller's to
// retry.
func Dial(addr string, observer Observer) (*Conn, error) {
	return DialContext(context.Background(), addr, observer)
}

// DialContext is Dial with a caller-supplied context bounding the TCP
// connect. Handshake and session I/O are bounded by the config deadlines
// instead; cancel a running session with (*Conn).Disconnect.
func DialContext(ctx context.Context, addr string, observer Observer) (*Conn, error) {
	nc, err := dialTransport(ctx, addr)
	if err != nil {
		return nil, errors.Annotate(err, "connecting")
	}
	c := newConn(nc, observer)
	log.Infof("Session %s: connected to %s, starting handshake", c.SessionID(), addr)
	if err := c.handshake(); err != nil {
		nc.Close()
		return nil, err
	}
	go c.serve()
	return c, nil
}

func dialTransport(ctx context.Context, addr string) (net.Conn, error) {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		return dialWebSocket(addr)
	}
	d := &net.Dialer{Timeout: config.ConnectTimeout}
	return d.DialContext(ctx, "tcp", addr)
}

// dialWebSocket opens a binary websocket to a websockify-style proxy; the
// RFB byte stream then flows inside binary frames.
func dialWebSocket(addr string) (net.Conn, error) {
	cfg, err := websocket.NewConfig(addr, "http://localhost/")
	if err != nil {
		return nil, errors.Annotate(err, "websocket config")
	}
	cfg.Protocol = []string{"binary"}
	cfg.Dialer = &net.Dialer{Timeout: config.ConnectTimeout}
	ws, err := websocket.DialConfig(cfg)
	if err != nil {
		return nil, errors.Annotate(err, "websocket dial")
	}
	ws.PayloadType = websocket.BinaryFrame
	return ws, nil
}
