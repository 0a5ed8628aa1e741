package rfb

import (
	"bytes"
	"fmt"

	"github.com/juju/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/kamrankamilli/vncview/pkg/display"
	"github.com/kamrankamilli/vncview/pkg/internal/log"
	"github.com/kamrankamilli/vncview/pkg/rfb/messages"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// clientVersion is the only protocol version the client announces.
const clientVersion = "RFB 003.008\n"

// securityTypeNone is the only security type the client accepts.
const securityTypeNone uint8 = 1

// maxDesktopNameLen caps the ServerInit name allocation.
const maxDesktopNameLen = 1 << 20

// handshake walks the connection from raw socket to Ready: version exchange,
// security negotiation, ClientInit/ServerInit, then the pixel format fixup.
// Every error here is fatal; there is no partial-state recovery.
func (c *Conn) handshake() error {
	c.state.Store(StateHandshaking)

	if err := c.buf.WriteBytes([]byte(clientVersion)); err != nil {
		return errors.Annotate(err, "writing protocol version")
	}
	if err := c.buf.Flush(); err != nil {
		return errors.Annotate(err, "writing protocol version")
	}
	banner := make([]byte, 12)
	if err := c.buf.ReadFull(banner); err != nil {
		return errors.Annotate(err, "reading server protocol version")
	}
	c.serverVersion = string(bytes.TrimSpace(banner))
	c.minor = parseMinor(banner)
	log.Infof("Session %s: server speaks %q", c.SessionID(), c.serverVersion)

	if err := c.negotiateSecurity(); err != nil {
		return err
	}

	// ClientInit: always ask for a shared session rather than stealing
	// exclusive access from another viewer.
	if err := c.buf.Write(uint8(1)); err != nil {
		return errors.Annotate(err, "writing client init")
	}
	if err := c.buf.Flush(); err != nil {
		return errors.Annotate(err, "writing client init")
	}

	var si types.ServerInit
	if err := c.buf.ReadInto(&si); err != nil {
		return errors.Annotate(err, "reading server init")
	}
	if si.NameLength > maxDesktopNameLen {
		return errors.Errorf("excessive desktop name length %d", si.NameLength)
	}
	name := make([]byte, si.NameLength)
	if err := c.buf.ReadFull(name); err != nil {
		return errors.Annotate(err, "reading desktop name")
	}
	desktopName := decodeLatin1(name)
	c.display = display.NewDisplay(int(si.Width), int(si.Height), desktopName)

	// Drop the advertised format and pin our own, so the decoder never
	// branches on per-server pixel layouts.
	spf := &messages.SetPixelFormat{Format: *display.DefaultPixelFormat}
	if err := c.buf.WriteBytes(spf.Encode()); err != nil {
		return errors.Annotate(err, "writing set-pixel-format")
	}
	if err := c.buf.Flush(); err != nil {
		return errors.Annotate(err, "writing set-pixel-format")
	}

	c.state.Store(StateReady)
	log.Infof("Session %s: connected to %q (%dx%d)", c.SessionID(), desktopName, si.Width, si.Height)
	c.notifyConnected(&ConnectionInfo{
		SessionID:     c.SessionID(),
		ServerVersion: c.serverVersion,
		Width:         int(si.Width),
		Height:        int(si.Height),
		DesktopName:   desktopName,
		ServerFormat:  si.PixelFormat,
	})
	return nil
}

// negotiateSecurity reads the offered security types and selects "None".
// When the server offers no types, or offers types but not "None", nothing
// further is written to the socket.
func (c *Conn) negotiateSecurity() error {
	numTypes, err := c.buf.ReadByte()
	if err != nil {
		return errors.Annotate(err, "reading security type count")
	}
	if numTypes == 0 {
		return errors.New("server offered zero security types")
	}
	offered := make([]byte, int(numTypes))
	if err := c.buf.ReadFull(offered); err != nil {
		return errors.Annotate(err, "reading security types")
	}
	log.Debugf("Session %s: server security types: %v", c.SessionID(), offered)
	if !bytes.Contains(offered, []byte{securityTypeNone}) {
		return ErrAuthenticationRequired
	}
	if err := c.buf.Write(securityTypeNone); err != nil {
		return errors.Annotate(err, "writing security type")
	}
	if err := c.buf.Flush(); err != nil {
		return errors.Annotate(err, "writing security type")
	}

	// 3.8 servers confirm even the None type with a SecurityResult.
	if c.minor >= 8 {
		var result uint32
		if err := c.buf.Read(&result); err != nil {
			return errors.Annotate(err, "reading security result")
		}
		if result != 0 {
			return ErrSecurityHandshake
		}
	}
	return nil
}

// parseMinor extracts the minor protocol version from the server banner.
// Banners that do not parse are treated as 3.8, the version the client
// announces; the value only gates the SecurityResult read.
func parseMinor(banner []byte) int {
	var major, minor int
	if n, err := fmt.Sscanf(string(banner), "RFB %d.%d", &major, &minor); err != nil || n != 2 {
		return 8
	}
	return minor
}

func decodeLatin1(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
