package config

import "time"

// Runtime options for the client. The values are bound to command line
// flags in pkg/cli and read from everywhere else.
var (
	// Debug enables debug logging.
	Debug bool

	// ConnectTimeout bounds the TCP/WebSocket dial. The handshake that
	// follows runs under the read and write deadlines.
	ConnectTimeout = 10 * time.Second

	// ReadTimeout bounds every blocking read on the connection. A session
	// blocked on a silent server stays cancellable within this window.
	ReadTimeout = 15 * time.Second

	// WriteTimeout bounds every write on the connection.
	WriteTimeout = 10 * time.Second

	// LoopDelay is the throttle between successful update cycles. Full-frame
	// polling without it would saturate the link and the remote server.
	LoopDelay = 50 * time.Millisecond

	// RetryDelay is the backoff after a transient read/write error once the
	// session is ready.
	RetryDelay = 100 * time.Millisecond
)
