package rfb

import "github.com/juju/errors"

var (
	// ErrAuthenticationRequired means the server offered security types but
	// none of them was "None". The client implements no authentication
	// scheme, so negotiation stops before a type is selected and nothing
	// further is written to the socket.
	ErrAuthenticationRequired = errors.New("server requires authentication")

	// ErrSecurityHandshake means the server reported a nonzero
	// SecurityResult after the client selected the None type.
	ErrSecurityHandshake = errors.New("security handshake failed")
)
