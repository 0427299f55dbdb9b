package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the size of the fixed IPP message header in bytes.
const HeaderSize = 8

// ErrShortHeader indicates the buffer is too small to hold the fixed
// 8-byte message header.
var ErrShortHeader = errors.New("buffer shorter than IPP header")

// Direction indicates whether a message is a request or a response.
// Direction is always supplied by the enclosing session layer; it is
// never inferred from the message bytes, since operation and status
// codes alone cannot disambiguate reliably.
type Direction uint8

const (
	// DirectionRequest indicates a client-to-printer request.
	DirectionRequest Direction = 0

	// DirectionResponse indicates a printer-to-client response.
	DirectionResponse Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRequest:
		return "request"
	case DirectionResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Version is the 16-bit IPP version: major in the high byte, minor in
// the low byte.
type Version uint16

// Major returns the major version number.
func (v Version) Major() uint8 { return uint8(v >> 8) }

// Minor returns the minor version number.
func (v Version) Minor() uint8 { return uint8(v) }

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Header is the fixed 8-byte header at the start of every IPP message.
// The second field is an operation code in requests and a status code
// in responses; which one applies is determined by the direction.
type Header struct {
	Version    Version
	OpOrStatus uint16
	RequestID  uint32
}

// DecodeHeader decodes the fixed header from the start of buf.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(buf))
	}
	return Header{
		Version:    Version(binary.BigEndian.Uint16(buf[0:2])),
		OpOrStatus: binary.BigEndian.Uint16(buf[2:4]),
		RequestID:  binary.BigEndian.Uint32(buf[4:8]),
	}, nil
}

// Operation returns the operation code. Only meaningful for requests.
func (h Header) Operation() Operation {
	return Operation(h.OpOrStatus)
}

// Status returns the status code. Only meaningful for responses.
func (h Header) Status() Status {
	return Status(h.OpOrStatus)
}

// Summary returns a one-line description of the message suitable for
// display, e.g. "IPP Request (Print-Job)".
func (h Header) Summary(dir Direction) string {
	if dir == DirectionRequest {
		return fmt.Sprintf("IPP Request (%s)", h.Operation())
	}
	return fmt.Sprintf("IPP Response (%s)", h.Status())
}
