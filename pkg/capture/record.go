package capture

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// Record is one captured IPP message frame.
// CBOR encoding uses integer keys for compactness.
type Record struct {
	// Timestamp when the frame was captured (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the transport connection (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction wire.Direction `cbor:"3,keyasint"`

	// Frame is the capture frame number, unique within the file.
	Frame uint32 `cbor:"4,keyasint"`

	// Data is the reassembled message body, fixed header first.
	Data []byte `cbor:"5,keyasint"`

	// RemoteAddr is the peer address (IP:port), if known.
	RemoteAddr string `cbor:"6,keyasint,omitempty"`
}

// captureEncMode is the CBOR encoder mode for capture records.
// Configured for nanosecond-precision timestamps and deterministic encoding.
var captureEncMode cbor.EncMode

// captureDecMode is the CBOR decoder mode for capture records.
var captureDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	captureEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	captureDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR decoder mode: %v", err))
	}
}

// EncodeRecord encodes a Record to CBOR bytes.
func EncodeRecord(rec Record) ([]byte, error) {
	return captureEncMode.Marshal(rec)
}

// DecodeRecord decodes CBOR bytes into a Record.
func DecodeRecord(data []byte) (Record, error) {
	var rec Record
	if err := captureDecMode.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// NewEncoder creates a CBOR encoder for capture records that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return captureEncMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for capture records that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return captureDecMode.NewDecoder(r)
}
