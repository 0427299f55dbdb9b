package dissect

import (
	"time"

	"github.com/ipptrace/ipptrace-go/pkg/conversation"
	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// Input is one reassembled message body handed to the Dissector by the
// session layer, together with the context the dissector cannot derive
// from the bytes themselves.
type Input struct {
	// Data is the message body, fixed header first.
	Data []byte

	// Direction tells requests from responses.
	Direction wire.Direction

	// Conversation is the per-connection correlation state. May be nil,
	// in which case no correlation is performed.
	Conversation *conversation.State

	// Frame is the capture frame number carrying this message.
	Frame uint32

	// Timestamp is the capture time of the frame.
	Timestamp time.Time

	// FirstVisit is true the first time this frame is processed. On
	// revisits the conversation state is read but never modified, so
	// reprocessing a capture out of order cannot corrupt correlation.
	FirstVisit bool
}

// Sink receives the document payload trailing the attribute region.
type Sink interface {
	TrailingBytes(frame uint32, data []byte)
}

// Dissector parses messages and maintains request/response correlation
// per connection.
type Dissector struct {
	parser  *Parser
	payload Sink
}

// NewDissector creates a Dissector. The payload sink may be nil if
// trailing document data is of no interest.
func NewDissector(enums *wire.EnumRegistry, payload Sink) *Dissector {
	return &Dissector{
		parser:  NewParser(enums),
		payload: payload,
	}
}

// Dissect parses one message and updates or consults the conversation
// state. The returned transaction is the exchange this message belongs
// to; it is nil for unmatched responses and whenever no conversation
// state was supplied.
func (d *Dissector) Dissect(in Input) (*Message, *conversation.Transaction, error) {
	msg, err := d.parser.Parse(in.Data, in.Direction)
	if err != nil {
		return nil, nil, err
	}

	var trans *conversation.Transaction
	if in.Conversation != nil {
		trans = d.correlate(in, msg.Header.RequestID)
	}

	if d.payload != nil && len(msg.Payload) > 0 {
		d.payload.TrailingBytes(in.Frame, msg.Payload)
	}

	return msg, trans, nil
}

func (d *Dissector) correlate(in Input, requestID uint32) *conversation.Transaction {
	if !in.FirstVisit {
		return in.Conversation.Lookup(requestID)
	}
	if in.Direction == wire.DirectionRequest {
		return in.Conversation.RecordRequest(requestID, in.Frame, in.Timestamp)
	}
	return in.Conversation.RecordResponse(requestID, in.Frame)
}
