package dissect

import (
	"encoding/binary"

	"github.com/ipptrace/ipptrace-go/pkg/wire"
)

// Parser parses IPP message bodies into the message model. A Parser is
// stateless across messages and safe for concurrent use.
type Parser struct {
	dec *wire.Decoder
}

// NewParser creates a Parser resolving enums through the given
// registry. A nil registry renders enums as plain integers.
func NewParser(enums *wire.EnumRegistry) *Parser {
	return &Parser{dec: wire.NewDecoder(enums)}
}

// Parse parses one message. The only error is a buffer too short for
// the fixed header; everything after the header is parsed tolerantly,
// with truncation reported through the Truncated flag.
func (p *Parser) Parse(data []byte, dir wire.Direction) (*Message, error) {
	header, err := wire.DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	msg := &Message{Header: header, Direction: dir}
	p.parseAttributes(data, msg)
	return msg, nil
}

// parseAttributes walks the attribute region. Each iteration consumes
// either a delimiter tag or one value record; offsets advance by the
// declared lengths even when a value failed structured decoding, so a
// single bad value never derails the records after it.
func (p *Parser) parseAttributes(data []byte, msg *Message) {
	offset := wire.HeaderSize
	var b *groupBuilder

	for offset < len(data) {
		tag := wire.Tag(data[offset])

		if tag.IsDelimiter() {
			if b != nil {
				b.close(offset, msg)
			}
			if tag.IsEndOfAttributes() {
				msg.AttributesEnd = offset + 1
				if msg.AttributesEnd < len(data) {
					msg.Payload = data[msg.AttributesEnd:]
				}
				return
			}
			b = newGroupBuilder(tag, offset)
			offset++
			continue
		}

		name, value, next, ok := readValueRecord(data, offset)
		if !ok {
			msg.Truncated = true
			break
		}

		if b == nil {
			// Value record before any delimiter. Collect it under a
			// synthetic group so it stays visible.
			b = newGroupBuilder(wire.TagZero, offset)
		}

		switch {
		case len(name) == 0 && b.canExtend(tag):
			b.extend(p.dec.Decode(tag, b.open.Name, value))
		case len(name) == 0:
			// Nameless record with nothing to extend. Keep it as its
			// own attribute rather than dropping bytes.
			b.add(tag, "", p.dec.Decode(tag, "", value))
		default:
			n := string(name)
			b.add(tag, n, p.dec.Decode(tag, n, value))
		}
		offset = next
	}

	// Ran out of bytes without an end-of-attributes tag.
	if b != nil {
		b.close(offset, msg)
	}
	if msg.AttributesEnd == 0 && !msg.Truncated {
		msg.Truncated = true
	}
}

// readValueRecord reads one tag|nameLen|name|valueLen|value record
// starting at the tag byte. Returns ok=false if the buffer ends inside
// the record.
func readValueRecord(data []byte, offset int) (name, value []byte, next int, ok bool) {
	pos := offset + 1
	if pos+2 > len(data) {
		return nil, nil, 0, false
	}
	nameLen := int(binary.BigEndian.Uint16(data[pos : pos+2]))
	pos += 2
	if pos+nameLen > len(data) {
		return nil, nil, 0, false
	}
	name = data[pos : pos+nameLen]
	pos += nameLen

	if pos+2 > len(data) {
		return nil, nil, 0, false
	}
	valueLen := int(binary.BigEndian.Uint16(data[pos : pos+2]))
	pos += 2
	if pos+valueLen > len(data) {
		return nil, nil, 0, false
	}
	value = data[pos : pos+valueLen]
	return name, value, pos + valueLen, true
}
