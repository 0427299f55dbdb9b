package wire

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ValueKind identifies which variant of a decoded Value is populated.
type ValueKind uint8

const (
	// KindBytes is raw value bytes: out-of-band values, reserved tags,
	// and every length-mismatch fallback.
	KindBytes ValueKind = iota

	// KindBoolean is a one-byte boolean.
	KindBoolean

	// KindInteger is a signed 32-bit integer.
	KindInteger

	// KindEnum is a 32-bit enum, possibly resolved to a symbol through
	// the attribute name.
	KindEnum

	// KindOctets is a plain octet string.
	KindOctets

	// KindDateTime is an RFC 2579 DateAndTime value.
	KindDateTime

	// KindResolution is a resolution value (x, y, units).
	KindResolution

	// KindRange is a rangeOfInteger value.
	KindRange

	// KindTextWithLanguage is a text or name value with a language tag.
	KindTextWithLanguage

	// KindText is a character-string value.
	KindText
)

// DateTime is the 11-byte dateTime value layout.
type DateTime struct {
	Year       uint16
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	Decisecond uint8
	UTCSign    byte // '+' or '-'
	UTCHour    uint8
	UTCMinute  uint8
}

// String renders the value as an ISO-8601-like timestamp.
func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%d%c%02d%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second,
		d.Decisecond, d.UTCSign, d.UTCHour, d.UTCMinute)
}

// Resolution is the 9-byte resolution value layout.
type Resolution struct {
	X     int32
	Y     int32
	Units uint8
}

// UnitsString returns "dpi", "dpcm", or "unknown".
func (r Resolution) UnitsString() string {
	switch r.Units {
	case 3:
		return "dpi"
	case 4:
		return "dpcm"
	default:
		return "unknown"
	}
}

// String renders the value as "{x}x{y}{units}".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d%s", r.X, r.Y, r.UnitsString())
}

// IntegerRange is the 8-byte rangeOfInteger value layout.
type IntegerRange struct {
	Lower int32
	Upper int32
}

// String renders the value as "{lower}-{upper}".
func (r IntegerRange) String() string {
	return fmt.Sprintf("%d-%d", r.Lower, r.Upper)
}

// Value is a decoded attribute value. Kind selects the populated
// variant; Display always carries a human-readable rendering, including
// the descriptive fallbacks for malformed fixed-size values.
type Value struct {
	Kind ValueKind

	Bool       bool
	Int        int32
	Symbol     string // resolved enum symbol, empty if unresolved
	Text       string
	Lang       string
	Bytes      []byte
	DateTime   *DateTime
	Resolution *Resolution
	Range      *IntegerRange

	Display string
}

// Decoder decodes attribute values. Enum resolution consults the
// registry handed in at construction; the registry is read-only and
// may be shared across decoders.
type Decoder struct {
	enums *EnumRegistry
}

// NewDecoder creates a Decoder using the given enum registry. A nil
// registry decodes enums as plain integers.
func NewDecoder(enums *EnumRegistry) *Decoder {
	if enums == nil {
		enums = &EnumRegistry{}
	}
	return &Decoder{enums: enums}
}

// Decode decodes a value according to its tag class and, for enums, the
// attribute name. Decoding never fails: malformed fixed-size values
// degrade to a descriptive fallback rendering so that the caller can
// keep scanning on the declared lengths.
func (d *Decoder) Decode(tag Tag, name string, data []byte) Value {
	switch tag.Class() {
	case ClassInteger:
		return d.decodeInteger(tag, name, data)
	case ClassOctetString:
		return decodeOctetString(tag, data)
	case ClassCharString:
		text := formatText(data)
		return Value{Kind: KindText, Text: text, Display: text}
	default:
		// Out-of-band and reserved tags carry opaque bytes.
		return rawValue(data)
	}
}

func (d *Decoder) decodeInteger(tag Tag, name string, data []byte) Value {
	switch tag {
	case TagBoolean:
		if len(data) != 1 {
			return fallback(data, fmt.Sprintf("Invalid boolean (length is %d, should be 1)", len(data)))
		}
		switch data[0] {
		case 0x00:
			return Value{Kind: KindBoolean, Bool: false, Display: "false"}
		case 0x01:
			return Value{Kind: KindBoolean, Bool: true, Display: "true"}
		default:
			return Value{Kind: KindBoolean, Bool: true, Display: fmt.Sprintf("Unknown (0x%02x)", data[0])}
		}

	case TagInteger:
		if len(data) != 4 {
			return fallback(data, fmt.Sprintf("Invalid integer (length is %d, should be 4)", len(data)))
		}
		v := int32(binary.BigEndian.Uint32(data))
		return Value{Kind: KindInteger, Int: v, Display: fmt.Sprintf("%d", v)}

	case TagEnum:
		if len(data) != 4 {
			return fallback(data, fmt.Sprintf("Invalid enum (length is %d, should be 4)", len(data)))
		}
		v := int32(binary.BigEndian.Uint32(data))
		val := Value{Kind: KindEnum, Int: v}
		if d.enums.Known(name) {
			if sym, ok := d.enums.Lookup(name, v); ok {
				val.Symbol = sym
				val.Display = sym
			} else {
				val.Display = "Unknown " + d.enums.Category(name)
			}
		} else {
			val.Display = fmt.Sprintf("%d", v)
		}
		return val

	default:
		return fallback(data, fmt.Sprintf("Unknown integer type 0x%02x", uint8(tag)))
	}
}

func decodeOctetString(tag Tag, data []byte) Value {
	switch tag {
	case TagOctetString:
		return Value{Kind: KindOctets, Bytes: data, Display: formatText(data)}

	case TagDateTime:
		if len(data) != 11 {
			return rawValue(data)
		}
		dt := &DateTime{
			Year:       binary.BigEndian.Uint16(data[0:2]),
			Month:      data[2],
			Day:        data[3],
			Hour:       data[4],
			Minute:     data[5],
			Second:     data[6],
			Decisecond: data[7],
			UTCSign:    data[8],
			UTCHour:    data[9],
			UTCMinute:  data[10],
		}
		return Value{Kind: KindDateTime, DateTime: dt, Display: dt.String()}

	case TagResolution:
		if len(data) != 9 {
			return rawValue(data)
		}
		res := &Resolution{
			X:     int32(binary.BigEndian.Uint32(data[0:4])),
			Y:     int32(binary.BigEndian.Uint32(data[4:8])),
			Units: data[8],
		}
		return Value{Kind: KindResolution, Resolution: res, Display: res.String()}

	case TagRangeOfInteger:
		if len(data) != 8 {
			return rawValue(data)
		}
		rng := &IntegerRange{
			Lower: int32(binary.BigEndian.Uint32(data[0:4])),
			Upper: int32(binary.BigEndian.Uint32(data[4:8])),
		}
		return Value{Kind: KindRange, Range: rng, Display: rng.String()}

	case TagTextWithLanguage, TagNameWithLanguage:
		if v, ok := decodeTextWithLanguage(data); ok {
			return v
		}
		return rawValue(data)

	default:
		// Collections and reserved octet formats stay raw.
		return rawValue(data)
	}
}

// decodeTextWithLanguage parses the nested length-prefixed layout
// u16 langLen | lang | u16 strLen | str. Returns false if the nested
// lengths run past the available bytes.
func decodeTextWithLanguage(data []byte) (Value, bool) {
	if len(data) < 4 {
		return Value{}, false
	}
	langLen := int(binary.BigEndian.Uint16(data[0:2]))
	if 2+langLen+2 > len(data) {
		return Value{}, false
	}
	lang := string(data[2 : 2+langLen])
	strLen := int(binary.BigEndian.Uint16(data[2+langLen : 2+langLen+2]))
	if 2+langLen+2+strLen > len(data) {
		return Value{}, false
	}
	text := formatText(data[2+langLen+2 : 2+langLen+2+strLen])
	return Value{
		Kind:    KindTextWithLanguage,
		Text:    text,
		Lang:    lang,
		Display: fmt.Sprintf("%s (%s)", text, lang),
	}, true
}

// rawValue wraps bytes that have no structured decoding.
func rawValue(data []byte) Value {
	return Value{Kind: KindBytes, Bytes: data, Display: formatBytes(data)}
}

// fallback wraps bytes whose declared length did not match a fixed-size
// kind, keeping the descriptive rendering.
func fallback(data []byte, display string) Value {
	return Value{Kind: KindBytes, Bytes: data, Display: display}
}

// formatBytes renders bytes as hex for display.
func formatBytes(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("0x%x", data)
}

// formatText renders bytes as text, escaping non-printable characters
// so attacker-controlled names and values are safe to display.
func formatText(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b >= 0x20 && b < 0x7f {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", b)
		}
	}
	return sb.String()
}
