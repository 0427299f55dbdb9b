package wire

import "fmt"

// Tag is a single-byte IPP tag. The high nibble selects the tag class,
// the low nibble (or the full byte, for delimiters) the concrete kind.
type Tag uint8

// Delimiter tags (high nibble 0).
const (
	TagZero              Tag = 0x00
	TagOperationGroup    Tag = 0x01
	TagJobGroup          Tag = 0x02
	TagEndOfAttributes   Tag = 0x03
	TagPrinterGroup      Tag = 0x04
	TagUnsupportedGroup  Tag = 0x05
	TagSubscriptionGroup Tag = 0x06
	TagEventGroup        Tag = 0x07
	TagResourceGroup     Tag = 0x08
	TagDocumentGroup     Tag = 0x09
)

// Out-of-band value tags (high nibble 1).
const (
	TagUnsupportedValue Tag = 0x10
	TagUnknown          Tag = 0x12
	TagNoValue          Tag = 0x13
	TagNotSettable      Tag = 0x15
	TagDeleteAttribute  Tag = 0x16
	TagAdminDefine      Tag = 0x17
)

// Integer value tags (high nibble 2).
const (
	TagInteger Tag = 0x21
	TagBoolean Tag = 0x22
	TagEnum    Tag = 0x23
)

// Octet-string value tags (high nibble 3).
const (
	TagOctetString      Tag = 0x30
	TagDateTime         Tag = 0x31
	TagResolution       Tag = 0x32
	TagRangeOfInteger   Tag = 0x33
	TagBeginCollection  Tag = 0x34
	TagTextWithLanguage Tag = 0x35
	TagNameWithLanguage Tag = 0x36
	TagEndCollection    Tag = 0x37
)

// Character-string value tags (high nibble 4).
const (
	TagTextWithoutLanguage Tag = 0x41
	TagNameWithoutLanguage Tag = 0x42
	TagKeyword             Tag = 0x44
	TagURI                 Tag = 0x45
	TagURIScheme           Tag = 0x46
	TagCharset             Tag = 0x47
	TagNaturalLanguage     Tag = 0x48
	TagMimeMediaType       Tag = 0x49
	TagMemberName          Tag = 0x4a
)

// TagClass groups tags by the semantics of their value encoding.
type TagClass uint8

const (
	// ClassDelimiter marks group boundaries; delimiter records carry no
	// name or value.
	ClassDelimiter TagClass = 0

	// ClassOutOfBand covers out-of-band values (unsupported, unknown,
	// no-value, ...) and all reserved high nibbles. Their values are
	// carried as opaque bytes.
	ClassOutOfBand TagClass = 1

	// ClassInteger covers integer, boolean and enum values.
	ClassInteger TagClass = 2

	// ClassOctetString covers octet strings and the structured octet
	// formats (dateTime, resolution, rangeOfInteger, ...).
	ClassOctetString TagClass = 3

	// ClassCharString covers character-string values (text, name,
	// keyword, uri, charset, ...).
	ClassCharString TagClass = 4
)

// String returns the class name.
func (c TagClass) String() string {
	switch c {
	case ClassDelimiter:
		return "delimiter"
	case ClassOutOfBand:
		return "out-of-band"
	case ClassInteger:
		return "integer"
	case ClassOctetString:
		return "octetString"
	case ClassCharString:
		return "charString"
	default:
		return "unknown"
	}
}

// Class returns the tag class selected by the high nibble. The mapping
// is total: reserved high nibbles classify as out-of-band so that a
// scan never stalls on an unrecognized tag.
func (t Tag) Class() TagClass {
	switch t & 0xf0 {
	case 0x00:
		return ClassDelimiter
	case 0x10:
		return ClassOutOfBand
	case 0x20:
		return ClassInteger
	case 0x30:
		return ClassOctetString
	case 0x40:
		return ClassCharString
	default:
		return ClassOutOfBand
	}
}

// IsDelimiter returns true for delimiter tags.
func (t Tag) IsDelimiter() bool {
	return t.Class() == ClassDelimiter
}

// IsEndOfAttributes returns true for the end-of-attributes delimiter.
func (t Tag) IsEndOfAttributes() bool {
	return t == TagEndOfAttributes
}

// tagNames holds the RFC 8010 tag names for known tags.
var tagNames = map[Tag]string{
	TagOperationGroup:    "operation-attributes-tag",
	TagJobGroup:          "job-attributes-tag",
	TagEndOfAttributes:   "end-of-attributes-tag",
	TagPrinterGroup:      "printer-attributes-tag",
	TagUnsupportedGroup:  "unsupported-attributes-tag",
	TagSubscriptionGroup: "subscription-attributes-tag",
	TagEventGroup:        "event-notification-attributes-tag",
	TagResourceGroup:     "resource-attributes-tag",
	TagDocumentGroup:     "document-attributes-tag",

	TagUnsupportedValue: "unsupported",
	TagUnknown:          "unknown",
	TagNoValue:          "no-value",
	TagNotSettable:      "not-settable",
	TagDeleteAttribute:  "delete-attribute",
	TagAdminDefine:      "admin-define",

	TagInteger: "integer",
	TagBoolean: "boolean",
	TagEnum:    "enum",

	TagOctetString:      "octetString",
	TagDateTime:         "dateTime",
	TagResolution:       "resolution",
	TagRangeOfInteger:   "rangeOfInteger",
	TagBeginCollection:  "begCollection",
	TagTextWithLanguage: "textWithLanguage",
	TagNameWithLanguage: "nameWithLanguage",
	TagEndCollection:    "endCollection",

	TagTextWithoutLanguage: "textWithoutLanguage",
	TagNameWithoutLanguage: "nameWithoutLanguage",
	TagKeyword:             "keyword",
	TagURI:                 "uri",
	TagURIScheme:           "uriScheme",
	TagCharset:             "charset",
	TagNaturalLanguage:     "naturalLanguage",
	TagMimeMediaType:       "mimeMediaType",
	TagMemberName:          "memberAttrName",
}

// String returns the RFC 8010 tag name, or a reserved-tag label carrying
// the raw byte value for tags with no registered name.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Reserved (0x%02x)", uint8(t))
}
